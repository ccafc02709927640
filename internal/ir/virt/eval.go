package virt

import (
	"lcc/internal/oracle"
	"lcc/internal/util"
)

const stage = "virt"

// Eval evaluates Program p against the given oracle and returns the value
// held in the reserved Retvar VReg when Retq executes.
func Eval(p *Program, o oracle.Oracle) (int64, error) {
	regs := make(map[string]int64)
	read := func(op Operand) (int64, error) {
		switch v := op.(type) {
		case Imm:
			return v.Value, nil
		case VReg:
			val, ok := regs[v.Name]
			if !ok {
				return 0, util.NewError(util.VarNotDefined, stage, v.Name)
			}
			return val, nil
		default:
			return 0, util.NewError(util.IllFormed, stage, "unknown operand")
		}
	}
	write := func(op Operand, val int64) error {
		v, ok := op.(VReg)
		if !ok {
			return util.NewError(util.IllFormed, stage, "destination operand is not a VReg")
		}
		regs[v.Name] = val
		return nil
	}

	for _, instr := range p.Instrs {
		switch n := instr.(type) {
		case Movq:
			v, err := read(n.Src)
			if err != nil {
				return 0, err
			}
			if err := write(n.Dst, v); err != nil {
				return 0, err
			}
		case Addq:
			s, err := read(n.Src)
			if err != nil {
				return 0, err
			}
			d, err := read(n.Dst)
			if err != nil {
				return 0, err
			}
			if err := write(n.Dst, d+s); err != nil {
				return 0, err
			}
		case Subq:
			s, err := read(n.Src)
			if err != nil {
				return 0, err
			}
			d, err := read(n.Dst)
			if err != nil {
				return 0, err
			}
			if err := write(n.Dst, d-s); err != nil {
				return 0, err
			}
		case Negq:
			d, err := read(n.Dst)
			if err != nil {
				return 0, err
			}
			if err := write(n.Dst, -d); err != nil {
				return 0, err
			}
		case Callq:
			v, err := o.Next()
			if err != nil {
				return 0, err
			}
			if err := write(n.Dst, v); err != nil {
				return 0, err
			}
		case Retq:
			val, ok := regs[Retvar]
			if !ok {
				return 0, util.NewError(util.VarNotDefined, stage, Retvar)
			}
			return val, nil
		default:
			return 0, util.NewError(util.IllFormed, stage, "unknown instruction variant")
		}
	}
	return 0, util.NewError(util.IllFormed, stage, "program did not end in retq")
}
