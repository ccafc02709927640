package virt

import "lcc/internal/util"

// CheckForm verifies spec.md §3.4's grammar invariants: the program ends
// in exactly one trailing Retq, and every instruction that defines a value
// writes to a VReg, never an immediate.
func CheckForm(p *Program) error {
	if len(p.Instrs) == 0 {
		return util.NewError(util.IllFormed, stage, "empty program")
	}
	mustBeVReg := func(op Operand) error {
		if _, ok := op.(VReg); !ok {
			return util.NewError(util.IllFormed, stage, "destination is not a VReg")
		}
		return nil
	}
	for i, instr := range p.Instrs {
		switch n := instr.(type) {
		case Movq:
			if err := mustBeVReg(n.Dst); err != nil {
				return err
			}
		case Addq:
			if err := mustBeVReg(n.Dst); err != nil {
				return err
			}
		case Subq:
			if err := mustBeVReg(n.Dst); err != nil {
				return err
			}
		case Negq:
			if err := mustBeVReg(n.Dst); err != nil {
				return err
			}
		case Callq:
			if err := mustBeVReg(n.Dst); err != nil {
				return err
			}
		case Retq:
			if i != len(p.Instrs)-1 {
				return util.NewError(util.IllFormed, stage, "retq is not the last instruction")
			}
		default:
			return util.NewError(util.IllFormed, stage, "unknown instruction variant")
		}
	}
	if _, ok := p.Instrs[len(p.Instrs)-1].(Retq); !ok {
		return util.NewError(util.IllFormed, stage, "program does not end in retq")
	}
	return nil
}
