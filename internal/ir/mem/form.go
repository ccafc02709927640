package mem

import "lcc/internal/util"

func mustBeWritable(op Operand) error {
	if op.IsMemory() {
		return nil
	}
	if _, ok := op.(Reg); ok {
		return nil
	}
	return util.NewError(util.IllFormed, stage, "destination operand is not writable")
}

// CheckForm verifies spec.md §3.5's L-mem invariants: the program ends in
// Retq and every instruction that defines a value writes to a Reg or Addr,
// never an immediate.
func CheckForm(p *Program) error {
	instrs := p.Instrs()
	if len(instrs) == 0 {
		return util.NewError(util.IllFormed, stage, "empty program")
	}
	for i, instr := range instrs {
		switch n := instr.(type) {
		case Movq:
			if err := mustBeWritable(n.Dst); err != nil {
				return err
			}
		case Addq:
			if err := mustBeWritable(n.Dst); err != nil {
				return err
			}
		case Subq:
			if err := mustBeWritable(n.Dst); err != nil {
				return err
			}
		case Negq:
			if err := mustBeWritable(n.Dst); err != nil {
				return err
			}
		case Callq:
			if err := mustBeWritable(n.Dst); err != nil {
				return err
			}
		case Pushq, Popq, Retq:
			// Structurally unconstrained beyond operand typing.
		default:
			return util.NewError(util.IllFormed, stage, "unknown instruction variant")
		}
		if _, ok := instr.(Retq); ok && i != len(instrs)-1 {
			return util.NewError(util.IllFormed, stage, "retq is not the last instruction")
		}
	}
	if _, ok := instrs[len(instrs)-1].(Retq); !ok {
		return util.NewError(util.IllFormed, stage, "program does not end in retq")
	}
	return nil
}

// CheckAsmForm verifies spec.md §3.6/property 5: L-asm's stronger
// invariant that no binary instruction has two memory operands. Call it
// after patch.
func CheckAsmForm(p *Program) error {
	if err := CheckForm(p); err != nil {
		return err
	}
	for _, instr := range p.Instrs() {
		var src, dst Operand
		switch n := instr.(type) {
		case Movq:
			src, dst = n.Src, n.Dst
		case Addq:
			src, dst = n.Src, n.Dst
		case Subq:
			src, dst = n.Src, n.Dst
		default:
			continue
		}
		if src.IsMemory() && dst.IsMemory() {
			return util.NewError(util.IllFormed, stage, "binary instruction has two memory operands")
		}
	}
	return nil
}
