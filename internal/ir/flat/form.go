package flat

import "lcc/internal/util"

// CheckForm verifies spec.md §3.3's invariants: rhs operands are atomic
// (already guaranteed by the grammar), every Assign writes a declared
// local, every operand referenced is declared before use, and the last
// instruction is a Return.
func CheckForm(p *Program) error {
	fnames := make(map[string]bool, len(p.Functions))
	for _, f := range p.Functions {
		fnames[f.Name] = true
	}
	if err := checkFunc(p.Main, p, fnames); err != nil {
		return err
	}
	for _, f := range p.Functions {
		if err := checkFunc(f, p, fnames); err != nil {
			return err
		}
	}
	return nil
}

func checkFunc(f *Function, p *Program, fnames map[string]bool) error {
	if len(f.Instrs) == 0 {
		return util.NewError(util.IllFormed, stage, f.Name)
	}
	declared := make(map[string]bool, len(f.Locals)+len(f.Formals))
	for _, v := range f.Formals {
		declared[v] = true
	}
	for v := range f.Locals {
		declared[v] = true
	}
	use := func(name string) error {
		if !declared[name] {
			return util.NewError(util.VarNotDeclared, stage, name)
		}
		return nil
	}
	for i, instr := range f.Instrs {
		switch n := instr.(type) {
		case Assign:
			if !declared[n.Dst] {
				return util.NewError(util.VarNotDeclared, stage, n.Dst)
			}
			switch rhs := n.RHS.(type) {
			case IntLit, Read:
			case VarRef:
				if err := use(rhs.Name); err != nil {
					return err
				}
			case Negate:
				if err := use(rhs.Src); err != nil {
					return err
				}
			case AddOp:
				if err := use(rhs.Left); err != nil {
					return err
				}
				if err := use(rhs.Right); err != nil {
					return err
				}
			case CallOp:
				if !fnames[rhs.Fname] {
					return util.NewError(util.FunctionNotDefined, stage, rhs.Fname)
				}
				callee := p.Lookup(rhs.Fname)
				if callee != nil && len(callee.Formals) != len(rhs.Args) {
					return util.NewError(util.WrongArity, stage, rhs.Fname)
				}
				for _, a := range rhs.Args {
					if err := use(a); err != nil {
						return err
					}
				}
			default:
				return util.NewError(util.IllFormed, stage, "unknown rhs variant")
			}
		case Return:
			if i != len(f.Instrs)-1 {
				return util.NewError(util.IllFormed, stage, f.Name)
			}
			if err := use(n.Src); err != nil {
				return err
			}
		default:
			return util.NewError(util.IllFormed, stage, "unknown instruction variant")
		}
	}
	if _, ok := f.Instrs[len(f.Instrs)-1].(Return); !ok {
		return util.NewError(util.IllFormed, stage, f.Name)
	}
	return nil
}
