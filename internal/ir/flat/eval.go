package flat

import (
	"lcc/internal/oracle"
	"lcc/internal/util"
)

const stage = "flat"

// Eval evaluates Program p against the given oracle, returning the value
// bound at its Main function's Return.
func Eval(p *Program, o oracle.Oracle) (int64, error) {
	env := make(map[string]int64, len(p.Main.Locals))
	return runFunc(p.Main, env, p, o)
}

func runFunc(f *Function, env map[string]int64, p *Program, o oracle.Oracle) (int64, error) {
	for _, instr := range f.Instrs {
		switch n := instr.(type) {
		case Assign:
			v, err := evalRHS(n.RHS, env, p, o)
			if err != nil {
				return 0, err
			}
			env[n.Dst] = v
		case Return:
			v, ok := env[n.Src]
			if !ok {
				return 0, util.NewError(util.VarNotDefined, stage, n.Src)
			}
			return v, nil
		default:
			return 0, util.NewError(util.IllFormed, stage, "unknown instruction variant")
		}
	}
	return 0, util.NewError(util.IllFormed, stage, f.Name)
}

func evalRHS(r RHS, env map[string]int64, p *Program, o oracle.Oracle) (int64, error) {
	switch n := r.(type) {
	case IntLit:
		return n.Value, nil
	case Read:
		return o.Next()
	case VarRef:
		v, ok := env[n.Name]
		if !ok {
			return 0, util.NewError(util.VarNotDefined, stage, n.Name)
		}
		return v, nil
	case Negate:
		v, ok := env[n.Src]
		if !ok {
			return 0, util.NewError(util.VarNotDefined, stage, n.Src)
		}
		return -v, nil
	case AddOp:
		l, ok := env[n.Left]
		if !ok {
			return 0, util.NewError(util.VarNotDefined, stage, n.Left)
		}
		r, ok := env[n.Right]
		if !ok {
			return 0, util.NewError(util.VarNotDefined, stage, n.Right)
		}
		return l + r, nil
	case CallOp:
		fn := p.Lookup(n.Fname)
		if fn == nil {
			return 0, util.NewError(util.FunctionNotDefined, stage, n.Fname)
		}
		if len(fn.Formals) != len(n.Args) {
			return 0, util.NewError(util.WrongArity, stage, n.Fname)
		}
		callEnv := make(map[string]int64, len(fn.Formals))
		for i, formal := range fn.Formals {
			v, ok := env[n.Args[i]]
			if !ok {
				return 0, util.NewError(util.VarNotDefined, stage, n.Args[i])
			}
			callEnv[formal] = v
		}
		return runFunc(fn, callEnv, p, o)
	default:
		return 0, util.NewError(util.IllFormed, stage, "unknown rhs variant")
	}
}
