package ast

import (
	"lcc/internal/oracle"
	"lcc/internal/util"
)

const stage = "ast"

// env is an immutable, copy-on-write variable environment. Programs in this
// family never nest deeper than the tree itself, so a small copied map per
// Let is cheap and keeps each frame's lifetime obvious (teacher's
// environment-during-evaluation note, spec.md §9).
type env map[string]int64

func (e env) extend(name string, v int64) env {
	ne := make(env, len(e)+1)
	for k, v := range e {
		ne[k] = v
	}
	ne[name] = v
	return ne
}

// Eval evaluates Program p against the given oracle and returns the integer
// result of its entry expression, or the first error encountered.
func Eval(p *Program, o oracle.Oracle) (int64, error) {
	return evalExpr(p.Body, env{}, p, o)
}

func evalExpr(e Expr, e0 env, p *Program, o oracle.Oracle) (int64, error) {
	switch n := e.(type) {
	case IntLit:
		return n.Value, nil
	case Read:
		return o.Next()
	case Var:
		v, ok := e0[n.Name]
		if !ok {
			return 0, util.NewError(util.VarNotDefined, stage, n.Name)
		}
		return v, nil
	case Negate:
		v, err := evalExpr(n.Expr, e0, p, o)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case Add:
		l, err := evalExpr(n.Left, e0, p, o)
		if err != nil {
			return 0, err
		}
		r, err := evalExpr(n.Right, e0, p, o)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case Let:
		v, err := evalExpr(n.Bind, e0, p, o)
		if err != nil {
			return 0, err
		}
		return evalExpr(n.Body, e0.extend(n.Name, v), p, o)
	case Call:
		fn := p.Lookup(n.Fname)
		if fn == nil {
			return 0, util.NewError(util.FunctionNotDefined, stage, n.Fname)
		}
		if len(fn.Formals) != len(n.Args) {
			return 0, util.NewError(util.WrongArity, stage, n.Fname)
		}
		callEnv := make(env, len(fn.Formals))
		for i, formal := range fn.Formals {
			v, err := evalExpr(n.Args[i], e0, p, o)
			if err != nil {
				return 0, err
			}
			callEnv[formal] = v
		}
		return evalExpr(fn.Body, callEnv, p, o)
	default:
		return 0, util.NewError(util.IllFormed, stage, "unknown expression variant")
	}
}
