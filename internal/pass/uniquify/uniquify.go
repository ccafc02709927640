// Package uniquify implements L0 -> L1: alpha-renaming so every binding
// occurrence has a globally unique name (spec.md §4.2).
package uniquify

import (
	"lcc/internal/ir/ast"
	"lcc/internal/util"
)

const stage = "uniquify"

// Uniquify renames every variable and function binder in p to a fresh,
// globally unique name, rewriting references to resolve to the
// currently-in-scope renamed form. It fails with FunctionNotDefined or
// VarNotDefined if p contains a reference to a name out of scope.
func Uniquify(p *ast.Program) (*ast.Program, error) {
	counter := util.NewNameCounter()

	// Functions share one flat namespace with no nesting or shadowing
	// (spec.md's grammar only allows top-level function definitions), so
	// every function is renamed up front and the map is read-only from
	// then on.
	fnames := make(map[string]string, len(p.Functions))
	for _, f := range p.Functions {
		if _, dup := fnames[f.Name]; dup {
			return nil, util.NewError(util.IllFormed, stage, f.Name)
		}
		fnames[f.Name] = counter.Func(f.Name)
	}

	out := &ast.Program{Functions: make([]*ast.Function, len(p.Functions))}
	for i, f := range p.Functions {
		nf, err := uniquifyFunction(f, counter, fnames)
		if err != nil {
			return nil, err
		}
		out.Functions[i] = nf
	}

	scope := &util.ScopeStack{}
	body, err := uniquifyExpr(p.Body, counter, scope, fnames)
	if err != nil {
		return nil, err
	}
	out.Body = body
	return out, nil
}

func uniquifyFunction(f *ast.Function, counter *util.NameCounter, fnames map[string]string) (*ast.Function, error) {
	scope := &util.ScopeStack{}
	scope.Push()
	defer scope.Pop()

	formals := make([]string, len(f.Formals))
	for i, v := range f.Formals {
		renamed := counter.Var(v)
		scope.Bind(v, renamed)
		formals[i] = renamed
	}
	body, err := uniquifyExpr(f.Body, counter, scope, fnames)
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: fnames[f.Name], Formals: formals, Body: body}, nil
}

func uniquifyExpr(e ast.Expr, counter *util.NameCounter, scope *util.ScopeStack, fnames map[string]string) (ast.Expr, error) {
	switch n := e.(type) {
	case ast.IntLit:
		return n, nil
	case ast.Read:
		return n, nil
	case ast.Var:
		renamed, ok := scope.Resolve(n.Name)
		if !ok {
			return nil, util.NewError(util.VarNotDefined, stage, n.Name)
		}
		return ast.Var{Name: renamed}, nil
	case ast.Negate:
		inner, err := uniquifyExpr(n.Expr, counter, scope, fnames)
		if err != nil {
			return nil, err
		}
		return ast.Negate{Expr: inner}, nil
	case ast.Add:
		l, err := uniquifyExpr(n.Left, counter, scope, fnames)
		if err != nil {
			return nil, err
		}
		r, err := uniquifyExpr(n.Right, counter, scope, fnames)
		if err != nil {
			return nil, err
		}
		return ast.Add{Left: l, Right: r}, nil
	case ast.Let:
		bind, err := uniquifyExpr(n.Bind, counter, scope, fnames)
		if err != nil {
			return nil, err
		}
		renamed := counter.Var(n.Name)
		scope.Push()
		scope.Bind(n.Name, renamed)
		body, err := uniquifyExpr(n.Body, counter, scope, fnames)
		scope.Pop()
		if err != nil {
			return nil, err
		}
		return ast.Let{Name: renamed, Bind: bind, Body: body}, nil
	case ast.Call:
		renamedFn, ok := fnames[n.Fname]
		if !ok {
			return nil, util.NewError(util.FunctionNotDefined, stage, n.Fname)
		}
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			ua, err := uniquifyExpr(a, counter, scope, fnames)
			if err != nil {
				return nil, err
			}
			args[i] = ua
		}
		return ast.Call{Fname: renamedFn, Args: args}, nil
	default:
		return nil, util.NewError(util.IllFormed, stage, "unknown expression variant")
	}
}
