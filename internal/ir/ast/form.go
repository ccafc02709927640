package ast

import "lcc/internal/util"

// CheckForm verifies the L-src/L-uniq well-formedness invariant from
// spec.md §3.1: every Var occurs inside a Let that binds it, or as a
// formal of the enclosing function, and every Call names a declared
// function with matching arity.
func CheckForm(p *Program) error {
	fnames := make(map[string]bool, len(p.Functions))
	for _, f := range p.Functions {
		if fnames[f.Name] {
			return util.NewError(util.IllFormed, stage, f.Name)
		}
		fnames[f.Name] = true
	}
	for _, f := range p.Functions {
		scope := make(map[string]bool, len(f.Formals))
		for _, v := range f.Formals {
			scope[v] = true
		}
		if err := checkScope(f.Body, scope, p, fnames); err != nil {
			return err
		}
	}
	return checkScope(p.Body, map[string]bool{}, p, fnames)
}

func checkScope(e Expr, scope map[string]bool, p *Program, fnames map[string]bool) error {
	switch n := e.(type) {
	case IntLit, Read:
		return nil
	case Var:
		if !scope[n.Name] {
			return util.NewError(util.VarNotDefined, stage, n.Name)
		}
		return nil
	case Negate:
		return checkScope(n.Expr, scope, p, fnames)
	case Add:
		if err := checkScope(n.Left, scope, p, fnames); err != nil {
			return err
		}
		return checkScope(n.Right, scope, p, fnames)
	case Let:
		if err := checkScope(n.Bind, scope, p, fnames); err != nil {
			return err
		}
		inner := make(map[string]bool, len(scope)+1)
		for k := range scope {
			inner[k] = true
		}
		inner[n.Name] = true
		return checkScope(n.Body, inner, p, fnames)
	case Call:
		if !fnames[n.Fname] {
			return util.NewError(util.FunctionNotDefined, stage, n.Fname)
		}
		fn := p.Lookup(n.Fname)
		if fn != nil && len(fn.Formals) != len(n.Args) {
			return util.NewError(util.WrongArity, stage, n.Fname)
		}
		for _, a := range n.Args {
			if err := checkScope(a, scope, p, fnames); err != nil {
				return err
			}
		}
		return nil
	default:
		return util.NewError(util.IllFormed, stage, "unknown expression variant")
	}
}

// CheckUnique verifies L-uniq's stronger invariant: syntactic equality of
// two bound names implies they are the same binder, i.e. every binding
// name (variable or function) is distinct across the whole program.
func CheckUnique(p *Program) error {
	seenFn := make(map[string]bool)
	for _, f := range p.Functions {
		if seenFn[f.Name] {
			return util.NewError(util.IllFormed, stage, f.Name)
		}
		seenFn[f.Name] = true
	}
	seenVar := make(map[string]bool)
	bind := func(name string) error {
		if seenVar[name] {
			return util.NewError(util.IllFormed, stage, name)
		}
		seenVar[name] = true
		return nil
	}
	var walk func(e Expr) error
	walk = func(e Expr) error {
		switch n := e.(type) {
		case Negate:
			return walk(n.Expr)
		case Add:
			if err := walk(n.Left); err != nil {
				return err
			}
			return walk(n.Right)
		case Let:
			if err := walk(n.Bind); err != nil {
				return err
			}
			if err := bind(n.Name); err != nil {
				return err
			}
			return walk(n.Body)
		case Call:
			for _, a := range n.Args {
				if err := walk(a); err != nil {
					return err
				}
			}
			return nil
		default:
			return nil
		}
	}
	for _, f := range p.Functions {
		for _, formal := range f.Formals {
			if err := bind(formal); err != nil {
				return err
			}
		}
		if err := walk(f.Body); err != nil {
			return err
		}
	}
	return walk(p.Body)
}
