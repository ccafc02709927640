// Package flatten implements L1 -> L2: ANF-style flattening to a sequence
// of three-address assignments ending in a return (spec.md §4.3).
package flatten

import (
	"fmt"

	"lcc/internal/ir/ast"
	"lcc/internal/ir/flat"
)

// builder accumulates the instruction sequence and locals set for one
// function body as it is compiled target-at-a-time.
type builder struct {
	instrs []flat.Instr
	locals map[string]bool
}

func (b *builder) declare(name string) {
	b.locals[name] = true
}

func (b *builder) emit(instr flat.Instr) {
	b.instrs = append(b.instrs, instr)
}

// Flatten lowers Program p (L-uniq) to C-flat: the entry body compiles
// into a synthetic Main function targeting "retvar", and every declared
// function compiles the same way, targeting its own synthetic return name.
func Flatten(p *ast.Program) *flat.Program {
	out := &flat.Program{Functions: make([]*flat.Function, len(p.Functions))}
	for i, f := range p.Functions {
		out.Functions[i] = flattenFunction(f)
	}
	out.Main = flattenBody("main", nil, p.Body)
	return out
}

func flattenFunction(f *ast.Function) *flat.Function {
	return flattenBody(f.Name, f.Formals, f.Body)
}

func flattenBody(name string, formals []string, body ast.Expr) *flat.Function {
	b := &builder{locals: make(map[string]bool)}
	const retvar = "retvar"
	compileExpr(body, retvar, b)
	b.declare(retvar)
	b.emit(flat.Return{Src: retvar})
	return &flat.Function{Name: name, Formals: formals, Locals: b.locals, Instrs: b.instrs}
}

// compileExpr compiles e so that its result ends up in target t, per the
// table in spec.md §4.3.
func compileExpr(e ast.Expr, t string, b *builder) {
	switch n := e.(type) {
	case ast.IntLit:
		b.declare(t)
		b.emit(flat.Assign{Dst: t, RHS: flat.IntLit{Value: n.Value}})
	case ast.Read:
		b.declare(t)
		b.emit(flat.Assign{Dst: t, RHS: flat.Read{}})
	case ast.Var:
		b.declare(t)
		b.emit(flat.Assign{Dst: t, RHS: flat.VarRef{Name: n.Name}})
	case ast.Negate:
		compileExpr(n.Expr, t, b)
		b.declare(t)
		b.emit(flat.Assign{Dst: t, RHS: flat.Negate{Src: t}})
	case ast.Add:
		compileExpr(n.Left, t, b)
		// The right operand's target is derived from t, not freshly
		// counted: nested Adds append another "-sum-rhs" to their own
		// current target, which keeps concurrently-live temporaries
		// distinct without a global counter (spec.md §4.3, S2).
		rhsTarget := t + "-sum-rhs"
		compileExpr(n.Right, rhsTarget, b)
		b.declare(t)
		b.emit(flat.Assign{Dst: t, RHS: flat.AddOp{Left: t, Right: rhsTarget}})
	case ast.Let:
		compileExpr(n.Bind, n.Name, b)
		compileExpr(n.Body, t, b)
	case ast.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			// Argument target names are derived from the callee's name,
			// not from t: spec.md §4.3 names them "f-arg-i".
			argTarget := fmt.Sprintf("%s-arg-%d", n.Fname, i)
			compileExpr(a, argTarget, b)
			args[i] = argTarget
		}
		b.declare(t)
		b.emit(flat.Assign{Dst: t, RHS: flat.CallOp{Fname: n.Fname, Args: args}})
	}
}
