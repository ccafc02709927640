package uniquify

import (
	"testing"

	"lcc/internal/ir/ast"
	"lcc/internal/oracle"
)

func TestUniquifyRenamesShadowedBinders(t *testing.T) {
	// (let ([x 1]) (let ([x 2]) x)) -> distinct x-v0/x-v1.
	src := &ast.Program{
		Body: ast.Let{
			Name: "x", Bind: ast.IntLit{Value: 1},
			Body: ast.Let{Name: "x", Bind: ast.IntLit{Value: 2}, Body: ast.Var{Name: "x"}},
		},
	}
	out, err := Uniquify(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := ast.CheckUnique(out); err != nil {
		t.Fatalf("uniquify output violates uniqueness invariant: %s", err)
	}
	outer := out.Body.(ast.Let)
	inner := outer.Body.(ast.Let)
	if outer.Name == inner.Name {
		t.Fatalf("shadowed binders got the same name %q", outer.Name)
	}
	if inner.Body.(ast.Var).Name != inner.Name {
		t.Fatalf("inner reference resolved to %q, want %q", inner.Body.(ast.Var).Name, inner.Name)
	}

	v, err := ast.Eval(out, oracle.NewRecorded())
	if err != nil {
		t.Fatalf("unexpected eval error: %s", err)
	}
	if v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}

func TestUniquifyPreservesSemantics(t *testing.T) {
	src := &ast.Program{
		Functions: []*ast.Function{
			{Name: "double", Formals: []string{"n"}, Body: ast.Add{Left: ast.Var{Name: "n"}, Right: ast.Var{Name: "n"}}},
		},
		Body: ast.Call{Fname: "double", Args: []ast.Expr{ast.IntLit{Value: 21}}},
	}
	out, err := Uniquify(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want, err := ast.Eval(src, oracle.NewRecorded())
	if err != nil {
		t.Fatalf("unexpected error evaluating source: %s", err)
	}
	got, err := ast.Eval(out, oracle.NewRecorded())
	if err != nil {
		t.Fatalf("unexpected error evaluating uniquified output: %s", err)
	}
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestUniquifyRejectsFreeVariable(t *testing.T) {
	src := &ast.Program{Body: ast.Var{Name: "x"}}
	if _, err := Uniquify(src); err == nil {
		t.Fatal("expected VarNotDefined error")
	}
}

func TestUniquifyRejectsUnknownFunction(t *testing.T) {
	src := &ast.Program{Body: ast.Call{Fname: "missing"}}
	if _, err := Uniquify(src); err == nil {
		t.Fatal("expected FunctionNotDefined error")
	}
}

func TestUniquifyIdempotentOnAlreadyUniqueProgram(t *testing.T) {
	src := &ast.Program{
		Body: ast.Let{Name: "x", Bind: ast.IntLit{Value: 10},
			Body: ast.Add{Left: ast.Var{Name: "x"}, Right: ast.Var{Name: "x"}}},
	}
	once, err := Uniquify(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	twice, err := Uniquify(once)
	if err != nil {
		t.Fatalf("unexpected error re-uniquifying: %s", err)
	}
	v1, _ := ast.Eval(once, oracle.NewRecorded())
	v2, _ := ast.Eval(twice, oracle.NewRecorded())
	if v1 != v2 {
		t.Fatalf("got %d and %d, want equal results", v1, v2)
	}
}
