package ast

import "testing"

func TestCheckFormAcceptsWellScoped(t *testing.T) {
	p := &Program{
		Functions: []*Function{{Name: "f", Formals: []string{"a"}, Body: Var{Name: "a"}}},
		Body:      Let{Name: "x", Bind: IntLit{Value: 1}, Body: Call{Fname: "f", Args: []Expr{Var{Name: "x"}}}},
	}
	if err := CheckForm(p); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestCheckFormRejectsFreeVar(t *testing.T) {
	p := &Program{Body: Var{Name: "x"}}
	if err := CheckForm(p); err == nil {
		t.Fatal("expected error for free variable")
	}
}

func TestCheckFormRejectsUnknownFunction(t *testing.T) {
	p := &Program{Body: Call{Fname: "missing"}}
	if err := CheckForm(p); err == nil {
		t.Fatal("expected error for unknown function")
	}
}

func TestCheckFormRejectsWrongArity(t *testing.T) {
	p := &Program{
		Functions: []*Function{{Name: "f", Formals: []string{"a", "b"}, Body: Var{Name: "a"}}},
		Body:      Call{Fname: "f", Args: []Expr{IntLit{Value: 1}}},
	}
	if err := CheckForm(p); err == nil {
		t.Fatal("expected error for arity mismatch")
	}
}

func TestCheckUniqueRejectsDuplicateBinder(t *testing.T) {
	p := &Program{
		Body: Let{Name: "x", Bind: IntLit{Value: 1},
			Body: Let{Name: "x", Bind: IntLit{Value: 2}, Body: Var{Name: "x"}}},
	}
	if err := CheckUnique(p); err == nil {
		t.Fatal("expected error for duplicate binder name")
	}
}

func TestCheckUniqueAcceptsDistinctBinders(t *testing.T) {
	p := &Program{
		Body: Let{Name: "x-v0", Bind: IntLit{Value: 1},
			Body: Let{Name: "x-v1", Bind: IntLit{Value: 2}, Body: Var{Name: "x-v1"}}},
	}
	if err := CheckUnique(p); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}
