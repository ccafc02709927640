package flat

import "testing"

func okFunc() *Function {
	return &Function{
		Name:   "main",
		Locals: map[string]bool{"t": true},
		Instrs: []Instr{
			Assign{Dst: "t", RHS: IntLit{Value: 1}},
			Return{Src: "t"},
		},
	}
}

func TestCheckFormAccepts(t *testing.T) {
	p := &Program{Main: okFunc()}
	if err := CheckForm(p); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestCheckFormRejectsUndeclaredOperand(t *testing.T) {
	f := okFunc()
	f.Instrs = []Instr{
		Assign{Dst: "t", RHS: VarRef{Name: "undeclared"}},
		Return{Src: "t"},
	}
	if err := CheckForm(&Program{Main: f}); err == nil {
		t.Fatal("expected VarNotDeclared error")
	}
}

func TestCheckFormRejectsReturnNotLast(t *testing.T) {
	f := okFunc()
	f.Instrs = []Instr{
		Return{Src: "t"},
		Assign{Dst: "t", RHS: IntLit{Value: 1}},
	}
	if err := CheckForm(&Program{Main: f}); err == nil {
		t.Fatal("expected error for return not in last position")
	}
}

func TestCheckFormRejectsMissingTrailingReturn(t *testing.T) {
	f := okFunc()
	f.Instrs = []Instr{Assign{Dst: "t", RHS: IntLit{Value: 1}}}
	if err := CheckForm(&Program{Main: f}); err == nil {
		t.Fatal("expected error for missing trailing return")
	}
}

func TestCheckFormRejectsCallArityMismatch(t *testing.T) {
	callee := &Function{
		Name:   "f",
		Locals: map[string]bool{"a": true},
		Formals: []string{"a", "b"},
		Instrs:  []Instr{Return{Src: "a"}},
	}
	main := okFunc()
	main.Locals["t"] = true
	main.Instrs = []Instr{
		Assign{Dst: "t", RHS: CallOp{Fname: "f", Args: []string{"t"}}},
		Return{Src: "t"},
	}
	p := &Program{Main: main, Functions: []*Function{callee}}
	if err := CheckForm(p); err == nil {
		t.Fatal("expected WrongArity error")
	}
}
