package pipeline

import (
	"testing"

	"lcc/internal/ir/ast"
	"lcc/internal/ir/flat"
	"lcc/internal/ir/mem"
	"lcc/internal/ir/virt"
	"lcc/internal/oracle"
	"lcc/internal/sexpr"
)

func astEval(p *ast.Program, o oracle.Oracle) (int64, error)   { return ast.Eval(p, o) }
func flatEval(p *flat.Program, o oracle.Oracle) (int64, error) { return flat.Eval(p, o) }
func virtEval(p *virt.Program, o oracle.Oracle) (int64, error) { return virt.Eval(p, o) }
func memEval(p *mem.Program, o oracle.Oracle) (int64, error)   { return mem.Eval(p, o) }

func compileSrc(t *testing.T, src string) *Result {
	t.Helper()
	prog, err := sexpr.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	res, err := Compile(prog, nil)
	if err != nil {
		t.Fatalf("compile error: %s", err)
	}
	return res
}

// S1. (program () 42) -> all passes yield evaluator result 42.
func TestScenarioS1(t *testing.T) {
	res := compileSrc(t, "(program () 42)")
	assertAllStagesEqual(t, res, oracle.NewRecorded(), 42)
}

// S2. (program () (+ 3 (- 5))) -> -2.
func TestScenarioS2(t *testing.T) {
	res := compileSrc(t, "(program () (+ 3 (- 5)))")
	assertAllStagesEqual(t, res, oracle.NewRecorded(), -2)
}

// S3. (program () (let ([x 10]) (+ x x))) -> 20.
func TestScenarioS3(t *testing.T) {
	res := compileSrc(t, "(program () (let ([x 10]) (+ x x)))")
	assertAllStagesEqual(t, res, oracle.NewRecorded(), 20)
}

// S4. (program () (let ([x 1]) (let ([x 2]) x))) -> 2.
func TestScenarioS4(t *testing.T) {
	res := compileSrc(t, "(program () (let ([x 1]) (let ([x 2]) x)))")
	assertAllStagesEqual(t, res, oracle.NewRecorded(), 2)
}

// S5. 26 distinct variables a..z bound to 1..26 and summed -> 351, forcing a
// spill. Built directly as an ast.Program (rather than surface text) so the
// nesting depth isn't hand-balanced in a string literal.
func TestScenarioS5Spill(t *testing.T) {
	names := make([]string, 26)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	var body ast.Expr = ast.Var{Name: names[25]}
	for i := 24; i >= 0; i-- {
		body = ast.Add{Left: ast.Var{Name: names[i]}, Right: body}
	}
	for i := 25; i >= 0; i-- {
		body = ast.Let{Name: names[i], Bind: ast.IntLit{Value: int64(i + 1)}, Body: body}
	}

	res, err := Compile(&ast.Program{Body: body}, nil)
	if err != nil {
		t.Fatalf("compile error: %s", err)
	}
	if res.Mem.FrameSize == 0 {
		t.Fatal("expected a non-zero frame size for 26 simultaneously-bound variables")
	}
	assertAllStagesEqual(t, res, oracle.NewRecorded(), 351)
}

// S6. (program () (+ (read) (read))) with oracle [7,3] -> 10; swapping the
// oracle to [3,7] still gives 10 (pins the left-to-right contract).
func TestScenarioS6ReadOrdering(t *testing.T) {
	res := compileSrc(t, "(program () (+ (read) (read)))")
	assertAllStagesEqual(t, res, oracle.NewRecorded(7, 3), 10)
	assertAllStagesEqual(t, res, oracle.NewRecorded(3, 7), 10)
}

func assertAllStagesEqual(t *testing.T, res *Result, o oracle.Oracle, want int64) {
	t.Helper()
	rec, ok := o.(*oracle.Recorded)
	if !ok {
		t.Fatal("assertAllStagesEqual requires a *oracle.Recorded oracle")
	}

	check := func(name string, run func(oracle.Oracle) (int64, error)) {
		rec.Reset()
		got, err := run(rec)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", name, err)
		}
		if got != want {
			t.Fatalf("%s: got %d, want %d", name, got, want)
		}
	}

	check("L-src", func(o oracle.Oracle) (int64, error) { return astEval(res.Src, o) })
	check("L-uniq", func(o oracle.Oracle) (int64, error) { return astEval(res.Uniq, o) })
	check("C-flat", func(o oracle.Oracle) (int64, error) { return flatEval(res.Flat, o) })
	check("L-virt", func(o oracle.Oracle) (int64, error) { return virtEval(res.Virt, o) })
	check("L-mem", func(o oracle.Oracle) (int64, error) { return memEval(res.Mem, o) })
	check("L-asm", func(o oracle.Oracle) (int64, error) { return memEval(res.Asm, o) })
}
