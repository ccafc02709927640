package patch

import (
	"testing"

	"lcc/internal/ir/mem"
	"lcc/internal/oracle"
)

func TestPatchStagesMemoryToMemoryThroughR15(t *testing.T) {
	p := mem.NewFrame(mem.AlignFrame(2), []mem.Instr{
		mem.Movq{Src: mem.Addr{Base: mem.RBP, Offset: -8}, Dst: mem.Addr{Base: mem.RBP, Offset: -16}},
	})
	out := Patch(p)
	if err := mem.CheckAsmForm(out); err != nil {
		t.Fatalf("patched program still violates L-asm form: %s", err)
	}
	if len(out.Body) != 2 {
		t.Fatalf("got %d body instructions, want 2 (stage through R15)", len(out.Body))
	}
	first, ok := out.Body[0].(mem.Movq)
	if !ok || first.Dst != (mem.Reg{Name: mem.R15}) {
		t.Fatalf("first patched instruction = %#v, want a movq into R15", out.Body[0])
	}
}

func TestPatchLeavesNonMemoryPairsUnchanged(t *testing.T) {
	body := []mem.Instr{
		mem.Movq{Src: mem.Imm{Value: 1}, Dst: mem.Reg{Name: mem.RBX}},
	}
	p := mem.NewFrame(mem.AlignFrame(0), body)
	out := Patch(p)
	if len(out.Body) != 1 || out.Body[0] != body[0] {
		t.Fatalf("expected the single register/immediate instruction to pass through unchanged, got %#v", out.Body)
	}
}

func TestPatchPreservesSemantics(t *testing.T) {
	p := mem.NewFrame(mem.AlignFrame(2), []mem.Instr{
		mem.Movq{Src: mem.Imm{Value: 3}, Dst: mem.Addr{Base: mem.RBP, Offset: -8}},
		mem.Movq{Src: mem.Imm{Value: 5}, Dst: mem.Addr{Base: mem.RBP, Offset: -16}},
		mem.Addq{Src: mem.Addr{Base: mem.RBP, Offset: -16}, Dst: mem.Addr{Base: mem.RBP, Offset: -8}},
		mem.Movq{Src: mem.Addr{Base: mem.RBP, Offset: -8}, Dst: mem.Reg{Name: mem.RAX}},
	})
	want, err := mem.Eval(p, oracle.NewRecorded())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	out := Patch(p)
	if err := mem.CheckAsmForm(out); err != nil {
		t.Fatalf("unexpected checkAsmForm error: %s", err)
	}
	got, err := mem.Eval(out, oracle.NewRecorded())
	if err != nil {
		t.Fatalf("unexpected eval error: %s", err)
	}
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}
