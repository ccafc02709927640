package assign

import (
	"testing"

	"lcc/internal/ir/virt"
)

func TestBuildInterferenceMovqCoalescingExemption(t *testing.T) {
	// a := b, with c live-after: a interferes with c, but not with b (the
	// movq's own source is exempt so a and b can share a home).
	instrs := []virt.Instr{
		virt.Movq{Src: virt.VReg{Name: "b"}, Dst: virt.VReg{Name: "a"}},
	}
	liveAfter := []LiveSet{{"b": true, "c": true}}
	g := BuildInterference(instrs, liveAfter)
	if g.adj["a"]["c"] != true {
		t.Fatal("a should interfere with c")
	}
	if g.adj["a"]["b"] {
		t.Fatal("a should not interfere with its own movq source b")
	}
}

func TestBuildInterferenceAddqInterferesWithEverythingLiveExceptDst(t *testing.T) {
	instrs := []virt.Instr{
		virt.Addq{Src: virt.VReg{Name: "s"}, Dst: virt.VReg{Name: "d"}},
	}
	liveAfter := []LiveSet{{"d": true, "s": true, "other": true}}
	g := BuildInterference(instrs, liveAfter)
	if !g.adj["d"]["s"] {
		t.Fatal("d should interfere with s (addq is not a coalescing move)")
	}
	if !g.adj["d"]["other"] {
		t.Fatal("d should interfere with other live virtuals")
	}
}
