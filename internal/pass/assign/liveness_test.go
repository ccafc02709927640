package assign

import (
	"testing"

	"lcc/internal/ir/virt"
)

func TestComputeLivenessRetqSeedsRetvar(t *testing.T) {
	instrs := []virt.Instr{
		Movq(virt.Imm{Value: 1}, virt.Retvar),
		virt.Retq{},
	}
	live := ComputeLiveness(instrs)
	if !live[0][virt.Retvar] {
		t.Fatal("retvar should be live immediately after the second-to-last instruction")
	}
}

func TestComputeLivenessMovqKillsDstAddsSrc(t *testing.T) {
	// a := b; movq consumes b into a, so before it runs "b" is live and "a" is not.
	instr := Movq(virt.VReg{Name: "b"}, "a")
	before := transfer(instr, LiveSet{})
	if !before["b"] {
		t.Fatal("b should be live before the movq")
	}
	if before["a"] {
		t.Fatal("a should not be live before its own definition")
	}
}

func TestComputeLivenessAddqUseAndDef(t *testing.T) {
	instr := virt.Addq{Src: virt.VReg{Name: "s"}, Dst: virt.VReg{Name: "d"}}
	before := transfer(instr, LiveSet{})
	if !before["s"] || !before["d"] {
		t.Fatalf("both src and dst should be live before an addq, got %v", before)
	}
}

func TestComputeLivenessCallqIsDefOnly(t *testing.T) {
	instr := virt.Callq{Dst: virt.VReg{Name: "d"}, Label: "read_int"}
	after := LiveSet{"d": true, "other": true}
	before := transfer(instr, after)
	if before["d"] {
		t.Fatal("d should not be live before its own definition")
	}
	if !before["other"] {
		t.Fatal("unrelated liveness should pass through unchanged")
	}
}

// Movq is a small test helper building a virt.Movq from a src operand and a
// destination VReg name.
func Movq(src virt.Operand, dst string) virt.Instr {
	return virt.Movq{Src: src, Dst: virt.VReg{Name: dst}}
}
