package assign

import "lcc/internal/ir/virt"

// LiveSet is a set of virtual register names live at some program point.
type LiveSet map[string]bool

func (s LiveSet) clone() LiveSet {
	c := make(LiveSet, len(s))
	for k := range s {
		c[k] = true
	}
	return c
}

// ComputeLiveness walks instrs in reverse and returns, for each index i,
// the set of virtuals live immediately after instrs[i] executes
// (spec.md §4.5.1). Immediates are ignored; only VReg operands affect
// liveness.
func ComputeLiveness(instrs []virt.Instr) []LiveSet {
	liveAfter := make([]LiveSet, len(instrs))
	live := LiveSet{}
	for i := len(instrs) - 1; i >= 0; i-- {
		liveAfter[i] = live.clone()
		live = transfer(instrs[i], live)
	}
	return liveAfter
}

// transfer computes the live set immediately before instr, given the live
// set immediately after it.
func transfer(instr virt.Instr, liveAfter LiveSet) LiveSet {
	live := liveAfter.clone()
	switch n := instr.(type) {
	case virt.Retq:
		live[virt.Retvar] = true
	case virt.Movq:
		if dst, ok := n.Dst.(virt.VReg); ok {
			delete(live, dst.Name)
		}
		if src, ok := n.Src.(virt.VReg); ok {
			live[src.Name] = true
		}
	case virt.Addq:
		// Use-and-def: dst stays live (it is read before being written),
		// src is added if it is a virtual.
		if src, ok := n.Src.(virt.VReg); ok {
			live[src.Name] = true
		}
		if dst, ok := n.Dst.(virt.VReg); ok {
			live[dst.Name] = true
		}
	case virt.Subq:
		if src, ok := n.Src.(virt.VReg); ok {
			live[src.Name] = true
		}
		if dst, ok := n.Dst.(virt.VReg); ok {
			live[dst.Name] = true
		}
	case virt.Negq:
		if dst, ok := n.Dst.(virt.VReg); ok {
			live[dst.Name] = true
		}
	case virt.Callq:
		// Def-only, like Movq with no source operand.
		if dst, ok := n.Dst.(virt.VReg); ok {
			delete(live, dst.Name)
		}
	}
	return live
}
