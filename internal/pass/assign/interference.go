package assign

import "lcc/internal/ir/virt"

// BuildInterference constructs the interference graph for instrs given the
// per-instruction live-after sets from ComputeLiveness (spec.md §4.5.2):
// two virtuals interfere when one is defined while the other is live,
// unless the defining instruction is a Movq whose source is that other
// virtual (they can then share a home).
func BuildInterference(instrs []virt.Instr, liveAfter []LiveSet) *Graph {
	g := NewGraph()
	for i, instr := range instrs {
		if dst, ok := virt.DefOf(instr); ok {
			g.AddNode(dst.Name)
		}
		switch n := instr.(type) {
		case virt.Movq:
			dst, ok := n.Dst.(virt.VReg)
			if !ok {
				continue
			}
			var srcName string
			if src, ok := n.Src.(virt.VReg); ok {
				srcName = src.Name
			}
			for v := range liveAfter[i] {
				if v == srcName || v == dst.Name {
					continue
				}
				g.AddEdge(dst.Name, v)
			}
		case virt.Addq, virt.Subq, virt.Negq, virt.Callq:
			dst, ok := virt.DefOf(instr)
			if !ok {
				continue
			}
			for v := range liveAfter[i] {
				if v == dst.Name {
					continue
				}
				g.AddEdge(dst.Name, v)
			}
		}
	}
	return g
}
