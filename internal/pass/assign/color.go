package assign

import (
	"sort"

	"lcc/internal/ir/mem"
	"lcc/internal/ir/virt"
)

// Palette is the ordered register palette available to the allocator:
// callee/caller-saved registers excluding RAX (reserved for retvar/call
// returns), RSP, RBP (frame pointers) and R15 (reserved scratch for the
// patch pass — spec.md §9's resolution of the palette's stated register
// range, which would otherwise include R15).
var Palette = []mem.Register{
	mem.R12, mem.R13, mem.R14,
	mem.RBX, mem.RCX, mem.RDX, mem.RSI, mem.RDI,
	mem.R8, mem.R9, mem.R10, mem.R11,
}

// Home is the physical location assigned to a virtual register: either a
// register from Palette, or a stack slot at RBP-8*Slot.
type Home struct {
	isReg bool
	Reg   mem.Register
	Slot  int // 1-based stack slot index when !isReg.
}

// IsRegister reports whether h names a physical register.
func (h Home) IsRegister() bool { return h.isReg }

// Operand renders h as the L-mem operand it denotes.
func (h Home) Operand() mem.Operand {
	if h.isReg {
		return mem.Reg{Name: h.Reg}
	}
	return mem.Addr{Base: mem.RBP, Offset: -int64(h.Slot) * mem.WordSize}
}

func regHome(r mem.Register) Home { return Home{isReg: true, Reg: r} }
func stackHome(slot int) Home     { return Home{isReg: false, Slot: slot} }

// saturated is the set of homes already forbidden for a virtual because a
// neighbor was colored with them.
type saturated map[string]bool

func (s saturated) key(h Home) string {
	if h.isReg {
		return h.Reg.String()
	}
	return "stack"
}

// Color assigns a Home to every node in g by saturation (largest-
// saturation-first, see spec.md §4.5.3 and §9's determinism note: ties are
// broken by ascending name). It returns the home map and the number of
// distinct stack slots used.
func Color(g *Graph) (map[string]Home, int) {
	homes := make(map[string]Home)
	satur := make(map[string]saturated)
	for _, n := range g.Nodes() {
		satur[n] = make(saturated)
	}

	propagate := func(colored string, h Home) {
		key := satur[colored].key(h)
		for _, nb := range g.Neighbors(colored) {
			if _, ok := homes[nb]; ok {
				continue
			}
			if satur[nb] == nil {
				satur[nb] = make(saturated)
			}
			satur[nb][key] = true
		}
	}

	// retvar is seeded first and fixed to RAX, then propagated, matching
	// spec.md §4.5.3 step 1.
	if _, ok := satur[virt.Retvar]; ok {
		homes[virt.Retvar] = regHome(mem.RAX)
		propagate(virt.Retvar, regHome(mem.RAX))
	}

	slotsUsed := 0
	for {
		name, ok := pickNext(g, homes, satur)
		if !ok {
			break
		}
		h, usedNewSlot := assignHome(satur[name], slotsUsed)
		homes[name] = h
		if usedNewSlot {
			slotsUsed++
		}
		propagate(name, h)
	}
	return homes, slotsUsed
}

// pickNext returns the uncolored node with the largest saturation set,
// ties broken by ascending name (spec.md §9's determinism requirement).
func pickNext(g *Graph, homes map[string]Home, satur map[string]saturated) (string, bool) {
	var candidates []string
	for _, n := range g.Nodes() {
		if _, done := homes[n]; !done {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		si, sj := len(satur[candidates[i]]), len(satur[candidates[j]])
		if si != sj {
			return si > sj
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0], true
}

// assignHome scans Palette in order for the first register not in sat,
// falling back to the next free stack slot (slotsUsed+1). Every stack home
// is unique by construction, so slot assignment never needs to consult
// sat. usedNewSlot reports whether a fresh stack slot was consumed.
func assignHome(sat saturated, slotsUsed int) (h Home, usedNewSlot bool) {
	for _, r := range Palette {
		if !sat[r.String()] {
			return regHome(r), false
		}
	}
	return stackHome(slotsUsed + 1), true
}
