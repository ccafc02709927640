package assign

import (
	"lcc/internal/ir/mem"
	"lcc/internal/ir/virt"
	"lcc/internal/util"
)

const stage = "assign"

// AssignHomes implements L3 -> L4 (spec.md §4.5): liveness analysis,
// interference-graph construction, saturation coloring, and the rewrite
// that replaces every VReg operand with its assigned Reg or Addr home,
// wrapped in the standard prologue/epilogue.
func AssignHomes(p *virt.Program) (*mem.Program, error) {
	liveAfter := ComputeLiveness(p.Instrs)
	g := BuildInterference(p.Instrs, liveAfter)
	homes, slots := Color(g)

	// select always terminates p.Instrs with a Retq (spec.md §3.4), but
	// NewFrame's epilogue supplies the canonical, sole Retq for the
	// program (spec.md §3.5) — CheckForm rejects any earlier Retq
	// (internal/ir/mem/form.go), so the virtual one is dropped here
	// rather than carried into body.
	virtInstrs := p.Instrs
	if n := len(virtInstrs); n > 0 {
		if _, ok := virtInstrs[n-1].(virt.Retq); ok {
			virtInstrs = virtInstrs[:n-1]
		}
	}

	body := make([]mem.Instr, 0, len(virtInstrs))
	for i, instr := range virtInstrs {
		mi, err := rewriteInstr(instr, homes)
		if err != nil {
			return nil, err
		}
		// read_int returns its value in RAX, which is retvar's home. When
		// retvar is live across a call that defines another virtual, RAX
		// is saved on the stack around the call.
		if c, ok := instr.(virt.Callq); ok && liveAfter[i][virt.Retvar] && c.Dst != (virt.VReg{Name: virt.Retvar}) {
			rax := mem.Reg{Name: mem.RAX}
			body = append(body, mem.Pushq{Src: rax}, mi, mem.Popq{Dst: rax})
			continue
		}
		body = append(body, mi)
	}
	return mem.NewFrame(mem.AlignFrame(slots), body), nil
}

func rewriteOperand(op virt.Operand, homes map[string]Home) (mem.Operand, error) {
	switch v := op.(type) {
	case virt.Imm:
		return mem.Imm{Value: v.Value}, nil
	case virt.VReg:
		h, ok := homes[v.Name]
		if !ok {
			return nil, util.NewError(util.IllFormed, stage, v.Name)
		}
		return h.Operand(), nil
	default:
		return nil, util.NewError(util.IllFormed, stage, "unknown operand")
	}
}

func rewriteInstr(instr virt.Instr, homes map[string]Home) (mem.Instr, error) {
	switch n := instr.(type) {
	case virt.Movq:
		src, err := rewriteOperand(n.Src, homes)
		if err != nil {
			return nil, err
		}
		dst, err := rewriteOperand(n.Dst, homes)
		if err != nil {
			return nil, err
		}
		return mem.Movq{Src: src, Dst: dst}, nil
	case virt.Addq:
		src, err := rewriteOperand(n.Src, homes)
		if err != nil {
			return nil, err
		}
		dst, err := rewriteOperand(n.Dst, homes)
		if err != nil {
			return nil, err
		}
		return mem.Addq{Src: src, Dst: dst}, nil
	case virt.Subq:
		src, err := rewriteOperand(n.Src, homes)
		if err != nil {
			return nil, err
		}
		dst, err := rewriteOperand(n.Dst, homes)
		if err != nil {
			return nil, err
		}
		return mem.Subq{Src: src, Dst: dst}, nil
	case virt.Negq:
		dst, err := rewriteOperand(n.Dst, homes)
		if err != nil {
			return nil, err
		}
		return mem.Negq{Dst: dst}, nil
	case virt.Callq:
		dst, err := rewriteOperand(n.Dst, homes)
		if err != nil {
			return nil, err
		}
		return mem.Callq{Dst: dst, Label: n.Label}, nil
	case virt.Retq:
		return mem.Retq{}, nil
	default:
		return nil, util.NewError(util.IllFormed, stage, "unknown instruction variant")
	}
}
