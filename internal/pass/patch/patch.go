// Package patch implements L4 -> L5: eliminating memory-to-memory operands
// by staging through the R15 scratch register (spec.md §4.6).
package patch

import "lcc/internal/ir/mem"

// scratch is the register patch stages memory-to-memory operands through.
// It is excluded from assign-homes' allocation palette for exactly this
// reason (spec.md §9).
var scratch = mem.Reg{Name: mem.R15}

// Patch rewrites p so that no binary instruction has two memory operands,
// producing an L-asm program. All other instructions pass through
// unchanged.
func Patch(p *mem.Program) *mem.Program {
	return &mem.Program{
		FrameSize: p.FrameSize,
		Prologue:  patchAll(p.Prologue),
		Body:      patchAll(p.Body),
		Epilogue:  patchAll(p.Epilogue),
	}
}

func patchAll(instrs []mem.Instr) []mem.Instr {
	out := make([]mem.Instr, 0, len(instrs))
	for _, instr := range instrs {
		out = append(out, patchInstr(instr)...)
	}
	return out
}

func patchInstr(instr mem.Instr) []mem.Instr {
	switch n := instr.(type) {
	case mem.Movq:
		if bothMemory(n.Src, n.Dst) {
			return []mem.Instr{
				mem.Movq{Src: n.Src, Dst: scratch},
				mem.Movq{Src: scratch, Dst: n.Dst},
			}
		}
	case mem.Addq:
		if bothMemory(n.Src, n.Dst) {
			return []mem.Instr{
				mem.Movq{Src: n.Src, Dst: scratch},
				mem.Addq{Src: scratch, Dst: n.Dst},
			}
		}
	case mem.Subq:
		if bothMemory(n.Src, n.Dst) {
			return []mem.Instr{
				mem.Movq{Src: n.Src, Dst: scratch},
				mem.Subq{Src: scratch, Dst: n.Dst},
			}
		}
	}
	return []mem.Instr{instr}
}

func bothMemory(a, b mem.Operand) bool {
	return a.IsMemory() && b.IsMemory()
}
