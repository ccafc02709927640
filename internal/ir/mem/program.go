package mem

// WordSize is the stack unit: one 64-bit word.
const WordSize = 8

// Program is the L-mem/L-asm top-level unit. Prologue and Epilogue hold the
// standard stylized frame from spec.md §3.5; Body is the allocated
// instruction stream between them. FrameSize is k, already rounded up to
// an even multiple of WordSize.
type Program struct {
	FrameSize int64
	Prologue  []Instr
	Body      []Instr
	Epilogue  []Instr
}

// Instrs returns the full, flattened instruction stream: prologue, body,
// epilogue.
func (p *Program) Instrs() []Instr {
	all := make([]Instr, 0, len(p.Prologue)+len(p.Body)+len(p.Epilogue))
	all = append(all, p.Prologue...)
	all = append(all, p.Body...)
	all = append(all, p.Epilogue...)
	return all
}

// NewFrame builds the standard prologue/epilogue pair for a frame of size k
// (spec.md §3.5): "push RBP; mov RSP,RBP; sub $k,RSP" and
// "add $k,RSP; pop RBP; retq".
func NewFrame(k int64, body []Instr) *Program {
	rbp := Reg{Name: RBP}
	rsp := Reg{Name: RSP}
	return &Program{
		FrameSize: k,
		Prologue: []Instr{
			Pushq{Src: rbp},
			Movq{Src: rsp, Dst: rbp},
			Subq{Src: Imm{Value: k}, Dst: rsp},
		},
		Body: body,
		Epilogue: []Instr{
			Addq{Src: Imm{Value: k}, Dst: rsp},
			Popq{Dst: rbp},
			Retq{},
		},
	}
}

// AlignFrame rounds up slots stack slots (each WordSize bytes) to an even
// multiple of WordSize, per spec.md §4.5.3.
func AlignFrame(slots int) int64 {
	k := int64(slots) * WordSize
	unit := int64(2 * WordSize)
	if rem := k % unit; rem != 0 {
		k += unit - rem
	}
	return k
}
