package mem

import (
	"fmt"
	"strings"
)

func (i Imm) String() string { return fmt.Sprintf("$%d", i.Value) }
func (r Reg) String() string { return fmt.Sprintf("%%%s", r.Name) }
func (a Addr) String() string {
	if a.Offset == 0 {
		return fmt.Sprintf("(%%%s)", a.Base)
	}
	return fmt.Sprintf("%d(%%%s)", a.Offset, a.Base)
}

// Print renders p as the final .s listing: ".global _main" header, a
// "_main:" label, one instruction per line.
func Print(p *Program) string {
	var b strings.Builder
	b.WriteString(".global _main\n")
	b.WriteString("_main:\n")
	for _, instr := range p.Instrs() {
		writeInstr(&b, instr)
	}
	return b.String()
}

func writeInstr(b *strings.Builder, instr Instr) {
	switch n := instr.(type) {
	case Movq:
		fmt.Fprintf(b, "\tmovq\t%s, %s\n", n.Src, n.Dst)
	case Addq:
		fmt.Fprintf(b, "\taddq\t%s, %s\n", n.Src, n.Dst)
	case Subq:
		fmt.Fprintf(b, "\tsubq\t%s, %s\n", n.Src, n.Dst)
	case Negq:
		fmt.Fprintf(b, "\tnegq\t%s\n", n.Dst)
	case Pushq:
		fmt.Fprintf(b, "\tpushq\t%s\n", n.Src)
	case Popq:
		fmt.Fprintf(b, "\tpopq\t%s\n", n.Dst)
	case Callq:
		fmt.Fprintf(b, "\tcallq\t%s\n", n.Label)
		if r, ok := n.Dst.(Reg); !ok || r.Name != RAX {
			fmt.Fprintf(b, "\tmovq\t%%rax, %s\n", n.Dst)
		}
	case Retq:
		b.WriteString("\tretq\n")
	}
}
