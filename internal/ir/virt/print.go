package virt

import (
	"fmt"
	"strings"
)

func (i Imm) String() string  { return fmt.Sprintf("$%d", i.Value) }
func (v VReg) String() string { return v.Name }

// Print renders p as an AT&T-ish virtual-register listing, for -v
// diagnostics.
func Print(p *Program) string {
	var b strings.Builder
	for _, instr := range p.Instrs {
		switch n := instr.(type) {
		case Movq:
			fmt.Fprintf(&b, "movq\t%s, %s\n", n.Src, n.Dst)
		case Addq:
			fmt.Fprintf(&b, "addq\t%s, %s\n", n.Src, n.Dst)
		case Subq:
			fmt.Fprintf(&b, "subq\t%s, %s\n", n.Src, n.Dst)
		case Negq:
			fmt.Fprintf(&b, "negq\t%s\n", n.Dst)
		case Callq:
			fmt.Fprintf(&b, "callq\t%s\t# -> %s\n", n.Label, n.Dst)
		case Retq:
			b.WriteString("retq\n")
		}
	}
	return b.String()
}

// DefOf returns the VReg instr defines (writes to), if any. Only
// Movq/Addq/Subq/Negq/Callq define a value; Retq defines nothing. Used by
// the interference analysis in internal/pass/assign, which needs the
// defined register to add edges against the live-after set.
func DefOf(instr Instr) (VReg, bool) {
	switch n := instr.(type) {
	case Movq:
		return n.Dst.(VReg), true
	case Addq:
		return n.Dst.(VReg), true
	case Subq:
		return n.Dst.(VReg), true
	case Negq:
		return n.Dst.(VReg), true
	case Callq:
		return n.Dst.(VReg), true
	default:
		return VReg{}, false
	}
}
