package flat

import (
	"fmt"
	"strings"
)

// Print renders p as a three-address listing, for -v diagnostics.
func Print(p *Program) string {
	var b strings.Builder
	for _, f := range p.Functions {
		printFunc(&b, f)
	}
	printFunc(&b, p.Main)
	return b.String()
}

func printFunc(b *strings.Builder, f *Function) {
	fmt.Fprintf(b, "function %s(%s):\n", f.Name, strings.Join(f.Formals, ", "))
	for _, instr := range f.Instrs {
		switch n := instr.(type) {
		case Assign:
			fmt.Fprintf(b, "  %s := %s\n", n.Dst, printRHS(n.RHS))
		case Return:
			fmt.Fprintf(b, "  return %s\n", n.Src)
		}
	}
}

func printRHS(r RHS) string {
	switch n := r.(type) {
	case IntLit:
		return fmt.Sprintf("%d", n.Value)
	case Read:
		return "read()"
	case VarRef:
		return n.Name
	case Negate:
		return fmt.Sprintf("-%s", n.Src)
	case AddOp:
		return fmt.Sprintf("%s + %s", n.Left, n.Right)
	case CallOp:
		return fmt.Sprintf("call %s(%s)", n.Fname, strings.Join(n.Args, ", "))
	default:
		return "?"
	}
}
