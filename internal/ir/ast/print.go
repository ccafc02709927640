package ast

import (
	"fmt"
	"strings"
)

// Print renders p as an S-expression-like listing, for -v diagnostics.
func Print(p *Program) string {
	var b strings.Builder
	for _, f := range p.Functions {
		fmt.Fprintf(&b, "(function %s (%s) %s)\n", f.Name, strings.Join(f.Formals, " "), printExpr(f.Body))
	}
	fmt.Fprintf(&b, "(program %s)\n", printExpr(p.Body))
	return b.String()
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case IntLit:
		return fmt.Sprintf("%d", n.Value)
	case Read:
		return "(read)"
	case Var:
		return n.Name
	case Negate:
		return fmt.Sprintf("(- %s)", printExpr(n.Expr))
	case Add:
		return fmt.Sprintf("(+ %s %s)", printExpr(n.Left), printExpr(n.Right))
	case Let:
		return fmt.Sprintf("(let ([%s %s]) %s)", n.Name, printExpr(n.Bind), printExpr(n.Body))
	case Call:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = printExpr(a)
		}
		return fmt.Sprintf("(%s %s)", n.Fname, strings.Join(parts, " "))
	default:
		return "?"
	}
}
