package predlogic

import (
	"fmt"
	"strings"
)

// DumpTree renders an Expression as an indented debug tree. It is a
// debugging aid only — String() remains the canonical surface-syntax
// printer.
func DumpTree(e Expression) string {
	var b strings.Builder
	dumpNode(&b, e, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, e Expression, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := e.(type) {
	case Var:
		fmt.Fprintf(b, "%sVar %s\n", indent, t.Name)
	case App:
		fmt.Fprintf(b, "%sApp\n", indent)
		dumpNode(b, t.Fun, depth+1)
		for _, arg := range t.Args {
			dumpNode(b, arg, depth+1)
		}
	case Lambda:
		fmt.Fprintf(b, "%sLambda %s\n", indent, t.Var.Name)
		dumpNode(b, t.Body, depth+1)
	case Exists:
		fmt.Fprintf(b, "%sExists %s\n", indent, t.Var.Name)
		dumpNode(b, t.Body, depth+1)
	case ForAll:
		fmt.Fprintf(b, "%sForAll %s\n", indent, t.Var.Name)
		dumpNode(b, t.Body, depth+1)
	case Not:
		fmt.Fprintf(b, "%sNot\n", indent)
		dumpNode(b, t.Body, depth+1)
	case And:
		dumpBinOp(b, "And", t.Left, t.Right, depth)
	case Or:
		dumpBinOp(b, "Or", t.Left, t.Right, depth)
	case Imp:
		dumpBinOp(b, "Imp", t.Left, t.Right, depth)
	case Iff:
		dumpBinOp(b, "Iff", t.Left, t.Right, depth)
	case Eq:
		dumpBinOp(b, "Eq", t.Left, t.Right, depth)
	default:
		fmt.Fprintf(b, "%s?%T\n", indent, e)
	}
}

func dumpBinOp(b *strings.Builder, label string, left, right Expression, depth int) {
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), label)
	dumpNode(b, left, depth+1)
	dumpNode(b, right, depth+1)
}
