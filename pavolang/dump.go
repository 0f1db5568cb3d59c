package pavolang

import (
	"fmt"
	"strings"
)

// Dump renders node as an s-expression for debugging and tests.
//
//	print 1 + x;           (print (+ 1 x))
//	loop i < 3 { break; }  (loop (< i 3) [break])
//	let y := { return 1; }; (let y {(return 1)})
func Dump(node Node) string {
	var sb strings.Builder
	dump(&sb, node)
	return sb.String()
}

func dump(sb *strings.Builder, node Node) {
	switch node := node.(type) {
	case nil:
		sb.WriteString("nil")
	case *Number:
		sb.WriteString(node.Text)
	case *Variable:
		sb.WriteString(node.Name)
	case *Assign:
		sb.WriteString("(let " + node.Name + " ")
		dump(sb, node.Value)
		sb.WriteString(")")
	case *Reassign:
		sb.WriteString("(set " + node.Name + " ")
		dump(sb, node.Value)
		sb.WriteString(")")
	case *Print:
		sb.WriteString("(print ")
		dump(sb, node.Value)
		sb.WriteString(")")
	case *BinaryOp:
		dumpOp(sb, node.Op, node.Left, node.Right)
	case *Compare:
		dumpOp(sb, node.Op, node.Left, node.Right)
	case *Logic:
		dumpOp(sb, node.Op, node.Left, node.Right)
	case *If:
		sb.WriteString("(if ")
		dump(sb, node.Cond)
		sb.WriteString(" ")
		dumpList(sb, "[", node.Body, "]")
		sb.WriteString(")")
	case *Block:
		dumpList(sb, "{", node.Body, "}")
	case *Return:
		sb.WriteString("(return ")
		dump(sb, node.Value)
		sb.WriteString(")")
	case *Loop:
		sb.WriteString("(loop ")
		if node.Cond != nil {
			dump(sb, node.Cond)
			sb.WriteString(" ")
		}
		dumpList(sb, "[", node.Body, "]")
		sb.WriteString(")")
	case *Break:
		sb.WriteString("break")
	default:
		fmt.Fprintf(sb, "<%T>", node)
	}
}

func dumpOp(sb *strings.Builder, op Operator, left, right Node) {
	sb.WriteString("(" + string(op) + " ")
	if left != nil {
		dump(sb, left)
		sb.WriteString(" ")
	}
	dump(sb, right)
	sb.WriteString(")")
}

func dumpList(sb *strings.Builder, open string, nodes []Node, close string) {
	sb.WriteString(open)
	for i, node := range nodes {
		if i > 0 {
			sb.WriteString(" ")
		}
		dump(sb, node)
	}
	sb.WriteString(close)
}
