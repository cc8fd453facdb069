package ast

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Symbol is a Ruby symbol child value, such as the method name of a send
// node or the name of a local variable.
type Symbol string

// Location is the source range a node or comment was parsed from.
//
// Begin and End are byte offsets (End is exclusive). Line and LastLine are
// 1-based line numbers of Begin and End; zero means unknown.
type Location struct {
	Begin    int
	End      int
	Line     int
	LastLine int
}

func (l Location) String() string {
	return fmt.Sprintf("%d..%d", l.Begin, l.End)
}

// Node is an immutable AST node as produced by an external Ruby parser.
//
// Children holds, in grammar order, values of type *Node, Symbol, string,
// int64, *big.Int, float64 or nil.
type Node struct {
	Type     Type
	Children []any
	Location *Location
}

// New builds a node without location information.
func New(typ Type, children ...any) *Node {
	return &Node{Type: typ, Children: children}
}

// Child returns the i-th child value, or nil when out of range.
func (n *Node) Child(i int) any {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// NodeAt returns the i-th child if it is a node.
func (n *Node) NodeAt(i int) *Node {
	child, _ := n.Child(i).(*Node)
	return child
}

// SymbolAt returns the i-th child if it is a symbol.
func (n *Node) SymbolAt(i int) Symbol {
	sym, _ := n.Child(i).(Symbol)
	return sym
}

// String renders n as a one-line s-expression.
func (n *Node) String() string {
	var sb strings.Builder
	writeSexp(&sb, n, false, -1)
	return sb.String()
}

// StringWithPositions renders n as a one-line s-expression that also
// carries the location annotations understood by Parse.
func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	writeSexp(&sb, n, true, -1)
	return sb.String()
}

// Inspect renders n the way the Ruby parser gem prints trees: every node
// child starts a new line indented by two spaces per level.
func (n *Node) Inspect() string {
	var sb strings.Builder
	writeSexp(&sb, n, false, 0)
	return sb.String()
}

func writeSexp(sb *strings.Builder, n *Node, positions bool, indent int) {
	if n == nil {
		sb.WriteString("nil")
		return
	}
	sb.WriteByte('(')
	sb.WriteString(string(n.Type))
	if positions && n.Location != nil {
		sb.WriteByte('@')
		sb.WriteString(n.Location.String())
	}
	for _, child := range n.Children {
		if node, ok := child.(*Node); ok && node != nil && indent >= 0 {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("  ", indent+1))
			writeSexp(sb, node, positions, indent+1)
			continue
		}
		sb.WriteByte(' ')
		writeValue(sb, child, positions, indent)
	}
	sb.WriteByte(')')
}

func writeValue(sb *strings.Builder, v any, positions bool, indent int) {
	switch v := v.(type) {
	case nil:
		sb.WriteString("nil")
	case *Node:
		writeSexp(sb, v, positions, indent)
	case Symbol:
		sb.WriteString(FormatSymbol(v))
	case string:
		sb.WriteString(strconv.Quote(v))
	case int64:
		sb.WriteString(strconv.FormatInt(v, 10))
	case int:
		sb.WriteString(strconv.Itoa(v))
	case *big.Int:
		sb.WriteString(v.String())
	case float64:
		sb.WriteString(formatFloat(v))
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

// FormatSymbol renders a symbol in s-expression notation, quoting it when
// it is not a plain identifier or operator name.
func FormatSymbol(s Symbol) string {
	if IsPlainSymbol(s) {
		return ":" + string(s)
	}
	return ":" + strconv.Quote(string(s))
}

var operatorSymbols = map[Symbol]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"<=>": true, "===": true, "=~": true, "!~": true,
	"&": true, "|": true, "^": true, "<<": true, ">>": true,
	"!": true, "~": true, "+@": true, "-@": true,
	"[]": true, "[]=": true, "`": true,
}

// IsPlainSymbol reports whether s can be written as :s in Ruby without
// quoting: an identifier (optionally prefixed by @, @@ or $ and suffixed by
// ?, ! or =) or an operator method name.
func IsPlainSymbol(s Symbol) bool {
	if operatorSymbols[s] {
		return true
	}
	name := string(s)
	switch {
	case strings.HasPrefix(name, "@@"):
		name = name[2:]
	case strings.HasPrefix(name, "@"), strings.HasPrefix(name, "$"):
		name = name[1:]
	default:
		if n := len(name); n > 1 && strings.ContainsRune("?!=", rune(name[n-1])) {
			name = name[:n-1]
		}
	}
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= 0x80:
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
