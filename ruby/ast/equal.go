package ast

import "math/big"

// Equal reports whether a and b have the same structure and child values.
// Locations are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !equalValue(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	switch a := a.(type) {
	case *Node:
		b, ok := b.(*Node)
		return ok && Equal(a, b)
	case *big.Int:
		b, ok := b.(*big.Int)
		return ok && a.Cmp(b) == 0
	case float64:
		b, ok := b.(float64)
		return ok && (a == b || (a != a && b != b))
	}
	return a == b
}
