// Package unparser turns a Ruby syntax tree, as produced by the parser gem,
// back into Ruby source text.
//
// The tree and its comments arrive separately: the comments are located
// tokens and are woven back into the output next to the nodes they were
// found beside. Every comment is emitted exactly once and in source order,
// even when the tree carries no locations.
//
//	node := ast.MustParse("(send (lvar :a) :+ (send (lvar :b) :* (lvar :c)))")
//	src, err := unparser.Unparse(node, nil)
//	// src == "a + b * c"
//
// Each node type has one emitter. Emitters write into a Buffer that tracks
// indentation and the comments pending at the end of the current line.
// Operator expressions are parenthesized only where precedence or
// associativity requires it.
package unparser
