package ast

import "sort"

// LineIndex maps byte offsets of a source text to 1-based line numbers.
type LineIndex struct {
	starts []int
	size   int
}

func NewLineIndex(source []byte) *LineIndex {
	idx := &LineIndex{starts: []int{0}, size: len(source)}
	for i, b := range source {
		if b == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

// Line returns the line containing offset. Offsets past the end of the
// source report the last line.
func (idx *LineIndex) Line(offset int) int {
	if offset < 0 {
		return 1
	}
	if offset > idx.size {
		offset = idx.size
	}
	return sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
}

// Locate builds a location for the range [begin, end). LastLine is the
// line holding the last byte of the range.
func (idx *LineIndex) Locate(begin, end int) Location {
	last := end - 1
	if last < begin {
		last = begin
	}
	return Location{
		Begin:    begin,
		End:      end,
		Line:     idx.Line(begin),
		LastLine: idx.Line(last),
	}
}

// Annotate fills in line numbers on every located node of the tree.
func (idx *LineIndex) Annotate(n *Node) {
	if n == nil {
		return
	}
	if n.Location != nil {
		loc := idx.Locate(n.Location.Begin, n.Location.End)
		n.Location = &loc
	}
	for _, child := range n.Children {
		if node, ok := child.(*Node); ok {
			idx.Annotate(node)
		}
	}
}
