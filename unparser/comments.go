package unparser

import (
	"github.com/dhamidi/unparser/ruby/ast"
)

// CommentEnumerator is the queue of comments not yet written, in source
// order. All take operations remove a prefix of the queue; the only way a
// comment returns to the queue is TakeEndOfLine pushing back the document
// comments it just removed.
type CommentEnumerator struct {
	comments []ast.Comment
	source   []byte
}

// NewCommentEnumerator copies comments into a new queue. source is the text
// the comments were parsed from; it may be nil, in which case
// TakeAllContiguousAfter never takes anything.
func NewCommentEnumerator(comments []ast.Comment, source []byte) *CommentEnumerator {
	return &CommentEnumerator{
		comments: append([]ast.Comment(nil), comments...),
		source:   source,
	}
}

// Len returns the number of comments still queued.
func (e *CommentEnumerator) Len() int {
	return len(e.comments)
}

func (e *CommentEnumerator) takeWhile(pred func(ast.Comment) bool) []ast.Comment {
	n := 0
	for n < len(e.comments) && pred(e.comments[n]) {
		n++
	}
	if n == 0 {
		return nil
	}
	taken := append([]ast.Comment(nil), e.comments[:n]...)
	e.comments = e.comments[n:]
	return taken
}

// TakeBefore removes the leading run of comments that end at or before pos.
func (e *CommentEnumerator) TakeBefore(pos int) []ast.Comment {
	return e.takeWhile(func(c ast.Comment) bool {
		return c.Location.End <= pos
	})
}

// TakeUpToLine removes the leading run of comments starting on or before
// line.
func (e *CommentEnumerator) TakeUpToLine(line int) []ast.Comment {
	return e.takeWhile(func(c ast.Comment) bool {
		return c.Location.Line <= line
	})
}

// TakeEndOfLine takes the comments up to line like TakeUpToLine, but
// returns only inline comments. Document comments are put back at the
// front of the queue, in order, so they lead the next construct instead of
// trailing this one.
func (e *CommentEnumerator) TakeEndOfLine(line int) []ast.Comment {
	taken := e.TakeUpToLine(line)
	var inline, document []ast.Comment
	for _, c := range taken {
		if c.Document() {
			document = append(document, c)
		} else {
			inline = append(inline, c)
		}
	}
	if len(document) > 0 {
		e.comments = append(document, e.comments...)
	}
	return inline
}

// TakeAllContiguousAfter removes the leading run of comments that are
// separated from pos, and from each other, only by whitespace in the
// source.
func (e *CommentEnumerator) TakeAllContiguousAfter(pos int) []ast.Comment {
	if e.source == nil {
		return nil
	}
	return e.takeWhile(func(c ast.Comment) bool {
		if !e.blank(pos, c.Location.Begin) {
			return false
		}
		if c.Location.End > pos {
			pos = c.Location.End
		}
		return true
	})
}

// TakeAll empties the queue.
func (e *CommentEnumerator) TakeAll() []ast.Comment {
	taken := e.comments
	e.comments = nil
	return taken
}

// blank reports whether source[from:to] holds only whitespace. A range
// that is empty or reversed is blank.
func (e *CommentEnumerator) blank(from, to int) bool {
	if from < 0 {
		from = 0
	}
	if to > len(e.source) {
		to = len(e.source)
	}
	for i := from; i < to; i++ {
		switch e.source[i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
		default:
			return false
		}
	}
	return true
}
