package ast

import (
	"fmt"
	"strings"
)

// CommentKind classifies a comment token.
type CommentKind int

const (
	// Inline is a `#` comment running to the end of its line.
	Inline CommentKind = iota
	// Document is a `=begin`/`=end` block; it leads the construct that
	// follows it and must start in column 0.
	Document
)

func (k CommentKind) String() string {
	switch k {
	case Inline:
		return "inline"
	case Document:
		return "document"
	}
	return "unknown"
}

// Comment is an out-of-band comment token. Comment lists are ordered by
// source position.
type Comment struct {
	Text     string
	Location Location
	Kind     CommentKind
}

// Document reports whether c is a document comment.
func (c Comment) Document() bool {
	return c.Kind == Document
}

func (c Comment) String() string {
	return fmt.Sprintf("%s@%s %q", c.Kind, c.Location, c.Text)
}

// LocateComments builds comment tokens by searching for each text, in
// order, in source. Each search starts where the previous match ended, so
// repeated texts resolve to successive occurrences. Texts starting with
// "=begin" are classified as document comments.
func LocateComments(source string, texts []string) ([]Comment, error) {
	lines := NewLineIndex([]byte(source))
	comments := make([]Comment, 0, len(texts))
	from := 0
	for _, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("locate comment: empty comment text")
		}
		idx := strings.Index(source[from:], text)
		if idx < 0 {
			return nil, fmt.Errorf("locate comment: %q not found after offset %d", text, from)
		}
		begin := from + idx
		end := begin + len(text)
		kind := Inline
		if strings.HasPrefix(text, "=begin") {
			kind = Document
		}
		comments = append(comments, Comment{
			Text:     text,
			Location: lines.Locate(begin, end),
			Kind:     kind,
		})
		from = end
	}
	return comments, nil
}
