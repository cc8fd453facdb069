package unparser

import (
	"strings"
)

const indentStr = "  "

// suffixPiece is text queued until the current line is committed.
type suffixPiece struct {
	text string
	// line pieces start a line of their own after the current one.
	line     bool
	indented bool
}

// Buffer accumulates emitted source. It tracks the indent depth and a
// pending line suffix that is folded into the content when the next
// newline is committed.
//
// Indent and Unindent follow a newline-then-adjust contract: both commit a
// newline first and then change the depth, so the text written next lands
// on a fresh line at the new depth.
type Buffer struct {
	content strings.Builder
	indent  int
	suffix  []suffixPiece
	// atLineStart is true when content is empty or ends with a newline.
	atLineStart bool
}

func NewBuffer() *Buffer {
	return &Buffer{atLineStart: true}
}

// Append writes text, preceded by the indent prefix when the buffer is at
// the start of a committed line.
func (b *Buffer) Append(text string) {
	if text == "" {
		return
	}
	if b.atLineStart && b.content.Len() > 0 {
		b.writePrefix(&b.content)
	}
	b.write(text)
}

// AppendWithoutPrefix writes text without indentation.
func (b *Buffer) AppendWithoutPrefix(text string) {
	if text == "" {
		return
	}
	b.write(text)
}

func (b *Buffer) write(text string) {
	b.content.WriteString(text)
	b.atLineStart = strings.HasSuffix(text, "\n")
}

func (b *Buffer) writePrefix(w *strings.Builder) {
	for i := 0; i < b.indent; i++ {
		w.WriteString(indentStr)
	}
}

// Newline flushes the pending line suffix and commits a newline.
func (b *Buffer) Newline() {
	b.atLineStart = b.flushSuffix(&b.content, b.atLineStart)
	b.content.WriteByte('\n')
	b.atLineStart = true
}

// Indent commits a newline and increases the depth.
func (b *Buffer) Indent() {
	b.Newline()
	b.indent++
}

// Unindent commits a newline and decreases the depth. It fails with
// ErrIndentUnderflow, leaving the buffer untouched, when the depth is
// already zero.
func (b *Buffer) Unindent() error {
	if b.indent == 0 {
		return internalError(ErrIndentUnderflow, "unindent at depth 0")
	}
	b.Newline()
	b.indent--
	return nil
}

// Depth returns the current indent depth.
func (b *Buffer) Depth() int {
	return b.indent
}

// AppendToEndOfLine queues text to be written at the end of the current
// line, after anything else emitted before the next newline.
func (b *Buffer) AppendToEndOfLine(text string) {
	if text == "" {
		return
	}
	b.suffix = append(b.suffix, suffixPiece{text: text})
}

// AppendSuffixLine queues text as a line of its own after the current
// line. Indented lines receive the indent prefix in effect when the suffix
// is flushed; other lines start in column 0.
func (b *Buffer) AppendSuffixLine(indented bool, text string) {
	b.suffix = append(b.suffix, suffixPiece{text: text, line: true, indented: indented})
}

// FreshLine reports whether the buffer is empty or ends with a committed
// newline.
func (b *Buffer) FreshLine() bool {
	return b.atLineStart
}

// Content returns the committed content followed by the pending suffix.
// The buffer itself is not modified.
func (b *Buffer) Content() string {
	if len(b.suffix) == 0 {
		return b.content.String()
	}
	var sb strings.Builder
	sb.WriteString(b.content.String())
	b.renderSuffix(&sb, b.atLineStart, b.content.Len() == 0)
	return sb.String()
}

// flushSuffix writes the pending suffix to w, clears it and returns whether
// w now ends at the start of a line.
func (b *Buffer) flushSuffix(w *strings.Builder, atLineStart bool) bool {
	if len(b.suffix) == 0 {
		return atLineStart
	}
	atLineStart = b.renderSuffix(w, atLineStart, w.Len() == 0)
	b.suffix = b.suffix[:0]
	return atLineStart
}

func (b *Buffer) renderSuffix(w *strings.Builder, atLineStart, empty bool) bool {
	for _, piece := range b.suffix {
		if piece.line {
			if !atLineStart {
				w.WriteByte('\n')
				empty = false
			}
			atLineStart = true
		}
		if piece.text == "" {
			continue
		}
		if atLineStart && (piece.indented || !piece.line) && !empty {
			b.writePrefix(w)
		}
		w.WriteString(piece.text)
		atLineStart = strings.HasSuffix(piece.text, "\n")
		empty = false
	}
	return atLineStart
}
