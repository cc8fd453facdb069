package ast

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ReadOption configures Parse.
type ReadOption func(*reader)

// WithSource supplies the source text the s-expression was parsed from, so
// that located nodes get line numbers.
func WithSource(source []byte) ReadOption {
	return func(r *reader) {
		r.lines = NewLineIndex(source)
	}
}

// Parse reads a tree written in the parser gem's s-expression notation:
//
//	(send (lvar :a) :+ (int 1))
//
// A node type may carry a location annotation, (int@4..5 1), giving the
// begin and end byte offsets of the node in its source. Child values are
// nodes, nil, symbols (:name or :"quoted"), strings in double quotes,
// integers and floats.
func Parse(input string, opts ...ReadOption) (*Node, error) {
	r := &reader{input: input}
	for _, opt := range opts {
		opt(r)
	}
	r.skipSpace()
	if r.eof() {
		return nil, nil
	}
	v, err := r.readValue()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if !r.eof() {
		return nil, r.errorf("unexpected trailing input")
	}
	if v == nil {
		return nil, nil
	}
	node, ok := v.(*Node)
	if !ok {
		return nil, r.errorf("expected a node at top level, got %T", v)
	}
	if r.lines != nil {
		r.lines.Annotate(node)
	}
	return node, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// static trees.
func MustParse(input string, opts ...ReadOption) *Node {
	node, err := Parse(input, opts...)
	if err != nil {
		panic(err)
	}
	return node
}

type reader struct {
	input string
	pos   int
	lines *LineIndex
}

// SyntaxError reports malformed s-expression input.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sexp: offset %d: %s", e.Offset, e.Message)
}

func (r *reader) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: r.pos, Message: fmt.Sprintf(format, args...)}
}

func (r *reader) eof() bool {
	return r.pos >= len(r.input)
}

func (r *reader) peek() byte {
	if r.eof() {
		return 0
	}
	return r.input[r.pos]
}

func (r *reader) skipSpace() {
	for !r.eof() {
		switch r.input[r.pos] {
		case ' ', '\t', '\n', '\r':
			r.pos++
		case ';':
			// ; starts a comment running to the end of the line
			for !r.eof() && r.input[r.pos] != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '(', ')':
		return true
	}
	return false
}

func (r *reader) readBare() string {
	start := r.pos
	for !r.eof() && !isDelimiter(r.input[r.pos]) {
		r.pos++
	}
	return r.input[start:r.pos]
}

func (r *reader) readValue() (any, error) {
	switch c := r.peek(); {
	case c == '(':
		return r.readNode()
	case c == ')':
		return nil, r.errorf("unexpected ')'")
	case c == ':':
		return r.readSymbol()
	case c == '"':
		return r.readString()
	default:
		start := r.pos
		word := r.readBare()
		if word == "nil" {
			return nil, nil
		}
		if v, ok := parseNumber(word); ok {
			return v, nil
		}
		r.pos = start
		return nil, r.errorf("unexpected token %q", word)
	}
}

func (r *reader) readNode() (*Node, error) {
	r.pos++ // (
	start := r.pos
	for !r.eof() && !isDelimiter(r.input[r.pos]) && r.input[r.pos] != '@' {
		r.pos++
	}
	typ := r.input[start:r.pos]
	if typ == "" {
		return nil, r.errorf("missing node type")
	}
	node := &Node{Type: Type(typ)}
	if r.peek() == '@' {
		r.pos++
		loc, err := r.readLocation()
		if err != nil {
			return nil, err
		}
		node.Location = loc
	}
	for {
		r.skipSpace()
		if r.eof() {
			return nil, r.errorf("unterminated node %q", typ)
		}
		if r.peek() == ')' {
			r.pos++
			return node, nil
		}
		child, err := r.readValue()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
}

func (r *reader) readLocation() (*Location, error) {
	word := r.readBare()
	begin, end, ok := strings.Cut(word, "..")
	if !ok {
		return nil, r.errorf("malformed location %q, want begin..end", word)
	}
	b, err := strconv.Atoi(begin)
	if err != nil {
		return nil, r.errorf("malformed location begin %q", begin)
	}
	e, err := strconv.Atoi(end)
	if err != nil {
		return nil, r.errorf("malformed location end %q", end)
	}
	if e < b {
		return nil, r.errorf("location end %d before begin %d", e, b)
	}
	return &Location{Begin: b, End: e}, nil
}

func (r *reader) readSymbol() (Symbol, error) {
	r.pos++ // :
	if r.peek() == '"' {
		s, err := r.readString()
		return Symbol(s), err
	}
	name := r.readBare()
	if name == "" {
		return "", r.errorf("empty symbol")
	}
	return Symbol(name), nil
}

func (r *reader) readString() (string, error) {
	start := r.pos
	r.pos++ // opening quote
	for !r.eof() {
		switch r.input[r.pos] {
		case '\\':
			r.pos += 2
			continue
		case '"':
			r.pos++
			s, err := strconv.Unquote(r.input[start:r.pos])
			if err != nil {
				r.pos = start
				return "", r.errorf("malformed string literal: %v", err)
			}
			return s, nil
		}
		r.pos++
	}
	r.pos = start
	return "", r.errorf("unterminated string literal")
}

func parseNumber(word string) (any, bool) {
	switch word {
	case "NaN", "Inf", "+Inf", "-Inf":
		f, _ := strconv.ParseFloat(word, 64)
		return f, true
	}
	if word == "" {
		return nil, false
	}
	c := word[0]
	if !(c >= '0' && c <= '9') && c != '-' && c != '+' {
		return nil, false
	}
	if strings.ContainsAny(word, ".eE") {
		f, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	}
	if i, err := strconv.ParseInt(word, 10, 64); err == nil {
		return i, true
	}
	if b, ok := new(big.Int).SetString(word, 10); ok {
		return b, true
	}
	return nil, false
}
