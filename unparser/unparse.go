package unparser

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/unparser/ruby/ast"
)

type config struct {
	source []byte
	log    commonlog.Logger
}

// Option configures Unparse.
type Option func(*config)

// WithSource supplies the source text the tree and comments were parsed
// from. Without it comments are still conserved, but comments following a
// node are not attached to it since their adjacency cannot be checked.
func WithSource(source []byte) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithLogger replaces the package logger.
func WithLogger(log commonlog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Unparse reconstructs Ruby source from node and the comments that were
// found next to it. A nil node is the empty program.
//
// Every comment appears exactly once in the result, in its original order.
// Errors abort the whole call: either the complete text is returned or an
// *UnsupportedNodeError or *InternalError.
func Unparse(node *ast.Node, comments []ast.Comment, opts ...Option) (result string, err error) {
	cfg := config{log: commonlog.GetLogger("unparser")}
	for _, opt := range opts {
		opt(&cfg)
	}
	if node == nil {
		node = ast.New(ast.TypeEmpty)
	}

	p := &printer{
		buf:      NewBuffer(),
		comments: NewCommentEnumerator(comments, cfg.source),
		log:      cfg.log,
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			result, err = "", b.err
		}
	}()

	p.dispatch(node, "", true, false)
	for _, c := range p.comments.TakeAll() {
		p.buf.AppendSuffixLine(!c.Document(), commentText(c))
	}
	if depth := p.buf.Depth(); depth != 0 {
		p.fail(internalError(ErrIndentLeak, "depth %d left after the root node", depth))
	}
	return p.buf.Content(), nil
}
