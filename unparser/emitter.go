package unparser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/unparser/ruby/ast"
)

// printer holds the state of one Unparse call.
type printer struct {
	buf      *Buffer
	comments *CommentEnumerator
	log      commonlog.Logger
}

// frame is the context a node is emitted in. It replaces a back-reference
// to the parent emitter: handlers only ever need the parent's type and
// whether the node stands in statement position.
type frame struct {
	node   *ast.Node
	parent ast.Type
	stmt   bool
	// elsif marks an if node rendered as the elsif branch of its parent.
	elsif bool
}

type handler func(p *printer, f frame)

var registry = map[ast.Type]handler{}

func register(h handler, types ...ast.Type) {
	for _, typ := range types {
		if _, dup := registry[typ]; dup {
			panic(fmt.Sprintf("unparser: duplicate emitter for %q", typ))
		}
		registry[typ] = h
	}
}

// Termination classifies whether a node type is emitted as a terminated
// expression.
type Termination int

const (
	NotTerminated Termination = iota
	Terminated
	// DependsOnForm is reported for send and csend: calls and index reads
	// are terminated, binary operators and attribute assignments are not.
	DependsOnForm
)

func (t Termination) String() string {
	switch t {
	case Terminated:
		return "terminated"
	case DependsOnForm:
		return "depends on form"
	}
	return "not terminated"
}

// EmitterInfo describes one registered emitter.
type EmitterInfo struct {
	Type       ast.Type
	Terminated Termination
}

// Emitters lists the registered node types sorted by name.
func Emitters() []EmitterInfo {
	infos := make([]EmitterInfo, 0, len(registry))
	for typ := range registry {
		term := NotTerminated
		switch {
		case conditionallyTerminated[typ]:
			term = DependsOnForm
		case terminatedTypes[typ]:
			term = Terminated
		}
		infos = append(infos, EmitterInfo{Type: typ, Terminated: term})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Type < infos[j].Type
	})
	return infos
}

// terminated reports whether n is emitted as an unambiguous expression.
func terminated(n *ast.Node) bool {
	if conditionallyTerminated[n.Type] {
		return sendTerminated(n)
	}
	return terminatedTypes[n.Type]
}

func (p *printer) fail(err error) {
	panic(bailout{err: err})
}

func (p *printer) malformed(n *ast.Node, format string, args ...any) {
	p.fail(internalError(ErrMalformedNode, "%s: %s", n.Type, fmt.Sprintf(format, args...)))
}

func (p *printer) dispatch(n *ast.Node, parent ast.Type, stmt, elsif bool) {
	if n == nil {
		p.fail(internalError(ErrMalformedNode, "missing child node of %s", parent))
	}
	h, ok := registry[n.Type]
	if !ok {
		p.log.Errorf("no emitter for %q below %q", n.Type, parent)
		p.fail(&UnsupportedNodeError{Type: n.Type})
	}
	f := frame{node: n, parent: parent, stmt: stmt, elsif: elsif}
	p.withComments(n, func() {
		h(p, f)
	})
}

// withComments runs emit between the comment passes of a located node:
// comments ending before the node are written in front of it when the
// buffer sits at a fresh line, comments on the node's last line are
// appended to that line and comments that directly follow become standalone
// lines after it.
func (p *printer) withComments(n *ast.Node, emit func()) {
	loc := n.Location
	if loc == nil {
		emit()
		return
	}

	if p.buf.FreshLine() {
		for _, c := range p.comments.TakeBefore(loc.Begin) {
			p.log.Debugf("comment %s leads %s@%s", c.Location, n.Type, loc)
			p.writeLeading(c)
		}
	}

	emit()

	last := loc.End
	if loc.LastLine > 0 {
		for _, c := range p.comments.TakeEndOfLine(loc.LastLine) {
			p.log.Debugf("comment %s trails line %d", c.Location, loc.LastLine)
			p.writeEndOfLine(c)
			if c.Location.End > last {
				last = c.Location.End
			}
		}
	}
	for _, c := range p.comments.TakeAllContiguousAfter(last) {
		p.log.Debugf("comment %s follows %s@%s", c.Location, n.Type, loc)
		p.buf.AppendSuffixLine(!c.Document(), commentText(c))
	}
}

func commentText(c ast.Comment) string {
	return strings.TrimRight(c.Text, "\r\n")
}

func (p *printer) writeLeading(c ast.Comment) {
	if c.Document() {
		p.buf.AppendWithoutPrefix(commentText(c))
	} else {
		p.buf.Append(commentText(c))
	}
	p.buf.Newline()
}

func (p *printer) writeEndOfLine(c ast.Comment) {
	if p.buf.FreshLine() {
		p.buf.Append(commentText(c))
		p.buf.Newline()
		return
	}
	p.buf.AppendToEndOfLine(" " + commentText(c))
}

func (p *printer) write(texts ...string) {
	for _, text := range texts {
		p.buf.Append(text)
	}
}

func (p *printer) ws() {
	p.write(" ")
}

func (p *printer) nl() {
	p.buf.Newline()
}

func (p *printer) indent() {
	p.buf.Indent()
}

func (p *printer) unindent() {
	if err := p.buf.Unindent(); err != nil {
		p.fail(err)
	}
}

// visit emits n in expression position below f.
func (p *printer) visit(n *ast.Node, f frame) {
	p.dispatch(n, f.node.Type, false, false)
}

// visitStmt emits n in statement position below f.
func (p *printer) visitStmt(n *ast.Node, f frame) {
	p.dispatch(n, f.node.Type, true, false)
}

// visitTerminated emits n, wrapped in parentheses unless it is terminated.
func (p *printer) visitTerminated(n *ast.Node, f frame) {
	if n != nil && !terminated(n) {
		p.visitParens(n, f)
		return
	}
	p.visit(n, f)
}

func (p *printer) visitParens(n *ast.Node, f frame) {
	p.write("(")
	p.visit(n, f)
	p.write(")")
}

func (p *printer) delimited(nodes []*ast.Node, f frame) {
	for i, n := range nodes {
		if i > 0 {
			p.write(delimiter)
		}
		p.visit(n, f)
	}
}

// emitBody writes the body of a block construct whose header has just been
// written. Comments left on the header line stay on it. The body starts on
// a new line one level deeper, unless it is a rescue or ensure clause,
// which lay out their own parts starting from the header line. The buffer
// is left on a fresh line at the header's depth.
func (p *printer) emitBody(body *ast.Node, f frame) {
	p.headerComments(f)
	switch {
	case body == nil:
		p.nl()
	case noIndent[body.Type]:
		p.visitStmt(body, f)
	default:
		p.indent()
		p.visitStmt(body, f)
		p.unindent()
	}
}

// emitStatements is emitBody for a construct holding a statement list.
func (p *printer) emitStatements(stmts []*ast.Node, f frame) {
	if len(stmts) <= 1 {
		var body *ast.Node
		if len(stmts) == 1 {
			body = stmts[0]
		}
		p.emitBody(body, f)
		return
	}
	p.headerComments(f)
	p.indent()
	p.statements(stmts, f)
	p.unindent()
}

// statements writes stmts one per line.
func (p *printer) statements(stmts []*ast.Node, f frame) {
	for i, stmt := range stmts {
		if i > 0 {
			p.nl()
		}
		p.visitStmt(stmt, f)
	}
}

func (p *printer) headerComments(f frame) {
	loc := f.node.Location
	if loc == nil || loc.Line == 0 {
		return
	}
	for _, c := range p.comments.TakeEndOfLine(loc.Line) {
		p.log.Debugf("comment %s stays on the %s header", c.Location, f.node.Type)
		p.buf.AppendToEndOfLine(" " + commentText(c))
	}
}

// Child accessors. They fail the unparse call when the child has the wrong
// shape.

func (p *printer) nodeChild(n *ast.Node, i int) *ast.Node {
	switch v := n.Child(i).(type) {
	case *ast.Node:
		if v != nil {
			return v
		}
	}
	p.malformed(n, "child %d must be a node, got %T", i, n.Child(i))
	return nil
}

func (p *printer) optionalNode(n *ast.Node, i int) *ast.Node {
	switch v := n.Child(i).(type) {
	case nil:
		return nil
	case *ast.Node:
		return v
	}
	p.malformed(n, "child %d must be a node or nil, got %T", i, n.Child(i))
	return nil
}

func (p *printer) symbolChild(n *ast.Node, i int) ast.Symbol {
	sym, ok := n.Child(i).(ast.Symbol)
	if !ok {
		p.malformed(n, "child %d must be a symbol, got %T", i, n.Child(i))
	}
	return sym
}

func (p *printer) optionalSymbol(n *ast.Node, i int) (ast.Symbol, bool) {
	switch v := n.Child(i).(type) {
	case nil:
		return "", false
	case ast.Symbol:
		return v, true
	}
	p.malformed(n, "child %d must be a symbol or nil, got %T", i, n.Child(i))
	return "", false
}

func (p *printer) stringChild(n *ast.Node, i int) string {
	s, ok := n.Child(i).(string)
	if !ok {
		p.malformed(n, "child %d must be a string, got %T", i, n.Child(i))
	}
	return s
}

// nodesFrom returns the children from index i on, all of which must be
// nodes.
func (p *printer) nodesFrom(n *ast.Node, i int) []*ast.Node {
	var nodes []*ast.Node
	for j := i; j < len(n.Children); j++ {
		nodes = append(nodes, p.nodeChild(n, j))
	}
	return nodes
}
