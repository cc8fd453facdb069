package unparser

import (
	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitBegin, ast.TypeBegin)
	register((*printer).emitKwbegin, ast.TypeKwbegin)
	register((*printer).emitRescue, ast.TypeRescue)
	register((*printer).emitResbody, ast.TypeResbody)
	register((*printer).emitEnsure, ast.TypeEnsure)
}

// emitBegin writes an implicit statement sequence. In statement position
// the statements go one per line; elsewhere they are an explicitly
// parenthesized expression.
func (p *printer) emitBegin(f frame) {
	stmts := p.nodesFrom(f.node, 0)
	if f.stmt && f.parent != ast.TypeBegin {
		p.statements(stmts, f)
		return
	}
	p.write("(")
	for i, stmt := range stmts {
		if i > 0 {
			p.write("; ")
		}
		p.visit(stmt, f)
	}
	p.write(")")
}

func (p *printer) emitKwbegin(f frame) {
	p.write(kBegin)
	p.emitStatements(p.nodesFrom(f.node, 0), f)
	p.write(kEnd)
}

// emitRescue writes a rescue clause. Directly inside a construct that takes
// rescue clauses it continues that construct's layout; elsewhere a simple
// clause becomes a rescue modifier and anything else is wrapped in
// begin ... end.
func (p *printer) emitRescue(f frame) {
	if len(f.node.Children) < 2 {
		p.malformed(f.node, "rescue needs a body and an else branch")
	}
	switch {
	case bodyHolders[f.parent]:
		p.emitRescueClauses(f)
	case p.isRescueModifier(f.node):
		p.visit(p.nodeChild(f.node, 0), f)
		p.write(" ", kRescue, " ")
		p.visit(p.nodeChild(p.nodeChild(f.node, 1), 2), f)
	default:
		p.write(kBegin)
		p.emitRescueClauses(f)
		p.write(kEnd)
	}
}

func (p *printer) isRescueModifier(n *ast.Node) bool {
	if len(n.Children) != 3 || n.Child(0) == nil || n.Child(2) != nil {
		return false
	}
	resbody, ok := n.Child(1).(*ast.Node)
	if !ok || resbody == nil || resbody.Type != ast.TypeResbody {
		return false
	}
	return resbody.Child(0) == nil && resbody.Child(1) == nil && resbody.NodeAt(2) != nil
}

// emitRescueClauses expects the buffer right after a header line.
func (p *printer) emitRescueClauses(f frame) {
	n := f.node
	if body := p.optionalNode(n, 0); body != nil {
		p.indent()
		p.visitStmt(body, f)
		p.unindent()
	} else {
		p.nl()
	}
	last := len(n.Children) - 1
	for i := 1; i < last; i++ {
		p.visitStmt(p.nodeChild(n, i), f)
	}
	if els := p.optionalNode(n, last); els != nil {
		p.write(kElse)
		p.emitBody(els, f)
	}
}

func (p *printer) emitResbody(f frame) {
	n := f.node
	p.write(kRescue)
	if exceptions := p.optionalNode(n, 0); exceptions != nil {
		p.ws()
		if exceptions.Type == ast.TypeArray {
			p.delimited(p.nodesFrom(exceptions, 0), f)
		} else {
			p.visit(exceptions, f)
		}
	}
	if variable := p.optionalNode(n, 1); variable != nil {
		p.write(" => ")
		p.visit(variable, f)
	}
	p.emitBody(p.optionalNode(n, 2), f)
}

func (p *printer) emitEnsure(f frame) {
	if !bodyHolders[f.parent] {
		p.write(kBegin)
		p.emitEnsureClauses(f)
		p.write(kEnd)
		return
	}
	p.emitEnsureClauses(f)
}

func (p *printer) emitEnsureClauses(f frame) {
	body := p.optionalNode(f.node, 0)
	switch {
	case body == nil:
		p.nl()
	case body.Type == ast.TypeRescue:
		p.visitStmt(body, f)
	default:
		p.indent()
		p.visitStmt(body, f)
		p.unindent()
	}
	p.write(kEnsure)
	p.emitBody(p.optionalNode(f.node, 1), f)
}
