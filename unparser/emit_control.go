package unparser

import (
	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitIf, ast.TypeIf)
	register((*printer).emitCase, ast.TypeCase)
	register((*printer).emitWhen, ast.TypeWhen)
	register((*printer).emitLoop, ast.TypeWhile, ast.TypeUntil)
	register((*printer).emitPostLoop, ast.TypeWhilePost, ast.TypeUntilPost)
	register((*printer).emitFor, ast.TypeFor)
	register((*printer).emitJump, ast.TypeBreak, ast.TypeNext, ast.TypeReturn)
	register((*printer).emitBareKeyword, ast.TypeRedo, ast.TypeRetry)
	register((*printer).emitFlipflop, ast.TypeIflipflop, ast.TypeEflipflop)
	register((*printer).emitMatchCurrentLine, ast.TypeMatchCurrentLine)
	register((*printer).emitMatchWithLvasgn, ast.TypeMatchWithLvasgn)
}

// multiLineTypes are never written as the body of a modifier if.
var multiLineTypes = map[ast.Type]bool{
	ast.TypeBegin:     true,
	ast.TypeKwbegin:   true,
	ast.TypeIf:        true,
	ast.TypeCase:      true,
	ast.TypeWhile:     true,
	ast.TypeUntil:     true,
	ast.TypeWhilePost: true,
	ast.TypeUntilPost: true,
	ast.TypeFor:       true,
	ast.TypeDef:       true,
	ast.TypeDefs:      true,
	ast.TypeClass:     true,
	ast.TypeSclass:    true,
	ast.TypeModule:    true,
	ast.TypeBlock:     true,
	ast.TypeRescue:    true,
	ast.TypeEnsure:    true,
	ast.TypePreexe:    true,
	ast.TypePostexe:   true,
	ast.TypeMasgn:     true,
}

// multiLine reports whether n spans lines when written, looking through
// assignments to the value they assign.
func multiLine(n *ast.Node) bool {
	for n != nil {
		if multiLineTypes[n.Type] {
			return true
		}
		switch {
		case variableAssignments[n.Type],
			n.Type == ast.TypeOpAsgn, n.Type == ast.TypeOrAsgn, n.Type == ast.TypeAndAsgn:
			n = n.NodeAt(len(n.Children) - 1)
		default:
			return false
		}
	}
	return false
}

// useModifier reports whether an if statement is written in modifier form
// (body if cond). That needs a single simple branch, and a source location,
// when known, that fits on one line.
func useModifier(f frame, body, other *ast.Node) bool {
	if !f.stmt || f.elsif || body == nil || other != nil {
		return false
	}
	if multiLine(body) {
		return false
	}
	if loc := f.node.Location; loc != nil && loc.Line > 0 && loc.Line != loc.LastLine {
		return false
	}
	return true
}

func (p *printer) emitIf(f frame) {
	n := f.node
	cond := p.nodeChild(n, 0)
	then := p.optionalNode(n, 1)
	els := p.optionalNode(n, 2)

	keyword := kIf
	switch {
	case f.elsif:
		keyword = kElsif
	case then == nil && els != nil:
		keyword = kUnless
		then, els = els, nil
	}

	if useModifier(f, then, els) {
		p.visit(then, f)
		p.write(" ", keyword, " ")
		p.visit(cond, f)
		return
	}

	p.write(keyword, " ")
	p.visit(cond, f)
	p.emitBody(then, f)
	switch {
	case els == nil:
	case els.Type == ast.TypeIf:
		p.dispatch(els, n.Type, true, true)
	default:
		p.write(kElse)
		p.emitBody(els, f)
	}
	if !f.elsif {
		p.write(kEnd)
	}
}

func (p *printer) emitCase(f frame) {
	p.write(kCase)
	if subject := p.optionalNode(f.node, 0); subject != nil {
		p.ws()
		p.visit(subject, f)
	}
	p.nl()
	for i := 1; i < len(f.node.Children); i++ {
		branch := p.optionalNode(f.node, i)
		switch {
		case branch == nil:
		case branch.Type == ast.TypeWhen:
			p.visitStmt(branch, f)
		default:
			p.write(kElse)
			p.emitBody(branch, f)
		}
	}
	p.write(kEnd)
}

func (p *printer) emitWhen(f frame) {
	n := f.node
	if len(n.Children) < 2 {
		p.malformed(n, "when needs at least one condition and a body")
	}
	last := len(n.Children) - 1
	p.write(kWhen, " ")
	for i := 0; i < last; i++ {
		if i > 0 {
			p.write(delimiter)
		}
		p.visit(p.nodeChild(n, i), f)
	}
	p.emitBody(p.optionalNode(n, last), f)
}

func loopKeyword(typ ast.Type) string {
	switch typ {
	case ast.TypeUntil, ast.TypeUntilPost:
		return kUntil
	}
	return kWhile
}

func (p *printer) emitLoop(f frame) {
	p.write(loopKeyword(f.node.Type), " ")
	p.visit(p.nodeChild(f.node, 0), f)
	p.emitBody(p.optionalNode(f.node, 1), f)
	p.write(kEnd)
}

// emitPostLoop writes begin ... end while cond, the loop whose body runs
// before the first test.
func (p *printer) emitPostLoop(f frame) {
	p.visit(p.nodeChild(f.node, 1), f)
	p.write(" ", loopKeyword(f.node.Type), " ")
	p.visit(p.nodeChild(f.node, 0), f)
}

func (p *printer) emitFor(f frame) {
	p.write(kFor, " ")
	p.visit(p.nodeChild(f.node, 0), f)
	p.write(" ", kIn, " ")
	p.visit(p.nodeChild(f.node, 1), f)
	p.emitBody(p.optionalNode(f.node, 2), f)
	p.write(kEnd)
}

var jumpKeywords = map[ast.Type]string{
	ast.TypeBreak:  kBreak,
	ast.TypeNext:   kNext,
	ast.TypeReturn: kReturn,
}

// emitJump writes break, next and return. A single value is parenthesized;
// several values are written as a plain list since the keyword cannot take
// a parenthesized one.
func (p *printer) emitJump(f frame) {
	p.write(jumpKeywords[f.node.Type])
	args := p.nodesFrom(f.node, 0)
	switch len(args) {
	case 0:
	case 1:
		p.visitParens(args[0], f)
	default:
		p.ws()
		p.delimited(args, f)
	}
}

var bareKeywords = map[ast.Type]string{
	ast.TypeRedo:  kRedo,
	ast.TypeRetry: kRetry,
}

func (p *printer) emitBareKeyword(f frame) {
	p.write(bareKeywords[f.node.Type])
}

func (p *printer) emitFlipflop(f frame) {
	token := ".."
	if f.node.Type == ast.TypeEflipflop {
		token = "..."
	}
	if left := p.optionalNode(f.node, 0); left != nil {
		p.visitTerminated(left, f)
	}
	p.write(token)
	if right := p.optionalNode(f.node, 1); right != nil {
		p.visitTerminated(right, f)
	}
}

func (p *printer) emitMatchCurrentLine(f frame) {
	p.visit(p.nodeChild(f.node, 0), f)
}

func (p *printer) emitMatchWithLvasgn(f frame) {
	p.visit(p.nodeChild(f.node, 0), f)
	p.write(" =~ ")
	p.visitOperand(p.nodeChild(f.node, 1), binaryOperators["=~"], true, f)
}
