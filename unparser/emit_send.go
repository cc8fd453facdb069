package unparser

import (
	"strings"

	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitSend, ast.TypeSend, ast.TypeCsend)
	register((*printer).emitSuper, ast.TypeSuper)
	register((*printer).emitZsuper, ast.TypeZsuper)
	register((*printer).emitYield, ast.TypeYield)
	register((*printer).emitDefined, ast.TypeDefined)
	register((*printer).emitLogical, ast.TypeAnd, ast.TypeOr)
}

type sendForm int

const (
	formRegular sendForm = iota
	formUnary
	formBinary
	formIndex
	formIndexAssign
	formAttrAssign
)

// classifySend picks the syntax a send node is written in. Malformed sends
// fall back to the regular form and are rejected when emitted.
func classifySend(n *ast.Node) sendForm {
	recv := n.NodeAt(0)
	name := n.SymbolAt(1)
	args := len(n.Children) - 2
	if recv == nil || args < 0 {
		if recv == nil && args == 1 && isAttributeName(name) {
			return formAttrAssign
		}
		return formRegular
	}
	if n.Type == ast.TypeCsend {
		if isAttributeName(name) && args <= 1 {
			return formAttrAssign
		}
		return formRegular
	}
	switch {
	case name == "[]":
		return formIndex
	case name == "[]=":
		return formIndexAssign
	case args == 0 && unaryOperators[name] != "":
		return formUnary
	case args == 1 && binaryOperators[name].prec > 0 && plainArgument(n.Child(2)):
		return formBinary
	case args <= 1 && isAttributeName(name):
		return formAttrAssign
	}
	return formRegular
}

// isAttributeName reports whether name is a setter such as foo=.
func isAttributeName(name ast.Symbol) bool {
	s := string(name)
	if len(s) < 2 || !strings.HasSuffix(s, "=") {
		return false
	}
	if _, op := binaryOperators[name]; op || name == "[]=" {
		return false
	}
	return ast.IsPlainSymbol(name)
}

func plainArgument(v any) bool {
	n, ok := v.(*ast.Node)
	if !ok || n == nil {
		return false
	}
	return n.Type != ast.TypeSplat && n.Type != ast.TypeBlockPass
}

func sendTerminated(n *ast.Node) bool {
	switch classifySend(n) {
	case formRegular, formIndex, formUnary:
		return true
	}
	return false
}

// precedence returns the binding strength of operator expressions.
func precedence(n *ast.Node) (int, bool) {
	if op, ok := keywordOperators[n.Type]; ok {
		return op.prec, true
	}
	if n.Type != ast.TypeSend {
		return 0, false
	}
	name, _ := n.Child(1).(ast.Symbol)
	switch classifySend(n) {
	case formBinary:
		return binaryOperators[name].prec, true
	case formUnary:
		return unaryPrecedence[name], true
	}
	return 0, false
}

func isNumericLiteral(n *ast.Node) bool {
	switch n.Type {
	case ast.TypeInt, ast.TypeFloat, ast.TypeRational, ast.TypeComplex:
		return true
	}
	return false
}

func isNegativeLiteral(n *ast.Node) bool {
	if !isNumericLiteral(n) {
		return false
	}
	switch v := n.Child(0).(type) {
	case int64:
		return v < 0
	case int:
		return v < 0
	case float64:
		return v < 0
	case string:
		return strings.HasPrefix(v, "-")
	case interface{ Sign() int }:
		return v.Sign() < 0
	}
	return false
}

// operandNeedsParens decides whether an operand of op must be wrapped.
// Operators bind their operands when those bind tighter, or equally tight
// on the side the operator associates to. Other expressions need
// parentheses unless they are terminated.
func operandNeedsParens(child *ast.Node, op operator, right bool) bool {
	if !right && op.prec == precPower && isNegativeLiteral(child) {
		return true
	}
	if cp, ok := precedence(child); ok {
		switch {
		case cp > op.prec:
			return false
		case cp == op.prec:
			return !(op.assoc == assocLeft && !right || op.assoc == assocRight && right)
		}
		return true
	}
	return !terminated(child)
}

func (p *printer) visitOperand(child *ast.Node, op operator, right bool, f frame) {
	if operandNeedsParens(child, op, right) {
		p.visitParens(child, f)
		return
	}
	p.visit(child, f)
}

// visitReceiver writes the receiver of a method call. Unary expressions are
// wrapped as well: -a.b reads as -(a.b).
func (p *printer) visitReceiver(recv *ast.Node, f frame) {
	if !terminated(recv) || recv.Type == ast.TypeSend && classifySend(recv) == formUnary {
		p.visitParens(recv, f)
		return
	}
	p.visit(recv, f)
}

func (p *printer) emitSend(f frame) {
	n := f.node
	switch classifySend(n) {
	case formUnary:
		p.emitUnary(f)
	case formBinary:
		p.emitBinary(f)
	case formIndex:
		p.emitIndex(f, false)
	case formIndexAssign:
		p.emitIndex(f, f.parent != ast.TypeMlhs)
	case formAttrAssign:
		p.emitAttrAssign(f)
	default:
		p.emitRegularSend(f)
	}
}

func (p *printer) dot(n *ast.Node) string {
	if n.Type == ast.TypeCsend {
		return "&."
	}
	return "."
}

func (p *printer) emitUnary(f frame) {
	recv := p.nodeChild(f.node, 0)
	name := p.symbolChild(f.node, 1)
	p.write(unaryOperators[name])
	needsParens := !terminated(recv)
	if cp, ok := precedence(recv); ok {
		needsParens = cp < unaryPrecedence[name]
	}
	if (name == "-@" || name == "+@") && isNumericLiteral(recv) {
		needsParens = true
	}
	if needsParens {
		p.visitParens(recv, f)
		return
	}
	p.visit(recv, f)
}

func (p *printer) emitBinary(f frame) {
	name := p.symbolChild(f.node, 1)
	op := binaryOperators[name]
	p.visitOperand(p.nodeChild(f.node, 0), op, false, f)
	p.write(" ", string(name), " ")
	p.visitOperand(p.nodeChild(f.node, 2), op, true, f)
}

func (p *printer) emitIndex(f frame, assign bool) {
	p.visitReceiver(p.nodeChild(f.node, 0), f)
	args := p.nodesFrom(f.node, 2)
	var value *ast.Node
	if assign {
		if len(args) == 0 {
			p.malformed(f.node, "index assignment without a value")
		}
		value = args[len(args)-1]
		args = args[:len(args)-1]
	}
	p.write("[")
	p.delimited(args, f)
	p.write("]")
	if value != nil {
		p.write(" = ")
		p.visit(value, f)
	}
}

func (p *printer) emitAttrAssign(f frame) {
	if recv := p.optionalNode(f.node, 0); recv != nil {
		p.visitReceiver(recv, f)
	} else {
		p.write("self")
	}
	name := string(p.symbolChild(f.node, 1))
	p.write(p.dot(f.node), strings.TrimSuffix(name, "="))
	if value := p.optionalNode(f.node, 2); value != nil {
		p.write(" = ")
		p.visit(value, f)
	}
}

func (p *printer) emitRegularSend(f frame) {
	recv := p.optionalNode(f.node, 0)
	name := string(p.symbolChild(f.node, 1))
	if recv != nil {
		p.visitReceiver(recv, f)
		p.write(p.dot(f.node))
	}
	p.write(name)
	args := p.nodesFrom(f.node, 2)
	if len(args) == 0 {
		if recv == nil && startsUpper(name) {
			p.write("()")
		}
		return
	}
	p.emitArguments(args, f)
}

func startsUpper(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

func (p *printer) emitArguments(args []*ast.Node, f frame) {
	p.write("(")
	p.delimited(args, f)
	p.write(")")
}

func (p *printer) emitSuper(f frame) {
	p.write(kSuper)
	p.emitArguments(p.nodesFrom(f.node, 0), f)
}

func (p *printer) emitZsuper(f frame) {
	p.write(kSuper)
}

func (p *printer) emitYield(f frame) {
	p.write(kYield)
	if args := p.nodesFrom(f.node, 0); len(args) > 0 {
		p.emitArguments(args, f)
	}
}

func (p *printer) emitDefined(f frame) {
	p.write(kDefined)
	p.visitParens(p.nodeChild(f.node, 0), f)
}

func (p *printer) emitLogical(f frame) {
	op := keywordOperators[f.node.Type]
	token := kAnd
	if f.node.Type == ast.TypeOr {
		token = kOr
	}
	p.visitOperand(p.nodeChild(f.node, 0), op, false, f)
	p.write(" ", token, " ")
	p.visitOperand(p.nodeChild(f.node, 1), op, true, f)
}
