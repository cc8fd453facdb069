package unparser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitInt, ast.TypeInt)
	register((*printer).emitFloat, ast.TypeFloat)
	register((*printer).emitNumericSuffix, ast.TypeRational, ast.TypeComplex)
	register((*printer).emitStr, ast.TypeStr)
	register((*printer).emitSym, ast.TypeSym)
	register((*printer).emitArray, ast.TypeArray)
	register((*printer).emitHash, ast.TypeHash)
	register((*printer).emitPair, ast.TypePair)
	register((*printer).emitKwsplat, ast.TypeKwsplat)
	register((*printer).emitRange, ast.TypeIrange, ast.TypeErange)
	register((*printer).emitKeyword, ast.TypeTrue, ast.TypeFalse, ast.TypeNil, ast.TypeSelf)
	register((*printer).emitEmpty, ast.TypeEmpty)
	register((*printer).emitRegopt, ast.TypeRegopt)
}

func (p *printer) emitInt(f frame) {
	switch v := f.node.Child(0).(type) {
	case int64:
		p.write(strconv.FormatInt(v, 10))
	case int:
		p.write(strconv.Itoa(v))
	case *big.Int:
		if v == nil {
			p.malformed(f.node, "nil integer value")
		}
		p.write(v.String())
	default:
		p.malformed(f.node, "value must be an integer, got %T", v)
	}
}

func (p *printer) emitFloat(f frame) {
	v, ok := f.node.Child(0).(float64)
	if !ok {
		p.malformed(f.node, "value must be a float, got %T", f.node.Child(0))
	}
	p.write(floatLiteral(v))
}

// floatLiteral renders v so that Ruby reads it back as the same float.
// Non-finite values have no literal and are written as constant references.
func floatLiteral(v float64) string {
	switch {
	case math.IsNaN(v):
		return "Float::NAN"
	case math.IsInf(v, 1):
		return "Float::INFINITY"
	case math.IsInf(v, -1):
		return "-Float::INFINITY"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

// emitNumericSuffix writes rational (3r) and imaginary (2i) literals. The
// child is the numeric part, either as a number or as its literal text.
func (p *printer) emitNumericSuffix(f frame) {
	suffix := "r"
	if f.node.Type == ast.TypeComplex {
		suffix = "i"
	}
	var text string
	switch v := f.node.Child(0).(type) {
	case string:
		text = v
	case int64:
		text = strconv.FormatInt(v, 10)
	case int:
		text = strconv.Itoa(v)
	case *big.Int:
		text = v.String()
	case float64:
		text = floatLiteral(v)
	default:
		p.malformed(f.node, "value must be numeric, got %T", v)
	}
	if !strings.HasSuffix(text, suffix) {
		text += suffix
	}
	p.write(text)
}

func (p *printer) emitStr(f frame) {
	p.write(`"`, escapeString(p.stringChild(f.node, 0), '"'), `"`)
}

func (p *printer) emitSym(f frame) {
	sym := p.symbolChild(f.node, 0)
	if ast.IsPlainSymbol(sym) {
		p.write(":", string(sym))
		return
	}
	p.write(`:"`, escapeString(string(sym), '"'), `"`)
}

func (p *printer) emitArray(f frame) {
	p.write("[")
	p.delimited(p.nodesFrom(f.node, 0), f)
	p.write("]")
}

func (p *printer) emitHash(f frame) {
	pairs := p.nodesFrom(f.node, 0)
	if len(pairs) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	p.delimited(pairs, f)
	p.write(" }")
}

func (p *printer) emitPair(f frame) {
	p.visit(p.nodeChild(f.node, 0), f)
	p.write(" => ")
	p.visit(p.nodeChild(f.node, 1), f)
}

func (p *printer) emitKwsplat(f frame) {
	p.write("**")
	p.visitTerminated(p.nodeChild(f.node, 0), f)
}

func (p *printer) emitRange(f frame) {
	op := keywordOperators[f.node.Type]
	token := ".."
	if f.node.Type == ast.TypeErange {
		token = "..."
	}
	if left := p.optionalNode(f.node, 0); left != nil {
		p.visitOperand(left, op, false, f)
	}
	p.write(token)
	if right := p.optionalNode(f.node, 1); right != nil {
		p.visitOperand(right, op, true, f)
	}
}

func (p *printer) emitKeyword(f frame) {
	p.write(string(f.node.Type))
}

func (p *printer) emitEmpty(f frame) {}

func (p *printer) emitRegopt(f frame) {
	for i := range f.node.Children {
		p.write(string(p.symbolChild(f.node, i)))
	}
}
