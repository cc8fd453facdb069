package unparser

import (
	"fmt"

	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitVariable, ast.TypeLvar, ast.TypeIvar, ast.TypeGvar, ast.TypeCvar, ast.TypeBackRef)
	register((*printer).emitConst, ast.TypeConst)
	register((*printer).emitCbase, ast.TypeCbase)
	register((*printer).emitNthRef, ast.TypeNthRef)
}

func (p *printer) emitVariable(f frame) {
	p.write(string(p.symbolChild(f.node, 0)))
}

// emitScope writes the scope part of a constant path, including the
// separator.
func (p *printer) emitScope(scope *ast.Node, f frame) {
	if scope == nil {
		return
	}
	if scope.Type == ast.TypeCbase {
		p.visit(scope, f)
		return
	}
	p.visitTerminated(scope, f)
	p.write("::")
}

func (p *printer) emitConst(f frame) {
	p.emitScope(p.optionalNode(f.node, 0), f)
	p.write(string(p.symbolChild(f.node, 1)))
}

func (p *printer) emitCbase(f frame) {
	p.write("::")
}

func (p *printer) emitNthRef(f frame) {
	switch v := f.node.Child(0).(type) {
	case int64, int:
		p.write(fmt.Sprintf("$%d", v))
	default:
		p.malformed(f.node, "reference must be an integer, got %T", v)
	}
}
