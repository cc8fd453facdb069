package unparser

import (
	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitVariableAssign, ast.TypeLvasgn, ast.TypeIvasgn, ast.TypeGvasgn, ast.TypeCvasgn)
	register((*printer).emitConstAssign, ast.TypeCasgn)
	register((*printer).emitMultipleAssign, ast.TypeMasgn)
	register((*printer).emitMlhs, ast.TypeMlhs)
	register((*printer).emitOpAssign, ast.TypeOpAsgn)
	register((*printer).emitLogicalAssign, ast.TypeOrAsgn, ast.TypeAndAsgn)
	register((*printer).emitSplat, ast.TypeSplat)
	register((*printer).emitBlockPass, ast.TypeBlockPass)
}

var variableAssignments = map[ast.Type]bool{
	ast.TypeLvasgn: true,
	ast.TypeIvasgn: true,
	ast.TypeGvasgn: true,
	ast.TypeCvasgn: true,
	ast.TypeCasgn:  true,
}

// emitAssignedValue writes " = value". Assignments inside a multiple
// assignment, a for loop or a rescue clause carry no value.
func (p *printer) emitAssignedValue(value *ast.Node, f frame) {
	if value == nil {
		return
	}
	p.write(" = ")
	p.visit(value, f)
}

func (p *printer) emitVariableAssign(f frame) {
	p.write(string(p.symbolChild(f.node, 0)))
	p.emitAssignedValue(p.optionalNode(f.node, 1), f)
}

func (p *printer) emitConstAssign(f frame) {
	p.emitScope(p.optionalNode(f.node, 0), f)
	p.write(string(p.symbolChild(f.node, 1)))
	p.emitAssignedValue(p.optionalNode(f.node, 2), f)
}

func (p *printer) emitMultipleAssign(f frame) {
	p.visit(p.nodeChild(f.node, 0), f)
	p.write(" = ")
	rhs := p.nodeChild(f.node, 1)
	if rhs.Type == ast.TypeArray {
		elems := p.nodesFrom(rhs, 0)
		if len(elems) > 1 || len(elems) == 1 && elems[0].Type == ast.TypeSplat {
			p.delimited(elems, frame{node: rhs, parent: f.node.Type})
			return
		}
	}
	p.visit(rhs, f)
}

// emitMlhs writes the target list of a multiple assignment. Nested lists
// are parenthesized; a top-level list with a single plain target gets a
// trailing comma so it still reads as a multiple assignment.
func (p *printer) emitMlhs(f frame) {
	targets := p.nodesFrom(f.node, 0)
	switch f.parent {
	case ast.TypeMasgn, ast.TypeFor:
		p.delimited(targets, f)
		if len(targets) == 1 && targets[0].Type != ast.TypeSplat {
			p.write(",")
		}
	default:
		p.write("(")
		p.delimited(targets, f)
		p.write(")")
	}
}

func (p *printer) emitOpAssign(f frame) {
	p.visit(p.nodeChild(f.node, 0), f)
	op := p.symbolChild(f.node, 1)
	p.write(" ", string(op), "= ")
	p.visit(p.nodeChild(f.node, 2), f)
}

func (p *printer) emitLogicalAssign(f frame) {
	p.visit(p.nodeChild(f.node, 0), f)
	p.write(" ", assignmentOperators[f.node.Type], " ")
	p.visit(p.nodeChild(f.node, 1), f)
}

func (p *printer) emitSplat(f frame) {
	p.write("*")
	target := p.optionalNode(f.node, 0)
	switch {
	case target == nil:
	case variableAssignments[target.Type]:
		p.visit(target, f)
	default:
		p.visitTerminated(target, f)
	}
}

func (p *printer) emitBlockPass(f frame) {
	p.write("&")
	if target := p.optionalNode(f.node, 0); target != nil {
		p.visitTerminated(target, f)
	}
}
