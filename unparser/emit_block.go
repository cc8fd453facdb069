package unparser

import (
	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitBlock, ast.TypeBlock)
}

// emitBlock writes a call with a do ... end block. Block parameters, when
// present, go between pipes on the header line.
func (p *printer) emitBlock(f frame) {
	p.visit(p.nodeChild(f.node, 0), f)
	p.write(" ", kDo)
	if args := p.optionalNode(f.node, 1); args != nil && len(args.Children) > 0 {
		p.write(" |")
		p.visit(args, f)
		p.write("|")
	}
	p.emitBody(p.optionalNode(f.node, 2), f)
	p.write(kEnd)
}
