package unparser

import (
	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitDef, ast.TypeDef)
	register((*printer).emitDefs, ast.TypeDefs)
	register((*printer).emitClass, ast.TypeClass)
	register((*printer).emitSclass, ast.TypeSclass)
	register((*printer).emitModule, ast.TypeModule)
	register((*printer).emitAlias, ast.TypeAlias)
	register((*printer).emitUndef, ast.TypeUndef)
	register((*printer).emitHook, ast.TypePreexe, ast.TypePostexe)

	register((*printer).emitArgs, ast.TypeArgs)
	register((*printer).emitArgName, ast.TypeArg, ast.TypeShadowarg)
	register((*printer).emitPrefixedArg, ast.TypeRestarg, ast.TypeBlockarg, ast.TypeKwrestarg)
	register((*printer).emitOptarg, ast.TypeOptarg)
	register((*printer).emitKwarg, ast.TypeKwarg)
	register((*printer).emitKwoptarg, ast.TypeKwoptarg)
}

// emitParameters writes a method's parameter list. Methods without
// parameters get no parentheses.
func (p *printer) emitParameters(args *ast.Node, f frame) {
	if args == nil || len(args.Children) == 0 {
		return
	}
	p.write("(")
	p.visit(args, f)
	p.write(")")
}

func (p *printer) emitDef(f frame) {
	p.write(kDef, " ", string(p.symbolChild(f.node, 0)))
	p.emitParameters(p.optionalNode(f.node, 1), f)
	p.emitBody(p.optionalNode(f.node, 2), f)
	p.write(kEnd)
}

func (p *printer) emitDefs(f frame) {
	p.write(kDef, " ")
	singleton := p.nodeChild(f.node, 0)
	switch singleton.Type {
	case ast.TypeSelf, ast.TypeLvar, ast.TypeIvar, ast.TypeGvar, ast.TypeCvar, ast.TypeConst:
		p.visit(singleton, f)
	default:
		p.visitParens(singleton, f)
	}
	p.write(".", string(p.symbolChild(f.node, 1)))
	p.emitParameters(p.optionalNode(f.node, 2), f)
	p.emitBody(p.optionalNode(f.node, 3), f)
	p.write(kEnd)
}

func (p *printer) emitClass(f frame) {
	p.write(kClass, " ")
	p.visit(p.nodeChild(f.node, 0), f)
	if superclass := p.optionalNode(f.node, 1); superclass != nil {
		p.write(" < ")
		p.visitTerminated(superclass, f)
	}
	p.emitBody(p.optionalNode(f.node, 2), f)
	p.write(kEnd)
}

func (p *printer) emitSclass(f frame) {
	p.write(kClass, " << ")
	p.visitTerminated(p.nodeChild(f.node, 0), f)
	p.emitBody(p.optionalNode(f.node, 1), f)
	p.write(kEnd)
}

func (p *printer) emitModule(f frame) {
	p.write(kModule, " ")
	p.visit(p.nodeChild(f.node, 0), f)
	p.emitBody(p.optionalNode(f.node, 1), f)
	p.write(kEnd)
}

func (p *printer) emitAlias(f frame) {
	p.write(kAlias, " ")
	p.visit(p.nodeChild(f.node, 0), f)
	p.ws()
	p.visit(p.nodeChild(f.node, 1), f)
}

func (p *printer) emitUndef(f frame) {
	p.write(kUndef, " ")
	p.delimited(p.nodesFrom(f.node, 0), f)
}

// emitHook writes BEGIN { ... } and END { ... }.
func (p *printer) emitHook(f frame) {
	keyword := kPreexe
	if f.node.Type == ast.TypePostexe {
		keyword = kPostexe
	}
	p.write(keyword, " {")
	p.emitBody(p.optionalNode(f.node, 0), f)
	p.write("}")
}

// emitArgs writes a parameter list without its delimiters. Block-local
// variables follow the parameters after a semicolon.
func (p *printer) emitArgs(f frame) {
	var params, locals []*ast.Node
	for _, arg := range p.nodesFrom(f.node, 0) {
		if arg.Type == ast.TypeShadowarg {
			locals = append(locals, arg)
		} else {
			params = append(params, arg)
		}
	}
	p.delimited(params, f)
	if len(locals) > 0 {
		p.write("; ")
		p.delimited(locals, f)
	}
}

func (p *printer) emitArgName(f frame) {
	p.write(string(p.symbolChild(f.node, 0)))
}

var argPrefixes = map[ast.Type]string{
	ast.TypeRestarg:   "*",
	ast.TypeBlockarg:  "&",
	ast.TypeKwrestarg: "**",
}

// emitPrefixedArg writes *rest, &block and **opts. The name may be absent.
func (p *printer) emitPrefixedArg(f frame) {
	p.write(argPrefixes[f.node.Type])
	if name, ok := p.optionalSymbol(f.node, 0); ok {
		p.write(string(name))
	}
}

func (p *printer) emitOptarg(f frame) {
	p.write(string(p.symbolChild(f.node, 0)), " = ")
	p.visit(p.nodeChild(f.node, 1), f)
}

func (p *printer) emitKwarg(f frame) {
	p.write(string(p.symbolChild(f.node, 0)), ":")
}

func (p *printer) emitKwoptarg(f frame) {
	p.write(string(p.symbolChild(f.node, 0)), ": ")
	p.visit(p.nodeChild(f.node, 1), f)
}
