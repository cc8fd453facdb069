package unparser

import (
	"strings"

	"github.com/dhamidi/unparser/ruby/ast"
)

func init() {
	register((*printer).emitDstr, ast.TypeDstr)
	register((*printer).emitDsym, ast.TypeDsym)
	register((*printer).emitXstr, ast.TypeXstr)
	register((*printer).emitRegexp, ast.TypeRegexp)
}

func quotedSegment(s string) string {
	return escapeString(s, '"')
}

func backtickSegment(s string) string {
	return Transquote(escapeString(s, '"'), `"`, "`")
}

func regexpSegment(s string) string {
	return escapeInterpolation(Transquote(s, "/", "/"))
}

func (p *printer) emitDstr(f frame) {
	p.write(`"`)
	p.emitDynamicBody(p.nodesFrom(f.node, 0), f, quotedSegment)
	p.write(`"`)
}

func (p *printer) emitDsym(f frame) {
	p.write(`:"`)
	p.emitDynamicBody(p.nodesFrom(f.node, 0), f, quotedSegment)
	p.write(`"`)
}

func (p *printer) emitXstr(f frame) {
	p.write("`")
	p.emitDynamicBody(p.nodesFrom(f.node, 0), f, backtickSegment)
	p.write("`")
}

func (p *printer) emitRegexp(f frame) {
	parts := p.nodesFrom(f.node, 0)
	var opts *ast.Node
	if n := len(parts); n > 0 && parts[n-1].Type == ast.TypeRegopt {
		opts = parts[n-1]
		parts = parts[:n-1]
	}
	p.write("/")
	p.emitDynamicBody(parts, f, regexpSegment)
	p.write("/")
	if opts != nil {
		p.visit(opts, f)
	}
}

// emitDynamicBody writes the inside of an interpolating literal. Static
// segments go through segment; everything else is interpolated.
func (p *printer) emitDynamicBody(parts []*ast.Node, f frame, segment func(string) string) {
	parts = p.mergeStatic(parts)
	for i, part := range parts {
		switch part.Type {
		case ast.TypeStr:
			p.write(segment(p.stringChild(part, 0)))
		case ast.TypeIvar, ast.TypeGvar, ast.TypeCvar:
			if i+1 < len(parts) && continuesIdentifier(parts[i+1]) {
				p.write("#{")
				p.visit(part, f)
				p.write("}")
				continue
			}
			p.write("#")
			p.visit(part, f)
		case ast.TypeBegin:
			p.write("#{")
			inner := frame{node: part, parent: f.node.Type}
			for j, stmt := range p.nodesFrom(part, 0) {
				if j > 0 {
					p.write("; ")
				}
				p.visit(stmt, inner)
			}
			p.write("}")
		default:
			p.write("#{")
			p.visit(part, f)
			p.write("}")
		}
	}
}

// mergeStatic inlines nested dstr parts and joins adjacent str parts, so
// that a # ending one segment is escaped against the text that follows it.
func (p *printer) mergeStatic(parts []*ast.Node) []*ast.Node {
	var merged []*ast.Node
	var text strings.Builder
	pending := false
	flush := func() {
		if pending {
			merged = append(merged, ast.New(ast.TypeStr, text.String()))
			text.Reset()
			pending = false
		}
	}
	var walk func(parts []*ast.Node)
	walk = func(parts []*ast.Node) {
		for _, part := range parts {
			switch part.Type {
			case ast.TypeStr:
				text.WriteString(p.stringChild(part, 0))
				pending = true
			case ast.TypeDstr:
				walk(p.nodesFrom(part, 0))
			default:
				flush()
				merged = append(merged, part)
			}
		}
	}
	walk(parts)
	flush()
	return merged
}

// continuesIdentifier reports whether part starts with a character that
// would extend a preceding #@var interpolation.
func continuesIdentifier(part *ast.Node) bool {
	if part.Type != ast.TypeStr {
		return false
	}
	s, _ := part.Child(0).(string)
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c >= 0x80
}
