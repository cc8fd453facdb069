// Package document reads unparse inputs: a Ruby source text, the tree an
// external parser produced for it and the comment tokens it found.
//
// Documents are YAML or JSON files:
//
//	source: |
//	  x = 1 # note
//	ast: (lvasgn@0..5 :x (int@4..5 1))
//	comments:
//	  - "# note"
//
// A .sexp file holds a bare tree without source or comments.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/unparser/ruby/ast"
)

type Format int

const (
	YAML Format = iota
	JSON
	Sexp
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case Sexp:
		return "sexp"
	}
	return "unknown"
}

// FormatOf picks the document format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".sexp":
		return Sexp, nil
	}
	return 0, fmt.Errorf("unknown document type %q", filepath.Ext(path))
}

type Document struct {
	// Source is the Ruby text the tree was parsed from. It may be empty, in
	// which case nodes carry no line numbers.
	Source string `yaml:"source" json:"source"`
	// AST is the tree in s-expression notation, with optional @begin..end
	// location annotations.
	AST string `yaml:"ast" json:"ast"`
	// Comments are the comment texts in source order. Each is located by
	// searching Source after the previous one.
	Comments []string `yaml:"comments,omitempty" json:"comments,omitempty"`
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case Sexp:
		doc.AST = string(data)
	default:
		return nil, fmt.Errorf("decode: unsupported format %v", format)
	}
	return &doc, nil
}

// Build parses the tree and locates the comments. A document without a
// tree yields a nil node, the empty program.
func (d *Document) Build() (*ast.Node, []ast.Comment, error) {
	var opts []ast.ReadOption
	if d.Source != "" {
		opts = append(opts, ast.WithSource([]byte(d.Source)))
	}
	node, err := ast.Parse(d.AST, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("parse ast: %w", err)
	}
	if len(d.Comments) == 0 {
		return node, nil, nil
	}
	comments, err := ast.LocateComments(d.Source, d.Comments)
	if err != nil {
		return nil, nil, err
	}
	return node, comments, nil
}

// SourceBytes returns the source text, or nil when the document has none.
func (d *Document) SourceBytes() []byte {
	if d.Source == "" {
		return nil
	}
	return []byte(d.Source)
}
