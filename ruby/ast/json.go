package ast

import (
	"encoding/json"
	"io"
	"math"
	"math/big"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(node *Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type jsonNode struct {
	Type     string        `json:"type"`
	Location *jsonLocation `json:"location,omitempty"`
	Children []any         `json:"children,omitempty"`
}

type jsonLocation struct {
	Begin    int `json:"begin"`
	End      int `json:"end"`
	Line     int `json:"line,omitempty"`
	LastLine int `json:"lastLine,omitempty"`
}

// Symbols, big integers and non-finite floats have no JSON literal of their
// own, so they are wrapped in single-key objects.
type jsonSymbol struct {
	Symbol string `json:"sym"`
}

type jsonBigInt struct {
	Int string `json:"int"`
}

type jsonFloat struct {
	Float string `json:"float"`
}

func nodeToJSON(n *Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Type: string(n.Type),
	}

	if n.Location != nil {
		jn.Location = &jsonLocation{
			Begin:    n.Location.Begin,
			End:      n.Location.End,
			Line:     n.Location.Line,
			LastLine: n.Location.LastLine,
		}
	}

	for _, child := range n.Children {
		jn.Children = append(jn.Children, valueToJSON(child))
	}

	return jn
}

func valueToJSON(v any) any {
	switch v := v.(type) {
	case *Node:
		if v == nil {
			return nil
		}
		return nodeToJSON(v)
	case Symbol:
		return jsonSymbol{Symbol: string(v)}
	case *big.Int:
		return jsonBigInt{Int: v.String()}
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return jsonFloat{Float: formatFloat(v)}
		}
		return v
	}
	return v
}
