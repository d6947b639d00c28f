package tree

import (
	"encoding/json"
	"fmt"
)

// JSONRange is the serialized form of a TextRange.
type JSONRange struct {
	StartLine   int `json:"startLine"`
	StartOffset int `json:"startOffset"`
	EndLine     int `json:"endLine"`
	EndOffset   int `json:"endOffset"`
}

// JSONNode is the serialized form of a Node.
type JSONNode struct {
	Kind             string      `json:"kind"`
	Range            JSONRange   `json:"range"`
	Label            string      `json:"label,omitempty"`
	OriginalTreeKind string      `json:"originalTreeKind,omitempty"`
	Children         []*JSONNode `json:"children,omitempty"`
}

// ToJSONNode converts a tree into its serializable form.
func ToJSONNode(n Node) *JSONNode {
	if isNil(n) {
		return nil
	}

	rng := n.Range()
	out := &JSONNode{
		Kind: n.Kind().String(),
		Range: JSONRange{
			StartLine:   rng.Start.Line,
			StartOffset: rng.Start.LineOffset,
			EndLine:     rng.End.Line,
			EndOffset:   rng.End.LineOffset,
		},
		Label: LeafLabel(n),
	}
	if meta := n.MetaData(); meta != nil && meta.OriginalTreeKind() != DefaultOriginalTreeKind {
		out.OriginalTreeKind = meta.OriginalTreeKind()
	}

	for _, child := range n.Children() {
		out.Children = append(out.Children, ToJSONNode(child))
	}

	return out
}

// ToJSON serializes a tree as indented JSON.
func ToJSON(n Node) ([]byte, error) {
	data, err := json.MarshalIndent(ToJSONNode(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tree: %w", err)
	}
	return data, nil
}
