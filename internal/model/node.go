// Package model defines the data structures shared by the list editing core,
// the document host and the CLI.
package model

import "reflect"

// NodeType is the type tag of a block node.
type NodeType string

// Default type identifiers used when no configuration is supplied.
const (
	TypeDocument   NodeType = "document"
	TypeParagraph  NodeType = "paragraph"
	TypeBulletList NodeType = "ul_list"
	TypeNumberList NodeType = "ol_list"
	TypeListItem   NodeType = "list_item"
	TypeBlockQuote NodeType = "block_quote"
	TypeColumns    NodeType = "columns"
	TypeColumn     NodeType = "column"
)

// Node is either a block (has a Type and children) or a leaf (no Type, carries Text).
type Node struct {
	Type     NodeType       `yaml:"type,omitempty" json:"type,omitempty"`
	Text     string         `yaml:"text,omitempty" json:"text,omitempty"`
	Data     map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
	Children []*Node        `yaml:"children,omitempty" json:"children,omitempty"`
}

// Block builds a block node.
func Block(t NodeType, children ...*Node) *Node {
	return &Node{Type: t, Children: children}
}

// Leaf builds a text leaf.
func Leaf(text string) *Node {
	return &Node{Text: text}
}

// Paragraph is shorthand for a paragraph holding a single text leaf.
func Paragraph(text string) *Node {
	return Block(TypeParagraph, Leaf(text))
}

// IsLeaf reports whether the node is a content leaf.
func (n *Node) IsLeaf() bool {
	return n.Type == ""
}

// IsBlock reports whether the node is a block.
func (n *Node) IsBlock() bool {
	return n.Type != ""
}

// HasBlockChildren reports whether at least one child is a block.
func (n *Node) HasBlockChildren() bool {
	for _, child := range n.Children {
		if child.IsBlock() {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{Type: n.Type, Text: n.Text, Data: CloneData(n.Data)}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}

	return out
}

// Shell returns a childless copy of the node's type and data, used when a
// node has to be split or re-created.
func (n *Node) Shell() *Node {
	return &Node{Type: n.Type, Data: CloneData(n.Data)}
}

// Equal compares two trees structurally.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.Type != other.Type || n.Text != other.Text {
		return false
	}

	if len(n.Data) != 0 || len(other.Data) != 0 {
		if !reflect.DeepEqual(n.Data, other.Data) {
			return false
		}
	}

	if len(n.Children) != len(other.Children) {
		return false
	}

	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}

	return true
}

// TextContent concatenates the text of every leaf below the node.
func (n *Node) TextContent() string {
	if n.IsLeaf() {
		return n.Text
	}

	var out string
	for _, child := range n.Children {
		out += child.TextContent()
	}

	return out
}

// CloneData copies an auxiliary payload map. Nil stays nil.
func CloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}

	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}

	return out
}
