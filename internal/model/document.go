package model

// Document is the persisted form of an editable tree: the top-level blocks
// and an optional stored selection.
type Document struct {
	Children  []*Node    `yaml:"children" json:"children"`
	Selection *Selection `yaml:"selection,omitempty" json:"selection,omitempty"`
}

// NewDocument builds a document from top-level blocks.
func NewDocument(children ...*Node) *Document {
	return &Document{Children: children}
}

// Root wraps the top-level blocks in a document root node.
func (d *Document) Root() *Node {
	return &Node{Type: TypeDocument, Children: d.Children}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Children: make([]*Node, len(d.Children))}
	for i, child := range d.Children {
		out.Children[i] = child.Clone()
	}

	if d.Selection != nil {
		sel := Selection{
			Anchor: Point{Path: d.Selection.Anchor.Path.Copy(), Offset: d.Selection.Anchor.Offset},
			Focus:  Point{Path: d.Selection.Focus.Path.Copy(), Offset: d.Selection.Focus.Offset},
		}
		out.Selection = &sel
	}

	return out
}

// Equal compares the block content of two documents, ignoring selections.
func (d *Document) Equal(other *Document) bool {
	return d.Root().Equal(other.Root())
}

// FilePath represents a file system path.
type FilePath string
