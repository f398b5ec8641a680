package adapter

import (
	"errors"
	"io"
	"log/slog"

	m "github.com/mouse-blink/listedit/internal/model"
)

// Errors returned by the editor primitives.
var (
	// ErrNodeNotFound indicates that no node exists at the given path.
	ErrNodeNotFound = errors.New("node not found")
	// ErrInvalidPath indicates a path that cannot address a location for the operation.
	ErrInvalidPath = errors.New("invalid path")
	// ErrRootNode indicates an operation that cannot be applied to the document root.
	ErrRootNode = errors.New("operation not allowed on the document root")
	// ErrNotBlock indicates an operation that needs a block but found a leaf.
	ErrNotBlock = errors.New("node is not a block")
)

// Entry pairs a node with the path it had when the entry was produced.
type Entry struct {
	Node *m.Node
	Path m.Path
}

// Match filters nodes during lookups and traversals.
type Match func(n *m.Node, path m.Path) bool

// Editor is the host contract the list editing core depends on. All reads
// and writes of the document go through it.
//
//nolint:interfacebloat // Mirrors the full set of host primitives.
type Editor interface {
	// Root returns the document root. Callers must not mutate it directly.
	Root() *m.Node
	// Node returns the node at path.
	Node(at m.Path) (*m.Node, error)
	// Has reports whether a node exists at path.
	Has(at m.Path) bool
	// Parent returns the parent entry of path. The root has no parent.
	Parent(at m.Path) (Entry, bool)
	// Above returns the nearest strict ancestor of path (the root excluded) accepted by match.
	Above(at m.Path, match Match) (Entry, bool)
	// Previous returns the preceding sibling of path.
	Previous(at m.Path) (Entry, bool)
	// Next returns the following sibling of path.
	Next(at m.Path) (Entry, bool)
	// Nodes returns, in document order, every node whose path lies between
	// from and to, ancestors of both included and the root excluded.
	Nodes(from, to m.Path, match Match) []Entry
	// Start returns the first point inside the node at path.
	Start(at m.Path) m.Point
	// End returns the last point inside the node at path.
	End(at m.Path) m.Point
	// Range returns a selection from the start of one node to the end of another.
	Range(from, to m.Path) m.Selection

	// Selection returns the current selection, if any.
	Selection() (m.Selection, bool)
	// Select replaces the current selection.
	Select(sel m.Selection)
	// Deselect clears the selection.
	Deselect()

	// WrapNodes wraps children start..end (inclusive) of the node at parent in wrapper.
	WrapNodes(wrapper *m.Node, parent m.Path, start, end int) error
	// WrapNode wraps the node at path in wrapper.
	WrapNode(wrapper *m.Node, at m.Path) error
	// UnwrapNode replaces the block at path with its children.
	UnwrapNode(at m.Path) error
	// LiftNode moves the node at path into its grandparent, splitting the
	// parent when the node is neither its first nor its last child. An
	// emptied parent is left in place.
	LiftNode(at m.Path) error
	// MoveNode moves the node at path so that it sits where the node
	// currently at to sits (or at the end when to is one past the last child).
	MoveNode(at, to m.Path) error
	// InsertNodes inserts nodes starting at path.
	InsertNodes(nodes []*m.Node, at m.Path) error
	// RemoveNode removes the node at path.
	RemoveNode(at m.Path) error

	// PathRef returns a reference that follows the node at path across mutations.
	PathRef(at m.Path) *PathRef
	// WithoutNormalizing defers normalization until the outermost scope exits.
	WithoutNormalizing(fn func())
	// Normalize runs the normalization rules until none of them fires.
	Normalize()
}

// NormalizeRule is a standing rule run by the editor after batches of mutations.
type NormalizeRule interface {
	// Normalize inspects one entry and reports whether it changed the tree.
	Normalize(ed Editor, entry Entry) bool
}

// NormalizeFunc adapts a function to NormalizeRule.
type NormalizeFunc func(ed Editor, entry Entry) bool

// Normalize calls f.
func (f NormalizeFunc) Normalize(ed Editor, entry Entry) bool {
	return f(ed, entry)
}

// EditorOption configures a TreeEditor.
type EditorOption func(*TreeEditor)

// WithNormalizers registers normalization rules in evaluation order.
func WithNormalizers(rules ...NormalizeRule) EditorOption {
	return func(e *TreeEditor) {
		e.rules = append(e.rules, rules...)
	}
}

// WithEditorLogger sets the logger used for host warnings.
func WithEditorLogger(logger *slog.Logger) EditorOption {
	return func(e *TreeEditor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxNormalizePasses bounds the number of normalization passes.
// Zero or less derives the bound from the size of the tree.
func WithMaxNormalizePasses(passes int) EditorOption {
	return func(e *TreeEditor) {
		e.maxPasses = passes
	}
}

// TreeEditor is an in-memory Editor. Nodes are addressed by identity: the
// editor keeps a parent index and computes paths on demand, so references
// survive sibling insertions and removals anywhere in the tree.
type TreeEditor struct {
	root    *m.Node
	parents map[*m.Node]*m.Node
	refs    map[*PathRef]struct{}
	rules   []NormalizeRule
	logger  *slog.Logger

	anchor       *PathRef
	focus        *PathRef
	anchorOffset int
	focusOffset  int

	depth       int
	normalizing bool
	maxPasses   int
}

// NewTreeEditor builds an editor over doc. The editor takes ownership of the
// document's nodes; they are repositioned in place, never copied.
func NewTreeEditor(doc *m.Document, opts ...EditorOption) *TreeEditor {
	e := &TreeEditor{
		root:    doc.Root(),
		parents: make(map[*m.Node]*m.Node),
		refs:    make(map[*PathRef]struct{}),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.index(e.root)

	if doc.Selection != nil {
		e.Select(*doc.Selection)
	}

	return e
}

// Document returns the current tree and selection as a document.
func (e *TreeEditor) Document() *m.Document {
	doc := &m.Document{Children: e.root.Children}
	if sel, ok := e.Selection(); ok {
		doc.Selection = &sel
	}

	return doc
}

// OpenRefs reports how many position references are still held.
func (e *TreeEditor) OpenRefs() int {
	return len(e.refs)
}

// Root returns the document root.
func (e *TreeEditor) Root() *m.Node {
	return e.root
}

func (e *TreeEditor) index(n *m.Node) {
	for _, child := range n.Children {
		e.parents[child] = n
		e.index(child)
	}
}

func (e *TreeEditor) unindex(n *m.Node) {
	delete(e.parents, n)

	for _, child := range n.Children {
		e.unindex(child)
	}
}

// pathOf walks parent links up to the root. Detached nodes have no path.
func (e *TreeEditor) pathOf(n *m.Node) (m.Path, bool) {
	if n == nil {
		return nil, false
	}

	var reversed []int

	for n != e.root {
		parent, ok := e.parents[n]
		if !ok {
			return nil, false
		}

		idx := childIndex(parent, n)
		if idx < 0 {
			return nil, false
		}

		reversed = append(reversed, idx)
		n = parent
	}

	path := make(m.Path, len(reversed))
	for i, idx := range reversed {
		path[len(reversed)-1-i] = idx
	}

	return path, true
}

func childIndex(parent, child *m.Node) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}

	return -1
}

func (e *TreeEditor) nodeAt(at m.Path) (*m.Node, error) {
	n := e.root

	for _, idx := range at {
		if n.IsLeaf() || idx < 0 || idx >= len(n.Children) {
			return nil, ErrNodeNotFound
		}

		n = n.Children[idx]
	}

	return n, nil
}

// parentFor resolves the block that would own a node at path along with its index.
func (e *TreeEditor) parentFor(at m.Path) (*m.Node, int, error) {
	if len(at) == 0 {
		return nil, 0, ErrRootNode
	}

	parent, err := e.nodeAt(at.Parent())
	if err != nil {
		return nil, 0, err
	}

	if parent.IsLeaf() {
		return nil, 0, ErrNotBlock
	}

	return parent, at.Index(), nil
}
