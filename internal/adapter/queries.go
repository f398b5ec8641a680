package adapter

import (
	m "github.com/mouse-blink/listedit/internal/model"
)

// Node returns the node at path.
func (e *TreeEditor) Node(at m.Path) (*m.Node, error) {
	return e.nodeAt(at)
}

// Has reports whether a node exists at path.
func (e *TreeEditor) Has(at m.Path) bool {
	_, err := e.nodeAt(at)

	return err == nil
}

// Parent returns the parent entry of path.
func (e *TreeEditor) Parent(at m.Path) (Entry, bool) {
	if len(at) == 0 || !e.Has(at) {
		return Entry{}, false
	}

	parentPath := at.Parent()
	parent, _ := e.nodeAt(parentPath)

	return Entry{Node: parent, Path: parentPath}, true
}

// Above returns the nearest strict ancestor of path accepted by match. The
// root is never returned.
func (e *TreeEditor) Above(at m.Path, match Match) (Entry, bool) {
	if !e.Has(at) {
		return Entry{}, false
	}

	for depth := len(at) - 1; depth > 0; depth-- {
		path := at[:depth].Copy()
		n, _ := e.nodeAt(path)

		if match == nil || match(n, path) {
			return Entry{Node: n, Path: path}, true
		}
	}

	return Entry{}, false
}

// Previous returns the preceding sibling of path.
func (e *TreeEditor) Previous(at m.Path) (Entry, bool) {
	prev, ok := at.Previous()
	if !ok {
		return Entry{}, false
	}

	n, err := e.nodeAt(prev)
	if err != nil {
		return Entry{}, false
	}

	return Entry{Node: n, Path: prev}, true
}

// Next returns the following sibling of path.
func (e *TreeEditor) Next(at m.Path) (Entry, bool) {
	if len(at) == 0 {
		return Entry{}, false
	}

	next := at.Next()

	n, err := e.nodeAt(next)
	if err != nil {
		return Entry{}, false
	}

	return Entry{Node: n, Path: next}, true
}

// Nodes walks the tree in pre-order and returns the nodes between from and
// to. Subtrees entirely before from are skipped and the walk stops at the
// first node after to.
func (e *TreeEditor) Nodes(from, to m.Path, match Match) []Entry {
	var out []Entry

	e.walk(e.root, m.Path{}, func(n *m.Node, path m.Path) walkStep {
		if path.Compare(to) > 0 {
			return walkStop
		}

		if path.Compare(from) < 0 {
			return walkSkip
		}

		if match == nil || match(n, path) {
			out = append(out, Entry{Node: n, Path: path})
		}

		return walkInto
	})

	return out
}

// all returns every node below the root in pre-order.
func (e *TreeEditor) all() []Entry {
	var out []Entry

	e.walk(e.root, m.Path{}, func(n *m.Node, path m.Path) walkStep {
		out = append(out, Entry{Node: n, Path: path})

		return walkInto
	})

	return out
}

type walkStep int

const (
	walkInto walkStep = iota
	walkSkip
	walkStop
)

// walk visits the descendants of n. It returns false once the visitor asked to stop.
func (e *TreeEditor) walk(n *m.Node, path m.Path, visit func(*m.Node, m.Path) walkStep) bool {
	for i, child := range n.Children {
		childPath := path.Child(i)

		switch visit(child, childPath) {
		case walkStop:
			return false
		case walkSkip:
			continue
		case walkInto:
		}

		if !e.walk(child, childPath, visit) {
			return false
		}
	}

	return true
}

// Start returns the first point inside the node at path.
func (e *TreeEditor) Start(at m.Path) m.Point {
	path := at.Copy()

	n, err := e.nodeAt(path)
	if err != nil {
		return m.Point{Path: path}
	}

	for len(n.Children) > 0 {
		n = n.Children[0]
		path = path.Child(0)
	}

	return m.Point{Path: path}
}

// End returns the last point inside the node at path.
func (e *TreeEditor) End(at m.Path) m.Point {
	path := at.Copy()

	n, err := e.nodeAt(path)
	if err != nil {
		return m.Point{Path: path}
	}

	for len(n.Children) > 0 {
		last := len(n.Children) - 1
		n = n.Children[last]
		path = path.Child(last)
	}

	return m.Point{Path: path, Offset: len(n.Text)}
}

// Range returns a selection from the start of from to the end of to.
func (e *TreeEditor) Range(from, to m.Path) m.Selection {
	return m.Selection{Anchor: e.Start(from), Focus: e.End(to)}
}

// Selection returns the current selection resolved against the tree. A
// selection whose endpoints were removed is reported as absent.
func (e *TreeEditor) Selection() (m.Selection, bool) {
	if e.anchor == nil || e.focus == nil {
		return m.Selection{}, false
	}

	anchor, ok := e.anchor.Current()
	if !ok {
		return m.Selection{}, false
	}

	focus, ok := e.focus.Current()
	if !ok {
		return m.Selection{}, false
	}

	return m.Selection{
		Anchor: m.Point{Path: anchor, Offset: e.anchorOffset},
		Focus:  m.Point{Path: focus, Offset: e.focusOffset},
	}, true
}

// Select replaces the current selection. Endpoints track their nodes, so
// the selection follows content moved by later mutations.
func (e *TreeEditor) Select(sel m.Selection) {
	e.Deselect()

	e.anchor = e.trackedRef(sel.Anchor.Path)
	e.focus = e.trackedRef(sel.Focus.Path)
	e.anchorOffset = sel.Anchor.Offset
	e.focusOffset = sel.Focus.Offset
}

// Deselect clears the selection.
func (e *TreeEditor) Deselect() {
	e.anchor = nil
	e.focus = nil
	e.anchorOffset = 0
	e.focusOffset = 0
}
