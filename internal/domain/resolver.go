package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// Resolve returns the topmost blocks covered by the current selection, in
// document order. Without a selection it returns nil.
func (o Options) Resolve(ed adapter.Editor) []Block {
	first, last, ok := selectedBlocks(ed)
	if !ok {
		return nil
	}

	if first.Path.Equal(last.Path) {
		return []Block{o.block(first)}
	}

	if run, ok := o.siblingRun(ed, first, last); ok {
		return run
	}

	start, end, _ := selectionEdges(ed)

	return o.enumerate(ed, start.Path, end.Path, m.Common(first.Path, last.Path))
}

// siblingRun handles selections whose endpoints sit under sibling blocks of
// their common ancestor. The run is returned verbatim unless one of its
// blocks is an item, a separator, or a container that merely encloses an endpoint.
func (o Options) siblingRun(ed adapter.Editor, first, last adapter.Entry) ([]Block, bool) {
	common := m.Common(first.Path, last.Path)
	if len(common) >= len(first.Path) || len(common) >= len(last.Path) {
		return nil, false
	}

	from, to := first.Path[len(common)], last.Path[len(common)]
	run := make([]Block, 0, to-from+1)

	for i := from; i <= to; i++ {
		path := common.Child(i)

		n, err := ed.Node(path)
		if err != nil || !n.IsBlock() {
			return nil, false
		}

		b := Block{Entry: adapter.Entry{Node: n, Path: path}, Kind: o.Classify(n)}

		switch {
		case b.Kind == KindItem, o.IsSeparator(n):
			return nil, false
		case b.Kind == KindList:
		case path.IsAncestorOf(first.Path), path.IsAncestorOf(last.Path):
			return nil, false
		}

		run = append(run, b)
	}

	return run, true
}

// enumerate collects the blocks between start and end that lie strictly below
// common. Items are dropped, lists are kept whole and stand for everything
// inside them, and a block is dropped when another collected block lies below it.
func (o Options) enumerate(ed adapter.Editor, start, end, common m.Path) []Block {
	var entries []adapter.Entry

	for _, e := range ed.Nodes(start, end, matchBlock) {
		if common.IsAncestorOf(e.Path) {
			entries = append(entries, e)
		}
	}

	var (
		out  []Block
		list m.Path
	)

	for i, e := range entries {
		if list != nil && list.IsAncestorOf(e.Path) {
			continue
		}

		b := o.block(e)

		switch {
		case b.Kind == KindItem:
			continue
		case b.Kind == KindList:
			list = e.Path
		case i+1 < len(entries) && e.Path.IsAncestorOf(entries[i+1].Path):
			continue
		}

		out = append(out, b)
	}

	return out
}

// selectedBlocks returns the innermost blocks holding the selection edges.
func selectedBlocks(ed adapter.Editor) (first, last adapter.Entry, ok bool) {
	start, end, ok := selectionEdges(ed)
	if !ok {
		return first, last, false
	}

	first, ok = innermostBlock(ed, start.Path)
	if !ok {
		return first, last, false
	}

	last, ok = innermostBlock(ed, end.Path)

	return first, last, ok
}

func selectionEdges(ed adapter.Editor) (start, end m.Point, ok bool) {
	sel, ok := ed.Selection()
	if !ok {
		return start, end, false
	}

	start, end = sel.Edges()

	return start, end, true
}

// innermostBlock returns the block at path, or the parent block of a leaf.
func innermostBlock(ed adapter.Editor, at m.Path) (adapter.Entry, bool) {
	if len(at) == 0 {
		return adapter.Entry{}, false
	}

	n, err := ed.Node(at)
	if err != nil {
		return adapter.Entry{}, false
	}

	if n.IsBlock() {
		return adapter.Entry{Node: n, Path: at.Copy()}, true
	}

	parent, ok := ed.Parent(at)
	if !ok || len(parent.Path) == 0 {
		return adapter.Entry{}, false
	}

	return parent, true
}
