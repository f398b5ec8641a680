package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// ItemsAtRange returns every item intersecting the selection, ancestors of
// the selection edges included, in document order.
func (o Options) ItemsAtRange(ed adapter.Editor) []adapter.Entry {
	start, end, ok := selectionEdges(ed)
	if !ok {
		return nil
	}

	return ed.Nodes(start.Path, end.Path, o.matchItem)
}

// TopmostItemsAtRange returns the items a list operation on the selection
// should act on. A selection inside one block yields its nearest item. A
// wider selection yields the items of the nearest list enclosing it that
// intersect the range, or, when no list encloses it, the highest items
// intersecting the range.
func (o Options) TopmostItemsAtRange(ed adapter.Editor) []adapter.Entry {
	first, last, ok := selectedBlocks(ed)
	if !ok {
		return nil
	}

	if first.Path.Equal(last.Path) {
		if o.IsItem(first.Node) {
			return []adapter.Entry{first}
		}

		if item, ok := ed.Above(first.Path, o.matchItem); ok {
			return []adapter.Entry{item}
		}

		return nil
	}

	start, end, _ := selectionEdges(ed)
	common := m.Common(first.Path, last.Path)

	if list, ok := o.listAtOrAbove(ed, common); ok {
		return o.childItems(list, func(path m.Path) bool {
			return path.Compare(start.Path) >= 0 && path.Compare(end.Path) <= 0
		})
	}

	var (
		out []adapter.Entry
		top m.Path
	)

	for _, item := range ed.Nodes(start.Path, end.Path, o.matchItem) {
		if top != nil && top.IsAncestorOf(item.Path) {
			continue
		}

		top = item.Path
		out = append(out, item)
	}

	return out
}

func (o Options) listAtOrAbove(ed adapter.Editor, at m.Path) (adapter.Entry, bool) {
	if len(at) > 0 {
		if n, err := ed.Node(at); err == nil && o.IsList(n) {
			return adapter.Entry{Node: n, Path: at.Copy()}, true
		}
	}

	return ed.Above(at, o.matchList)
}

// childItems returns the item children of list accepted by keep (all when nil).
func (o Options) childItems(list adapter.Entry, keep func(m.Path) bool) []adapter.Entry {
	var out []adapter.Entry

	for i, child := range list.Node.Children {
		path := list.Path.Child(i)
		if o.IsItem(child) && (keep == nil || keep(path)) {
			out = append(out, adapter.Entry{Node: child, Path: path})
		}
	}

	return out
}

// ItemDepth returns the number of lists enclosing the node at path.
func (o Options) ItemDepth(ed adapter.Editor, at m.Path) int {
	depth := 0

	for i := len(at) - 1; i > 0; i-- {
		if n, err := ed.Node(at[:i]); err == nil && o.IsList(n) {
			depth++
		}
	}

	return depth
}

// InList reports whether the block holding the selection start is the
// direct child of an item.
func (o Options) InList(ed adapter.Editor) bool {
	start, _, ok := selectionEdges(ed)
	if !ok {
		return false
	}

	block, ok := innermostBlock(ed, start.Path)
	if !ok {
		return false
	}

	parent, ok := ed.Parent(block.Path)

	return ok && o.IsItem(parent.Node)
}

// DecreaseItemDepth moves the item at path out of its list to sit right
// after the enclosing item. Items that followed it move along in a new
// sub-list of the same type at the end of the item. It reports whether the
// item moved.
func (o Options) DecreaseItemDepth(ed adapter.Editor, at m.Path) bool {
	item, err := ed.Node(at)
	if err != nil || !o.IsItem(item) {
		return false
	}

	list, ok := ed.Parent(at)
	if !ok || !o.IsList(list.Node) {
		return false
	}

	parentItem, ok := ed.Parent(list.Path)
	if !ok || !o.IsItem(parentItem.Node) {
		return false
	}

	moved := false

	ed.WithoutNormalizing(func() {
		listRef := ed.PathRef(list.Path)
		defer listRef.Unref()

		idx := at.Index()
		following := len(list.Node.Children) - idx - 1

		if following > 0 {
			sublistPath := at.Child(len(item.Children))
			if err := ed.InsertNodes([]*m.Node{list.Node.Shell()}, sublistPath); err != nil {
				o.Logger.Debug("failed to create sub-list", "at", sublistPath, "err", err)

				return
			}

			for k := 0; k < following; k++ {
				if err := ed.MoveNode(list.Path.Child(idx+1), sublistPath.Child(k)); err != nil {
					o.Logger.Debug("failed to move following item", "at", list.Path.Child(idx+1), "err", err)

					return
				}
			}
		}

		if err := ed.MoveNode(at, parentItem.Path.Next()); err != nil {
			o.Logger.Debug("failed to move item", "at", at, "err", err)

			return
		}

		moved = true

		o.removeIfEmpty(ed, listRef)
	})

	return moved
}

// IncreaseItemDepth moves the item at path into a sub-list at the end of its
// previous sibling item, creating the sub-list when needed. It reports
// whether the item moved.
func (o Options) IncreaseItemDepth(ed adapter.Editor, at m.Path) bool {
	item, err := ed.Node(at)
	if err != nil || !o.IsItem(item) {
		return false
	}

	list, ok := ed.Parent(at)
	if !ok || !o.IsList(list.Node) {
		return false
	}

	prev, ok := ed.Previous(at)
	if !ok || !o.IsItem(prev.Node) {
		return false
	}

	moved := false

	ed.WithoutNormalizing(func() {
		last := len(prev.Node.Children) - 1
		if last >= 0 && o.IsList(prev.Node.Children[last]) {
			sublist := prev.Node.Children[last]
			target := prev.Path.Child(last).Child(len(sublist.Children))

			if err := ed.MoveNode(at, target); err != nil {
				o.Logger.Debug("failed to move item", "at", at, "err", err)

				return
			}

			moved = true

			return
		}

		sublistPath := prev.Path.Child(last + 1)
		if err := ed.InsertNodes([]*m.Node{list.Node.Shell()}, sublistPath); err != nil {
			o.Logger.Debug("failed to create sub-list", "at", sublistPath, "err", err)

			return
		}

		if err := ed.MoveNode(at, sublistPath.Child(0)); err != nil {
			o.Logger.Debug("failed to move item", "at", at, "err", err)

			return
		}

		moved = true
	})

	return moved
}

// removeIfEmpty deletes the list behind ref when it has no children left.
func (o Options) removeIfEmpty(ed adapter.Editor, ref *adapter.PathRef) bool {
	path, ok := ref.Current()
	if !ok {
		return false
	}

	n, err := ed.Node(path)
	if err != nil || !o.IsList(n) || len(n.Children) > 0 {
		return false
	}

	if err := ed.RemoveNode(path); err != nil {
		o.Logger.Debug("failed to remove empty list", "at", path, "err", err)

		return false
	}

	return true
}
