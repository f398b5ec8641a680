package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
)

// joinAdjacentLists merges a list into an adjacent sibling list accepted by
// the merge predicate. The previous sibling is tried first; the current
// list's children are appended to it. Otherwise they are prepended to the
// next sibling. At most one merge happens per call.
func (l *listEditor) joinAdjacentLists(ed adapter.Editor, e adapter.Entry) bool {
	if !l.opts.IsList(e.Node) {
		return false
	}

	if n, err := ed.Node(e.Path); err != nil || n != e.Node {
		return false
	}

	if prev, ok := ed.Previous(e.Path); ok && l.opts.IsList(prev.Node) && l.opts.CanMerge(e.Node, prev.Node) {
		return l.joinInto(ed, e, func() error {
			return ed.MoveNode(e.Path.Child(0), prev.Path.Child(len(prev.Node.Children)))
		})
	}

	if next, ok := ed.Next(e.Path); ok && l.opts.IsList(next.Node) && l.opts.CanMerge(e.Node, next.Node) {
		return l.joinInto(ed, e, func() error {
			return ed.MoveNode(e.Path.Child(len(e.Node.Children)-1), next.Path.Child(0))
		})
	}

	return false
}

// joinInto drains the list with moveOne and removes it.
func (l *listEditor) joinInto(ed adapter.Editor, e adapter.Entry, moveOne func() error) bool {
	changed := false

	ed.WithoutNormalizing(func() {
		for len(e.Node.Children) > 0 {
			if err := moveOne(); err != nil {
				l.opts.Logger.Debug("failed to merge list", "at", e.Path, "err", err)

				return
			}

			changed = true
		}

		if err := ed.RemoveNode(e.Path); err != nil {
			l.opts.Logger.Debug("failed to remove merged list", "at", e.Path, "err", err)

			return
		}

		changed = true
	})

	return changed
}
