package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// Unwrap removes one level of list structure from the topmost items at the selection.
func (l *listEditor) Unwrap(ed adapter.Editor) m.Outcome {
	return l.unwrapItems(ed, l.opts.TopmostItemsAtRange(ed))
}

// unwrapItems lifts every item out of its list and replaces it with its
// children. Lists emptied on the way are removed.
func (l *listEditor) unwrapItems(ed adapter.Editor, items []adapter.Entry) m.Outcome {
	if len(items) == 0 {
		return m.Outcome{Action: m.ActionNoop}
	}

	itemRefs := refsTo(ed, entryPaths(items))
	defer unrefAll(itemRefs)

	unwrapped, removed := 0, 0

	ed.WithoutNormalizing(func() {
		for i, ref := range itemRefs {
			path, ok := ref.Current()
			if !ok {
				l.opts.Logger.Debug("skipping unresolved item", "item", items[i].Path)

				continue
			}

			if l.liftOutOfList(ed, path) {
				removed++
			}

			if path, ok = ref.Current(); !ok {
				continue
			}

			if err := ed.UnwrapNode(path); err != nil {
				l.opts.Logger.Debug("failed to unwrap item", "at", path, "err", err)

				continue
			}

			unwrapped++
		}
	})

	return outcome(m.ActionUnwrap, removed, unwrapped)
}

// liftOutOfList moves the item at path to its list's level when the item
// sits in a list. It reports whether the list was emptied and removed.
func (l *listEditor) liftOutOfList(ed adapter.Editor, path m.Path) bool {
	list, ok := ed.Parent(path)
	if !ok || !l.opts.IsList(list.Node) {
		return false
	}

	listRef := ed.PathRef(list.Path)
	defer listRef.Unref()

	if err := ed.LiftNode(path); err != nil {
		l.opts.Logger.Debug("failed to lift item", "at", path, "err", err)

		return false
	}

	return l.opts.removeIfEmpty(ed, listRef)
}
