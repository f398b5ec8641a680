package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// Toggle classifies the selection and wraps it in a list or unwraps it.
//
// A selection crossing a separator is handled per region. A selection inside
// a single block unwraps its nearest item, or wraps the block when there is
// none. Any other selection looks at the items it covers: none means wrap,
// items at one depth are unwrapped, and items at mixed depths are first
// lifted to the top level and then unwrapped together.
func (l *listEditor) Toggle(ed adapter.Editor, args ListArgs) m.Outcome {
	first, last, ok := selectedBlocks(ed)
	if !ok {
		return m.Outcome{Action: m.ActionNoop}
	}

	if blocks := l.opts.Resolve(ed); len(blocks) > 1 && l.opts.HasSeparator(ed, blocks) {
		return l.toggleRegions(ed, blocks, args)
	}

	if first.Path.Equal(last.Path) {
		if len(l.opts.TopmostItemsAtRange(ed)) > 0 {
			return l.Unwrap(ed)
		}

		return l.Wrap(ed, args)
	}

	items := l.itemsInSelection(ed)

	switch {
	case len(items) == 0:
		return l.Wrap(ed, args)
	case sameDepth(items):
		return l.Unwrap(ed)
	default:
		return l.equalizeAndUnwrap(ed, items, first, last)
	}
}

// itemsInSelection returns the items covered by the selection, leaving out
// the ancestors of the item the selection starts in.
func (l *listEditor) itemsInSelection(ed adapter.Editor) []adapter.Entry {
	items := l.opts.ItemsAtRange(ed)

	start, _, _ := selectionEdges(ed)

	closest, ok := ed.Above(start.Path, l.opts.matchItem)
	if !ok {
		return items
	}

	out := items[:0:0]

	for _, item := range items {
		if !item.Path.IsAncestorOf(closest.Path) {
			out = append(out, item)
		}
	}

	return out
}

func sameDepth(items []adapter.Entry) bool {
	for _, item := range items[1:] {
		if len(item.Path) != len(items[0].Path) {
			return false
		}
	}

	return true
}

// equalizeAndUnwrap handles items at mixed depths. When the selection is not
// enclosed by a list or an item, the topmost items are unwrapped first. The
// remaining items are then lifted to depth one, last to first, and unwrapped
// as one run.
func (l *listEditor) equalizeAndUnwrap(ed adapter.Editor, items []adapter.Entry, first, last adapter.Entry) m.Outcome {
	itemRefs := refsTo(ed, entryPaths(items))
	defer unrefAll(itemRefs)

	total := m.Outcome{Action: m.ActionEqualize}

	ancestor, err := ed.Node(m.Common(first.Path, last.Path))
	if err != nil || !l.opts.IsListOrItem(ancestor) {
		pass := l.Unwrap(ed)
		total.Lists += pass.Lists
		total.Items += pass.Items
	}

	ed.WithoutNormalizing(func() {
		for i := len(itemRefs) - 1; i >= 0; i-- {
			for {
				path, ok := itemRefs[i].Current()
				if !ok || l.opts.ItemDepth(ed, path) <= 1 {
					break
				}

				if !l.opts.DecreaseItemDepth(ed, path) {
					break
				}
			}
		}
	})

	from, to, ok := resolvedBounds(itemRefs)
	if !ok {
		return total
	}

	ed.Select(ed.Range(from, to))

	pass := l.Unwrap(ed)
	total.Lists += pass.Lists
	total.Items += pass.Items

	return total
}

// resolvedBounds returns the current paths of the first and last references
// that still resolve.
func resolvedBounds(refs []*adapter.PathRef) (from, to m.Path, ok bool) {
	for _, ref := range refs {
		path, found := ref.Current()
		if !found {
			continue
		}

		if !ok {
			from, ok = path, true
		}

		to = path
	}

	return from, to, ok
}

// toggleRegions handles selections that cross a separator. When every block
// is listed the selected lists are removed; when none is, each region gets
// its own list; otherwise only the unlisted blocks are wrapped.
func (l *listEditor) toggleRegions(ed adapter.Editor, blocks []Block, args ListArgs) m.Outcome {
	listed, unlisted := l.opts.partitionListed(ed, blocks)

	var out m.Outcome

	ed.WithoutNormalizing(func() {
		switch {
		case len(unlisted) == 0:
			out = l.unwrapLists(ed, listed)
		case len(listed) == 0:
			out = l.wrapBlocks(ed, blocks, args)
		default:
			out = l.wrapEach(ed, unlisted, args)
		}
	})

	return out
}

// unwrapLists unwraps the direct items of every list among blocks.
func (l *listEditor) unwrapLists(ed adapter.Editor, blocks []Block) m.Outcome {
	var lists []Block

	for _, b := range blocks {
		if b.Kind == KindList {
			lists = append(lists, b)
		}
	}

	listRefs := refsTo(ed, blockPaths(lists))
	defer unrefAll(listRefs)

	total := m.Outcome{Action: m.ActionNoop}

	for i, ref := range listRefs {
		path, ok := ref.Current()
		if !ok {
			l.opts.Logger.Debug("skipping unresolved list", "list", lists[i].Path)

			continue
		}

		n, err := ed.Node(path)
		if err != nil {
			continue
		}

		pass := l.unwrapItems(ed, l.opts.childItems(adapter.Entry{Node: n, Path: path}, nil))
		if pass.Changed() {
			total.Action = m.ActionUnwrap
			total.Lists += pass.Lists
			total.Items += pass.Items
		}
	}

	return total
}

// wrapEach wraps every block in an item inside a list of its own.
func (l *listEditor) wrapEach(ed adapter.Editor, blocks []Block, args ListArgs) m.Outcome {
	blockRefs := refsTo(ed, blockPaths(blocks))
	defer unrefAll(blockRefs)

	lists := 0

	for i, ref := range blockRefs {
		path, ok := ref.Current()
		if !ok {
			l.opts.Logger.Debug("skipping unresolved block", "block", blocks[i].Path)

			continue
		}

		if err := ed.WrapNode(l.newItem(), path); err != nil {
			l.opts.Logger.Debug("failed to wrap block in item", "at", path, "err", err)

			continue
		}

		if err := ed.WrapNode(l.newList(args), path); err != nil {
			l.opts.Logger.Debug("failed to wrap item in list", "at", path, "err", err)

			continue
		}

		lists++
	}

	return outcome(m.ActionWrap, lists, lists)
}
