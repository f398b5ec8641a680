package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// Wrap wraps the selected blocks in a list.
func (l *listEditor) Wrap(ed adapter.Editor, args ListArgs) m.Outcome {
	var out m.Outcome

	ed.WithoutNormalizing(func() {
		out = l.wrapBlocks(ed, l.opts.Resolve(ed), args)
	})

	return out
}

// wrapBlocks builds list structure around blocks. Sibling blocks go into a
// single new list; blocks in different branches get a list each, and those
// lists are merged into the first one unless a separator lies between them.
func (l *listEditor) wrapBlocks(ed adapter.Editor, blocks []Block, args ListArgs) m.Outcome {
	if len(blocks) == 0 {
		return m.Outcome{Action: m.ActionNoop}
	}

	separated := l.opts.HasSeparator(ed, blocks)

	blockRefs := refsTo(ed, blockPaths(blocks))
	defer unrefAll(blockRefs)

	if !separated && siblings(blocks) {
		return l.wrapSiblings(ed, blocks, blockRefs, args)
	}

	return l.wrapBranches(ed, blocks, blockRefs, args, !separated)
}

func siblings(blocks []Block) bool {
	parent := blocks[0].Path.Parent()

	for _, b := range blocks[1:] {
		if !b.Path.Parent().Equal(parent) {
			return false
		}
	}

	return true
}

// wrapSiblings wraps the sibling run in one list, then flattens selected
// lists into it and wraps every other block in an item.
func (l *listEditor) wrapSiblings(ed adapter.Editor, blocks []Block, blockRefs []*adapter.PathRef, args ListArgs) m.Outcome {
	first, last := blocks[0].Path, blocks[len(blocks)-1].Path

	if err := ed.WrapNodes(l.newList(args), first.Parent(), first.Index(), last.Index()); err != nil {
		l.opts.Logger.Debug("failed to wrap sibling run", "from", first, "to", last, "err", err)

		return m.Outcome{Action: m.ActionNoop}
	}

	items := 0

	for i, ref := range blockRefs {
		path, ok := ref.Current()
		if !ok {
			l.opts.Logger.Debug("skipping unresolved block", "block", blocks[i].Path)

			continue
		}

		switch blocks[i].Kind {
		case KindList:
			items += len(blocks[i].Node.Children)

			if err := ed.UnwrapNode(path); err != nil {
				l.opts.Logger.Debug("failed to flatten list", "at", path, "err", err)
			}
		case KindItem:
			items++
		default:
			if err := ed.WrapNode(l.newItem(), path); err != nil {
				l.opts.Logger.Debug("failed to wrap block in item", "at", path, "err", err)

				continue
			}

			items++
		}
	}

	return m.Outcome{Action: m.ActionWrap, Lists: 1, Items: items}
}

// wrapBranches gives every block its own list. A selected list is relabeled
// by wrapping it in the new list and unwrapping the old one.
func (l *listEditor) wrapBranches(ed adapter.Editor, blocks []Block, blockRefs []*adapter.PathRef, args ListArgs, merge bool) m.Outcome {
	var listRefs []*adapter.PathRef
	defer func() { unrefAll(listRefs) }()

	items := 0

	for i, ref := range blockRefs {
		path, ok := ref.Current()
		if !ok {
			l.opts.Logger.Debug("skipping unresolved block", "block", blocks[i].Path)

			continue
		}

		if blocks[i].Kind == KindList {
			n := len(blocks[i].Node.Children)

			if err := ed.WrapNode(l.newList(args), path); err != nil {
				l.opts.Logger.Debug("failed to wrap list", "at", path, "err", err)

				continue
			}

			if err := ed.UnwrapNode(path.Child(0)); err != nil {
				l.opts.Logger.Debug("failed to unwrap relabeled list", "at", path.Child(0), "err", err)
			}

			items += n
			listRefs = append(listRefs, ed.PathRef(path))

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

		items++
		listRefs = append(listRefs, ed.PathRef(path))
	}

	lists := len(listRefs)
	if merge && lists > 1 {
		lists -= l.mergeInto(ed, listRefs[0], listRefs[1:])
	}

	return outcome(m.ActionWrap, lists, items)
}

// mergeInto appends the children of every later list to the first one, in
// order, and removes the emptied lists. It returns how many lists were removed.
func (l *listEditor) mergeInto(ed adapter.Editor, firstRef *adapter.PathRef, later []*adapter.PathRef) int {
	removed := 0

	for _, ref := range later {
		firstPath, ok := firstRef.Current()
		if !ok {
			return removed
		}

		path, ok := ref.Current()
		if !ok || path.Equal(firstPath) {
			continue
		}

		firstList, err := ed.Node(firstPath)
		if err != nil || !l.opts.IsList(firstList) {
			return removed
		}

		list, err := ed.Node(path)
		if err != nil || !l.opts.IsList(list) {
			continue
		}

		for len(list.Children) > 0 {
			firstPath, _ = firstRef.Current()
			path, _ = ref.Current()

			if err := ed.MoveNode(path.Child(0), firstPath.Child(len(firstList.Children))); err != nil {
				l.opts.Logger.Debug("failed to merge item", "from", path, "into", firstPath, "err", err)

				break
			}
		}

		if path, ok = ref.Current(); ok && len(list.Children) == 0 {
			if err := ed.RemoveNode(path); err == nil {
				removed++
			}
		}
	}

	return removed
}
