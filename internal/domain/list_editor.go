// Package domain contains the list editing core and the document workflow.
package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// ListArgs describes the lists a command creates.
type ListArgs struct {
	Type m.NodeType
	Data map[string]any
}

// ListEditor performs structural list edits on the current selection of an
// editor. Edits never fail: candidates that cannot be processed are skipped.
type ListEditor interface {
	// Toggle wraps the selection in a list or removes list structure from it,
	// depending on the shape of the selection.
	Toggle(ed adapter.Editor, args ListArgs) m.Outcome
	// Wrap wraps the selected blocks in a list.
	Wrap(ed adapter.Editor, args ListArgs) m.Outcome
	// Unwrap removes one level of list structure from the selected items.
	Unwrap(ed adapter.Editor) m.Outcome
	// Indent nests the selected items under their previous sibling.
	Indent(ed adapter.Editor) m.Outcome
	// Outdent moves the selected items one level up.
	Outdent(ed adapter.Editor) m.Outcome
	// InList reports whether the selection starts inside a list item.
	InList(ed adapter.Editor) bool
	// Normalizer returns the rule that merges adjacent compatible lists.
	Normalizer() adapter.NormalizeRule
	// Options returns the effective configuration.
	Options() Options
}

type listEditor struct {
	opts Options
}

// NewListEditor creates a ListEditor.
func NewListEditor(opts ...Option) ListEditor {
	return &listEditor{opts: NewOptions(opts...)}
}

func (l *listEditor) Options() Options {
	return l.opts
}

func (l *listEditor) InList(ed adapter.Editor) bool {
	return l.opts.InList(ed)
}

func (l *listEditor) Normalizer() adapter.NormalizeRule {
	return adapter.NormalizeFunc(l.joinAdjacentLists)
}

func (l *listEditor) listType(args ListArgs) m.NodeType {
	if args.Type != "" {
		return args.Type
	}

	return l.opts.DefaultListType()
}

func (l *listEditor) newList(args ListArgs) *m.Node {
	return &m.Node{Type: l.listType(args), Data: m.CloneData(args.Data)}
}

func (l *listEditor) newItem() *m.Node {
	return m.Block(l.opts.ItemType)
}

// refsTo takes a position reference for every path.
func refsTo(ed adapter.Editor, paths []m.Path) []*adapter.PathRef {
	out := make([]*adapter.PathRef, len(paths))
	for i, path := range paths {
		out[i] = ed.PathRef(path)
	}

	return out
}

func unrefAll(refs []*adapter.PathRef) {
	for _, ref := range refs {
		ref.Unref()
	}
}

func entryPaths(entries []adapter.Entry) []m.Path {
	out := make([]m.Path, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}

	return out
}

func blockPaths(blocks []Block) []m.Path {
	out := make([]m.Path, len(blocks))
	for i, b := range blocks {
		out[i] = b.Path
	}

	return out
}

// Indent nests each selected item under its previous sibling, first to last.
func (l *listEditor) Indent(ed adapter.Editor) m.Outcome {
	items := l.opts.TopmostItemsAtRange(ed)
	if len(items) == 0 {
		return m.Outcome{Action: m.ActionNoop}
	}

	itemRefs := refsTo(ed, entryPaths(items))
	defer unrefAll(itemRefs)

	moved := 0

	ed.WithoutNormalizing(func() {
		for _, ref := range itemRefs {
			path, ok := ref.Current()
			if !ok {
				continue
			}

			if l.opts.IncreaseItemDepth(ed, path) {
				moved++
			}
		}
	})

	return outcome(m.ActionIndent, 0, moved)
}

// Outdent lifts each selected item one level, last to first.
func (l *listEditor) Outdent(ed adapter.Editor) m.Outcome {
	items := l.opts.TopmostItemsAtRange(ed)
	if len(items) == 0 {
		return m.Outcome{Action: m.ActionNoop}
	}

	itemRefs := refsTo(ed, entryPaths(items))
	defer unrefAll(itemRefs)

	moved := 0

	ed.WithoutNormalizing(func() {
		for i := len(itemRefs) - 1; i >= 0; i-- {
			path, ok := itemRefs[i].Current()
			if !ok {
				continue
			}

			if l.opts.DecreaseItemDepth(ed, path) {
				moved++
			}
		}
	})

	return outcome(m.ActionOutdent, 0, moved)
}

func outcome(action m.Action, lists, items int) m.Outcome {
	if lists == 0 && items == 0 {
		return m.Outcome{Action: m.ActionNoop}
	}

	return m.Outcome{Action: action, Lists: lists, Items: items}
}
