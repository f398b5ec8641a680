package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// Kind classifies a block for the list algorithms.
type Kind int

// Block kinds.
const (
	// KindContent is a block holding content leaves, such as a paragraph.
	KindContent Kind = iota
	// KindContainer is a block holding other blocks, such as a column.
	KindContainer
	// KindList is a list block.
	KindList
	// KindItem is a list item.
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindList:
		return "list"
	case KindItem:
		return "item"
	default:
		return "content"
	}
}

// Block is a resolved block: an editor entry with its classification.
type Block struct {
	adapter.Entry
	Kind Kind
}

// Classify returns the kind of n.
func (o Options) Classify(n *m.Node) Kind {
	switch {
	case o.IsList(n):
		return KindList
	case o.IsItem(n):
		return KindItem
	case n.HasBlockChildren():
		return KindContainer
	default:
		return KindContent
	}
}

func (o Options) block(e adapter.Entry) Block {
	return Block{Entry: e, Kind: o.Classify(e.Node)}
}

func (o Options) matchList(n *m.Node, _ m.Path) bool {
	return o.IsList(n)
}

func (o Options) matchItem(n *m.Node, _ m.Path) bool {
	return o.IsItem(n)
}

func matchBlock(n *m.Node, _ m.Path) bool {
	return n.IsBlock()
}
