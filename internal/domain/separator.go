package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

// HasSeparator reports whether a separator block lies on the way from the
// first or the last block up to their common ancestor, or above it.
func (o Options) HasSeparator(ed adapter.Editor, blocks []Block) bool {
	if len(o.SeparatorTypes) == 0 || len(blocks) < 2 {
		return false
	}

	first := blocks[0].Path
	last := blocks[len(blocks)-1].Path
	common := m.Common(first, last)

	return o.separatorBetween(ed, first, common) ||
		o.separatorBetween(ed, last, common) ||
		o.separatorBetween(ed, common, m.Path{})
}

// separatorBetween tests from and each of its ancestors down to and including to.
func (o Options) separatorBetween(ed adapter.Editor, from, to m.Path) bool {
	for depth := len(from); depth >= len(to); depth-- {
		n, err := ed.Node(from[:depth])
		if err == nil && o.IsSeparator(n) {
			return true
		}
	}

	return false
}
