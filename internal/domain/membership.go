package domain

import (
	"github.com/mouse-blink/listedit/internal/adapter"
)

// IsListed reports whether b is a list or sits below one.
func (o Options) IsListed(ed adapter.Editor, b Block) bool {
	if b.Kind == KindList {
		return true
	}

	_, ok := ed.Above(b.Path, o.matchList)

	return ok
}

// partitionListed splits blocks into listed and unlisted ones, keeping order.
func (o Options) partitionListed(ed adapter.Editor, blocks []Block) (listed, unlisted []Block) {
	for _, b := range blocks {
		if o.IsListed(ed, b) {
			listed = append(listed, b)
		} else {
			unlisted = append(unlisted, b)
		}
	}

	return listed, unlisted
}
