package controller

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/listedit/internal/model"
)

// treeLine is one rendered row of a document tree. Blocks holding only text
// are rendered on a single row together with their text.
type treeLine struct {
	depth int
	path  m.Path
	node  *m.Node
	text  string
	mark  string
}

const (
	markCaret  = "caret"
	markAnchor = "anchor"
	markFocus  = "focus"
)

func flattenDocument(doc *m.Document) []treeLine {
	var lines []treeLine

	for i, child := range doc.Children {
		lines = flattenNode(lines, child, m.Path{i}, 0)
	}

	if doc.Selection != nil {
		markSelection(lines, *doc.Selection)
	}

	return lines
}

func flattenNode(lines []treeLine, n *m.Node, path m.Path, depth int) []treeLine {
	if n.IsLeaf() || !n.HasBlockChildren() {
		return append(lines, treeLine{depth: depth, path: path, node: n, text: n.TextContent()})
	}

	lines = append(lines, treeLine{depth: depth, path: path, node: n})

	for i, child := range n.Children {
		lines = flattenNode(lines, child, path.Child(i), depth+1)
	}

	return lines
}

func markSelection(lines []treeLine, sel m.Selection) {
	anchor := lineFor(lines, sel.Anchor.Path)
	focus := lineFor(lines, sel.Focus.Path)

	if anchor >= 0 && anchor == focus {
		lines[anchor].mark = markCaret
		if !sel.IsCollapsed() {
			lines[anchor].mark = markAnchor + "+" + markFocus
		}

		return
	}

	if anchor >= 0 {
		lines[anchor].mark = markAnchor
	}

	if focus >= 0 {
		lines[focus].mark = markFocus
	}
}

// lineFor returns the deepest line whose path is at or above path.
func lineFor(lines []treeLine, path m.Path) int {
	found := -1

	for i, line := range lines {
		if line.path.Equal(path) || line.path.IsAncestorOf(path) {
			found = i
		}
	}

	return found
}

// label describes a node: its type, data attributes and a quoted text.
func (l treeLine) label() string {
	var b strings.Builder

	if l.node.IsLeaf() {
		b.WriteString("text")
	} else {
		b.WriteString(string(l.node.Type))
	}

	if len(l.node.Data) > 0 {
		b.WriteString(" " + formatData(l.node.Data))
	}

	if l.node.IsLeaf() || (len(l.node.Children) > 0 && !l.node.HasBlockChildren()) {
		b.WriteString(" " + strconv.Quote(l.text))
	}

	return b.String()
}

func formatData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}

	return "{" + strings.Join(parts, " ") + "}"
}
