package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/listedit/internal/adapter"
	m "github.com/mouse-blink/listedit/internal/model"
)

func ul(children ...*m.Node) *m.Node { return m.Block(m.TypeBulletList, children...) }

func ol(children ...*m.Node) *m.Node { return m.Block(m.TypeNumberList, children...) }

func li(children ...*m.Node) *m.Node { return m.Block(m.TypeListItem, children...) }

func p(text string) *m.Node { return m.Paragraph(text) }

func columns(children ...*m.Node) *m.Node { return m.Block(m.TypeColumns, children...) }

func column(children ...*m.Node) *m.Node { return m.Block(m.TypeColumn, children...) }

func quote(children ...*m.Node) *m.Node { return m.Block(m.TypeBlockQuote, children...) }

func at(path ...int) m.Path { return m.Path(path) }

// editorFor builds an editor over nodes with sel applied and the list
// normalizer of le installed.
func editorFor(le ListEditor, sel m.Selection, nodes ...*m.Node) *adapter.TreeEditor {
	doc := m.NewDocument(nodes...)
	doc.Selection = &sel

	return adapter.NewTreeEditor(doc, adapter.WithNormalizers(le.Normalizer()))
}

func assertTree(t *testing.T, ed *adapter.TreeEditor, want ...*m.Node) {
	t.Helper()

	got := ed.Document()
	require.NotNil(t, got)

	assert.Equal(t, dump(want), dump(got.Children))
	assert.True(t, m.NewDocument(want...).Equal(got))

	assert.Zero(t, ed.OpenRefs(), "path references left open")
}

// dump renders a forest compactly for failure messages.
func dump(nodes []*m.Node) string {
	out := ""

	for i, n := range nodes {
		if i > 0 {
			out += " "
		}

		if n.IsLeaf() {
			out += "'" + n.Text + "'"

			continue
		}

		out += string(n.Type) + "[" + dump(n.Children) + "]"
	}

	return out
}
