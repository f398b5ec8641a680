package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/listedit/internal/model"
)

func ul(children ...*m.Node) *m.Node { return m.Block(m.TypeBulletList, children...) }

func li(children ...*m.Node) *m.Node { return m.Block(m.TypeListItem, children...) }

func p(text string) *m.Node { return m.Paragraph(text) }

func texts(nodes []*m.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.TextContent())
	}

	return out
}

func TestTreeEditor_Queries(t *testing.T) {
	doc := m.NewDocument(p("a"), ul(li(p("b")), li(p("c"))), p("d"))
	ed := NewTreeEditor(doc)

	t.Run("node lookup", func(t *testing.T) {
		n, err := ed.Node(m.Path{1, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, "c", n.TextContent())

		_, err = ed.Node(m.Path{5})
		require.ErrorIs(t, err, ErrNodeNotFound)
		assert.False(t, ed.Has(m.Path{1, 2}))
		assert.True(t, ed.Has(m.Path{1, 1, 0, 0}))
	})

	t.Run("above skips the root", func(t *testing.T) {
		entry, ok := ed.Above(m.Path{1, 0, 0, 0}, func(n *m.Node, _ m.Path) bool {
			return n.Type == m.TypeBulletList
		})
		require.True(t, ok)
		assert.Equal(t, m.Path{1}, entry.Path)

		_, ok = ed.Above(m.Path{0, 0}, func(n *m.Node, _ m.Path) bool { return n.Type == m.TypeDocument })
		assert.False(t, ok)
	})

	t.Run("siblings", func(t *testing.T) {
		prev, ok := ed.Previous(m.Path{1})
		require.True(t, ok)
		assert.Equal(t, "a", prev.Node.TextContent())

		_, ok = ed.Previous(m.Path{0})
		assert.False(t, ok)

		next, ok := ed.Next(m.Path{1})
		require.True(t, ok)
		assert.Equal(t, m.Path{2}, next.Path)

		_, ok = ed.Next(m.Path{2})
		assert.False(t, ok)
	})

	t.Run("nodes in range include ancestors", func(t *testing.T) {
		entries := ed.Nodes(m.Path{1, 1, 0, 0}, m.Path{2, 0}, func(n *m.Node, _ m.Path) bool {
			return n.IsBlock()
		})

		var paths []string
		for _, e := range entries {
			paths = append(paths, e.Path.String())
		}

		assert.Equal(t, []string{"1", "1.1", "1.1.0", "2"}, paths)
	})

	t.Run("start and end", func(t *testing.T) {
		assert.Equal(t, m.Point{Path: m.Path{1, 0, 0, 0}}, ed.Start(m.Path{1}))
		assert.Equal(t, m.Point{Path: m.Path{1, 1, 0, 0}, Offset: 1}, ed.End(m.Path{1}))
	})
}

func TestTreeEditor_WrapAndUnwrap(t *testing.T) {
	doc := m.NewDocument(p("a"), p("b"), p("c"))
	ed := NewTreeEditor(doc)

	require.NoError(t, ed.WrapNodes(m.Block(m.TypeBulletList), m.Path{}, 0, 1))

	root := ed.Root()
	require.Len(t, root.Children, 2)
	assert.Equal(t, m.TypeBulletList, root.Children[0].Type)
	assert.Equal(t, []string{"a", "b"}, texts(root.Children[0].Children))

	require.NoError(t, ed.WrapNode(m.Block(m.TypeListItem), m.Path{0, 1}))
	assert.Equal(t, m.TypeListItem, root.Children[0].Children[1].Type)

	require.NoError(t, ed.UnwrapNode(m.Path{0}))
	assert.Equal(t, []m.NodeType{m.TypeParagraph, m.TypeListItem, m.TypeParagraph},
		[]m.NodeType{root.Children[0].Type, root.Children[1].Type, root.Children[2].Type})

	require.ErrorIs(t, ed.UnwrapNode(m.Path{}), ErrRootNode)
	require.ErrorIs(t, ed.UnwrapNode(m.Path{0, 0}), ErrNotBlock)
	require.ErrorIs(t, ed.WrapNodes(m.Block(m.TypeBulletList), m.Path{}, 2, 5), ErrInvalidPath)
}

func TestTreeEditor_LiftNode(t *testing.T) {
	tests := []struct {
		name     string
		at       m.Path
		expected *m.Node
	}{
		{
			name:     "first child moves before parent",
			at:       m.Path{0, 0},
			expected: m.Block(m.TypeDocument, li(p("1")), ul(li(p("2")), li(p("3")))),
		},
		{
			name:     "last child moves after parent",
			at:       m.Path{0, 2},
			expected: m.Block(m.TypeDocument, ul(li(p("1")), li(p("2"))), li(p("3"))),
		},
		{
			name:     "middle child splits parent",
			at:       m.Path{0, 1},
			expected: m.Block(m.TypeDocument, ul(li(p("1"))), li(p("2")), ul(li(p("3")))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := NewTreeEditor(m.NewDocument(ul(li(p("1")), li(p("2")), li(p("3")))))

			require.NoError(t, ed.LiftNode(tt.at))
			assert.True(t, tt.expected.Equal(ed.Root()), "got %+v", ed.Root().Children)
		})
	}

	t.Run("only child leaves an empty parent", func(t *testing.T) {
		ed := NewTreeEditor(m.NewDocument(ul(li(p("1")))))

		require.NoError(t, ed.LiftNode(m.Path{0, 0}))
		require.Len(t, ed.Root().Children, 2)
		assert.Empty(t, ed.Root().Children[0].Children)
		assert.Equal(t, m.TypeListItem, ed.Root().Children[1].Type)
	})

	t.Run("top level node cannot be lifted", func(t *testing.T) {
		ed := NewTreeEditor(m.NewDocument(p("1")))
		require.ErrorIs(t, ed.LiftNode(m.Path{0}), ErrInvalidPath)
	})
}

func TestTreeEditor_MoveInsertRemove(t *testing.T) {
	ed := NewTreeEditor(m.NewDocument(p("a"), p("b"), p("c")))

	require.NoError(t, ed.MoveNode(m.Path{0}, m.Path{3}))
	assert.Equal(t, []string{"b", "c", "a"}, texts(ed.Root().Children))

	require.NoError(t, ed.MoveNode(m.Path{2}, m.Path{0}))
	assert.Equal(t, []string{"a", "b", "c"}, texts(ed.Root().Children))

	require.NoError(t, ed.InsertNodes([]*m.Node{p("x"), p("y")}, m.Path{1}))
	assert.Equal(t, []string{"a", "x", "y", "b", "c"}, texts(ed.Root().Children))

	require.NoError(t, ed.RemoveNode(m.Path{2}))
	assert.Equal(t, []string{"a", "x", "b", "c"}, texts(ed.Root().Children))

	require.ErrorIs(t, ed.RemoveNode(m.Path{9}), ErrNodeNotFound)
	require.ErrorIs(t, ed.MoveNode(m.Path{0}, m.Path{0, 0}), ErrInvalidPath)
}

func TestPathRef_FollowsNode(t *testing.T) {
	ed := NewTreeEditor(m.NewDocument(p("a"), p("b"), p("c")))

	ref := ed.PathRef(m.Path{2})
	assert.Equal(t, 1, ed.OpenRefs())

	require.NoError(t, ed.RemoveNode(m.Path{0}))

	path, ok := ref.Current()
	require.True(t, ok)
	assert.Equal(t, m.Path{1}, path)

	require.NoError(t, ed.WrapNode(m.Block(m.TypeListItem), m.Path{1}))

	path, ok = ref.Current()
	require.True(t, ok)
	assert.Equal(t, m.Path{1, 0}, path)

	require.NoError(t, ed.RemoveNode(m.Path{1}))

	_, ok = ref.Current()
	assert.False(t, ok)

	_, ok = ref.Unref()
	assert.False(t, ok)
	assert.Equal(t, 0, ed.OpenRefs())

	missing := ed.PathRef(m.Path{7})
	_, ok = missing.Current()
	assert.False(t, ok)
	missing.Unref()
	assert.Equal(t, 0, ed.OpenRefs())
}

func TestTreeEditor_SelectionTracksContent(t *testing.T) {
	doc := m.NewDocument(p("a"), p("b"))
	doc.Selection = &m.Selection{
		Anchor: m.Point{Path: m.Path{0, 0}, Offset: 1},
		Focus:  m.Point{Path: m.Path{1, 0}},
	}
	ed := NewTreeEditor(doc)

	require.NoError(t, ed.WrapNodes(m.Block(m.TypeBulletList), m.Path{}, 0, 1))

	sel, ok := ed.Selection()
	require.True(t, ok)
	assert.Equal(t, m.Point{Path: m.Path{0, 0, 0}, Offset: 1}, sel.Anchor)
	assert.Equal(t, m.Point{Path: m.Path{0, 1, 0}}, sel.Focus)
	assert.Equal(t, 0, ed.OpenRefs())

	ed.Deselect()
	_, ok = ed.Selection()
	assert.False(t, ok)
	assert.Nil(t, ed.Document().Selection)
}

// mergeLists joins a list into a following list of the same type.
var mergeLists = NormalizeFunc(func(ed Editor, entry Entry) bool {
	if entry.Node.Type != m.TypeBulletList {
		return false
	}

	next, ok := ed.Next(entry.Path)
	if !ok || next.Node.Type != m.TypeBulletList {
		return false
	}

	for i := len(entry.Node.Children) - 1; i >= 0; i-- {
		if err := ed.MoveNode(entry.Path.Child(i), next.Path.Child(0)); err != nil {
			return false
		}
	}

	return ed.RemoveNode(entry.Path) == nil
})

func TestTreeEditor_Normalization(t *testing.T) {
	t.Run("runs after each primitive outside a scope", func(t *testing.T) {
		ed := NewTreeEditor(m.NewDocument(ul(li(p("1"))), p("x"), ul(li(p("2")))), WithNormalizers(mergeLists))

		require.NoError(t, ed.RemoveNode(m.Path{1}))

		require.Len(t, ed.Root().Children, 1)
		assert.Equal(t, []string{"1", "2"}, texts(ed.Root().Children[0].Children))
	})

	t.Run("deferred until the outermost scope exits", func(t *testing.T) {
		ed := NewTreeEditor(m.NewDocument(p("a"), p("b"), p("c")), WithNormalizers(mergeLists))

		ed.WithoutNormalizing(func() {
			require.NoError(t, ed.WrapNode(m.Block(m.TypeBulletList), m.Path{0}))
			ed.WithoutNormalizing(func() {
				require.NoError(t, ed.WrapNode(m.Block(m.TypeBulletList), m.Path{1}))
			})
			assert.Len(t, ed.Root().Children, 3)
			require.NoError(t, ed.WrapNode(m.Block(m.TypeBulletList), m.Path{2}))
		})

		require.Len(t, ed.Root().Children, 1)
		assert.Equal(t, []string{"a", "b", "c"}, texts(ed.Root().Children[0].Children))
	})

	t.Run("bounded passes", func(t *testing.T) {
		flips := 0
		flip := NormalizeFunc(func(_ Editor, _ Entry) bool {
			flips++

			return true
		})
		ed := NewTreeEditor(m.NewDocument(p("a")), WithNormalizers(flip), WithMaxNormalizePasses(5))

		ed.Normalize()
		assert.Equal(t, 5, flips)
	})
}
