package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/listedit/internal/model"
)

const sampleYAML = `children:
  - type: ul_list
    children:
      - type: list_item
        children:
          - type: paragraph
            children:
              - text: Item
selection:
  anchor:
    path: [0, 0, 0, 0]
    offset: 2
  focus:
    path: [0, 0, 0, 0]
    offset: 2
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalDocumentFSAdapter_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := NewLocalDocumentFSAdapter()
	expected := m.NewDocument(ul(li(p("Item"))))

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "doc.yaml")
		writeFile(t, path, sampleYAML)

		doc, err := a.Load(m.FilePath(path))
		require.NoError(t, err)
		assert.True(t, expected.Equal(doc))
		require.NotNil(t, doc.Selection)
		assert.Equal(t, m.Point{Path: m.Path{0, 0, 0, 0}, Offset: 2}, doc.Selection.Anchor)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "doc.json")
		writeFile(t, path, `{"children":[{"type":"ul_list","children":[{"type":"list_item","children":[{"type":"paragraph","children":[{"text":"Item"}]}]}]}]}`)

		doc, err := a.Load(m.FilePath(path))
		require.NoError(t, err)
		assert.True(t, expected.Equal(doc))
		assert.Nil(t, doc.Selection)
	})

	t.Run("html", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "doc.html")
		writeFile(t, path, `<ul><li><p>Item</p></li></ul>`)

		doc, err := a.Load(m.FilePath(path))
		require.NoError(t, err)
		assert.True(t, expected.Equal(doc))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := a.Load(m.FilePath(filepath.Join(dir, "missing.yaml")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalDocumentFSAdapter_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	a := NewLocalDocumentFSAdapter()
	doc := m.NewDocument(p("First paragraph"), ul(li(p("Item 1")), li(p("Item 2"))))
	sel := m.Span(m.Path{0, 0}, m.Path{1, 1, 0, 0})
	doc.Selection = &sel

	for _, name := range []string{"out/doc.yaml", "out/doc.json"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := m.FilePath(filepath.Join(t.TempDir(), name))
			require.NoError(t, a.Save(path, doc))

			back, err := a.Load(path)
			require.NoError(t, err)
			assert.True(t, doc.Equal(back))
			require.NotNil(t, back.Selection)
			assert.Equal(t, sel, *back.Selection)
		})
	}
}

func TestLocalDocumentFSAdapter_Get(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), sampleYAML)
	writeFile(t, filepath.Join(dir, "b.html"), "<p>x</p>")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(dir, ".listedit.yaml"), "merge_policy: never\n")
	writeFile(t, filepath.Join(dir, "nested", "c.json"), "{}")

	a := NewLocalDocumentFSAdapter()

	flat, err := a.Get([]m.FilePath{m.FilePath(dir)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []m.FilePath{
		m.FilePath(filepath.Join(dir, "a.yaml")),
		m.FilePath(filepath.Join(dir, "b.html")),
	}, flat)

	recursive, err := a.Get([]m.FilePath{m.FilePath(dir + "/..."), m.FilePath(filepath.Join(dir, "a.yaml"))})
	require.NoError(t, err)
	assert.Len(t, recursive, 3)
	assert.Contains(t, recursive, m.FilePath(filepath.Join(dir, "nested", "c.json")))

	_, err = a.Get([]m.FilePath{m.FilePath(filepath.Join(dir, "missing"))})
	require.Error(t, err)
}
