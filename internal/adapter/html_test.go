package adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/listedit/internal/model"
)

func TestHTMLImporter_Import(t *testing.T) {
	const src = `
<p>First <strong>paragraph</strong></p>
<ul>
  <li>Item 1</li>
  <li><p>Item 2</p><ol start="3"><li>Item 2-1</li></ol></li>
</ul>
<div data-type="columns">
  <div data-type="column"><p>Left</p></div>
  <div data-type="column"><p>Right</p></div>
</div>
<div><h2>Title</h2>loose text</div>
<script>alert(1)</script>`

	doc, err := NewHTMLImporter().Import(strings.NewReader(src))
	require.NoError(t, err)

	expected := m.NewDocument(
		p("First paragraph"),
		ul(
			li(p("Item 1")),
			li(p("Item 2"), &m.Node{
				Type:     m.TypeNumberList,
				Data:     map[string]any{"start": "3"},
				Children: []*m.Node{li(p("Item 2-1"))},
			}),
		),
		m.Block(m.TypeColumns,
			m.Block(m.TypeColumn, p("Left")),
			m.Block(m.TypeColumn, p("Right")),
		),
		&m.Node{Type: TypeHeading, Data: map[string]any{"level": 2}, Children: []*m.Node{m.Leaf("Title")}},
		p("loose text"),
	)

	assert.True(t, expected.Equal(doc), "got %+v", doc.Children)
}

func TestHTMLImporter_EmptyElements(t *testing.T) {
	doc, err := NewHTMLImporter().Import(strings.NewReader(`<ul></ul><ul><li></li></ul><p></p>`))
	require.NoError(t, err)

	expected := m.NewDocument(ul(li(p(""))), p(""))
	assert.True(t, expected.Equal(doc), "got %+v", doc.Children)
}

func TestHTMLImporter_Export(t *testing.T) {
	doc := m.NewDocument(
		ul(li(p("a & b"))),
		m.Block(m.TypeColumns, m.Block(m.TypeColumn, p("x"))),
		&m.Node{Type: TypeHeading, Data: map[string]any{"level": 3}, Children: []*m.Node{m.Leaf("T")}},
	)

	var buf bytes.Buffer
	require.NoError(t, NewHTMLImporter().Export(&buf, doc))

	assert.Equal(t,
		"<ul><li><p>a &amp; b</p></li></ul>\n"+
			`<div data-type="columns"><div data-type="column"><p>x</p></div></div>`+"\n"+
			"<h3>T</h3>\n",
		buf.String())

	back, err := NewHTMLImporter().Import(&buf)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}
