package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	point, err := ParsePoint("0.1.0:4")
	require.NoError(t, err)
	assert.Equal(t, Point{Path: Path{0, 1, 0}, Offset: 4}, point)
	assert.Equal(t, "0.1.0:4", point.String())

	point, err = ParsePoint("2.0")
	require.NoError(t, err)
	assert.Equal(t, 0, point.Offset)

	_, err = ParsePoint("2.0:x")
	assert.Error(t, err)
}

func TestSelection_Edges(t *testing.T) {
	forward := Selection{
		Anchor: Point{Path: Path{0, 0}, Offset: 0},
		Focus:  Point{Path: Path{1, 0}, Offset: 16},
	}
	backward := Selection{Anchor: forward.Focus, Focus: forward.Anchor}

	assert.False(t, forward.IsBackward())
	assert.True(t, backward.IsBackward())

	fs, fe := forward.Edges()
	bs, be := backward.Edges()
	assert.Equal(t, fs, bs)
	assert.Equal(t, fe, be)
	assert.Equal(t, Path{0, 0}, bs.Path)
}

func TestSelection_SameLeafOffsets(t *testing.T) {
	sel := Selection{
		Anchor: Point{Path: Path{0, 0}, Offset: 7},
		Focus:  Point{Path: Path{0, 0}, Offset: 2},
	}

	start, end := sel.Edges()
	assert.Equal(t, 2, start.Offset)
	assert.Equal(t, 7, end.Offset)
	assert.False(t, sel.IsCollapsed())
	assert.True(t, Collapsed(Path{0, 0}).IsCollapsed())
}

func TestNode_EqualAndClone(t *testing.T) {
	list := Block(TypeBulletList, Block(TypeListItem, Paragraph("Item")))
	list.Data = map[string]any{"start": 3}

	clone := list.Clone()
	require.True(t, list.Equal(clone))

	clone.Children[0].Children[0].Children[0].Text = "Changed"
	assert.False(t, list.Equal(clone))
	assert.Equal(t, "Item", list.TextContent())

	assert.True(t, Block(TypeParagraph).Equal(&Node{Type: TypeParagraph, Data: map[string]any{}}))
}
