package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{name: "root", input: "", want: Path{}},
		{name: "single", input: "3", want: Path{3}},
		{name: "nested", input: "0.1.2", want: Path{0, 1, 2}},
		{name: "negative", input: "0.-1", wantErr: true},
		{name: "garbage", input: "a.b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestPath_Relations(t *testing.T) {
	assert.True(t, Path{0}.IsAncestorOf(Path{0, 1}))
	assert.False(t, Path{0, 1}.IsAncestorOf(Path{0, 1}))
	assert.True(t, Path{0, 1, 2}.IsDescendantOf(Path{0}))
	assert.True(t, Path{0, 1}.IsParentOf(Path{0, 1, 0}))
	assert.False(t, Path{0}.IsParentOf(Path{0, 1, 0}))
	assert.True(t, Path{1, 2}.IsSibling(Path{1, 0}))
	assert.False(t, Path{1, 2}.IsSibling(Path{1, 2}))
	assert.False(t, Path{}.IsSibling(Path{}))
}

func TestPath_Compare(t *testing.T) {
	assert.Equal(t, -1, Path{0, 1}.Compare(Path{0, 2}))
	assert.Equal(t, 1, Path{1}.Compare(Path{0, 5}))
	assert.Equal(t, 0, Path{0}.Compare(Path{0, 3}), "ancestors compare equal")
	assert.True(t, Path{0, 9}.Before(Path{1}))
}

func TestPath_Navigation(t *testing.T) {
	p := Path{2, 3}

	assert.Equal(t, Path{2, 4}, p.Next())
	assert.Equal(t, Path{2}, p.Parent())
	assert.Equal(t, Path{2, 3, 0}, p.Child(0))
	assert.Equal(t, 3, p.Index())
	assert.Equal(t, -1, Path{}.Index())

	prev, ok := p.Previous()
	require.True(t, ok)
	assert.Equal(t, Path{2, 2}, prev)

	_, ok = Path{2, 0}.Previous()
	assert.False(t, ok)

	assert.Equal(t, Path{2, 3}, p, "navigation does not mutate the receiver")
}

func TestCommon(t *testing.T) {
	assert.Equal(t, Path{0, 1}, Common(Path{0, 1, 0, 0}, Path{0, 1, 1, 0, 0, 0}))
	assert.Equal(t, Path{}, Common(Path{0, 0}, Path{1, 0, 0, 0}))
	assert.Equal(t, Path{4}, Common(Path{4}, Path{4, 2}))
	assert.Equal(t, Path{1, 0}, Path{0, 2, 1, 0}.Relative(Path{0, 2}))
}
