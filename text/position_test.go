package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tombi-toml/tombi/text"
)

func TestRangeAdd(t *testing.T) {
	t.Parallel()

	r1 := text.RangeOf(text.Position{Line: 0, Column: 0}, text.Position{Line: 0, Column: 5})
	r2 := text.RangeOf(text.Position{Line: 1, Column: 2}, text.Position{Line: 1, Column: 8})

	got := r1.Add(r2)

	assert.Equal(t, text.Position{Line: 0, Column: 0}, got.Start)
	assert.Equal(t, text.Position{Line: 1, Column: 8}, got.End)
}

func TestIndexPosition(t *testing.T) {
	t.Parallel()

	src := []byte("abc\ndéf\nghi")
	ix := text.NewIndex(src)

	tcs := map[string]struct {
		offset uint32
		want   text.Position
	}{
		"start of file":         {offset: 0, want: text.Position{Line: 0, Column: 0}},
		"end of first line":     {offset: 3, want: text.Position{Line: 0, Column: 3}},
		"start of second line":  {offset: 4, want: text.Position{Line: 1, Column: 0}},
		"after multibyte rune":  {offset: 4 + 1 + 2, want: text.Position{Line: 1, Column: 2}},
		"start of third line":   {offset: 9, want: text.Position{Line: 2, Column: 0}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ix.Position(tc.offset))
		})
	}
}

func TestIndexOffsetRoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte("key = 1\nother = 2\n")
	ix := text.NewIndex(src)

	pos := ix.Position(8)
	assert.Equal(t, uint32(8), ix.Offset(pos))
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	r := text.RangeOf(text.Position{Line: 0, Column: 0}, text.Position{Line: 0, Column: 10})

	assert.True(t, r.Contains(text.Position{Line: 0, Column: 5}))
	assert.False(t, r.Contains(text.Position{Line: 1, Column: 0}))
}
