package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/syntax"
)

func TestGreenNodeTextRoundTrips(t *testing.T) {
	t.Parallel()

	key := syntax.NewGreenNode(syntax.KindKey, []syntax.GreenChild{
		syntax.NewGreenToken(syntax.KindBareKey, "title"),
	})
	value := syntax.NewGreenNode(syntax.KindValue, []syntax.GreenChild{
		syntax.NewGreenToken(syntax.KindBasicString, `"TOML Example"`),
	})
	kv := syntax.NewGreenNode(syntax.KindKeyValue, []syntax.GreenChild{
		syntax.NewGreenNodeChild(key),
		syntax.NewGreenToken(syntax.KindWhitespace, " "),
		syntax.NewGreenToken(syntax.KindEqual, "="),
		syntax.NewGreenToken(syntax.KindWhitespace, " "),
		syntax.NewGreenNodeChild(value),
	})
	root := syntax.NewGreenNode(syntax.KindRoot, []syntax.GreenChild{
		syntax.NewGreenNodeChild(kv),
	})

	assert.Equal(t, `title = "TOML Example"`, root.Text())
	assert.Equal(t, uint32(len(`title = "TOML Example"`)), root.TextLen)
}

func TestRedTreeOffsets(t *testing.T) {
	t.Parallel()

	a := syntax.NewGreenToken(syntax.KindBareKey, "aaa")
	ws := syntax.NewGreenToken(syntax.KindWhitespace, " ")
	b := syntax.NewGreenToken(syntax.KindBareKey, "bbb")
	root := syntax.NewGreenNode(syntax.KindRoot, []syntax.GreenChild{a, ws, b})

	red := syntax.NewRoot(root)
	children := red.Children()
	require.Len(t, children, 3)

	assert.Equal(t, uint32(0), children[0].Span().Start)
	assert.Equal(t, uint32(3), children[0].Span().End)
	assert.Equal(t, uint32(4), children[2].Span().Start)
	assert.Equal(t, uint32(7), children[2].Span().End)
}

func TestNodeAtOffset(t *testing.T) {
	t.Parallel()

	key := syntax.NewGreenNode(syntax.KindKey, []syntax.GreenChild{
		syntax.NewGreenToken(syntax.KindBareKey, "title"),
	})
	root := syntax.NewGreenNode(syntax.KindRoot, []syntax.GreenChild{
		syntax.NewGreenNodeChild(key),
	})

	red := syntax.NewRoot(root)
	node, tok := red.NodeAtOffset(2)

	require.NotNil(t, tok)
	assert.Equal(t, syntax.KindBareKey, tok.Kind())
	assert.Equal(t, syntax.KindKey, node.Kind())
}
