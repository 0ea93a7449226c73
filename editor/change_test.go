package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/editor"
	"github.com/tombi-toml/tombi/syntax"
)

func TestApplyReplaceToken(t *testing.T) {
	t.Parallel()

	key := syntax.NewGreenToken(syntax.KindBareKey, "a")
	eq := syntax.NewGreenToken(syntax.KindEqual, "=")
	val := syntax.NewGreenToken(syntax.KindIntegerDec, "1")

	kv := syntax.NewGreenNode(syntax.KindKeyValue, []syntax.GreenChild{key, eq, val})
	root := syntax.NewGreenNode(syntax.KindRoot, []syntax.GreenChild{syntax.NewGreenNodeChild(kv)})

	red := syntax.NewRoot(root)
	valSpan := red.ChildNodes()[0].ChildTokens()[2].Span()

	edited := editor.Apply(red, []editor.Change{
		editor.Replace(valSpan, []syntax.GreenChild{syntax.NewGreenToken(syntax.KindIntegerDec, "2")}),
	})

	require.Equal(t, "a=2", edited.Text())
}

func TestApplyUntouchedSubtreeIsShared(t *testing.T) {
	t.Parallel()

	kv1 := syntax.NewGreenNode(syntax.KindKeyValue, []syntax.GreenChild{
		syntax.NewGreenToken(syntax.KindBareKey, "a"),
		syntax.NewGreenToken(syntax.KindEqual, "="),
		syntax.NewGreenToken(syntax.KindIntegerDec, "1"),
	})
	kv2 := syntax.NewGreenNode(syntax.KindKeyValue, []syntax.GreenChild{
		syntax.NewGreenToken(syntax.KindBareKey, "b"),
		syntax.NewGreenToken(syntax.KindEqual, "="),
		syntax.NewGreenToken(syntax.KindIntegerDec, "2"),
	})
	root := syntax.NewGreenNode(syntax.KindRoot, []syntax.GreenChild{
		syntax.NewGreenNodeChild(kv1),
		syntax.NewGreenNodeChild(kv2),
	})

	red := syntax.NewRoot(root)
	bSpan := red.ChildNodes()[1].ChildTokens()[0].Span()

	edited := editor.Apply(red, []editor.Change{
		editor.Replace(bSpan, []syntax.GreenChild{syntax.NewGreenToken(syntax.KindBareKey, "bb")}),
	})

	assert.Same(t, kv1, edited.Green().Children[0].Node)
	assert.Equal(t, "a=1bb=2", edited.Text())
}

func TestApplyInsertAndRemove(t *testing.T) {
	t.Parallel()

	tok := syntax.NewGreenToken(syntax.KindIntegerDec, "1")
	root := syntax.NewGreenNode(syntax.KindRoot, []syntax.GreenChild{tok})
	red := syntax.NewRoot(root)

	withInsert := editor.Apply(red, []editor.Change{
		editor.InsertAt(0, []syntax.GreenChild{syntax.NewGreenToken(syntax.KindComment, "# c\n")}),
	})
	assert.Equal(t, "# c\n1", withInsert.Text())

	withRemove := editor.Apply(red, []editor.Change{
		editor.RemoveSpan(red.ChildTokens()[0].Span()),
	})
	assert.Equal(t, "", withRemove.Text())
}

func TestApplyNoChangesReturnsSameNode(t *testing.T) {
	t.Parallel()

	root := syntax.NewGreenNode(syntax.KindRoot, nil)
	red := syntax.NewRoot(root)

	assert.Same(t, red, editor.Apply(red, nil))
}
