package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/toml"
)

func build(t *testing.T, src string, v toml.Version) (*document.Table, []*document.Error) {
	t.Helper()

	p := parser.Parse([]byte(src), v)
	root := ast.NewRoot(p.Root())

	return document.Build(root, v)
}

func TestBuildSimpleTableExample(t *testing.T) {
	t.Parallel()

	src := "title = \"TOML Example\"\n[owner]\nname = \"Tom\"\n"
	tree, errs := build(t, src, toml.V1_0_0)
	require.Empty(t, errs)

	title, ok := tree.Get("title")
	require.True(t, ok)
	assert.Equal(t, "TOML Example", title.(document.String).Raw)

	ownerVal, ok := tree.Get("owner")
	require.True(t, ok)

	owner, ok := ownerVal.(*document.Table)
	require.True(t, ok)
	assert.Equal(t, document.TableExplicit, owner.Kind)

	name, ok := owner.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Tom", name.(document.String).Raw)
}

func TestBuildConflictTableOnDottedKeyThenInlineTable(t *testing.T) {
	t.Parallel()

	_, errs := build(t, "a.b=0\na={}\n", toml.V1_0_0)
	require.NotEmpty(t, errs)
	assert.Equal(t, document.ErrConflictTable, errs[0].Kind)
}

func TestBuildArrayOfTablesAccumulates(t *testing.T) {
	t.Parallel()

	src := "[[fruit]]\nname = \"apple\"\n[[fruit]]\nname = \"banana\"\n"
	tree, errs := build(t, src, toml.V1_0_0)
	require.Empty(t, errs)

	fruitVal, ok := tree.Get("fruit")
	require.True(t, ok)

	fruit, ok := fruitVal.(*document.Array)
	require.True(t, ok)
	assert.Equal(t, document.ArrayOfTables, fruit.Kind)
	require.Len(t, fruit.Values, 2)

	first := fruit.Values[0].(*document.Table)
	name, _ := first.Get("name")
	assert.Equal(t, "apple", name.(document.String).Raw)

	second := fruit.Values[1].(*document.Table)
	name2, _ := second.Get("name")
	assert.Equal(t, "banana", name2.(document.String).Raw)
}

func TestBuildDuplicateKeyRejected(t *testing.T) {
	t.Parallel()

	_, errs := build(t, "a = 1\na = 2\n", toml.V1_0_0)
	require.NotEmpty(t, errs)
	assert.Equal(t, document.ErrDuplicateKey, errs[0].Kind)
}

func TestBuildArrayOfTablesIntoPlainArrayConflicts(t *testing.T) {
	t.Parallel()

	_, errs := build(t, "x = [1, 2]\n[[x]]\ny = 1\n", toml.V1_0_0)
	require.NotEmpty(t, errs)
	assert.Equal(t, document.ErrConflictArray, errs[0].Kind)
}

func TestBuildEmptyDocumentHasEmptyRootTable(t *testing.T) {
	t.Parallel()

	tree, errs := build(t, "", toml.V1_0_0)
	require.Empty(t, errs)
	assert.Equal(t, document.TableRoot, tree.Kind)
	assert.Equal(t, 0, tree.Len())
}

func TestBuildIncompleteValueProducesPlaceholder(t *testing.T) {
	t.Parallel()

	tree, errs := build(t, "a = \n", toml.V1_0_0)
	require.NotEmpty(t, errs)

	val, ok := tree.Get("a")
	require.True(t, ok)
	_, isIncomplete := val.(document.Incomplete)
	assert.True(t, isIncomplete)
}

func TestBuildOmittedSecondsRejectedBeforeV1_1_0Preview(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"local time", "a = 00:00\n"},
		{"local date-time", "a = 2024-01-01T00:00\n"},
		{"offset date-time", "a = 2024-01-01T00:00Z\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, errs := build(t, tc.src, toml.V1_0_0)
			require.NotEmpty(t, errs)
			assert.Equal(t, document.ErrParseDateTime, errs[0].Kind)
		})
	}
}

func TestBuildOmittedSecondsAllowedInV1_1_0Preview(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"local time", "a = 00:00\n"},
		{"local date-time", "a = 2024-01-01T00:00\n"},
		{"offset date-time", "a = 2024-01-01T00:00Z\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, errs := build(t, tc.src, toml.V1_1_0_Preview)
			assert.Empty(t, errs)
		})
	}
}
