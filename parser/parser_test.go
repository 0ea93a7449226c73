package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/toml"
)

func TestParseSimpleKeyValueRoundTrips(t *testing.T) {
	t.Parallel()

	src := "title = \"TOML Example\"\n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.Empty(t, p.Errors)
	assert.Equal(t, src, p.Root().Text())
}

func TestParseTableAndArrayOfTable(t *testing.T) {
	t.Parallel()

	src := "[a.b]\nx = 1\n\n[[a.c]]\ny = 2\n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.Empty(t, p.Errors)
	assert.Equal(t, src, p.Root().Text())

	root := p.Root()
	tables := root.ChildNodesOfKind(syntax.KindTable)
	require.Len(t, tables, 1)

	aots := root.ChildNodesOfKind(syntax.KindArrayOfTable)
	require.Len(t, aots, 1)
}

func TestParseArrayWithNewlinesAndTrailingComma(t *testing.T) {
	t.Parallel()

	src := "xs = [\n  1,\n  2,\n]\n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.Empty(t, p.Errors)
	assert.Equal(t, src, p.Root().Text())
}

func TestParseInlineTableSingleLine(t *testing.T) {
	t.Parallel()

	src := "point = { x = 1, y = 2 }\n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.Empty(t, p.Errors)
	assert.Equal(t, src, p.Root().Text())
}

func TestParseMultiLineInlineTableRejectedUnderV1_0_0(t *testing.T) {
	t.Parallel()

	src := "point = {\n  x = 1,\n  y = 2\n}\n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.NotEmpty(t, p.Errors)
	assert.Equal(t, parser.ErrInlineTableMustSingleLine, p.Errors[0].Kind)
	assert.Equal(t, toml.V1_1_0_Preview, p.Errors[0].MinVersion)
	assert.Equal(t, src, p.Root().Text())
}

func TestParseMultiLineInlineTableAllowedUnderV1_1_0Preview(t *testing.T) {
	t.Parallel()

	src := "point = {\n  x = 1,\n  y = 2,\n}\n"
	p := parser.Parse([]byte(src), toml.V1_1_0_Preview)
	require.Empty(t, p.Errors)
	assert.Equal(t, src, p.Root().Text())
}

func TestParseMissingValueProducesExpectedValueError(t *testing.T) {
	t.Parallel()

	src := "key = \n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.NotEmpty(t, p.Errors)
	assert.Equal(t, parser.ErrExpectedValue, p.Errors[0].Kind)
	assert.Equal(t, src, p.Root().Text())
}

func TestParseIsTotalOnGarbageInput(t *testing.T) {
	t.Parallel()

	src := "@@@ not toml at all ]]] {{{ \n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	assert.Equal(t, src, p.Root().Text())
	assert.NotEmpty(t, p.Errors)
}

func TestParseRetainsCommentsLosslessly(t *testing.T) {
	t.Parallel()

	src := "# leading\ntitle = \"x\" # trailing\n"
	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.Empty(t, p.Errors)
	assert.Equal(t, src, p.Root().Text())
}
