package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/toml"
)

func formatSrc(t *testing.T, src string, opts format.Options, hints format.SchemaHints) string {
	t.Helper()

	p := parser.Parse([]byte(src), toml.V1_0_0)
	require.Empty(t, p.Errors)

	root := ast.NewRoot(p.Root())

	return format.Format(root, opts, hints)
}

func TestFormatNormalizesSpacingAroundEquals(t *testing.T) {
	t.Parallel()

	got := formatSrc(t, "title=\"TOML Example\"\n", format.Default(), nil)
	assert.Equal(t, "title = \"TOML Example\"\n", got)
}

func TestFormatIsIdempotent(t *testing.T) {
	t.Parallel()

	src := "title = \"TOML Example\"\n\n[owner]\nname = \"Tom\"\n"
	once := formatSrc(t, src, format.Default(), nil)
	twice := formatSrc(t, once, format.Default(), nil)
	assert.Equal(t, once, twice)
}

func TestFormatTableHeaderAndKeyValues(t *testing.T) {
	t.Parallel()

	src := "[owner]\nname=\"Tom\"\ndob=1979-05-27T07:32:00-08:00\n"
	got := formatSrc(t, src, format.Default(), nil)
	assert.Equal(t, "[owner]\nname = \"Tom\"\ndob = 1979-05-27T07:32:00-08:00\n", got)
}

func TestFormatQuoteStyleSingle(t *testing.T) {
	t.Parallel()

	opts := format.Default()
	opts.QuoteStyle = format.QuoteSingle

	got := formatSrc(t, "name = \"Tom\"\n", opts, nil)
	assert.Equal(t, "name = 'Tom'\n", got)
}

func TestFormatQuoteStyleSingleFallsBackOnApostrophe(t *testing.T) {
	t.Parallel()

	opts := format.Default()
	opts.QuoteStyle = format.QuoteSingle

	got := formatSrc(t, "name = \"o'clock\"\n", opts, nil)
	assert.Equal(t, "name = \"o'clock\"\n", got)
}

func TestFormatDateTimeDelimiterSpace(t *testing.T) {
	t.Parallel()

	opts := format.Default()
	opts.DateTimeDelimiter = format.DelimiterSpace

	got := formatSrc(t, "dob = 1979-05-27T07:32:00-08:00\n", opts, nil)
	assert.Equal(t, "dob = 1979-05-27 07:32:00-08:00\n", got)
}

func TestFormatArrayStaysInlineWithinLineWidth(t *testing.T) {
	t.Parallel()

	got := formatSrc(t, "values=[1,2,3]\n", format.Default(), nil)
	assert.Equal(t, "values = [ 1, 2, 3 ]\n", got)
}

func TestFormatArrayBreaksPastLineWidth(t *testing.T) {
	t.Parallel()

	opts := format.Default()
	opts.LineWidth = 20

	got := formatSrc(t, "values=[111,222,333,444,555]\n", opts, nil)
	assert.Equal(t, "values = [\n  111,\n  222,\n  333,\n  444,\n  555,\n]\n", got)
}

func TestFormatReordersTableKeysAscending(t *testing.T) {
	t.Parallel()

	hints := format.SchemaHints{
		"": format.Hint{TableKeysOrder: schema.KeysOrderAscending},
	}

	got := formatSrc(t, "zebra = 1\napple = 2\n", format.Default(), hints)
	assert.Equal(t, "apple = 2\nzebra = 1\n", got)
}

func TestFormatReordersTableKeysBySchemaPropertyOrder(t *testing.T) {
	t.Parallel()

	hints := format.SchemaHints{
		"server": {
			TableKeysOrder: schema.KeysOrderSchema,
			PropertyOrder:  []string{"host", "port"},
		},
	}

	got := formatSrc(t, "[server]\nport = 8080\nhost = \"localhost\"\n", format.Default(), hints)
	assert.Equal(t, "[server]\nhost = \"localhost\"\nport = 8080\n", got)
}

func TestFormatReordersArrayValuesDescending(t *testing.T) {
	t.Parallel()

	hints := format.SchemaHints{
		"values": {ArrayValuesOrder: schema.ValuesOrderDescending},
	}

	got := formatSrc(t, "values = [1, 3, 2]\n", format.Default(), hints)
	assert.Equal(t, "values = [ 3, 2, 1 ]\n", got)
}

func TestFormatInlineTableStaysOnOneLine(t *testing.T) {
	t.Parallel()

	got := formatSrc(t, "point={x=1,y=2}\n", format.Default(), nil)
	assert.Equal(t, "point = { x = 1, y = 2 }\n", got)
}

func TestFormatPreservesComments(t *testing.T) {
	t.Parallel()

	src := "# leading\ntitle = \"x\" # trailing\n"
	got := formatSrc(t, src, format.Default(), nil)
	assert.Equal(t, src, got)
}
