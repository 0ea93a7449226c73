package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/syntax"
)

func kinds(tokens []lexer.Token) []syntax.Kind {
	out := make([]syntax.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}

	return out
}

func TestLexSimpleKeyValue(t *testing.T) {
	t.Parallel()

	tokens, errs := lexer.Lex([]byte(`title = "TOML"` + "\n"))
	require.Empty(t, errs)

	assert.Equal(t, []syntax.Kind{
		syntax.KindBareKey,
		syntax.KindWhitespace,
		syntax.KindEqual,
		syntax.KindWhitespace,
		syntax.KindBasicString,
		syntax.KindNewline,
		syntax.KindEOF,
	}, kinds(tokens))
}

func TestLexNumbers(t *testing.T) {
	t.Parallel()

	cases := map[string]syntax.Kind{
		"42":         syntax.KindIntegerDec,
		"-17":        syntax.KindIntegerDec,
		"+9":         syntax.KindIntegerDec,
		"1_000":      syntax.KindIntegerDec,
		"0xDEADBEEF": syntax.KindIntegerHex,
		"0o755":      syntax.KindIntegerOct,
		"0b1010":     syntax.KindIntegerBin,
		"3.14":       syntax.KindFloat,
		"1e10":       syntax.KindFloat,
		"inf":        syntax.KindFloat,
		"-inf":       syntax.KindFloat,
		"nan":        syntax.KindFloat,
	}

	for src, want := range cases {
		src, want := src, want

		t.Run(src, func(t *testing.T) {
			t.Parallel()

			tokens, errs := lexer.Lex([]byte(src))
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, want, tokens[0].Kind)
			assert.Equal(t, src, tokens[0].Text)
		})
	}
}

func TestLexBooleans(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"true", "false"} {
		tokens, errs := lexer.Lex([]byte(src))
		require.Empty(t, errs)
		require.Len(t, tokens, 2)
		assert.Equal(t, syntax.KindBoolean, tokens[0].Kind)
	}
}

func TestLexDateTimes(t *testing.T) {
	t.Parallel()

	cases := map[string]syntax.Kind{
		"1979-05-27T07:32:00Z":         syntax.KindOffsetDateTime,
		"1979-05-27T00:32:00.999999":   syntax.KindLocalDateTime,
		"1979-05-27T00:32:00-07:00":    syntax.KindOffsetDateTime,
		"1979-05-27 07:32:00":          syntax.KindLocalDateTime,
		"1979-05-27":                   syntax.KindLocalDate,
		"07:32:00":                     syntax.KindLocalTime,
		"07:32":                        syntax.KindLocalTime,
	}

	for src, want := range cases {
		src, want := src, want

		t.Run(src, func(t *testing.T) {
			t.Parallel()

			tokens, errs := lexer.Lex([]byte(src))
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, want, tokens[0].Kind)
			assert.Equal(t, src, tokens[0].Text)
		})
	}
}

func TestLexBasicString(t *testing.T) {
	t.Parallel()

	tokens, errs := lexer.Lex([]byte(`"hello \"world\""`))
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, syntax.KindBasicString, tokens[0].Kind)
	assert.Equal(t, `"hello \"world\""`, tokens[0].Text)
}

func TestLexMultiLineBasicString(t *testing.T) {
	t.Parallel()

	src := "\"\"\"\nline one\nline \"two\"\"\"\""
	tokens, errs := lexer.Lex([]byte(src))
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, syntax.KindMultiLineBasicString, tokens[0].Kind)
}

func TestLexLiteralString(t *testing.T) {
	t.Parallel()

	tokens, errs := lexer.Lex([]byte(`'C:\Users\nodejs'`))
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, syntax.KindLiteralString, tokens[0].Kind)
}

func TestLexUnterminatedStringProducesError(t *testing.T) {
	t.Parallel()

	_, errs := lexer.Lex([]byte(`"unterminated`))
	require.NotEmpty(t, errs)
	assert.Equal(t, lexer.ErrInvalidBasicString, errs[0].Kind)
}

func TestLexArrayAndInlineTableBrackets(t *testing.T) {
	t.Parallel()

	tokens, errs := lexer.Lex([]byte(`[[a.b]]`))
	require.Empty(t, errs)
	assert.Equal(t, []syntax.Kind{
		syntax.KindDoubleBracketStart,
		syntax.KindBareKey,
		syntax.KindDot,
		syntax.KindBareKey,
		syntax.KindDoubleBracketEnd,
		syntax.KindEOF,
	}, kinds(tokens))
}

func TestHeaderComments(t *testing.T) {
	t.Parallel()

	src := []byte("# a comment\n#:schema https://example.com/schema.json\ntitle = 1\n")
	url, ok := lexer.HeaderComments(src)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/schema.json", url)
}

func TestHeaderCommentsStopsAtNonComment(t *testing.T) {
	t.Parallel()

	_, ok := lexer.HeaderComments([]byte("title = 1\n#:schema https://example.com/schema.json\n"))
	assert.False(t, ok)
}

func TestDecodeBasicStringEscapes(t *testing.T) {
	t.Parallel()

	got, errs := lexer.DecodeBasicString(`"a\tb\n\u00e9"`)
	require.Empty(t, errs)
	assert.Equal(t, "a\tb\né", got)
}

func TestDecodeLiteralStringNoEscapes(t *testing.T) {
	t.Parallel()

	got, errs := lexer.DecodeLiteralString(`'C:\Users\nodejs'`)
	require.Empty(t, errs)
	assert.Equal(t, `C:\Users\nodejs`, got)
}

func TestDecodeMultiLineLiteralStringTrimsLeadingNewline(t *testing.T) {
	t.Parallel()

	got, errs := lexer.DecodeLiteralString("'''\nfirst line'''")
	require.Empty(t, errs)
	assert.Equal(t, "first line", got)
}
