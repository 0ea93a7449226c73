package document

import (
	"strconv"
	"strings"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// elaborateValue decodes a single AST value into its document-tree
// [Value]. hasValue is false, or astValue.IsMissing() is true, exactly
// when the parser recorded an ExpectedValue placeholder; both produce an
// [Incomplete] node plus an [ErrIncompleteNode] error, per the
// specification's "Incomplete appears only for unrecoverable value
// parses" invariant.
func (b *builder) elaborateValue(astValue ast.Value, hasValue bool, fallbackSpan text.Span) Value {
	if !hasValue || astValue.IsMissing() {
		span := fallbackSpan
		if hasValue {
			span = astValue.Span()
		}

		b.errf(ErrIncompleteNode, span, "incomplete value")

		return Incomplete{Range: span}
	}

	span := astValue.Span()

	switch astValue.Kind() {
	case syntax.KindBasicString:
		return b.elaborateString(astValue, span, StringBasic, false)
	case syntax.KindMultiLineBasicString:
		return b.elaborateString(astValue, span, StringMultiLineBasic, false)
	case syntax.KindLiteralString:
		return b.elaborateString(astValue, span, StringLiteral, true)
	case syntax.KindMultiLineLiteralString:
		return b.elaborateString(astValue, span, StringMultiLineLiteral, true)
	case syntax.KindIntegerDec:
		return b.elaborateInteger(astValue, span, IntegerDec, 10)
	case syntax.KindIntegerHex:
		return b.elaborateInteger(astValue, span, IntegerHex, 16)
	case syntax.KindIntegerOct:
		return b.elaborateInteger(astValue, span, IntegerOct, 8)
	case syntax.KindIntegerBin:
		return b.elaborateInteger(astValue, span, IntegerBin, 2)
	case syntax.KindFloat:
		return b.elaborateFloat(astValue, span)
	case syntax.KindBoolean:
		return Boolean{Val: astValue.Token().Text() == "true", Range: span}
	case syntax.KindOffsetDateTime, syntax.KindLocalDateTime, syntax.KindLocalDate, syntax.KindLocalTime:
		return b.elaborateDateTime(astValue, span)
	case syntax.KindArray:
		arrNode, _ := astValue.Array()
		return b.elaborateArray(arrNode, span)
	case syntax.KindInlineTable:
		tblNode, _ := astValue.InlineTable()
		return b.elaborateInlineTable(tblNode, span)
	default:
		b.errf(ErrIncompleteNode, span, "unrecognized value")
		return Incomplete{Range: span}
	}
}

func (b *builder) elaborateString(v ast.Value, span text.Span, kind StringKind, literal bool) Value {
	raw := v.Token().Text()

	var (
		decoded string
		errs    []*lexer.Error
	)

	if literal {
		decoded, errs = lexer.DecodeLiteralString(raw)
	} else {
		decoded, errs = lexer.DecodeBasicString(raw)
	}

	for range errs {
		b.errf(ErrParseString, span, "invalid string literal")
	}

	return String{Kind: kind, Raw: decoded, Range: span}
}

func (b *builder) elaborateInteger(v ast.Value, span text.Span, kind IntegerKind, base int) Value {
	raw := v.Token().Text()

	sign := int64(1)
	body := raw

	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}

		body = body[1:]
	}

	switch kind {
	case IntegerHex:
		body = strings.TrimPrefix(strings.TrimPrefix(body, "0x"), "0X")
	case IntegerOct:
		body = strings.TrimPrefix(strings.TrimPrefix(body, "0o"), "0O")
	case IntegerBin:
		body = strings.TrimPrefix(strings.TrimPrefix(body, "0b"), "0B")
	}

	body = strings.ReplaceAll(body, "_", "")

	n, err := strconv.ParseInt(body, base, 64)
	if err != nil {
		b.errf(ErrParseInt, span, "invalid integer literal: %s", raw)
		return Incomplete{Range: span}
	}

	return Integer{Kind: kind, Val: sign * n, Range: span}
}

func (b *builder) elaborateFloat(v ast.Value, span text.Span) Value {
	raw := v.Token().Text()
	clean := strings.ReplaceAll(raw, "_", "")

	n, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		b.errf(ErrParseFloat, span, "invalid float literal: %s", raw)
		return Incomplete{Range: span}
	}

	return Float{Val: n, Range: span}
}

func (b *builder) elaborateDateTime(v ast.Value, span text.Span) Value {
	raw := v.Token().Text()

	parts, ok := parseDateTimeParts(raw)
	if !ok {
		b.errf(ErrParseDateTime, span, "invalid date-time literal: %s", raw)
		return Incomplete{Range: span}
	}

	switch v.Kind() {
	case syntax.KindLocalTime:
		if !b.version.AllowsOptionalSeconds() && !parts.hasExplicitSeconds() {
			b.errf(ErrParseDateTime, span, "local time requires seconds before v1.1.0-preview")
		}

		return LocalTime{Hour: parts.hour, Minute: parts.minute, Second: parts.second, Nsec: parts.nsec, Range: span}
	case syntax.KindLocalDate:
		return LocalDate{Year: parts.year, Month: parts.month, Day: parts.day, Range: span}
	case syntax.KindLocalDateTime:
		if !b.version.AllowsOptionalSeconds() && !parts.hasExplicitSeconds() {
			b.errf(ErrParseDateTime, span, "local date-time requires seconds before v1.1.0-preview")
		}

		return LocalDateTime{
			Year: parts.year, Month: parts.month, Day: parts.day,
			Hour: parts.hour, Minute: parts.minute, Second: parts.second, Nsec: parts.nsec,
			Range: span,
		}
	case syntax.KindOffsetDateTime:
		if !b.version.AllowsOptionalSeconds() && !parts.hasExplicitSeconds() {
			b.errf(ErrParseDateTime, span, "offset date-time requires seconds before v1.1.0-preview")
		}

		offsetMinutes := 0

		if !parts.offsetZ {
			offsetMinutes = parts.offsetSign * (parts.offsetHour*60 + parts.offsetMinute)
		}

		return OffsetDateTime{
			Year: parts.year, Month: parts.month, Day: parts.day,
			Hour: parts.hour, Minute: parts.minute, Second: parts.second, Nsec: parts.nsec,
			OffsetMinutes: offsetMinutes,
			Range:         span,
		}
	default:
		b.errf(ErrParseDateTime, span, "unrecognized date-time literal: %s", raw)
		return Incomplete{Range: span}
	}
}

func (b *builder) elaborateArray(arr ast.Array, span text.Span) Value {
	out := newArray(ArrayLiteral, span, span)

	for _, elem := range arr.Values() {
		out.Values = append(out.Values, b.elaborateValue(elem, true, elem.Span()))
	}

	return out
}

func (b *builder) elaborateInlineTable(tbl ast.InlineTable, span text.Span) Value {
	out := newTable(TableInline, span, span)

	for _, kv := range tbl.KeyValues() {
		b.insertKeyValue(out, kv)
	}

	return out
}
