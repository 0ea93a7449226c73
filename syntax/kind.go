// Package syntax implements the lossless syntax tree: an immutable,
// structurally-shared green tree plus a borrowed red-tree view that layers
// absolute byte offsets on top of it. Every byte of source text — including
// whitespace, comments, and erroneous tokens — is represented somewhere in
// the tree, which is what lets the formatter and every Language-Server
// service recover exact source text from a parsed document.
package syntax

import "fmt"

// Kind identifies a token or node kind in the syntax tree. It is a closed
// enum: every TOML lexical category plus every grammar production gets one
// value, so a type switch over Kind is exhaustive and never needs a default
// case to stay safe.
type Kind uint16

// Token kinds.
const (
	KindWhitespace Kind = iota
	KindNewline
	KindComment

	KindBareKey
	KindBasicString
	KindMultiLineBasicString
	KindLiteralString
	KindMultiLineLiteralString

	KindIntegerDec
	KindIntegerHex
	KindIntegerOct
	KindIntegerBin
	KindFloat
	KindBoolean

	KindOffsetDateTime
	KindLocalDateTime
	KindLocalDate
	KindLocalTime

	KindDot
	KindComma
	KindEqual
	KindBracketStart
	KindBracketEnd
	KindDoubleBracketStart
	KindDoubleBracketEnd
	KindBraceStart
	KindBraceEnd

	KindEOF
	KindInvalidToken
)

// Node kinds.
const (
	KindRoot Kind = iota + 1000
	KindKeys
	KindKey
	KindKeyValue
	KindValue
	KindArray
	KindTable
	KindInlineTable
	KindArrayOfTable

	KindIntegerDecNode
	KindIntegerHexNode
	KindIntegerOctNode
	KindIntegerBinNode
	KindFloatNode
	KindBooleanNode

	KindBasicStringNode
	KindMultiLineBasicStringNode
	KindLiteralStringNode
	KindMultiLineLiteralStringNode

	KindOffsetDateTimeNode
	KindLocalDateTimeNode
	KindLocalDateNode
	KindLocalTimeNode

	KindInvalidTokens

	KindLeadingComments
	KindTailingComment
	KindBeginDanglingComments
	KindEndDanglingComments
	KindDanglingComments
)

var kindNames = map[Kind]string{
	KindWhitespace:                 "WHITESPACE",
	KindNewline:                    "NEWLINE",
	KindComment:                    "COMMENT",
	KindBareKey:                    "BARE_KEY",
	KindBasicString:                "BASIC_STRING",
	KindMultiLineBasicString:       "MULTI_LINE_BASIC_STRING",
	KindLiteralString:              "LITERAL_STRING",
	KindMultiLineLiteralString:     "MULTI_LINE_LITERAL_STRING",
	KindIntegerDec:                 "INTEGER_DEC",
	KindIntegerHex:                 "INTEGER_HEX",
	KindIntegerOct:                 "INTEGER_OCT",
	KindIntegerBin:                 "INTEGER_BIN",
	KindFloat:                      "FLOAT",
	KindBoolean:                    "BOOLEAN",
	KindOffsetDateTime:             "OFFSET_DATE_TIME",
	KindLocalDateTime:              "LOCAL_DATE_TIME",
	KindLocalDate:                  "LOCAL_DATE",
	KindLocalTime:                  "LOCAL_TIME",
	KindDot:                        "DOT",
	KindComma:                      "COMMA",
	KindEqual:                      "EQUAL",
	KindBracketStart:               "BRACKET_START",
	KindBracketEnd:                 "BRACKET_END",
	KindDoubleBracketStart:         "DOUBLE_BRACKET_START",
	KindDoubleBracketEnd:           "DOUBLE_BRACKET_END",
	KindBraceStart:                 "BRACE_START",
	KindBraceEnd:                   "BRACE_END",
	KindEOF:                        "EOF",
	KindInvalidToken:               "INVALID_TOKEN",
	KindRoot:                       "ROOT",
	KindKeys:                       "KEYS",
	KindKey:                        "KEY",
	KindKeyValue:                   "KEY_VALUE",
	KindValue:                      "VALUE",
	KindArray:                      "ARRAY",
	KindTable:                      "TABLE",
	KindInlineTable:                "INLINE_TABLE",
	KindArrayOfTable:               "ARRAY_OF_TABLE",
	KindIntegerDecNode:             "INTEGER_DEC_NODE",
	KindIntegerHexNode:             "INTEGER_HEX_NODE",
	KindIntegerOctNode:             "INTEGER_OCT_NODE",
	KindIntegerBinNode:             "INTEGER_BIN_NODE",
	KindFloatNode:                  "FLOAT_NODE",
	KindBooleanNode:                "BOOLEAN_NODE",
	KindBasicStringNode:            "BASIC_STRING_NODE",
	KindMultiLineBasicStringNode:   "MULTI_LINE_BASIC_STRING_NODE",
	KindLiteralStringNode:          "LITERAL_STRING_NODE",
	KindMultiLineLiteralStringNode: "MULTI_LINE_LITERAL_STRING_NODE",
	KindOffsetDateTimeNode:         "OFFSET_DATE_TIME_NODE",
	KindLocalDateTimeNode:          "LOCAL_DATE_TIME_NODE",
	KindLocalDateNode:              "LOCAL_DATE_NODE",
	KindLocalTimeNode:              "LOCAL_TIME_NODE",
	KindInvalidTokens:              "INVALID_TOKENS",
	KindLeadingComments:            "LEADING_COMMENTS",
	KindTailingComment:             "TAILING_COMMENT",
	KindBeginDanglingComments:      "BEGIN_DANGLING_COMMENTS",
	KindEndDanglingComments:        "END_DANGLING_COMMENTS",
	KindDanglingComments:           "DANGLING_COMMENTS",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsTrivia reports whether k is whitespace or a comment — the atoms the
// parser reattaches onto nodes by position rather than feeding to the
// grammar. Newlines are deliberately not trivia: the grammar treats line
// endings as significant tokens (a Table header, for instance, must be
// followed by one), so the parser consumes them explicitly.
func (k Kind) IsTrivia() bool {
	switch k {
	case KindWhitespace, KindComment:
		return true
	default:
		return false
	}
}

// IsNode reports whether k identifies a tree node (as opposed to a token).
func (k Kind) IsNode() bool {
	return k >= KindRoot
}
