package format

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/lexer"
)

// keyName decodes a single key segment the same way the document
// elaborator does, so a schema hint keyed on a decoded name (`a.b`) lines
// up with a quoted key (`"a.b"`) as well as a bare one.
func keyName(k ast.Key) string {
	raw := k.Raw()

	switch k.Kind() {
	case ast.KeyBasicString:
		decoded, _ := lexer.DecodeBasicString(raw)
		return decoded
	case ast.KeyLiteralString:
		decoded, _ := lexer.DecodeLiteralString(raw)
		return decoded
	default:
		return raw
	}
}

// keysPath decodes every segment of a dotted key path, in order.
func keysPath(keys ast.Keys) []string {
	items := keys.Items()
	out := make([]string, len(items))

	for i, k := range items {
		out[i] = keyName(k)
	}

	return out
}
