package lsp

import (
	"fmt"

	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/text"
)

// DocumentSymbols converts uri's document tree into the nested outline
// per §4.8: Object for tables, Array for arrays, Number/String/Boolean for
// scalars. It returns ok=false only if uri isn't open.
func DocumentSymbols(store *DocumentStore, uri string) ([]DocumentSymbol, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return nil, false
	}

	_, table, _, _, _ := doc.snapshot()
	if table == nil {
		return nil, true
	}

	return tableSymbols(table), true
}

func tableSymbols(t *document.Table) []DocumentSymbol {
	var out []DocumentSymbol

	t.Each(func(name string, key document.Key, value document.Value) bool {
		out = append(out, valueSymbol(name, key.Range, value))
		return true
	})

	return out
}

func valueSymbol(name string, selection text.Span, value document.Value) DocumentSymbol {
	sym := DocumentSymbol{Name: name, Span: value.SymbolSpan(), SelectionSpan: selection}

	switch v := value.(type) {
	case *document.Table:
		sym.Kind = SymbolObject
		sym.Detail = fmt.Sprintf("table (%d)", v.Len())
		sym.Children = tableSymbols(v)
	case *document.Array:
		sym.Kind = SymbolArray
		sym.Detail = fmt.Sprintf("array (%d)", len(v.Values))

		for i, elem := range v.Values {
			sym.Children = append(sym.Children, valueSymbol(fmt.Sprintf("[%d]", i), elem.Span(), elem))
		}
	case document.Boolean:
		sym.Kind = SymbolBoolean
		sym.Detail = fmt.Sprintf("%v", v.Val)
	case document.Integer:
		sym.Kind = SymbolNumber
		sym.Detail = fmt.Sprintf("%d", v.Val)
	case document.Float:
		sym.Kind = SymbolNumber
		sym.Detail = fmt.Sprintf("%v", v.Val)
	case document.String:
		sym.Kind = SymbolString
		sym.Detail = v.Raw
	case document.Incomplete:
		sym.Kind = SymbolNull
	default:
		// OffsetDateTime, LocalDateTime, LocalDate, LocalTime.
		sym.Kind = SymbolString
	}

	return sym
}
