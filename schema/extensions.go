package schema

// KeysOrder is the x-tombi-table-keys-order extension value.
type KeysOrder string

const (
	KeysOrderNone        KeysOrder = ""
	KeysOrderAscending   KeysOrder = "ascending"
	KeysOrderDescending  KeysOrder = "descending"
	KeysOrderSchema      KeysOrder = "schema"
	KeysOrderVersionSort KeysOrder = "version-sort"
)

// ValuesOrder is the x-tombi-array-values-order extension value.
type ValuesOrder string

const (
	ValuesOrderNone       ValuesOrder = ""
	ValuesOrderAscending  ValuesOrder = "ascending"
	ValuesOrderDescending ValuesOrder = "descending"
)

// TombiExtensions holds the `x-tombi-*` schema keywords decoded from a
// [jsonschema.Schema]'s Extra passthrough map. Every field is the zero
// value when the keyword is absent, which each consumer treats as "no
// preference".
type TombiExtensions struct {
	TableKeysOrder  KeysOrder
	ArrayValuesOrder ValuesOrder
	TomlVersion     string
}

// decodeTombiExtensions reads the `x-tombi-*` keys out of extra, the
// passthrough map jsonschema-go populates with unrecognized JSON fields.
func decodeTombiExtensions(extra map[string]any) TombiExtensions {
	var ext TombiExtensions

	if v, ok := extra["x-tombi-table-keys-order"].(string); ok {
		ext.TableKeysOrder = KeysOrder(v)
	}

	if v, ok := extra["x-tombi-array-values-order"].(string); ok {
		ext.ArrayValuesOrder = ValuesOrder(v)
	}

	if v, ok := extra["x-tombi-toml-version"].(string); ok {
		ext.TomlVersion = v
	}

	return ext
}
