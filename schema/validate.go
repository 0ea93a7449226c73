package schema

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/text"
)

// Context bundles the ambient state the validator threads through its
// mutually recursive functions: a cancellable context.Context for any
// cross-document $ref fetch, the Store performing those fetches, and the
// strict-mode flag ("a Table without an explicit additionalProperties is
// treated as additionalProperties: false").
type Context struct {
	Ctx    context.Context //nolint:containedctx
	Store  *Store
	Strict bool
}

// Validate checks v against cur, returning every diagnostic found. It
// never aborts early except where the specification itself calls for
// short-circuiting (AnyOf's first-success, OneOf's first-success-then-
// keep-checking-for-ambiguity).
func Validate(v document.Value, accessors []Accessor, cur CurrentSchema, ctx *Context) []Diagnostic {
	if _, incomplete := v.(document.Incomplete); incomplete {
		return nil
	}

	if cur.Value == nil || cur.Value.Raw == nil {
		return nil
	}

	if cur.Value.IsComposite() {
		return validateComposite(v, accessors, cur, ctx)
	}

	return validateLeaf(v, accessors, cur, ctx)
}

func validateComposite(v document.Value, accessors []Accessor, cur CurrentSchema, ctx *Context) []Diagnostic {
	raw := cur.Value.Raw

	switch {
	case len(raw.OneOf) > 0:
		return validateOneOf(v, accessors, cur, ctx, raw.OneOf)
	case len(raw.AnyOf) > 0:
		return validateAnyOf(v, accessors, cur, ctx, raw.AnyOf)
	default:
		return validateAllOf(v, accessors, cur, ctx, raw.AllOf)
	}
}

func resolveArm(cur CurrentSchema, ctx *Context, arm *jsonschema.Schema, span text.Span) (CurrentSchema, []Diagnostic) {
	if arm.Ref == "" {
		return cur.WithValue(newValueSchema(arm)), nil
	}

	resolved, armCur, err := ctx.Store.ResolveRef(ctx.Ctx, cur, arm.Ref)
	if err != nil {
		return cur, []Diagnostic{diag(DiagTypeMismatch, LevelError, span, "unresolved $ref %q: %s", arm.Ref, err)}
	}

	return armCur.WithValue(resolved), nil
}

// OneOf: exactly one arm must yield zero errors (warnings don't disqualify
// an arm, per the adopted "zero-error arm wins" reading). Zero successes
// surfaces the union of every arm's errors; more than one success is an
// ambiguity error.
func validateOneOf(v document.Value, accessors []Accessor, cur CurrentSchema, ctx *Context, arms []*jsonschema.Schema) []Diagnostic {
	var (
		union     []Diagnostic
		successes int
		winner    []Diagnostic
	)

	for _, arm := range arms {
		armCur, resolveErrs := resolveArm(cur, ctx, arm, v.Span())
		if resolveErrs != nil {
			union = append(union, resolveErrs...)
			continue
		}

		diags := Validate(v, accessors, armCur, ctx)
		if !HasErrors(diags) {
			successes++
			winner = diags
		}

		union = append(union, diags...)
	}

	switch successes {
	case 0:
		return union
	case 1:
		return winner
	default:
		return []Diagnostic{diag(DiagOneOfAmbiguous, LevelError, v.Span(), "value matches more than one oneOf arm")}
	}
}

// AnyOf: succeed as soon as one arm succeeds (return its diagnostics,
// which may still include warnings); otherwise surface the first arm's
// errors, preferring arms whose declared type actually matched the
// value's JSON type.
func validateAnyOf(v document.Value, accessors []Accessor, cur CurrentSchema, ctx *Context, arms []*jsonschema.Schema) []Diagnostic {
	jsonType := jsonTypeOf(v)

	var (
		firstTypeCompatible []Diagnostic
		first               []Diagnostic
		haveFirst           bool
		haveTypeCompatible  bool
	)

	for _, arm := range arms {
		armCur, resolveErrs := resolveArm(cur, ctx, arm, v.Span())
		if resolveErrs != nil {
			if !haveFirst {
				first, haveFirst = resolveErrs, true
			}

			continue
		}

		diags := Validate(v, accessors, armCur, ctx)
		if !HasErrors(diags) {
			return diags
		}

		if !haveFirst {
			first, haveFirst = diags, true
		}

		if !haveTypeCompatible && armCur.Value.AcceptsType(jsonType) {
			firstTypeCompatible, haveTypeCompatible = diags, true
		}
	}

	if haveTypeCompatible {
		return firstTypeCompatible
	}

	return first
}

// AllOf: every arm must succeed; diagnostics accumulate across all of
// them.
func validateAllOf(v document.Value, accessors []Accessor, cur CurrentSchema, ctx *Context, arms []*jsonschema.Schema) []Diagnostic {
	var all []Diagnostic

	for _, arm := range arms {
		armCur, resolveErrs := resolveArm(cur, ctx, arm, v.Span())
		if resolveErrs != nil {
			all = append(all, resolveErrs...)
			continue
		}

		all = append(all, Validate(v, accessors, armCur, ctx)...)
	}

	return all
}

func jsonTypeOf(v document.Value) string {
	switch v.(type) {
	case document.Boolean:
		return "boolean"
	case document.Integer:
		return "integer"
	case document.Float:
		return "number"
	case document.String, document.OffsetDateTime, document.LocalDateTime, document.LocalDate, document.LocalTime:
		return "string"
	case *document.Array:
		return "array"
	case *document.Table:
		return "object"
	default:
		return ""
	}
}

func validateLeaf(v document.Value, accessors []Accessor, cur CurrentSchema, ctx *Context) []Diagnostic {
	jsonType := jsonTypeOf(v)
	if !cur.Value.AcceptsType(jsonType) {
		return []Diagnostic{diag(DiagTypeMismatch, LevelError, v.Span(),
			"expected %v, found %s", cur.Value.Types(), jsonType)}
	}

	switch val := v.(type) {
	case document.Integer:
		return validateNumber(float64(val.Val), v.Span(), cur)
	case document.Float:
		return validateNumber(val.Val, v.Span(), cur)
	case document.String:
		return validateString(val.Raw, v.Span(), cur)
	case *document.Array:
		return validateArray(val, accessors, cur, ctx)
	case *document.Table:
		return validateTable(val, accessors, cur, ctx)
	default:
		return validateEnum(canonicalString(v), v.Span(), cur)
	}
}

func validateNumber(n float64, span text.Span, cur CurrentSchema) []Diagnostic {
	raw := cur.Value.Raw

	var out []Diagnostic

	if raw.Minimum != nil && n < *raw.Minimum {
		out = append(out, diag(DiagMinimum, LevelError, span, "must be >= %v", *raw.Minimum))
	}

	if raw.Maximum != nil && n > *raw.Maximum {
		out = append(out, diag(DiagMaximum, LevelError, span, "must be <= %v", *raw.Maximum))
	}

	if raw.ExclusiveMinimum != nil && n <= *raw.ExclusiveMinimum {
		out = append(out, diag(DiagExclusiveMinimum, LevelError, span, "must be > %v", *raw.ExclusiveMinimum))
	}

	if raw.ExclusiveMaximum != nil && n >= *raw.ExclusiveMaximum {
		out = append(out, diag(DiagExclusiveMaximum, LevelError, span, "must be < %v", *raw.ExclusiveMaximum))
	}

	if raw.MultipleOf != nil && *raw.MultipleOf != 0 {
		ratio := n / *raw.MultipleOf
		if math.Abs(ratio-math.Round(ratio)) > 1e-9 {
			out = append(out, diag(DiagMultipleOf, LevelError, span, "must be a multiple of %v", *raw.MultipleOf))
		}
	}

	out = append(out, validateEnum(n, span, cur)...)

	return out
}

func validateString(s string, span text.Span, cur CurrentSchema) []Diagnostic {
	raw := cur.Value.Raw

	var out []Diagnostic

	length := len([]rune(s))

	if raw.MinLength != nil && length < *raw.MinLength {
		out = append(out, diag(DiagMinLength, LevelError, span, "must be at least %d characters", *raw.MinLength))
	}

	if raw.MaxLength != nil && length > *raw.MaxLength {
		out = append(out, diag(DiagMaxLength, LevelError, span, "must be at most %d characters", *raw.MaxLength))
	}

	if raw.Pattern != "" {
		if re, err := regexp.Compile(raw.Pattern); err == nil && !re.MatchString(s) {
			out = append(out, diag(DiagPattern, LevelError, span, "must match pattern %q", raw.Pattern))
		}
	}

	out = append(out, validateEnum(s, span, cur)...)

	return out
}

func validateEnum(v any, span text.Span, cur CurrentSchema) []Diagnostic {
	raw := cur.Value.Raw
	if len(raw.Enum) == 0 {
		return nil
	}

	for _, allowed := range raw.Enum {
		if enumEqual(allowed, v) {
			return nil
		}
	}

	return []Diagnostic{diag(DiagEnumerate, LevelError, span, "value is not one of the allowed enum values")}
}

func enumEqual(allowed any, v any) bool {
	switch a := allowed.(type) {
	case string:
		s, ok := v.(string)
		return ok && a == s
	case float64:
		n, ok := v.(float64)
		return ok && a == n
	default:
		return false
	}
}

func validateArray(arr *document.Array, accessors []Accessor, cur CurrentSchema, ctx *Context) []Diagnostic {
	raw := cur.Value.Raw

	var out []Diagnostic

	if raw.MinItems != nil && len(arr.Values) < *raw.MinItems {
		out = append(out, diag(DiagMinItems, LevelError, arr.Span(), "must have at least %d items", *raw.MinItems))
	}

	if raw.MaxItems != nil && len(arr.Values) > *raw.MaxItems {
		out = append(out, diag(DiagMaxItems, LevelError, arr.Span(), "must have at most %d items", *raw.MaxItems))
	}

	if raw.UniqueItems {
		seen := make([]document.Value, 0, len(arr.Values))

		for _, elem := range arr.Values {
			for _, prior := range seen {
				if valuesDeepEqual(elem, prior) {
					out = append(out, diag(DiagUniqueItems, LevelError, elem.Span(), "array items must be unique"))
					break
				}
			}

			seen = append(seen, elem)
		}
	}

	if raw.Items != nil {
		for i, elem := range arr.Values {
			itemCur, resolveErrs := resolveArm(cur, ctx, raw.Items, elem.Span())
			if resolveErrs != nil {
				out = append(out, resolveErrs...)
				continue
			}

			elemAccessors := append(append([]Accessor{}, accessors...), IndexAccessor(i))
			out = append(out, Validate(elem, elemAccessors, itemCur, ctx)...)
		}
	}

	if ext := cur.Value.Extensions.ArrayValuesOrder; ext == ValuesOrderAscending || ext == ValuesOrderDescending {
		if !arrayOrdered(arr.Values, ext) {
			out = append(out, diag(DiagValuesOutOfOrder, LevelWarn, arr.Span(), "array values are not %s", ext))
		}
	}

	return out
}

func arrayOrdered(values []document.Value, order ValuesOrder) bool {
	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = canonicalString(v)
	}

	return sort.SliceIsSorted(keys, func(i, j int) bool {
		if order == ValuesOrderDescending {
			return keys[i] > keys[j]
		}

		return keys[i] < keys[j]
	})
}

func validateTable(tbl *document.Table, accessors []Accessor, cur CurrentSchema, ctx *Context) []Diagnostic {
	raw := cur.Value.Raw

	var out []Diagnostic

	if raw.MinProperties != nil && tbl.Len() < *raw.MinProperties {
		out = append(out, diag(DiagMinKeys, LevelError, tbl.Span(), "must have at least %d keys", *raw.MinProperties))
	}

	if raw.MaxProperties != nil && tbl.Len() > *raw.MaxProperties {
		out = append(out, diag(DiagMaxKeys, LevelError, tbl.Span(), "must have at most %d keys", *raw.MaxProperties))
	}

	for _, req := range raw.Required {
		if _, ok := tbl.Get(req); !ok {
			out = append(out, diag(DiagRequired, LevelError, tbl.Span(), "missing required key %q", req))
		}
	}

	additional := raw.AdditionalProperties
	if additional == nil && ctx.Strict {
		additional = falseSchema
	}

	patternRegexps := compilePatternProperties(raw.PatternProperties)

	tbl.Each(func(name string, key document.Key, value document.Value) bool {
		nextAccessors := append(append([]Accessor{}, accessors...), KeyAccessor(name))

		if propSchema, ok := raw.Properties[name]; ok {
			propCur, resolveErrs := resolveArm(cur, ctx, propSchema, value.Span())
			if resolveErrs != nil {
				out = append(out, resolveErrs...)
			} else {
				out = append(out, Validate(value, nextAccessors, propCur, ctx)...)
			}

			return true
		}

		matchedPattern := false

		for pattern, re := range patternRegexps {
			if re.MatchString(name) {
				matchedPattern = true

				patCur, resolveErrs := resolveArm(cur, ctx, raw.PatternProperties[pattern], value.Span())
				if resolveErrs != nil {
					out = append(out, resolveErrs...)
				} else {
					out = append(out, Validate(value, nextAccessors, patCur, ctx)...)
				}
			}
		}

		if matchedPattern {
			return true
		}

		// patternProperties satisfies strictness even under strict mode
		// (the additionalProperties+patternProperties Open Question
		// decision recorded in DESIGN.md): only flag additionalProperties
		// once a pattern match has already been ruled out above.
		if additional != nil {
			if isFalseSchema(additional) {
				out = append(out, diag(DiagAdditionalProperties, LevelError, key.Range,
					"key %q is not permitted by the schema", name))

				return true
			}

			addCur, resolveErrs := resolveArm(cur, ctx, additional, value.Span())
			if resolveErrs != nil {
				out = append(out, resolveErrs...)
			} else {
				out = append(out, Validate(value, nextAccessors, addCur, ctx)...)
			}
		}

		return true
	})

	if order := cur.Value.Extensions.TableKeysOrder; order == KeysOrderAscending || order == KeysOrderDescending {
		if !keysOrdered(tbl, order) {
			out = append(out, diag(DiagKeysOutOfOrder, LevelWarn, tbl.Span(), "table keys are not %s", order))
		}
	} else if order == KeysOrderSchema {
		// Adopted per the Open Question decision recorded in DESIGN.md:
		// out-of-schema-order keys are a warning the formatter resolves,
		// never a validation error.
		if !keysMatchSchemaOrder(tbl, raw) {
			out = append(out, diag(DiagKeysOutOfOrder, LevelWarn, tbl.Span(), "table keys do not follow schema order"))
		}
	}

	return out
}

func compilePatternProperties(patterns map[string]*jsonschema.Schema) map[string]*regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	out := make(map[string]*regexp.Regexp, len(patterns))

	for pattern := range patterns {
		if re, err := regexp.Compile(pattern); err == nil {
			out[pattern] = re
		}
	}

	return out
}

var falseSchema = &jsonschema.Schema{Not: &jsonschema.Schema{}}

func isFalseSchema(s *jsonschema.Schema) bool {
	return s != nil && s.Not != nil && isTrueSchema(s.Not)
}

func isTrueSchema(s *jsonschema.Schema) bool {
	return s != nil && s.Type == "" && len(s.Types) == 0 && s.Not == nil &&
		s.Properties == nil && len(s.Enum) == 0
}

func keysOrdered(tbl *document.Table, order KeysOrder) bool {
	keys := tbl.Keys()
	names := make([]string, len(keys))

	for i, k := range keys {
		names[i] = k.Raw
	}

	return sort.SliceIsSorted(names, func(i, j int) bool {
		if order == KeysOrderDescending {
			return names[i] > names[j]
		}

		return names[i] < names[j]
	})
}

func keysMatchSchemaOrder(tbl *document.Table, raw *jsonschema.Schema) bool {
	if len(raw.PropertyOrder) == 0 {
		return true
	}

	rank := make(map[string]int, len(raw.PropertyOrder))
	for i, name := range raw.PropertyOrder {
		rank[name] = i
	}

	last := -1
	ok := true

	tbl.Each(func(name string, _ document.Key, _ document.Value) bool {
		r, known := rank[name]
		if !known {
			return true
		}

		if r < last {
			ok = false
			return false
		}

		last = r

		return true
	})

	return ok
}

func valuesDeepEqual(a, b document.Value) bool {
	return canonicalString(a) == canonicalString(b) && jsonTypeOf(a) == jsonTypeOf(b)
}

// canonicalString renders a scalar document.Value into the comparable
// string form enum/uniqueItems/values_order checks use: the literal text
// for strings, the canonical form for numbers and date-times.
func canonicalString(v document.Value) string {
	switch val := v.(type) {
	case document.String:
		return val.Raw
	case document.Boolean:
		if val.Val {
			return "true"
		}

		return "false"
	case document.Integer:
		return strconv.FormatInt(val.Val, 10)
	case document.Float:
		return strconv.FormatFloat(val.Val, 'g', -1, 64)
	case document.OffsetDateTime, document.LocalDateTime, document.LocalDate, document.LocalTime:
		return canonicalDateTime(val)
	default:
		return ""
	}
}
