package schema

import "github.com/tombi-toml/tombi/text"

// Descend resolves the child schema for stepping into a single document
// accessor from cur, trying exactly the property / patternProperties /
// additionalProperties / array-items resolution order [Validate] itself
// uses when it recurses into a child value. It is exported so callers
// outside this package — the lsp package's Hover, Definition, and
// Completion services — can walk the same schema tree one accessor at a
// time without re-validating a whole [document.Value].
func Descend(cur CurrentSchema, ctx *Context, accessor Accessor, span text.Span) (CurrentSchema, bool) {
	if cur.Value == nil || cur.Value.Raw == nil {
		return CurrentSchema{}, false
	}

	raw := cur.Value.Raw

	if accessor.IsIndex {
		if raw.Items == nil {
			return CurrentSchema{}, false
		}

		next, diags := resolveArm(cur, ctx, raw.Items, span)

		return next, diags == nil
	}

	if propSchema, ok := raw.Properties[accessor.Key]; ok {
		next, diags := resolveArm(cur, ctx, propSchema, span)

		return next, diags == nil
	}

	for pattern, re := range compilePatternProperties(raw.PatternProperties) {
		if re.MatchString(accessor.Key) {
			next, diags := resolveArm(cur, ctx, raw.PatternProperties[pattern], span)

			return next, diags == nil
		}
	}

	if raw.AdditionalProperties != nil && !isFalseSchema(raw.AdditionalProperties) {
		next, diags := resolveArm(cur, ctx, raw.AdditionalProperties, span)

		return next, diags == nil
	}

	return CurrentSchema{}, false
}
