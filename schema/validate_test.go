package schema_test

import (
	"context"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/toml"
)

func buildTable(t *testing.T, src string) *document.Table {
	t.Helper()

	p := parser.Parse([]byte(src), toml.V1_0_0)
	root := ast.NewRoot(p.Root())

	tree, errs := document.Build(root, toml.V1_0_0)
	require.Empty(t, errs)

	return tree
}

func newCtx() *schema.Context {
	return &schema.Context{Ctx: context.Background(), Store: schema.NewStore(nil, true)}
}

func currentOf(raw *jsonschema.Schema) schema.CurrentSchema {
	return schema.NewCurrentSchema(raw)
}

func TestValidateTypeMismatch(t *testing.T) {
	t.Parallel()

	v := document.Boolean{Val: true}
	cur := currentOf(&jsonschema.Schema{Type: "string"})

	diags := schema.Validate(v, nil, cur, newCtx())
	require.Len(t, diags, 1)
	assert.Equal(t, schema.DiagTypeMismatch, diags[0].Kind)
	assert.Equal(t, schema.LevelError, diags[0].Level)
}

func TestValidateIntegerRange(t *testing.T) {
	t.Parallel()

	minV := 1.0
	maxV := 10.0
	cur := currentOf(&jsonschema.Schema{Type: "integer", Minimum: &minV, Maximum: &maxV})

	ok := document.Integer{Val: 5}
	assert.Empty(t, schema.Validate(ok, nil, cur, newCtx()))

	tooSmall := document.Integer{Val: 0}
	diags := schema.Validate(tooSmall, nil, cur, newCtx())
	require.Len(t, diags, 1)
	assert.Equal(t, schema.DiagMinimum, diags[0].Kind)
}

func TestValidateStringPattern(t *testing.T) {
	t.Parallel()

	cur := currentOf(&jsonschema.Schema{Type: "string", Pattern: "^[a-z]+$"})

	diags := schema.Validate(document.String{Raw: "abc"}, nil, cur, newCtx())
	assert.Empty(t, diags)

	diags = schema.Validate(document.String{Raw: "ABC"}, nil, cur, newCtx())
	require.Len(t, diags, 1)
	assert.Equal(t, schema.DiagPattern, diags[0].Kind)
}

func TestValidateOneOfZeroErrorArmWins(t *testing.T) {
	t.Parallel()

	cur := currentOf(&jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "integer"},
		},
	})

	diags := schema.Validate(document.Integer{Val: 1}, nil, cur, newCtx())
	assert.Empty(t, diags)
}

func TestValidateOneOfAmbiguous(t *testing.T) {
	t.Parallel()

	cur := currentOf(&jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "integer"},
			{Type: "integer"},
		},
	})

	diags := schema.Validate(document.Integer{Val: 1}, nil, cur, newCtx())
	require.Len(t, diags, 1)
	assert.Equal(t, schema.DiagOneOfAmbiguous, diags[0].Kind)
}

func TestValidateOneOfNoMatchSurfacesUnion(t *testing.T) {
	t.Parallel()

	cur := currentOf(&jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "boolean"},
		},
	})

	diags := schema.Validate(document.Integer{Val: 1}, nil, cur, newCtx())
	assert.Len(t, diags, 2)
}

func TestValidateAnyOfFallback(t *testing.T) {
	t.Parallel()

	cur := currentOf(&jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "integer"},
		},
	})

	assert.Empty(t, schema.Validate(document.Integer{Val: 1}, nil, cur, newCtx()))
	assert.Empty(t, schema.Validate(document.String{Raw: "x"}, nil, cur, newCtx()))

	diags := schema.Validate(document.Boolean{Val: true}, nil, cur, newCtx())
	assert.NotEmpty(t, diags)
}

func TestValidateAllOfAccumulates(t *testing.T) {
	t.Parallel()

	maxLen := 3
	cur := currentOf(&jsonschema.Schema{
		AllOf: []*jsonschema.Schema{
			{Type: "string", Pattern: "^[a-z]+$"},
			{Type: "string", MaxLength: &maxLen},
		},
	})

	diags := schema.Validate(document.String{Raw: "TOOLONG"}, nil, cur, newCtx())
	assert.Len(t, diags, 2)
}

func TestValidateTableRequiredAndAdditionalProperties(t *testing.T) {
	t.Parallel()

	raw := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
		},
		Required:             []string{"name"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
	cur := currentOf(raw)

	tbl := buildTable(t, "extra = \"nope\"\n")

	diags := schema.Validate(tbl, nil, cur, newCtx())

	var kinds []schema.DiagnosticKind
	for _, d := range diags {
		kinds = append(kinds, d.Kind)
	}

	assert.Contains(t, kinds, schema.DiagRequired)
	assert.Contains(t, kinds, schema.DiagAdditionalProperties)
}

func TestValidateIncompleteNeverParticipates(t *testing.T) {
	t.Parallel()

	cur := currentOf(&jsonschema.Schema{Type: "string"})
	diags := schema.Validate(document.Incomplete{}, nil, cur, newCtx())
	assert.Empty(t, diags)
}
