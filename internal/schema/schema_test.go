package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/schema"
)

func TestSchemaValidate_NormalizesAndDefaults(t *testing.T) {
	t.Parallel()
	s := schema.DefaultCreateDatasetSchema()

	rec := model.Record{
		"name":  "weather-2026",
		"title": "Weather observations",
		// Form posts arrive stringly typed; cty conversion normalizes.
		"private": "true",
		"tags":    []string{"climate", "weather"},
		"junk":    "dropped",
	}

	out, err := s.Validate(rec)
	require.NoError(t, err)

	assert.Equal(t, "weather-2026", out["name"])
	assert.Equal(t, true, out["private"])
	assert.Equal(t, []any{"climate", "weather"}, out["tags"])
	// Defaults fill omitted fields.
	assert.Equal(t, "draft", out["state"])
	// Create schemas drop unknown keys.
	assert.NotContains(t, out, "junk")
	// The input record is untouched.
	assert.Equal(t, "dropped", rec["junk"])
}

func TestSchemaValidate_CollectsAllFailures(t *testing.T) {
	t.Parallel()
	s := schema.DefaultUpdateDatasetSchema()

	_, err := s.Validate(model.Record{
		"private": "not-a-bool",
		// id and name both missing.
	})
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dataset_update", verr.Schema)

	fields := make(map[string]bool, len(verr.Errors))
	for _, inv := range verr.Errors {
		fields[inv.Field] = true
	}
	assert.True(t, fields["id"])
	assert.True(t, fields["name"])
	assert.True(t, fields["private"])
}

func TestSchemaValidate_ShowKeepsExtras(t *testing.T) {
	t.Parallel()
	s := schema.DefaultShowDatasetSchema()

	out, err := s.Validate(model.Record{
		"id":             "d1",
		"name":           "weather-2026",
		"extension_attr": "kept",
	})
	require.NoError(t, err)
	assert.Equal(t, "kept", out["extension_attr"])
}

func TestGroupSchemas(t *testing.T) {
	t.Parallel()

	// The form schema accepts no state at all; the API schema defaults it.
	form := schema.GroupFormSchema()
	assert.NotContains(t, form.Fields, "state")

	out, err := schema.DefaultGroupSchema().Validate(model.Record{"name": "climate"})
	require.NoError(t, err)
	assert.Equal(t, "active", out["state"])

	_, err = schema.DefaultUpdateGroupSchema().Validate(model.Record{"name": "climate"})
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSchemaValidate_NumberConversion(t *testing.T) {
	t.Parallel()
	s := &schema.Schema{
		Name: "test",
		Fields: map[string]schema.Field{
			"rows": {Type: cty.Number},
		},
		DropExtras: true,
	}

	out, err := s.Validate(model.Record{"rows": "42"})
	require.NoError(t, err)
	assert.Equal(t, 42.0, out["rows"])

	_, err = s.Validate(model.Record{"rows": "forty-two"})
	require.Error(t, err)
}
