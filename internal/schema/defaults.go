package schema

import "github.com/zclconf/go-cty/cty"

// The default schemas below are the ones the built-in form providers hand
// out. Extension forms usually start from one of these and add or remove
// fields rather than building a schema from scratch.

func ptr(v cty.Value) *cty.Value { return &v }

// DefaultCreateDatasetSchema validates a dataset create request.
func DefaultCreateDatasetSchema() *Schema {
	return &Schema{
		Name: "dataset_create",
		Fields: map[string]Field{
			"name":       {Type: cty.String, Required: true},
			"title":      {Type: cty.String},
			"notes":      {Type: cty.String},
			"private":    {Type: cty.Bool, Default: ptr(cty.False)},
			"owner_org":  {Type: cty.String},
			"license_id": {Type: cty.String},
			"tags":       {Type: cty.List(cty.String)},
			"state":      {Type: cty.String, Default: ptr(cty.StringVal("draft"))},
		},
		DropExtras: true,
	}
}

// DefaultUpdateDatasetSchema validates a dataset update request. It is the
// create schema plus a mandatory id.
func DefaultUpdateDatasetSchema() *Schema {
	s := DefaultCreateDatasetSchema()
	s.Name = "dataset_update"
	s.Fields["id"] = Field{Type: cty.String, Required: true}
	// Updates never default state; an omitted state keeps the stored one.
	s.Fields["state"] = Field{Type: cty.String}
	return s
}

// DefaultShowDatasetSchema normalizes a stored dataset for presentation.
// Unknown keys pass through so extension-added attributes are not lost.
func DefaultShowDatasetSchema() *Schema {
	s := DefaultCreateDatasetSchema()
	s.Name = "dataset_show"
	s.Fields["id"] = Field{Type: cty.String, Required: true}
	s.DropExtras = false
	return s
}

// DefaultGroupSchema validates a group or organization create request.
func DefaultGroupSchema() *Schema {
	return &Schema{
		Name: "group_create",
		Fields: map[string]Field{
			"name":        {Type: cty.String, Required: true},
			"title":       {Type: cty.String},
			"description": {Type: cty.String},
			"image_url":   {Type: cty.String},
			"state":       {Type: cty.String, Default: ptr(cty.StringVal("active"))},
		},
		DropExtras: true,
	}
}

// DefaultUpdateGroupSchema validates a group or organization update request.
func DefaultUpdateGroupSchema() *Schema {
	s := DefaultGroupSchema()
	s.Name = "group_update"
	s.Fields["id"] = Field{Type: cty.String, Required: true}
	s.Fields["state"] = Field{Type: cty.String}
	return s
}

// GroupFormSchema validates a group submitted through the web form rather
// than the API. Form posts carry presentation-only keys, so extras are
// dropped and the state field is not accepted at all.
func GroupFormSchema() *Schema {
	s := DefaultGroupSchema()
	s.Name = "group_form"
	delete(s.Fields, "state")
	return s
}
