package forms

import (
	"context"

	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/schema"
)

// DefaultDatasetForm is the complete dataset capability surface. It is the
// fallback when no extension claims the dataset axis, and the delegate a
// custom dataset form wraps for the behavior it does not override.
//
// It is deliberately never registered for a type-string of its own; the
// core "dataset" type routes through it only via the fallback slot.
type DefaultDatasetForm struct{}

// NewDefaultDatasetForm returns the built-in dataset form.
func NewDefaultDatasetForm() *DefaultDatasetForm { return &DefaultDatasetForm{} }

func (f *DefaultDatasetForm) Types() []string  { return nil }
func (f *DefaultDatasetForm) IsFallback() bool { return true }

func (f *DefaultDatasetForm) CreateSchema() *schema.Schema {
	return schema.DefaultCreateDatasetSchema()
}

func (f *DefaultDatasetForm) UpdateSchema() *schema.Schema {
	return schema.DefaultUpdateDatasetSchema()
}

func (f *DefaultDatasetForm) ShowSchema() *schema.Schema {
	return schema.DefaultShowDatasetSchema()
}

func (f *DefaultDatasetForm) NewTemplate() string    { return "dataset/new.html" }
func (f *DefaultDatasetForm) ReadTemplate() string   { return "dataset/read.html" }
func (f *DefaultDatasetForm) EditTemplate() string   { return "dataset/edit.html" }
func (f *DefaultDatasetForm) SearchTemplate() string { return "dataset/search.html" }

// HistoryTemplate is empty: the default dataset pages render history inline.
func (f *DefaultDatasetForm) HistoryTemplate() string { return "" }

func (f *DefaultDatasetForm) ResourceTemplate() string { return "dataset/resource_read.html" }
func (f *DefaultDatasetForm) FormTemplate() string     { return "dataset/new_dataset_form.html" }
func (f *DefaultDatasetForm) ResourceFormTemplate() string {
	return "dataset/snippets/resource_form.html"
}

// SetupTemplateVariables marks resource listings as available-only and keeps
// the dataset already resolved by the controller on the context.
func (f *DefaultDatasetForm) SetupTemplateVariables(ctx context.Context, tc *TemplateContext, data model.Record) {
	tc.AvailableOnly = true
}
