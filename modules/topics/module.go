// Package topics provides the "topic" group type: lightweight thematic
// groupings curated by editors rather than data owners. It is the reference
// for writing a group-type extension.
package topics

import (
	"context"

	"github.com/opencatalog/catalogd/internal/forms"
	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/registry"
	"github.com/opencatalog/catalogd/internal/schema"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name returns the identifier used in the configuration's plugins list.
func (m *Module) Name() string { return "topics" }

// Register registers the topic group form.
func (m *Module) Register(ctx context.Context, r *registry.Registry) error {
	return r.RegisterGroupTypes(ctx, []forms.GroupForm{NewForm()})
}

// Form customizes group behavior for the "topic" type. Topics route
// through the stock group controller; only the listing and read pages
// differ.
type Form struct {
	base *forms.DefaultGroupForm
}

// NewForm creates the topic form.
func NewForm() *Form {
	return &Form{base: forms.NewDefaultGroupForm(nil)}
}

func (f *Form) Types() []string      { return []string{"topic"} }
func (f *Form) IsFallback() bool     { return false }
func (f *Form) Controller() string   { return "group" }
func (f *Form) IsOrganization() bool { return f.base.IsOrganization() }

func (f *Form) NewTemplate() string         { return f.base.NewTemplate() }
func (f *Form) IndexTemplate() string       { return "topics/index.html" }
func (f *Form) ReadTemplate() string        { return "topics/read.html" }
func (f *Form) AboutTemplate() string       { return f.base.AboutTemplate() }
func (f *Form) EditTemplate() string        { return f.base.EditTemplate() }
func (f *Form) ActivityTemplate() string    { return f.base.ActivityTemplate() }
func (f *Form) AdminsTemplate() string      { return f.base.AdminsTemplate() }
func (f *Form) BulkProcessTemplate() string { return f.base.BulkProcessTemplate() }
func (f *Form) FormTemplate() string        { return "topics/new_topic_form.html" }

func (f *Form) FormToDBSchema(opts forms.SchemaOptions) *schema.Schema {
	return f.base.FormToDBSchema(opts)
}

func (f *Form) DBToFormSchema(opts forms.SchemaOptions) *schema.Schema {
	return f.base.DBToFormSchema(opts)
}

func (f *Form) SetupTemplateVariables(ctx context.Context, tc *forms.TemplateContext, data model.Record) {
	f.base.SetupTemplateVariables(ctx, tc, data)
}
