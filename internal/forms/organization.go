package forms

import (
	"context"

	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/schema"
)

// DefaultOrganizationForm is the organization refinement of the group
// surface. It wraps a DefaultGroupForm and overrides only what differs for
// organizations; every other method delegates to the wrapped form.
type DefaultOrganizationForm struct {
	base *DefaultGroupForm
}

// NewDefaultOrganizationForm returns the built-in organization form. A nil
// base wraps a fresh DefaultGroupForm with no authorizer.
func NewDefaultOrganizationForm(base *DefaultGroupForm) *DefaultOrganizationForm {
	if base == nil {
		base = NewDefaultGroupForm(nil)
	}
	return &DefaultOrganizationForm{base: base}
}

func (f *DefaultOrganizationForm) Types() []string      { return nil }
func (f *DefaultOrganizationForm) IsFallback() bool     { return true }
func (f *DefaultOrganizationForm) Controller() string   { return "organization" }
func (f *DefaultOrganizationForm) IsOrganization() bool { return true }

func (f *DefaultOrganizationForm) NewTemplate() string      { return "organization/new.html" }
func (f *DefaultOrganizationForm) IndexTemplate() string    { return "organization/index.html" }
func (f *DefaultOrganizationForm) ReadTemplate() string     { return "organization/read.html" }
func (f *DefaultOrganizationForm) AboutTemplate() string    { return "organization/about.html" }
func (f *DefaultOrganizationForm) EditTemplate() string     { return "organization/edit.html" }
func (f *DefaultOrganizationForm) ActivityTemplate() string { return "organization/activity_stream.html" }
func (f *DefaultOrganizationForm) AdminsTemplate() string   { return "organization/admins.html" }
func (f *DefaultOrganizationForm) BulkProcessTemplate() string {
	return "organization/bulk_process.html"
}
func (f *DefaultOrganizationForm) FormTemplate() string {
	return "organization/new_organization_form.html"
}

// Schema selection is identical for groups and organizations.

func (f *DefaultOrganizationForm) FormToDBSchema(opts SchemaOptions) *schema.Schema {
	return f.base.FormToDBSchema(opts)
}

func (f *DefaultOrganizationForm) DBToFormSchema(opts SchemaOptions) *schema.Schema {
	return f.base.DBToFormSchema(opts)
}

// SetupTemplateVariables is a no-op for organizations: the organization
// pages take their state handling from the bulk-process view instead.
func (f *DefaultOrganizationForm) SetupTemplateVariables(ctx context.Context, tc *TemplateContext, data model.Record) {
}
