package forms

import (
	"context"

	"github.com/opencatalog/catalogd/internal/ctxlog"
	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/schema"
)

// DefaultGroupForm is the complete group capability surface: the fallback
// for the group axis and the delegate for custom group forms.
type DefaultGroupForm struct {
	// Authz performs the state-change permission side-check during
	// SetupTemplateVariables. A nil checker records the check as denied.
	Authz AuthzChecker
}

// NewDefaultGroupForm returns the built-in group form.
func NewDefaultGroupForm(authz AuthzChecker) *DefaultGroupForm {
	return &DefaultGroupForm{Authz: authz}
}

func (f *DefaultGroupForm) Types() []string    { return nil }
func (f *DefaultGroupForm) IsFallback() bool   { return true }
func (f *DefaultGroupForm) Controller() string { return "group" }

// IsOrganization derives the axis from the controller name, which is the
// rule applied to any form that does not state the flag itself.
func (f *DefaultGroupForm) IsOrganization() bool { return f.Controller() == "organization" }

func (f *DefaultGroupForm) NewTemplate() string         { return "group/new.html" }
func (f *DefaultGroupForm) IndexTemplate() string       { return "group/index.html" }
func (f *DefaultGroupForm) ReadTemplate() string        { return "group/read.html" }
func (f *DefaultGroupForm) AboutTemplate() string       { return "group/about.html" }
func (f *DefaultGroupForm) EditTemplate() string        { return "group/edit.html" }
func (f *DefaultGroupForm) ActivityTemplate() string    { return "group/activity_stream.html" }
func (f *DefaultGroupForm) AdminsTemplate() string      { return "group/admins.html" }
func (f *DefaultGroupForm) BulkProcessTemplate() string { return "group/bulk_process.html" }
func (f *DefaultGroupForm) FormTemplate() string        { return "group/new_group_form.html" }

// FormToDBSchema dispatches on the call site: a schema already present in
// the options wins, API create and update each have their own schema, and
// everything else validates as a web form post.
func (f *DefaultGroupForm) FormToDBSchema(opts SchemaOptions) *schema.Schema {
	if opts.Schema != nil {
		return opts.Schema
	}
	if opts.API {
		if opts.Action == ActionCreate {
			return schema.DefaultGroupSchema()
		}
		return schema.DefaultUpdateGroupSchema()
	}
	return schema.GroupFormSchema()
}

// DBToFormSchema honors a schema carried by the options and otherwise
// returns nil: the stored shape feeds the form unchanged.
func (f *DefaultGroupForm) DBToFormSchema(opts SchemaOptions) *schema.Schema {
	if opts.Schema != nil {
		return opts.Schema
	}
	return nil
}

// SetupTemplateVariables records the sysadmin flag and asks the authorizer
// whether the actor may change the group's state. A denial is converted
// into AuthForChangeState=false; it never propagates to the caller.
func (f *DefaultGroupForm) SetupTemplateVariables(ctx context.Context, tc *TemplateContext, data model.Record) {
	tc.IsSysadmin = tc.User != nil && tc.User.Sysadmin

	if tc.Group == nil {
		return
	}
	if f.Authz == nil {
		tc.AuthForChangeState = false
		return
	}
	if err := f.Authz.CheckAccess(ctx, "group_change_state", tc.User, tc.Group); err != nil {
		ctxlog.FromContext(ctx).Debug("State change not authorized for group.",
			"group", tc.Group.ID, "error", err)
		tc.AuthForChangeState = false
		return
	}
	tc.AuthForChangeState = true
}
