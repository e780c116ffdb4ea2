package forms

import (
	"context"
	"errors"

	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/schema"
)

// ErrNotAuthorized is the denial an AuthzChecker returns (possibly wrapped)
// when the current actor may not perform the checked action.
var ErrNotAuthorized = errors.New("not authorized")

// AuthzChecker answers whether a user may perform a named action on an
// object. A nil error means the action is allowed.
type AuthzChecker interface {
	CheckAccess(ctx context.Context, action string, user *model.User, object any) error
}

// TemplateContext carries the per-request values a form provider enriches
// before a page renders. Providers mutate it in place and never fail.
type TemplateContext struct {
	User    *model.User
	Dataset *model.Dataset
	Group   *model.Group

	// AvailableOnly restricts resource listings to currently available ones.
	AvailableOnly bool
	// IsSysadmin mirrors the acting user's sysadmin flag for templates.
	IsSysadmin bool
	// AuthForChangeState records whether the actor may change the object's
	// state. An authorization denial is folded into this flag, not raised.
	AuthForChangeState bool
}

// SchemaOptions selects which group schema applies for a given call site.
type SchemaOptions struct {
	// Schema overrides all dispatch when the caller context already
	// carries one.
	Schema *schema.Schema
	// API distinguishes API submissions from web form posts.
	API bool
	// Action is "create" or "update".
	Action string
}

// SchemaOptions actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
)

// DatasetForm customizes dataset behavior for the type-strings it declares.
// Every method must be safe to call on the zero configuration; defaults for
// the whole surface are provided by DefaultDatasetForm.
type DatasetForm interface {
	// Types lists the dataset type-strings this form handles. The default
	// form returns nil: it is never registered for a specific type.
	Types() []string
	// IsFallback reports whether this form claims the dataset fallback slot.
	IsFallback() bool

	CreateSchema() *schema.Schema
	UpdateSchema() *schema.Schema
	ShowSchema() *schema.Schema

	NewTemplate() string
	ReadTemplate() string
	EditTemplate() string
	SearchTemplate() string
	// HistoryTemplate may return "" when the type has no history page.
	HistoryTemplate() string
	ResourceTemplate() string
	FormTemplate() string
	ResourceFormTemplate() string

	// SetupTemplateVariables enriches the rendering context. It mutates tc
	// in place; by contract it has no return value and must not panic.
	SetupTemplateVariables(ctx context.Context, tc *TemplateContext, data model.Record)
}

// GroupForm customizes group behavior for the type-strings it declares.
// Organization forms are GroupForms whose IsOrganization reports true.
type GroupForm interface {
	Types() []string
	IsFallback() bool
	// Controller names the routing controller for this form's types,
	// normally "group" or "organization".
	Controller() string
	// IsOrganization selects the organization fallback slot instead of the
	// group one. The defaults derive it from the controller name.
	IsOrganization() bool

	NewTemplate() string
	IndexTemplate() string
	ReadTemplate() string
	AboutTemplate() string
	EditTemplate() string
	ActivityTemplate() string
	AdminsTemplate() string
	BulkProcessTemplate() string
	FormTemplate() string

	// FormToDBSchema picks the schema that validates an inbound group
	// record, dispatching on API-vs-form and create-vs-update.
	FormToDBSchema(opts SchemaOptions) *schema.Schema
	// DBToFormSchema picks the schema that reshapes a stored group for the
	// form, or nil when the stored shape is used as-is.
	DBToFormSchema(opts SchemaOptions) *schema.Schema

	SetupTemplateVariables(ctx context.Context, tc *TemplateContext, data model.Record)
}
