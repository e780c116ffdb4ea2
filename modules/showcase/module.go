// Package showcase provides the "showcase" dataset type: curated
// collections of datasets presented with their own templates and a trimmed
// schema. It doubles as the reference for writing a dataset-type extension:
// wrap the default form, override the bits that differ, declare the types
// handled.
package showcase

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/opencatalog/catalogd/internal/forms"
	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/registry"
	"github.com/opencatalog/catalogd/internal/schema"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name returns the identifier used in the configuration's plugins list.
func (m *Module) Name() string { return "showcase" }

// Register registers the showcase dataset form.
func (m *Module) Register(ctx context.Context, r *registry.Registry) error {
	return r.RegisterDatasetTypes(ctx, []forms.DatasetForm{NewForm()})
}

// Form customizes dataset behavior for the "showcase" type. Everything not
// overridden here delegates to the default dataset form.
type Form struct {
	base *forms.DefaultDatasetForm
	i18n *forms.DefaultTranslation
}

// NewForm creates the showcase form.
func NewForm() *Form {
	return &Form{
		base: forms.NewDefaultDatasetForm(),
		i18n: &forms.DefaultTranslation{Name: "showcase", Dir: "modules/showcase"},
	}
}

func (f *Form) Types() []string  { return []string{"showcase"} }
func (f *Form) IsFallback() bool { return false }

// CreateSchema is the default dataset create schema with an image and
// without privacy: showcases are always public presentation pages.
func (f *Form) CreateSchema() *schema.Schema {
	s := f.base.CreateSchema()
	s.Name = "showcase_create"
	s.Fields["image_url"] = schema.Field{Type: cty.String}
	delete(s.Fields, "private")
	return s
}

func (f *Form) UpdateSchema() *schema.Schema {
	s := f.base.UpdateSchema()
	s.Name = "showcase_update"
	s.Fields["image_url"] = schema.Field{Type: cty.String}
	delete(s.Fields, "private")
	return s
}

func (f *Form) ShowSchema() *schema.Schema {
	s := f.base.ShowSchema()
	s.Name = "showcase_show"
	s.Fields["image_url"] = schema.Field{Type: cty.String}
	return s
}

func (f *Form) NewTemplate() string    { return "showcase/new.html" }
func (f *Form) ReadTemplate() string   { return "showcase/read.html" }
func (f *Form) SearchTemplate() string { return "showcase/search.html" }

func (f *Form) EditTemplate() string         { return f.base.EditTemplate() }
func (f *Form) HistoryTemplate() string      { return f.base.HistoryTemplate() }
func (f *Form) ResourceTemplate() string     { return f.base.ResourceTemplate() }
func (f *Form) FormTemplate() string         { return "showcase/new_showcase_form.html" }
func (f *Form) ResourceFormTemplate() string { return f.base.ResourceFormTemplate() }

func (f *Form) SetupTemplateVariables(ctx context.Context, tc *forms.TemplateContext, data model.Record) {
	f.base.SetupTemplateVariables(ctx, tc, data)
}

// The showcase extension ships its own translations.

func (f *Form) I18nDirectory() string          { return f.i18n.I18nDirectory() }
func (f *Form) I18nLocales() ([]string, error) { return f.i18n.I18nLocales() }
func (f *Form) I18nDomain() string             { return f.i18n.I18nDomain() }
