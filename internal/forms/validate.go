package forms

import (
	"context"

	"github.com/opencatalog/catalogd/internal/model"
	"github.com/opencatalog/catalogd/internal/schema"
)

// Validator is the optional capability a form provider implements to take
// over record validation. Returning handled=false defers to the standard
// schema validation regardless of the other return values.
type Validator interface {
	Validate(ctx context.Context, rec model.Record, s *schema.Schema, action string) (model.Record, bool, error)
}

// Validate runs a provider's own validation when it implements Validator
// and falls back to the schema's standard validation otherwise. This is the
// only place a capability is probed rather than declared: older extensions
// opt into validation by simply having the method.
func Validate(ctx context.Context, provider any, rec model.Record, s *schema.Schema, action string) (model.Record, error) {
	if v, ok := provider.(Validator); ok {
		out, handled, err := v.Validate(ctx, rec, s, action)
		if handled || err != nil {
			return out, err
		}
	}
	return s.Validate(rec)
}
