package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/opencatalog/catalogd/internal/model"
)

// Field describes a single attribute in a validation schema.
type Field struct {
	// Type is the cty type the submitted value must convert to.
	Type cty.Type
	// Required marks the field as mandatory when no Default is set.
	Required bool
	// Default is applied when the record omits the field entirely.
	Default *cty.Value
}

// Schema is a map of field specifications. A Schema selects and normalizes
// the attributes of a submitted record; it does not persist or route
// anything itself.
type Schema struct {
	// Name identifies the schema in error messages and logs.
	Name string
	// Fields maps attribute names to their specifications.
	Fields map[string]Field
	// DropExtras discards record keys that have no field specification.
	// Show-oriented schemas keep them so no stored attribute is lost.
	DropExtras bool
}

// Invalid describes a validation failure on a single field.
type Invalid struct {
	Field  string
	Reason string
}

// ValidationError aggregates every field failure found in one pass.
type ValidationError struct {
	Schema string
	Errors []Invalid
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, inv := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", inv.Field, inv.Reason))
	}
	return fmt.Sprintf("schema %q validation failed: %s", e.Schema, strings.Join(parts, "; "))
}

// Validate checks rec against the schema and returns a normalized copy.
// The input record is never mutated. All field failures are collected into
// a single *ValidationError rather than stopping at the first one.
func (s *Schema) Validate(rec model.Record) (model.Record, error) {
	out := make(model.Record, len(rec))
	var errs []Invalid

	for _, name := range s.fieldNames() {
		field := s.Fields[name]

		raw, present := rec[name]
		if !present || raw == nil {
			switch {
			case field.Default != nil:
				out[name] = fromCty(*field.Default)
			case field.Required:
				errs = append(errs, Invalid{Field: name, Reason: "missing value"})
			}
			continue
		}

		val, err := toCty(raw, field.Type)
		if err != nil {
			errs = append(errs, Invalid{
				Field:  name,
				Reason: fmt.Sprintf("expected %s: %v", field.Type.FriendlyName(), err),
			})
			continue
		}
		out[name] = fromCty(val)
	}

	if !s.DropExtras {
		for key, val := range rec {
			if _, known := s.Fields[key]; !known {
				out[key] = val
			}
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Schema: s.Name, Errors: errs}
	}
	return out, nil
}

// fieldNames returns the schema's field names in a stable order so that
// error aggregation is deterministic.
func (s *Schema) fieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toCty converts a native Go value into a cty.Value of the wanted type,
// applying cty's standard conversions (e.g. "42" to a number).
func toCty(raw any, want cty.Type) (cty.Value, error) {
	implied, err := gocty.ImpliedType(raw)
	if err != nil {
		return cty.NilVal, err
	}
	val, err := gocty.ToCtyValue(raw, implied)
	if err != nil {
		return cty.NilVal, err
	}
	return convert.Convert(val, want)
}

// fromCty converts a cty.Value back into the plain Go representation used
// by model.Record.
func fromCty(val cty.Value) any {
	if val.IsNull() {
		return nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString()
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f
	case ty == cty.Bool:
		return val.True()
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			out = append(out, fromCty(elem))
		}
		return out
	case ty.IsMapType() || ty.IsObjectType():
		out := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			out[key.AsString()] = fromCty(elem)
		}
		return out
	default:
		return val.GoString()
	}
}
