package registry

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is checks on registration failures.
var (
	// ErrDuplicateRegistration is matched by duplicate type-string errors.
	ErrDuplicateRegistration = errors.New("type already registered")

	// ErrMultipleFallback is matched by competing fallback claims.
	ErrMultipleFallback = errors.New("multiple fallback providers")
)

// Axis names one of the independent type spaces. Group and organization
// share one type-string space but have separate fallback slots.
type Axis string

const (
	AxisDataset      Axis = "dataset"
	AxisGroup        Axis = "group"
	AxisOrganization Axis = "organization"
)

// DuplicateRegistrationError reports a type-string that already has an
// owning provider within its axis.
type DuplicateRegistrationError struct {
	Axis Axis
	Type string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("an existing %s form is already associated with the type %q", e.Axis, e.Type)
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}

// MultipleFallbackError reports a second extension-supplied fallback claim
// for an axis whose slot is already taken.
type MultipleFallbackError struct {
	Axis Axis
}

func (e *MultipleFallbackError) Error() string {
	return fmt.Sprintf("more than one fallback %s form has been registered", e.Axis)
}

func (e *MultipleFallbackError) Is(target error) bool {
	return target == ErrMultipleFallback
}
