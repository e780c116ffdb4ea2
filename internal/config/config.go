package config

import "context"

// Model is the unified representation of the catalog configuration.
type Model struct {
	// Plugins lists the extension modules to enable, in registration
	// order. Order matters for conflict detection: the first extension to
	// claim a fallback slot wins it and a later claimant is the error.
	Plugins []string

	// AllowDatasetCollaborators toggles per-dataset collaborator access
	// and the collaborator visibility labels derived from it.
	AllowDatasetCollaborators bool
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given path and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
