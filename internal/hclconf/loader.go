// Package hclconf loads catalog configuration from HCL files into the
// format-agnostic config model.
package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/opencatalog/catalogd/internal/config"
	"github.com/opencatalog/catalogd/internal/ctxlog"
)

// file mirrors the top-level structure of a catalog.hcl file:
//
//	catalog {
//	  plugins                     = ["showcase", "topics"]
//	  allow_dataset_collaborators = true
//	}
type file struct {
	Catalog *catalogBlock `hcl:"catalog,block"`
}

type catalogBlock struct {
	Plugins                   []string `hcl:"plugins,optional"`
	AllowDatasetCollaborators bool     `hcl:"allow_dataset_collaborators,optional"`
}

// Loader reads catalog configuration from HCL files.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader { return &Loader{} }

// Load parses the file at path into the config model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", path, diags)
	}
	return l.decode(ctx, path, f.Body)
}

// LoadSource parses configuration from an in-memory buffer. The filename
// only labels diagnostics.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}
	return l.decode(ctx, filename, f.Body)
}

func (l *Loader) decode(ctx context.Context, name string, body hcl.Body) (*config.Model, error) {
	var raw file
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", name, diags)
	}

	model := &config.Model{}
	if raw.Catalog != nil {
		model.Plugins = raw.Catalog.Plugins
		model.AllowDatasetCollaborators = raw.Catalog.AllowDatasetCollaborators
	}

	ctxlog.FromContext(ctx).Debug("Configuration loaded and translated into unified model.",
		"source", name, "plugins", len(model.Plugins))
	return model, nil
}
