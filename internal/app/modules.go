package app

import (
	"fmt"

	"github.com/opencatalog/catalogd/internal/registry"
	"github.com/opencatalog/catalogd/modules/showcase"
	"github.com/opencatalog/catalogd/modules/topics"
)

// moduleCatalog is the definitive list of extension modules compiled into
// the catalogd binary, keyed by the name used in the configuration's
// plugins list.
var moduleCatalog = map[string]func() registry.Module{
	"showcase": func() registry.Module { return &showcase.Module{} },
	"topics":   func() registry.Module { return &topics.Module{} },
}

// resolveModules translates the configured plugin names into module
// instances, preserving the configured order: registration order decides
// which extension wins a contested fallback slot.
func resolveModules(names []string) ([]registry.Module, error) {
	modules := make([]registry.Module, 0, len(names))
	for _, name := range names {
		ctor, ok := moduleCatalog[name]
		if !ok {
			return nil, fmt.Errorf("unknown plugin %q in configuration", name)
		}
		modules = append(modules, ctor())
	}
	return modules, nil
}
