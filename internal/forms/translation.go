package forms

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
)

// TranslationProvider enumerates the locales an extension ships
// translations for and names its gettext domain.
type TranslationProvider interface {
	I18nDirectory() string
	I18nLocales() ([]string, error)
	I18nDomain() string
}

// DefaultTranslation implements TranslationProvider for an extension rooted
// at Dir. Locales are the subdirectories of <Dir>/i18n; the listing is
// cached after the first call since an extension's layout does not change
// at runtime.
type DefaultTranslation struct {
	// Name is the extension's short name, e.g. "showcase".
	Name string
	// Dir is the extension's root directory.
	Dir string

	mu      sync.Mutex
	listed  bool
	locales []string
}

// I18nDirectory returns the directory holding per-locale message catalogs.
func (t *DefaultTranslation) I18nDirectory() string {
	return filepath.Join(t.Dir, "i18n")
}

// I18nLocales lists the locale codes this extension provides, sorted.
func (t *DefaultTranslation) I18nLocales() ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.listed {
		return slices.Clone(t.locales), nil
	}

	entries, err := os.ReadDir(t.I18nDirectory())
	if err != nil {
		return nil, fmt.Errorf("listing locales for extension %q: %w", t.Name, err)
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	sort.Strings(locales)

	t.listed = true
	t.locales = locales
	return slices.Clone(locales), nil
}

// I18nDomain returns the gettext domain for this extension's catalogs.
func (t *DefaultTranslation) I18nDomain() string {
	return "catalogd-" + t.Name
}
