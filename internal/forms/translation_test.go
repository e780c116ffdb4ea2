package forms_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalog/catalogd/internal/forms"
)

func TestDefaultTranslation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	i18n := filepath.Join(dir, "i18n")
	require.NoError(t, os.MkdirAll(filepath.Join(i18n, "fr"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(i18n, "de"), 0o755))
	// Stray files are not locales.
	require.NoError(t, os.WriteFile(filepath.Join(i18n, "README"), []byte("ignore"), 0o644))

	tr := &forms.DefaultTranslation{Name: "showcase", Dir: dir}

	assert.Equal(t, i18n, tr.I18nDirectory())
	assert.Equal(t, "catalogd-showcase", tr.I18nDomain())

	locales, err := tr.I18nLocales()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "fr"}, locales)

	// The listing is cached: removing the directory does not change the
	// answer, and callers cannot mutate the cache through the result.
	require.NoError(t, os.RemoveAll(i18n))
	locales[0] = "mutated"
	again, err := tr.I18nLocales()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "fr"}, again)
}

func TestDefaultTranslation_MissingDirectory(t *testing.T) {
	t.Parallel()

	tr := &forms.DefaultTranslation{Name: "ghost", Dir: filepath.Join(t.TempDir(), "nope")}
	_, err := tr.I18nLocales()
	require.Error(t, err)
	assert.ErrorContains(t, err, "ghost")
}
