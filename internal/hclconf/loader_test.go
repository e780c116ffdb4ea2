package hclconf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalog/catalogd/internal/hclconf"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	src := `
catalog {
  plugins                     = ["showcase", "topics"]
  allow_dataset_collaborators = true
}
`
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	model, err := hclconf.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"showcase", "topics"}, model.Plugins)
	assert.True(t, model.AllowDatasetCollaborators)
}

func TestLoadSource(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		src     string
		wantErr bool
		check   func(t *testing.T, plugins []string, collaborators bool)
	}{
		{
			name: "empty catalog block",
			src:  `catalog {}`,
			check: func(t *testing.T, plugins []string, collaborators bool) {
				assert.Empty(t, plugins)
				assert.False(t, collaborators)
			},
		},
		{
			name: "no catalog block",
			src:  ``,
			check: func(t *testing.T, plugins []string, collaborators bool) {
				assert.Empty(t, plugins)
			},
		},
		{
			name:    "malformed hcl",
			src:     `catalog {`,
			wantErr: true,
		},
		{
			name:    "unknown attribute",
			src:     `catalog { no_such_setting = 1 }`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			model, err := hclconf.NewLoader().LoadSource(context.Background(), []byte(tc.src), tc.name+".hcl")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, model.Plugins, model.AllowDatasetCollaborators)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := hclconf.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}
