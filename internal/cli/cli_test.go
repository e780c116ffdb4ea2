package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalog/catalogd/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		args       []string
		wantExit   bool
		wantErr    bool
		wantConfig string
		wantPort   int
		wantLevel  string
	}{
		{
			name:       "positional config path",
			args:       []string{"catalog.hcl"},
			wantConfig: "catalog.hcl",
			wantLevel:  "info",
		},
		{
			name:       "config flag wins over positional",
			args:       []string{"-config", "flagged.hcl", "positional.hcl"},
			wantConfig: "flagged.hcl",
			wantLevel:  "info",
		},
		{
			name:       "shorthand flag",
			args:       []string{"-c", "short.hcl", "-status-port", "8080", "-log-level", "DEBUG"},
			wantConfig: "short.hcl",
			wantPort:   8080,
			wantLevel:  "debug",
		},
		{
			name:     "no args prints usage and exits cleanly",
			args:     nil,
			wantExit: true,
		},
		{
			name:    "invalid log level",
			args:    []string{"-log-level", "loud", "catalog.hcl"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			args:    []string{"-log-format", "xml", "catalog.hcl"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-no-such-flag"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			config, shouldExit, err := cli.Parse(tc.args, &out)

			if tc.wantErr {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)

			if tc.wantExit {
				assert.True(t, shouldExit)
				assert.Contains(t, out.String(), "Usage:")
				return
			}

			require.NotNil(t, config)
			assert.Equal(t, tc.wantConfig, config.ConfigPath)
			assert.Equal(t, tc.wantPort, config.StatusPort)
			assert.Equal(t, tc.wantLevel, config.LogLevel)
		})
	}
}
