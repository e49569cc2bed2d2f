package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCLIConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CLIConfigFileName), []byte(content), 0o600))
}

func TestCLIConfigDir(t *testing.T) {
	home := t.TempDir()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	t.Setenv("HOME", home)
	t.Setenv("EXERCISM_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := CLIConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "exercism"), dir)

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err = CLIConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "exercism"), dir)

	t.Setenv("EXERCISM_CONFIG_HOME", "/exercism")
	dir, err = CLIConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/exercism", dir)
}

func TestLoadCLICredentials(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    Credentials
		wantErr error
		anyErr  bool
	}{
		{
			name:    "token and base url",
			content: ptr(`{"token":" abc ","apibaseurl":"https://api.exercism.io/v1","workspace":"/x"}`),
			want:    Credentials{Token: "abc", APIBaseURL: "https://api.exercism.io/v1"},
		},
		{
			name:    "token only",
			content: ptr(`{"token":"abc"}`),
			want:    Credentials{Token: "abc"},
		},
		{
			name:    "missing file",
			wantErr: ErrNoCredentials,
		},
		{
			name:    "empty token",
			content: ptr(`{"token":""}`),
			wantErr: ErrNoCredentials,
		},
		{
			name:    "broken json",
			content: ptr(`{"token":`),
			anyErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("EXERCISM_CONFIG_HOME", dir)
			if tt.content != nil {
				writeCLIConfig(t, dir, *tt.content)
			}

			got, err := LoadCLICredentials()

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrNoCredentials)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func ptr(s string) *string { return &s }
