package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	t.Run("explicit_override_wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/opt/devmk")
		t.Setenv(EnvXDGConfigHome, "/xdg")
		assert.Equal(t, "/opt/devmk", ConfigDir())
	})

	t.Run("xdg_config_home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv(EnvXDGConfigHome, "/xdg")
		assert.Equal(t, filepath.Join("/xdg", "devmk"), ConfigDir())
		assert.Equal(t, filepath.Join("/xdg", "devmk", "config.toml"), UserConfigPath())
	})
}

func TestFindDescription(t *testing.T) {
	t.Run("prefers_toml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "devmk.yaml"), []byte("device: a\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "devmk.toml"), []byte("device = 'a'\n"), 0644))

		got, err := FindDescription(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "devmk.toml"), got)
	})

	t.Run("falls_back_to_yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "devmk.yml"), []byte("device: a\n"), 0644))

		got, err := FindDescription(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "devmk.yml"), got)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := FindDescription(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("ignores_directories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "devmk.toml"), 0755))

		_, err := FindDescription(dir)
		assert.Error(t, err)
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~", home},
		{"~/vendor", filepath.Join(home, "vendor")},
		{"~other/x", "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
