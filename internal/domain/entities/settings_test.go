//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/outdated/internal/domain/entities"
)

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should load a valid settings file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "outdated.yaml")
		content := `
checkers:
  dotnet:
    enabled: true
    exclude:
      - "Microsoft.Extensions.Logging"
  golang:
    enabled: true
    include:
      - "github.com/spf13/cobra"
  terraform:
    enabled: false
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.True(t, settings.Checkers["dotnet"].Enabled)
		assert.Equal(t, []string{"Microsoft.Extensions.Logging"}, settings.Checkers["dotnet"].Exclude)
		assert.True(t, settings.Checkers["golang"].Enabled)
		assert.Equal(t, []string{"github.com/spf13/cobra"}, settings.Checkers["golang"].Include)
		assert.False(t, settings.Checkers["terraform"].Enabled)
	})

	t.Run("should fail for nonexistent settings file", func(t *testing.T) {
		t.Parallel()

		// given
		path := "/tmp/nonexistent_outdated_config_xyz.yaml"

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "bad.yaml")
		err := os.WriteFile(cfgFile, []byte("{{{{invalid yaml"), 0o600)
		require.NoError(t, err)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail validation for an empty include entry", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "outdated.yaml")
		content := `
checkers:
  golang:
    enabled: true
    include:
      - ""
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "checkers.golang.include")
	})

	t.Run("should fail validation for an empty exclude entry", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "outdated.yaml")
		content := `
checkers:
  dotnet:
    enabled: true
    exclude:
      - ""
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "checkers.dotnet.exclude")
	})
}

func TestNewDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should leave every checker enabled", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.NewDefaultSettings()

		// then
		assert.NotNil(t, settings.Checkers)
		assert.Empty(t, settings.Checkers)
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("should return error when no config file exists", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		// when
		path, err := entities.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Empty(t, path)
		assert.Contains(t, err.Error(), "no config file found")
	})

	t.Run("should find outdated.yaml in current directory", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		cfgFile := filepath.Join(tmpDir, "outdated.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("checkers: {}"), 0o600))

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, "outdated.yaml", path)
	})

	t.Run("should find .outdated.yaml in current directory", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		cfgFile := filepath.Join(tmpDir, ".outdated.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("checkers: {}"), 0o600))

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".outdated.yaml", path)
	})
}
