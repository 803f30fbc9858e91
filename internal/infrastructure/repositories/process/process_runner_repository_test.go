//go:build integration

package process_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/outdated/internal/infrastructure/repositories/process"
)

func TestProcessRunnerRepositoryRun(t *testing.T) {
	t.Parallel()

	t.Run("should capture stdout on success", func(t *testing.T) {
		// given
		runner := process.NewProcessRunnerRepository()

		// when
		result, err := runner.Run(context.Background(), "", "echo", "hello")

		// then
		require.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, "hello\n", string(result.Stdout))
		assert.Empty(t, result.Stderr)
	})

	t.Run("should return a non-zero exit as data, not error", func(t *testing.T) {
		// given
		runner := process.NewProcessRunnerRepository()

		// when
		result, err := runner.Run(context.Background(), "", "sh", "-c", "exit 3")

		// then
		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Equal(t, 3, result.ExitCode)
	})

	t.Run("should capture stderr separately", func(t *testing.T) {
		// given
		runner := process.NewProcessRunnerRepository()

		// when
		result, err := runner.Run(context.Background(), "", "sh", "-c", "echo oops 1>&2; exit 1")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, result.ExitCode)
		assert.Equal(t, "oops\n", string(result.Stderr))
		assert.Empty(t, result.Stdout)
	})

	t.Run("should fail when the binary does not exist", func(t *testing.T) {
		// given
		runner := process.NewProcessRunnerRepository()

		// when
		_, err := runner.Run(context.Background(), "", "definitely-not-a-binary-xyz")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run definitely-not-a-binary-xyz")
	})

	t.Run("should run in the requested directory", func(t *testing.T) {
		// given
		runner := process.NewProcessRunnerRepository()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte(""), 0o600))

		// when
		result, err := runner.Run(context.Background(), dir, "ls")

		// then
		require.NoError(t, err)
		assert.Contains(t, string(result.Stdout), "marker.txt")
	})
}
