//go:build unit

package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/outdated/internal/domain/entities"
)

func TestSeverityBetween(t *testing.T) {
	t.Parallel()

	t.Run("should classify a major version jump", func(t *testing.T) {
		// when
		severity, ok := entities.SeverityBetween("1.2.3", "2.0.0")

		// then
		require.True(t, ok)
		assert.Equal(t, entities.SeverityMajor, severity)
	})

	t.Run("should classify a minor version jump", func(t *testing.T) {
		// when
		severity, ok := entities.SeverityBetween("1.2.3", "1.3.0")

		// then
		require.True(t, ok)
		assert.Equal(t, entities.SeverityMinor, severity)
	})

	t.Run("should classify a patch version jump", func(t *testing.T) {
		// when
		severity, ok := entities.SeverityBetween("1.2.3", "1.2.4")

		// then
		require.True(t, ok)
		assert.Equal(t, entities.SeverityPatch, severity)
	})

	t.Run("should accept versions with a v prefix", func(t *testing.T) {
		// when
		severity, ok := entities.SeverityBetween("v1.0.0", "v1.1.0")

		// then
		require.True(t, ok)
		assert.Equal(t, entities.SeverityMinor, severity)
	})

	t.Run("should report false when latest is not newer", func(t *testing.T) {
		// when
		_, equalOk := entities.SeverityBetween("1.2.3", "1.2.3")
		_, olderOk := entities.SeverityBetween("2.0.0", "1.9.9")

		// then
		assert.False(t, equalOk)
		assert.False(t, olderOk)
	})

	t.Run("should report false for versions that are not semver", func(t *testing.T) {
		// when
		_, ok := entities.SeverityBetween("latest", "2.0.0")

		// then
		assert.False(t, ok)
	})
}

func TestIsNewerVersion(t *testing.T) {
	t.Parallel()

	t.Run("should compare semver versions numerically", func(t *testing.T) {
		// then
		assert.True(t, entities.IsNewerVersion("1.9.0", "1.10.0"))
		assert.False(t, entities.IsNewerVersion("1.10.0", "1.9.0"))
		assert.False(t, entities.IsNewerVersion("1.0.0", "1.0.0"))
	})

	t.Run("should fall back to lexical comparison for non-semver values", func(t *testing.T) {
		// then
		assert.True(t, entities.IsNewerVersion("release-a", "release-b"))
		assert.False(t, entities.IsNewerVersion("release-b", "release-a"))
	})
}

func TestIsPrerelease(t *testing.T) {
	t.Parallel()

	t.Run("should detect pre-release suffixes", func(t *testing.T) {
		// then
		assert.True(t, entities.IsPrerelease("v1.2.3-rc.1"))
		assert.True(t, entities.IsPrerelease("2.0.0-beta"))
		assert.False(t, entities.IsPrerelease("v1.2.3"))
		assert.False(t, entities.IsPrerelease("1.2.3"))
	})
}

func TestSeverityMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("should render the exact report strings", func(t *testing.T) {
		for severity, want := range map[entities.Severity]string{
			entities.SeverityMajor: `"Major"`,
			entities.SeverityMinor: `"Minor"`,
			entities.SeverityPatch: `"Patch"`,
		} {
			// when
			data, err := json.Marshal(severity)

			// then
			require.NoError(t, err)
			assert.Equal(t, want, string(data))
		}
	})

	t.Run("should reject values outside the known set", func(t *testing.T) {
		// when
		_, err := json.Marshal(entities.Severity(42))

		// then
		require.Error(t, err)
	})
}

func TestSeverityUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("should parse the three known values", func(t *testing.T) {
		for raw, want := range map[string]entities.Severity{
			`"Major"`: entities.SeverityMajor,
			`"Minor"`: entities.SeverityMinor,
			`"Patch"`: entities.SeverityPatch,
		} {
			// given
			var severity entities.Severity

			// when
			err := json.Unmarshal([]byte(raw), &severity)

			// then
			require.NoError(t, err)
			assert.Equal(t, want, severity)
		}
	})

	t.Run("should reject unknown severities instead of defaulting", func(t *testing.T) {
		// given
		var severity entities.Severity

		// when
		err := json.Unmarshal([]byte(`"Critical"`), &severity)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Critical")
	})

	t.Run("should reject non-string severities", func(t *testing.T) {
		// given
		var severity entities.Severity

		// when
		err := json.Unmarshal([]byte(`3`), &severity)

		// then
		require.Error(t, err)
	})
}
