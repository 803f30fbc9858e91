//go:build unit

package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/outdated/internal/domain/entities"
)

const singleProjectReport = `{
  "Projects": [
    {
      "Name": "ConsoleApp",
      "FilePath": "/src/ConsoleApp/ConsoleApp.csproj",
      "TargetFrameworks": [
        {
          "Name": "net6.0",
          "Dependencies": [
            {
              "Name": "Foo",
              "ResolvedVersion": "1.0.0",
              "LatestVersion": "2.0.0",
              "UpgradeSeverity": "Major"
            }
          ]
        }
      ]
    }
  ]
}`

func TestDotnetOutdatedDataDecoding(t *testing.T) {
	t.Parallel()

	t.Run("should decode a single-project report into the full hierarchy", func(t *testing.T) {
		// given
		var data entities.DotnetOutdatedData

		// when
		err := json.Unmarshal([]byte(singleProjectReport), &data)

		// then
		require.NoError(t, err)
		require.Len(t, data.Projects, 1)

		project := data.Projects[0]
		assert.Equal(t, "ConsoleApp", project.Name)
		assert.Equal(t, "/src/ConsoleApp/ConsoleApp.csproj", project.FilePath)
		require.Len(t, project.TargetFrameworks, 1)

		framework := project.TargetFrameworks[0]
		assert.Equal(t, "net6.0", framework.Name)
		require.Len(t, framework.Dependencies, 1)

		dependency := framework.Dependencies[0]
		assert.Equal(t, "Foo", dependency.Name)
		assert.Equal(t, "1.0.0", dependency.ResolvedVersion)
		assert.Equal(t, "2.0.0", dependency.LatestVersion)
		assert.Equal(t, entities.SeverityMajor, dependency.UpgradeSeverity)
	})

	t.Run("should decode an empty report", func(t *testing.T) {
		// given
		var data entities.DotnetOutdatedData

		// when
		err := json.Unmarshal([]byte(`{"Projects": []}`), &data)

		// then
		require.NoError(t, err)
		assert.Empty(t, data.Projects)
	})

	t.Run("should fail on a malformed severity", func(t *testing.T) {
		// given
		report := `{"Projects":[{"Name":"A","FilePath":"a.csproj","TargetFrameworks":[{"Name":"net6.0","Dependencies":[{"Name":"Foo","ResolvedVersion":"1.0.0","LatestVersion":"2.0.0","UpgradeSeverity":"Huge"}]}]}]}`
		var data entities.DotnetOutdatedData

		// when
		err := json.Unmarshal([]byte(report), &data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Huge")
	})
}

func TestDotnetOutdatedDataRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("should survive a marshal and unmarshal unchanged", func(t *testing.T) {
		// given
		original := entities.DotnetOutdatedData{
			Projects: []entities.DotnetProject{
				{
					Name:     "Api",
					FilePath: "/src/Api/Api.csproj",
					TargetFrameworks: []entities.DotnetTargetFramework{
						{
							Name: "net8.0",
							Dependencies: []entities.DotnetDependency{
								{
									Name:            "Newtonsoft.Json",
									ResolvedVersion: "12.0.1",
									LatestVersion:   "13.0.3",
									UpgradeSeverity: entities.SeverityMajor,
								},
								{
									Name:            "Serilog",
									ResolvedVersion: "3.1.0",
									LatestVersion:   "3.1.1",
									UpgradeSeverity: entities.SeverityPatch,
								},
							},
						},
					},
				},
			},
		}

		// when
		encoded, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded entities.DotnetOutdatedData
		err = json.Unmarshal(encoded, &decoded)

		// then
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(original, decoded))
	})

	t.Run("should emit the PascalCase wire names", func(t *testing.T) {
		// given
		data := entities.DotnetOutdatedData{Projects: []entities.DotnetProject{}}

		// when
		encoded, err := json.Marshal(data)

		// then
		require.NoError(t, err)
		assert.JSONEq(t, `{"Projects": []}`, string(encoded))
	})
}
