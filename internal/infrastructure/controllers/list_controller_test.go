//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	"github.com/rios0rios0/outdated/internal/infrastructure/controllers"
	doubles "github.com/rios0rios0/outdated/test/domain/commanddoubles"
)

func TestListControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should mark detected checkers with a star", func(t *testing.T) {
		// given
		stub := &doubles.StubListCommand{
			Statuses: []entities.CheckerStatus{
				{Name: "dotnet", Detected: false},
				{Name: "golang", Detected: true},
			},
		}
		controller := controllers.NewListController(stub)

		cmd := &cobra.Command{Use: "list"}
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		controller.Execute(cmd, []string{"/repo"})

		// then
		assert.Equal(t, "  dotnet\n* golang\n", out.String())
		assert.Equal(t, "/repo", stub.LastDir)
	})

	t.Run("should default to the current directory", func(t *testing.T) {
		// given
		stub := &doubles.StubListCommand{}
		controller := controllers.NewListController(stub)

		cmd := &cobra.Command{Use: "list"}
		cmd.SetOut(&bytes.Buffer{})

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Empty(t, stub.LastDir)
	})

	t.Run("should exit with an error code when listing fails", func(t *testing.T) {
		// given
		stub := &doubles.StubListCommand{ExecuteErr: errors.New("invalid path")}
		controller := controllers.NewListController(stub)

		cmd := &cobra.Command{Use: "list"}
		cmd.SetOut(&bytes.Buffer{})

		var code int
		restore := controllers.OsExitHook(func(c int) { code = c })
		defer restore()

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 2, code)
	})
}

func TestListControllerGetBind(t *testing.T) {
	t.Parallel()

	// given
	controller := controllers.NewListController(&doubles.StubListCommand{})

	// when
	bind := controller.GetBind()

	// then
	assert.Equal(t, "list [path]", bind.Use)
	assert.NotEmpty(t, bind.Short)
}
