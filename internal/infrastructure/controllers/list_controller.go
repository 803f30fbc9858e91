package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/outdated/internal/domain/commands"
	"github.com/rios0rios0/outdated/internal/domain/entities"
)

// ListController handles the list command: show the registered checkers
// and whether each one applies to the target tree.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list [path]",
		Short: "List registered checkers and their detection status",
		Long: `List every registered checker and whether it detects a supported
project in the target directory. Detected checkers are marked with *.`,
	}
}

// Execute lists the checkers and their detection status.
func (it *ListController) Execute(cmd *cobra.Command, args []string) {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	statuses, err := it.command.Execute(dir)
	if err != nil {
		logger.Errorf("List failed: %v", err)
		osExit(exitError)
		return
	}

	out := cmd.OutOrStdout()
	for _, status := range statuses {
		marker := " "
		if status.Detected {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, status.Name)
	}
}
