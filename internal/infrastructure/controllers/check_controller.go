package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/outdated/internal/domain/commands"
	"github.com/rios0rios0/outdated/internal/domain/entities"
)

// Exit codes. CI pipelines branch on these, so they are part of the
// public contract.
const (
	exitUpToDate       = 0
	exitUpdateRequired = 1
	exitError          = 2
)

const (
	outputTable    = "table"
	outputJSON     = "json"
	outputMarkdown = "markdown"
)

//nolint:gochecknoglobals // replaced in tests to observe exit codes
var osExit = os.Exit

// CheckController handles the check command: run every applicable checker
// against a directory, render the results, and exit with the verdict.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [path]",
		Short: "Check a project tree for outdated dependencies",
		Long: `Check a project tree for outdated dependencies.

Detects the ecosystems used by the tree (dotnet, golang, terraform), runs
every applicable checker, and prints a report. Exits with 0 when everything
is up to date, 1 when updates are required, and 2 when the check itself
failed.`,
	}
}

// Execute runs the check and exits with the verdict's exit code.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	opts, settings, err := it.parseOptions(cmd, args)
	if err != nil {
		logger.Errorf("%v", err)
		osExit(exitError)
		return
	}

	results, err := it.command.Execute(ctx, settings, opts)
	if err != nil {
		logger.Errorf("Check failed: %v", err)
		osExit(exitError)
		return
	}

	format, _ := cmd.Flags().GetString("output")
	if err := renderResults(cmd.OutOrStdout(), results, format); err != nil {
		logger.Errorf("Failed to render results: %v", err)
		osExit(exitError)
		return
	}

	osExit(exitCodeFor(results))
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("include-auto-references", false,
		"Include auto-referenced packages in the analysis")
	cmd.Flags().String("pre-release", "auto",
		"Pre-release handling: never, auto, or always")
	cmd.Flags().StringArray("include", nil,
		"Only analyze dependencies with this name (repeatable)")
	cmd.Flags().StringArray("exclude", nil,
		"Ignore dependencies with this name (repeatable)")
	cmd.Flags().Bool("transitive", false,
		"Also analyze transitive dependencies")
	cmd.Flags().Uint("transitive-depth", 1,
		"Levels of transitive dependencies to analyze (requires --transitive)")
	cmd.Flags().String("version-lock", "none",
		"Constrain upgrade magnitude: none, major, or minor")
	cmd.Flags().String("checker", "",
		"Only run this checker (dotnet, golang, terraform)")
	cmd.Flags().String("output", outputTable,
		"Output format: table, json, or markdown")
}

// parseOptions builds the command options from flags, enforcing the flag
// pairings that the checkers themselves never re-validate.
func (it *CheckController) parseOptions(
	cmd *cobra.Command,
	args []string,
) (commands.CheckOptions, *entities.Settings, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	checkerName, _ := cmd.Flags().GetString("checker")

	options := entities.NewOutdatedOptions()

	if len(args) > 0 {
		options.InputDir = args[0]
	}

	options.IncludeAutoReferences, _ = cmd.Flags().GetBool("include-auto-references")
	options.Include, _ = cmd.Flags().GetStringArray("include")
	options.Exclude, _ = cmd.Flags().GetStringArray("exclude")
	options.Transitive, _ = cmd.Flags().GetBool("transitive")

	if cmd.Flags().Changed("transitive-depth") && !options.Transitive {
		return commands.CheckOptions{}, nil, errors.New("--transitive-depth requires --transitive")
	}
	if depth, err := cmd.Flags().GetUint("transitive-depth"); err == nil {
		options.TransitiveDepth = depth
	}

	preRelease, _ := cmd.Flags().GetString("pre-release")
	parsedPreRelease, err := entities.ParsePreRelease(preRelease)
	if err != nil {
		return commands.CheckOptions{}, nil, err
	}
	options.PreRelease = parsedPreRelease

	versionLock, _ := cmd.Flags().GetString("version-lock")
	parsedLock, err := entities.ParseVersionLock(versionLock)
	if err != nil {
		return commands.CheckOptions{}, nil, err
	}
	options.VersionLock = parsedLock

	settings, err := it.loadSettings(cmd)
	if err != nil {
		return commands.CheckOptions{}, nil, err
	}

	return commands.CheckOptions{
		CheckerName: checkerName,
		Verbose:     verbose,
		Options:     options,
	}, settings, nil
}

// loadSettings loads --config if given, an auto-detected file if one
// exists, or the defaults when there is no file at all.
func (it *CheckController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			return entities.NewDefaultSettings(), nil
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return settings, nil
}

// exitCodeFor maps the aggregated verdicts onto the process exit code.
func exitCodeFor(results []entities.CheckResult) int {
	for _, result := range results {
		if result.Requirement == entities.UpdateRequired {
			return exitUpdateRequired
		}
	}
	return exitUpToDate
}

// renderResults writes the results in the requested format.
func renderResults(out io.Writer, results []entities.CheckResult, format string) error {
	switch format {
	case outputJSON:
		return renderJSON(out, results)
	case outputMarkdown:
		renderMarkdown(out, results)
		return nil
	case outputTable, "":
		renderTable(out, results)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, or markdown)", format)
	}
}

func renderJSON(out io.Writer, results []entities.CheckResult) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

//nolint:mnd // column width caps keep the table readable on a terminal
func renderTable(out io.Writer, results []entities.CheckResult) {
	rows := allRows(results)

	if len(rows) > 0 {
		headers := []string{"Checker", "Project", "Framework", "Dependency", "Current", "Latest", "Severity"}
		widths := make([]int, len(headers))
		for i, header := range headers {
			widths[i] = len(header)
		}

		cells := make([][]string, 0, len(rows))
		for _, row := range rows {
			cell := []string{
				row[0],
				truncate(row[1], 40),
				row[2],
				truncate(row[3], 50),
				row[4],
				row[5],
				row[6],
			}
			for i, value := range cell {
				if len(value) > widths[i] {
					widths[i] = len(value)
				}
			}
			cells = append(cells, cell)
		}

		for i, header := range headers {
			fmt.Fprintf(out, "%-*s  ", widths[i], header)
		}
		fmt.Fprintln(out)
		for i := range headers {
			fmt.Fprintf(out, "%s  ", strings.Repeat("-", widths[i]))
		}
		fmt.Fprintln(out)
		for _, cell := range cells {
			for i, value := range cell {
				fmt.Fprintf(out, "%-*s  ", widths[i], value)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out)
	}

	for _, result := range results {
		fmt.Fprintf(out, "%s: %s (%d outdated)\n", result.Checker, result.Requirement, len(result.Outdated))
	}
}

func renderMarkdown(out io.Writer, results []entities.CheckResult) {
	fmt.Fprintln(out, "| Checker | Project | Framework | Dependency | Current | Latest | Severity |")
	fmt.Fprintln(out, "|---------|---------|-----------|------------|---------|--------|----------|")
	for _, row := range allRows(results) {
		fmt.Fprintf(out, "| %s | %s | %s | %s | %s | %s | %s |\n",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	fmt.Fprintln(out)
	for _, result := range results {
		fmt.Fprintf(out, "**%s**: %s (%d outdated)\n", result.Checker, result.Requirement, len(result.Outdated))
	}
}

// allRows flattens the results into renderable cells, one per dependency.
func allRows(results []entities.CheckResult) [][]string {
	var rows [][]string
	for _, result := range results {
		for _, dep := range result.Outdated {
			rows = append(rows, []string{
				result.Checker,
				dep.Project,
				dep.Framework,
				dep.Name,
				dep.ResolvedVersion,
				dep.LatestVersion,
				dep.Severity.String(),
			})
		}
	}
	return rows
}

// truncate shortens a string, marking the cut with an ellipsis.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
