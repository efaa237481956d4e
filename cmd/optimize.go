package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/codeflash-sh/codeflash/internal/controller"
	"github.com/codeflash-sh/codeflash/internal/domain"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

var optimizeGoalFlag string
var optimizeParallelFlag int
var optimizeExcludeFlags []string
var optimizeDryRunFlag bool
var optimizeYesFlag bool
var optimizeFormatFlag string
var optimizeOutputFlag string
var optimizeKnowledgeFlag string
var optimizeSaveFlag bool
var optimizeCreatePRFlag bool
var optimizeRepoFlag string

// optimizeCmd represents the optimize command.
var optimizeCmd = newOptimizeCmd()

func newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize [paths...]",
		Short: "Analyze Python code for optimization opportunities",
		Long: `Analyze Python files or directories and report optimization
opportunities for the selected goal.

Goals:
  speed    flag patterns with avoidable runtime cost (default)
  cost     flag patterns that inflate cloud bills: heavy imports,
           eager collections, quadratic accumulation
  memory   flag patterns with avoidable memory footprint

Examples:
  codeflash optimize ./src
  codeflash optimize ./src --goal=cost
  codeflash optimize ./src --goal=memory --format=sarif --output=report.sarif`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&optimizeGoalFlag, "goal", "g", string(m.DefaultGoal), "optimization goal: speed, cost or memory")
	cmd.Flags().IntVarP(&optimizeParallelFlag, "parallel", "p", 1, "number of files analyzed concurrently")
	cmd.Flags().StringArrayVarP(&optimizeExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&optimizeDryRunFlag, "dry-run", false, "show findings without offering to apply anything")
	cmd.Flags().BoolVarP(&optimizeYesFlag, "yes", "y", false, "skip the apply confirmation prompt")
	cmd.Flags().StringVar(&optimizeFormatFlag, "format", "table", "output format: table, yaml or sarif")
	cmd.Flags().StringVarP(&optimizeOutputFlag, "output", "o", "", "write yaml/sarif output to a file instead of stdout")
	cmd.Flags().StringVar(&optimizeKnowledgeFlag, "knowledge", "", "TOML file replacing the built-in heavy-library table")
	cmd.Flags().BoolVar(&optimizeSaveFlag, "save", false, "save the run to the reports directory for later viewing")
	cmd.Flags().BoolVar(&optimizeCreatePRFlag, "create-pr", false, "create a pull request with the findings")
	cmd.Flags().StringVar(&optimizeRepoFlag, "repo", "", "repository for --create-pr (format: owner/repo)")

	return cmd
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	goal, err := m.ParseGoal(optimizeGoalFlag)
	if err != nil {
		return err
	}

	// Like the goal, the format is configuration: reject it before any
	// analysis work happens.
	if err := validateFormat(optimizeFormatFlag); err != nil {
		return err
	}

	workflow, err := buildWorkflow(optimizeKnowledgeFlag)
	if err != nil {
		return err
	}

	run, err := workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
		Paths:   parsePaths(args),
		Goal:    goal,
		Threads: optimizeParallelFlag,
		Exclude: optimizeExcludeFlags,
	})
	if err != nil {
		return err
	}

	if optimizeSaveFlag {
		if err := reportStore.Save(m.Path(reportsDirFlag), run); err != nil {
			return err
		}
	}

	if err := renderRun(cmd, run); err != nil {
		return err
	}

	// A run with findings is still a success; only boundary errors make
	// the process fail.
	if optimizeFormatFlag != "table" || run.Empty() || optimizeDryRunFlag {
		return nil
	}

	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

	apply := optimizeYesFlag
	if !apply {
		apply, err = ui.Confirm("Apply these optimizations?", true)
		if err != nil {
			return err
		}
	}

	if !apply {
		return nil
	}

	if err := ui.ApplyReport(workflow.Apply(run)); err != nil {
		return err
	}

	if optimizeCreatePRFlag {
		if optimizeRepoFlag == "" {
			return fmt.Errorf("--repo is required for pull request creation")
		}

		if _, err := prAdapter.CreatePullRequest(cmd.Context(), optimizeRepoFlag, run); err != nil {
			return err
		}
	}

	return nil
}

func renderRun(cmd *cobra.Command, run m.AnalysisRun) error {
	switch optimizeFormatFlag {
	case "table":
		ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

		if err := ui.Summary(run); err != nil {
			return err
		}

		return ui.List(run)
	case "yaml":
		w, closeFn, err := outputWriter(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		data, err := yaml.Marshal(run)
		if err != nil {
			return fmt.Errorf("failed to encode run: %w", err)
		}

		_, err = w.Write(data)

		return err
	case "sarif":
		w, closeFn, err := outputWriter(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		return sarifExporter.Write(w, run)
	default:
		return validateFormat(optimizeFormatFlag)
	}
}

func validateFormat(format string) error {
	switch format {
	case "table", "yaml", "sarif":
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid formats: table, yaml, sarif)", format)
	}
}

func outputWriter(cmd *cobra.Command) (io.Writer, func(), error) {
	if optimizeOutputFlag == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	f, err := os.Create(optimizeOutputFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
