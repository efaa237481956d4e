package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeflash-sh/codeflash/internal/controller"
	"github.com/codeflash-sh/codeflash/internal/domain"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a single Python file in detail",
		Long: `Analyze a single Python file and print every finding with its
impact and suggestion. The full cost rule set is applied. This command never
modifies anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := fsAdapter.FileInfo(m.Path(args[0]))
			if err != nil {
				return fmt.Errorf("invalid path %s: %w", args[0], err)
			}

			if info.IsDir() {
				return fmt.Errorf("analyze expects a single file, got directory %s (use `codeflash optimize` for directories)", args[0])
			}

			workflow, err := buildWorkflow("")
			if err != nil {
				return err
			}

			run, err := workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Paths: []m.Path{m.Path(args[0])},
				Goal:  m.GoalCost,
			})
			if err != nil {
				return err
			}

			return controller.NewSimpleUI(cmd).Detail(run)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
