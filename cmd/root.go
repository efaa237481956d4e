// Package cmd provides the root command and CLI setup for codeflash.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codeflash-sh/codeflash/internal/adapter"
	"github.com/codeflash-sh/codeflash/internal/domain"
	"github.com/codeflash-sh/codeflash/internal/logging"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

const version = "0.1.0"

var fsAdapter adapter.SourceFSAdapter
var pyAdapter adapter.PythonFileAdapter
var reportStore adapter.ReportStore
var prAdapter adapter.PullRequestAdapter
var sarifExporter *adapter.SarifExporter

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	pyAdapter = adapter.NewTreeSitterAdapter()
	reportStore = adapter.NewReportStore()
	prAdapter = adapter.NewUnsupportedPRAdapter()
	sarifExporter = adapter.NewSarifExporter()
}

var verboseFlag bool
var reportsDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codeflash",
		Short: "Python performance and cost analyzer",
		Long: `Codeflash inspects Python source files and reports optimization
opportunities: heavy imports that inflate cold starts, eagerly materialized
collections, quadratic accumulation patterns and slow membership tests.

Diagnostics are advisory. Codeflash never rewrites your source: no current
finding can be auto-applied without semantic analysis, and the tool says so
instead of pretending otherwise.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&reportsDirFlag, "reports", ".codeflash-reports", "directory for saved analysis reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// buildWorkflow wires the analysis workflow for one command invocation. An
// alternate knowledge table can be loaded from a TOML file; the default is
// the built-in heavy-library registry.
func buildWorkflow(knowledgePath string) (domain.Workflow, error) {
	table := adapter.DefaultKnowledgeTable()

	if knowledgePath != "" {
		loaded, err := adapter.LoadKnowledgeTable(knowledgePath)
		if err != nil {
			return nil, err
		}

		table = loaded
	}

	logger := logging.NewLogger("codeflash", verboseFlag)
	registry := domain.NewRegistry(table)

	return domain.NewWorkflow(fsAdapter, pyAdapter, registry, logger), nil
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
