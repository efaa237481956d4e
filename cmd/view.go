package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codeflash-sh/codeflash/internal/controller"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved analysis report",
		Long:  "View a previously saved analysis report from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := reportStore.Load(m.Path(reportsDirFlag))
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

			if err := ui.Summary(run); err != nil {
				return err
			}

			return ui.List(run)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
