package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

var viewReportsFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [document]",
		Short: "View a document tree or previously saved batch reports",
		Long: `View prints the block tree of a document with its selection marked.
Without a document it shows the reports saved by the last batch run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return workflow.View(domain.ViewArgs{Reports: m.FilePath(viewReportsFlag)})
			}

			return workflow.View(domain.ViewArgs{Path: m.FilePath(args[0])})
		},
	}
	cmd.Flags().StringVarP(&viewReportsFlag, "reports", "r", defaultReportsDir, "directory with batch reports")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
