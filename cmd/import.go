package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

var importOutputFlag string

// importCmd represents the import command.
var importCmd = newImportCmd()

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <page.html>",
		Short: "Convert an HTML page into a document",
		Long: `Import reads the body of an HTML page, sanitizes it and converts its block
elements into a document. The result is printed, or written to --output in
the format given by its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Import(domain.ImportArgs{
				Source: m.FilePath(args[0]),
				Output: m.FilePath(importOutputFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&importOutputFlag, "output", "o", "", "document file to write (.yaml, .json or .html)")

	return cmd
}

func init() {
	rootCmd.AddCommand(importCmd)
}
