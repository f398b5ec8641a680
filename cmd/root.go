// Package cmd provides the root command and CLI setup for listedit.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/listedit/internal/adapter"
	"github.com/mouse-blink/listedit/internal/controller"
	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

var fsAdapter adapter.DocumentFSAdapter
var reportStore adapter.ReportStore
var configStore adapter.ConfigStore
var lists domain.ListEditor
var workflow domain.Workflow
var ui controller.UI
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// setup rebuilds the list editor and workflow from the configuration file
// before any subcommand runs.
var setup = configure

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalDocumentFSAdapter()
	reportStore = adapter.NewLocalReportStore()
	configStore = adapter.NewLocalConfigStore()
	lists = domain.NewListEditor()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		lists,
	)
}

var configFlag string
var verboseFlag bool
var separatorFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `listedit wraps, unwraps and toggles lists in block structured documents.

Documents are YAML, JSON or HTML files holding a tree of blocks and an
optional selection. Every edit works on the selection: the blocks it covers
are wrapped into a list, the list items it covers are lifted out of their
list, and adjacent lists of the same type are merged afterwards.

Block types, the list item type and the blocks that keep lists apart are
read from the configuration file (.listedit.yaml by default).`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "listedit",
		Short:        "Structural list editing for block documents",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", adapter.DefaultConfigFile, "configuration file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log skipped candidates and merges to stderr")
	cmd.PersistentFlags().StringSliceVar(&separatorFlags, "separator", nil, "extra block types that keep lists apart (can be repeated)")

	return cmd
}

// configure loads the configuration, applies the global flags and wires a
// fresh list editor and workflow.
func configure(cmd *cobra.Command) error {
	cfg, err := configStore.Load(m.FilePath(configFlag))
	if err != nil {
		return err
	}

	for _, separator := range separatorFlags {
		cfg.SeparatorTypes = append(cfg.SeparatorTypes, m.NodeType(separator))
	}

	logger = newLogger(cmd)
	ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	lists = domain.NewListEditor(
		domain.WithConfig(cfg),
		domain.WithLogger(logger),
	)
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, lists)

	return nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verboseFlag {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		logger.Warn("ignoring invalid shard, processing every document", "shard", shard)

		return 0, 1
	}

	return index, total
}
