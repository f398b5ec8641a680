package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

// defaultReportsDir is where batch reports are written and read back.
const defaultReportsDir = ".listedit-reports"

var batchParallelFlag int
var batchShardFlag string
var batchReportsFlag string
var batchDryRunFlag bool
var batchExcludeFlags []string
var batchListFlags listFlags

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

const batchLongDescription = `Runs one command over many documents, each with its own stored selection.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./docs/...     recursively scan docs directory
  - ./a ./b        scan multiple directories

Documents without a selection are reported and skipped. Results are saved
to the reports directory and can be shown again with "listedit view".`

func newBatchCmd() *cobra.Command {
	commands := make([]string, 0, len(m.Commands))
	for _, command := range m.Commands {
		commands = append(commands, string(command))
	}

	cmd := &cobra.Command{
		Use:       "batch <command> [paths...]",
		Short:     "Run a command over many documents",
		Long:      batchLongDescription,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: commands,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(batchShardFlag)

			return workflow.Batch(domain.BatchArgs{
				Paths:           parsePaths(args[1:]),
				Exclude:         batchExcludeFlags,
				Command:         m.Command(args[0]),
				List:            batchListFlags.args(),
				Reports:         m.FilePath(batchReportsFlag),
				Threads:         batchParallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				DryRun:          batchDryRunFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&batchParallelFlag, "parallel", "p", 1, "number of documents edited in parallel")
	cmd.Flags().StringVarP(&batchShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringVarP(&batchReportsFlag, "reports", "r", defaultReportsDir, "directory for batch reports (empty to disable)")
	cmd.Flags().BoolVarP(&batchDryRunFlag, "dry-run", "n", false, "report what would change without saving")
	cmd.Flags().StringArrayVarP(&batchExcludeFlags, "exclude", "x", nil, "exclude documents matching regex (can be repeated)")
	batchListFlags.register(cmd)

	return cmd
}

// parsePaths defaults to the current directory tree.
func parsePaths(args []string) []m.FilePath {
	if len(args) == 0 {
		return []m.FilePath{"./..."}
	}

	paths := make([]m.FilePath, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.FilePath(arg))
	}

	return paths
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
