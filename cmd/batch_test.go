package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

func TestBatchCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Batch", mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.Command == m.CommandNormalize &&
			len(args.Paths) == 1 &&
			args.Paths[0] == m.FilePath("./...") &&
			args.Threads == 1 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			args.Reports == m.FilePath(".listedit-reports") &&
			!args.DryRun
	})).Return(nil)

	cmd := newTestRootCmd(newBatchCmd())
	cmd.SetArgs([]string{"batch", "normalize"})

	require.NoError(t, cmd.Execute())
	mockWorkflow.AssertExpectations(t)
}

func TestBatchCmd_WithFlags(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Batch", mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.Command == m.CommandToggle &&
			len(args.Paths) == 2 &&
			args.Paths[0] == m.FilePath("./docs/...") &&
			args.Paths[1] == m.FilePath("./notes") &&
			args.Threads == 4 &&
			args.ShardIndex == 1 &&
			args.TotalShardCount == 3 &&
			args.Reports == "" &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "^drafts/" &&
			args.List.Type == m.TypeNumberList &&
			args.DryRun
	})).Return(nil)

	cmd := newTestRootCmd(newBatchCmd())
	cmd.SetArgs([]string{
		"batch", "toggle", "./docs/...", "./notes",
		"-p", "4", "--shard", "1/3", "--reports", "", "--list-type", "ol_list", "-n",
		"-x", "^drafts/", "-x", "_old\\.yaml$",
	})

	require.NoError(t, cmd.Execute())
	mockWorkflow.AssertExpectations(t)
}

func TestBatchCmd_RequiresCommand(t *testing.T) {
	useMockWorkflow(t)

	cmd := newTestRootCmd(newBatchCmd())
	cmd.SetArgs([]string{"batch"})

	require.Error(t, cmd.Execute())
}

func TestNewBatchCmd(t *testing.T) {
	cmd := newBatchCmd()

	assert.Equal(t, "batch <command> [paths...]", cmd.Use)
	assert.Equal(t, batchLongDescription, cmd.Long)
	assert.Len(t, cmd.ValidArgs, len(m.Commands))

	for _, name := range []string{"parallel", "shard", "reports", "dry-run", "exclude", "list-type", "attr"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s", name)
	}
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.FilePath{"./..."}, parsePaths(nil))
	assert.Equal(t, []m.FilePath{"a", "b/..."}, parsePaths([]string{"a", "b/..."}))
}
