package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

func TestEditCmd_UsesStoredSelection(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Apply", mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Path == m.FilePath("notes.yaml") &&
			args.Command == m.CommandToggle &&
			args.Selection == nil &&
			args.Output == "" &&
			!args.DryRun
	})).Return(nil)

	cmd := newTestRootCmd(newEditCmd(m.CommandToggle))
	cmd.SetArgs([]string{"toggle", "notes.yaml"})

	require.NoError(t, cmd.Execute())
	mockWorkflow.AssertExpectations(t)
}

func TestEditCmd_SelectionAndListFlags(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Apply", mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Command == m.CommandWrap &&
			args.Selection != nil &&
			args.Selection.Anchor.Path.Equal(m.Path{0, 0}) &&
			args.Selection.Anchor.Offset == 2 &&
			args.Selection.Focus.Path.Equal(m.Path{2}) &&
			args.List.Type == m.TypeNumberList &&
			args.List.Data["start"] == 3 &&
			args.List.Data["class"] == "steps" &&
			args.Output == m.FilePath("out.yaml") &&
			args.DryRun
	})).Return(nil)

	cmd := newTestRootCmd(newEditCmd(m.CommandWrap))
	cmd.SetArgs([]string{
		"wrap", "notes.yaml",
		"--anchor", "0.0:2", "--focus", "2",
		"--list-type", "ol_list", "--attr", "start=3", "--attr", "class=steps",
		"-o", "out.yaml", "--dry-run",
	})

	require.NoError(t, cmd.Execute())
	mockWorkflow.AssertExpectations(t)
}

func TestEditCmd_AnchorOnlyIsCaret(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Apply", mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Command == m.CommandIndent &&
			args.Selection != nil &&
			args.Selection.IsCollapsed() &&
			args.Selection.Anchor.Path.Equal(m.Path{1, 0, 0, 0})
	})).Return(nil)

	cmd := newTestRootCmd(newEditCmd(m.CommandIndent))
	cmd.SetArgs([]string{"indent", "notes.yaml", "-a", "1.0.0.0"})

	require.NoError(t, cmd.Execute())
	mockWorkflow.AssertExpectations(t)
}

func TestEditCmd_Errors(t *testing.T) {
	t.Run("invalid anchor", func(t *testing.T) {
		useMockWorkflow(t)

		cmd := newTestRootCmd(newEditCmd(m.CommandUnwrap))
		cmd.SetArgs([]string{"unwrap", "notes.yaml", "--anchor", "0.x"})

		require.ErrorContains(t, cmd.Execute(), "invalid --anchor")
	})

	t.Run("focus without anchor", func(t *testing.T) {
		useMockWorkflow(t)

		cmd := newTestRootCmd(newEditCmd(m.CommandUnwrap))
		cmd.SetArgs([]string{"unwrap", "notes.yaml", "--focus", "0"})

		require.ErrorIs(t, cmd.Execute(), errFocusWithoutAnchor)
	})

	t.Run("workflow error", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		mockWorkflow.On("Apply", mock.Anything).Return(domain.ErrNoSelection)

		cmd := newTestRootCmd(newEditCmd(m.CommandOutdent))
		cmd.SetArgs([]string{"outdent", "notes.yaml"})

		require.ErrorIs(t, cmd.Execute(), domain.ErrNoSelection)
	})

	t.Run("missing document", func(t *testing.T) {
		useMockWorkflow(t)

		cmd := newTestRootCmd(newEditCmd(m.CommandToggle))
		cmd.SetArgs([]string{"toggle"})

		require.Error(t, cmd.Execute())
	})
}

func TestNewEditCmd(t *testing.T) {
	for _, command := range m.Commands {
		t.Run(string(command), func(t *testing.T) {
			cmd := newEditCmd(command)

			assert.Equal(t, string(command)+" <document>", cmd.Use)
			assert.NotEmpty(t, cmd.Short)
			assert.Contains(t, cmd.Long, string(command))

			for _, name := range []string{"anchor", "focus", "output", "dry-run"} {
				assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s", name)
			}

			createsLists := command == m.CommandToggle || command == m.CommandWrap
			assert.Equal(t, createsLists, cmd.Flags().Lookup("list-type") != nil)
			assert.Equal(t, createsLists, cmd.Flags().Lookup("attr") != nil)
		})
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("", "")
	require.NoError(t, err)
	assert.Nil(t, sel)

	sel, err = parseSelection("1.0:4", "0.0")
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.True(t, sel.IsBackward())

	_, err = parseSelection("0", "bad")
	require.ErrorContains(t, err, "invalid --focus")

	_, err = parseSelection("", "0")
	assert.True(t, errors.Is(err, errFocusWithoutAnchor))
}

func TestListFlags_Args(t *testing.T) {
	assert.Equal(t, domain.ListArgs{}, (&listFlags{}).args())

	args := (&listFlags{listType: "ol_list", attrs: map[string]string{"start": "2", "reversed": "true"}}).args()
	assert.Equal(t, domain.ListArgs{
		Type: m.TypeNumberList,
		Data: map[string]any{"start": 2, "reversed": "true"},
	}, args)
}
