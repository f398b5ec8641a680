package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/listedit/internal/domain"
	m "github.com/mouse-blink/listedit/internal/model"
)

var editShortDescriptions = map[m.Command]string{
	m.CommandToggle:    "Wrap the selection in a list, or lift it out of one",
	m.CommandWrap:      "Wrap the selected blocks in a list",
	m.CommandUnwrap:    "Lift the selected list items out of their list",
	m.CommandIndent:    "Nest the selected list items under the previous item",
	m.CommandOutdent:   "Move the selected list items one level up",
	m.CommandNormalize: "Merge adjacent compatible lists",
}

const editLongDescription = `Runs %s on a document and saves it in place.

The selection stored in the document is used unless --anchor is given.
Points are written as a dot separated path with an optional text offset,
for example 0.1.0:3. A point naming a block selects from the start of its
first text (anchor) to the end of its last text (focus).`

// errFocusWithoutAnchor is returned when only the focus of a selection is given.
var errFocusWithoutAnchor = errors.New("--focus needs --anchor")

// listFlags are the options for the lists a command creates.
type listFlags struct {
	listType string
	attrs    map[string]string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.listType, "list-type", "t", "", "type of the lists to create (default from config)")
	cmd.Flags().StringToStringVar(&f.attrs, "attr", nil, "data attribute for new lists, e.g. --attr start=3")
}

func (f *listFlags) args() domain.ListArgs {
	args := domain.ListArgs{Type: m.NodeType(f.listType)}

	if len(f.attrs) == 0 {
		return args
	}

	args.Data = make(map[string]any, len(f.attrs))
	for key, value := range f.attrs {
		if n, err := strconv.Atoi(value); err == nil {
			args.Data[key] = n

			continue
		}

		args.Data[key] = value
	}

	return args
}

func newEditCmd(command m.Command) *cobra.Command {
	var (
		anchor, focus string
		output        string
		dryRun        bool
		list          listFlags
	)

	cmd := &cobra.Command{
		Use:   string(command) + " <document>",
		Short: editShortDescriptions[command],
		Long:  fmt.Sprintf(editLongDescription, command),
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sel, err := parseSelection(anchor, focus)
			if err != nil {
				return err
			}

			return workflow.Apply(domain.ApplyArgs{
				Path:      m.FilePath(args[0]),
				Command:   command,
				List:      list.args(),
				Selection: sel,
				Output:    m.FilePath(output),
				DryRun:    dryRun,
			})
		},
	}
	cmd.Flags().StringVarP(&anchor, "anchor", "a", "", "selection anchor as PATH[:OFFSET]")
	cmd.Flags().StringVarP(&focus, "focus", "f", "", "selection focus as PATH[:OFFSET] (default: the anchor)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to this file instead of the document")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the result without saving it")

	if command == m.CommandToggle || command == m.CommandWrap {
		list.register(cmd)
	}

	return cmd
}

// parseSelection builds a selection override from the --anchor and --focus
// flags. It returns nil when neither is set.
func parseSelection(anchor, focus string) (*m.Selection, error) {
	if anchor == "" {
		if focus != "" {
			return nil, errFocusWithoutAnchor
		}

		return nil, nil
	}

	if focus == "" {
		focus = anchor
	}

	anchorPoint, err := m.ParsePoint(anchor)
	if err != nil {
		return nil, fmt.Errorf("invalid --anchor: %w", err)
	}

	focusPoint, err := m.ParsePoint(focus)
	if err != nil {
		return nil, fmt.Errorf("invalid --focus: %w", err)
	}

	return &m.Selection{Anchor: anchorPoint, Focus: focusPoint}, nil
}

func init() {
	for _, command := range m.Commands {
		rootCmd.AddCommand(newEditCmd(command))
	}
}
