package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/listedit/internal/model"
)

var (
	listStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	itemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	blockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	markStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI with styled output. Output taller than the terminal is
// shown in an interactive Bubble Tea program.
type TUI struct {
	output io.Writer
	width  int
	height int
	run    func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output, width: 80, height: 24}

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	t.run = t.runProgram

	return t
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}

	return nil
}

// DisplayDocument renders the document tree, paging it when it does not fit.
func (t *TUI) DisplayDocument(path m.FilePath, doc *m.Document) error {
	body := renderDocument(flattenDocument(doc))
	title := titleStyle.Render(string(path))

	if lipgloss.Height(body)+1 < t.height {
		_, err := fmt.Fprintf(t.output, "%s\n%s\n", title, body)

		return err
	}

	return t.run(newPagerModel(title, body, t.width, t.height))
}

// DisplayOutcome prints a styled one-line summary of a command result.
func (t *TUI) DisplayOutcome(result m.FileResult) {
	path := pathStyle.Render(string(result.Path))

	switch {
	case result.Err != nil:
		_, _ = fmt.Fprintf(t.output, "%s %s\n", path, errorStyle.Render(result.Err.Error()))
	case result.Outcome.Changed():
		_, _ = fmt.Fprintf(t.output, "%s %s\n", path, changedStyle.Render(describeOutcome(result.Command, result.Outcome)))
	default:
		_, _ = fmt.Fprintf(t.output, "%s %s\n", path, mutedStyle.Render(describeOutcome(result.Command, result.Outcome)))
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	info := fmt.Sprintf("Running with %d worker(s)", threads)
	if shardCount > 1 {
		info += fmt.Sprintf(" on shard %d/%d", shardIndex, shardCount)
	}

	_, _ = fmt.Fprintln(t.output, mutedStyle.Render(info))
}

// DisplayBatch shows the batch results, in a browsable list when they do not fit.
func (t *TUI) DisplayBatch(results []m.FileResult) error {
	model := newBatchModel(results)

	if len(results)+batchChrome < t.height {
		_, err := fmt.Fprintln(t.output, model.staticView(t.width))

		return err
	}

	return t.run(model)
}

func renderDocument(lines []treeLine) string {
	if len(lines) == 0 {
		return mutedStyle.Render("(empty document)")
	}

	rows := make([]string, 0, len(lines))

	for _, line := range lines {
		row := strings.Repeat("  ", line.depth) + styleFor(line).Render(line.label())
		if line.mark != "" {
			row += " " + markStyle.Render("◂ "+line.mark)
		}

		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

func styleFor(line treeLine) lipgloss.Style {
	switch {
	case line.node.IsLeaf():
		return textStyle
	case line.node.Type == m.TypeListItem:
		return itemStyle
	case strings.HasSuffix(string(line.node.Type), "_list"):
		return listStyle
	default:
		return blockStyle
	}
}
