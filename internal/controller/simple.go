package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/listedit/internal/model"
)

// SimpleUI implements UI with plain text written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDocument prints the document as an indented tree.
func (s *SimpleUI) DisplayDocument(path m.FilePath, doc *m.Document) error {
	s.printf("%s\n", path)

	lines := flattenDocument(doc)
	if len(lines) == 0 {
		s.printf("  (empty document)\n")

		return nil
	}

	for _, line := range lines {
		row := strings.Repeat("  ", line.depth+1) + line.label()
		if line.mark != "" {
			row += "  <" + line.mark
		}

		s.printf("%s\n", row)
	}

	return nil
}

// DisplayOutcome prints a one-line summary of a command result.
func (s *SimpleUI) DisplayOutcome(result m.FileResult) {
	if result.Err != nil {
		s.printf("%s: %s failed: %v\n", result.Path, result.Command, result.Err)

		return
	}

	s.printf("%s: %s\n", result.Path, describeOutcome(result.Command, result.Outcome))
}

// DisplayConcurrencyInfo prints how the batch is split.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	if shardCount > 1 {
		s.printf("Running with %d worker(s) on shard %d/%d\n", threads, shardIndex, shardCount)

		return
	}

	s.printf("Running with %d worker(s)\n", threads)
}

// DisplayBatch prints a table with one row per document.
func (s *SimpleUI) DisplayBatch(results []m.FileResult) error {
	if len(results) == 0 {
		s.printf("No documents found\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Command", "Action", "Lists", "Items", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	summary := summarize(results)

	for _, result := range results {
		errText := ""
		if result.Err != nil {
			errText = result.Err.Error()
		}

		table.Append([]string{
			string(result.Path),
			string(result.Command),
			string(result.Outcome.Action),
			fmt.Sprintf("%d", result.Outcome.Lists),
			fmt.Sprintf("%d", result.Outcome.Items),
			errText,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		"",
		fmt.Sprintf("Changed %d", summary.changed),
		fmt.Sprintf("%d", summary.lists),
		fmt.Sprintf("%d", summary.items),
		fmt.Sprintf("Failed %d", summary.failed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

type batchSummary struct {
	changed int
	failed  int
	lists   int
	items   int
}

func summarize(results []m.FileResult) batchSummary {
	var out batchSummary

	for _, result := range results {
		switch {
		case result.Err != nil:
			out.failed++
		case result.Outcome.Changed():
			out.changed++
		}

		out.lists += result.Outcome.Lists
		out.items += result.Outcome.Items
	}

	return out
}

// describeOutcome renders an outcome as a short sentence.
func describeOutcome(command m.Command, outcome m.Outcome) string {
	switch outcome.Action {
	case m.ActionNoop, "":
		return fmt.Sprintf("%s left the document unchanged", command)
	case m.ActionNormalize:
		return fmt.Sprintf("normalize merged %s", plural(outcome.Lists, "list"))
	case m.ActionIndent, m.ActionOutdent:
		return fmt.Sprintf("%s moved %s", outcome.Action, plural(outcome.Items, "item"))
	default:
		return fmt.Sprintf("%s (%s): %s, %s", command, outcome.Action,
			plural(outcome.Lists, "list"), plural(outcome.Items, "item"))
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return fmt.Sprintf("%d %ss", n, word)
}
