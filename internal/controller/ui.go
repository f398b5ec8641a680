// Package controller provides presenters for documents and list command results.
package controller

import (
	m "github.com/mouse-blink/listedit/internal/model"
)

// UI defines how the workflow reports documents and command results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayDocument renders a document tree with its selection.
	DisplayDocument(path m.FilePath, doc *m.Document) error
	// DisplayOutcome reports the result of a single command.
	DisplayOutcome(result m.FileResult)
	// DisplayConcurrencyInfo announces how a batch is split.
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	// DisplayBatch summarizes the results of a batch.
	DisplayBatch(results []m.FileResult) error
}
