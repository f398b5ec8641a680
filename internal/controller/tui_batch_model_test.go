package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/listedit/internal/model"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	if got := animateScroll("abcdef", 3, 6); got != "bcd" {
		t.Fatalf("animateScroll scrolled = %q, want bcd", got)
	}

	// Wraps around through the gap back to the start.
	if got := animateScroll("abcdef", 3, 5+7); got != "  a" {
		t.Fatalf("animateScroll wrapped = %q, want %q", got, "  a")
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestActionLabel(t *testing.T) {
	tests := []struct {
		result m.FileResult
		want   string
	}{
		{m.FileResult{Err: errSentinel}, "error"},
		{m.FileResult{}, "noop"},
		{m.FileResult{Outcome: m.Outcome{Action: m.ActionEqualize}}, "equalize"},
	}

	for _, tt := range tests {
		if got := actionLabel(tt.result); got != tt.want {
			t.Errorf("actionLabel(%+v) = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func batchResults() []m.FileResult {
	return []m.FileResult{
		{Path: "docs/a.yaml", Command: m.CommandToggle, Outcome: m.Outcome{Action: m.ActionWrap, Lists: 1, Items: 2}},
		{Path: "docs/b.yaml", Command: m.CommandToggle, Outcome: m.Outcome{Action: m.ActionNoop}},
		{Path: "docs/c.yaml", Command: m.CommandToggle, Err: errSentinel},
	}
}

func TestNewBatchModel_Summary(t *testing.T) {
	bm := newBatchModel(batchResults())

	if bm.total != 3 {
		t.Fatalf("total = %d, want 3", bm.total)
	}

	want := batchSummary{changed: 1, failed: 1, lists: 1, items: 2}
	if bm.summary != want {
		t.Fatalf("summary = %+v, want %+v", bm.summary, want)
	}

	if cmd := bm.Init(); cmd == nil {
		t.Fatalf("Init() returned nil cmd")
	}
}

func TestBatchModel_Views(t *testing.T) {
	bm := newBatchModel(batchResults())

	static := bm.staticView(80)
	for _, want := range []string{"List edit batch", "Action", "Document", "docs/a.yaml", "docs/b.yaml", "docs/c.yaml"} {
		if !strings.Contains(static, want) {
			t.Fatalf("staticView missing %q\n%s", want, static)
		}
	}

	bm.width = 100
	bm.height = 30

	view := bm.View()
	if !strings.Contains(view, "q quit") || !strings.Contains(view, "Files:") {
		t.Fatalf("View() missing chrome\n%s", view)
	}

	// tiny window hits the minimum list height and width
	bm.height = 0
	bm.width = 10
	_ = bm.View()
}

func TestBatchModel_UpdateBranches(t *testing.T) {
	bm := newBatchModel(batchResults())

	model, cmd := bm.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}

	updated := model.(batchModel)
	if updated.animOffset != 1 || updated.delegate.offset != 1 {
		t.Fatalf("animOffset = %d, delegate offset = %d, want 1", updated.animOffset, updated.delegate.offset)
	}

	model, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated = model.(batchModel)

	if updated.width != 100 || updated.height != 40 {
		t.Fatalf("window size not applied")
	}

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	updated = model.(batchModel)

	if updated.lastSelected != 1 || updated.animOffset != 0 {
		t.Fatalf("lastSelected = %d, animOffset = %d, want 1 and 0", updated.lastSelected, updated.animOffset)
	}

	if _, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("expected quit cmd for q")
	}

	if _, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected quit cmd for ctrl+c")
	}

	// While filtering, q is typed into the filter and ticks pause.
	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	updated = model.(batchModel)

	if updated.results.FilterState() != list.Filtering {
		t.Fatalf("FilterState() = %v, want Filtering", updated.results.FilterState())
	}

	if _, cmd = updated.Update(tickMsg(time.Now())); cmd != nil {
		t.Fatalf("expected no tick while filtering")
	}
}

func TestResultDelegate_Render(t *testing.T) {
	delegate := resultDelegate{offset: 0}
	items := []list.Item{
		resultItem{result: m.FileResult{Path: "path/to/doc.yaml", Outcome: m.Outcome{Action: m.ActionWrap}}},
		resultItem{result: m.FileResult{Path: "path/to/other.yaml", Err: errSentinel}},
	}
	lm := list.New(items, delegate, 40, 5)

	var buf bytes.Buffer

	delegate.Render(&buf, lm, 0, items[0])
	if !strings.Contains(buf.String(), "path/to/doc.yaml") || !strings.Contains(buf.String(), "wrap") {
		t.Fatalf("selected row = %q", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, lm, 1, items[1])

	if !strings.Contains(buf.String(), "error") {
		t.Fatalf("error row = %q", buf.String())
	}

	// Render with bad item type should not panic
	buf.Reset()
	delegate.Render(&buf, lm, 0, struct{ list.Item }{})

	if buf.Len() != 0 {
		t.Fatalf("unexpected output for foreign item: %q", buf.String())
	}

	if delegate.Height() != 1 {
		t.Fatalf("Height() = %d, want 1", delegate.Height())
	}

	if delegate.Spacing() != 0 {
		t.Fatalf("Spacing() = %d, want 0", delegate.Spacing())
	}

	if cmd := delegate.Update(nil, &lm); cmd != nil {
		t.Fatalf("Update() returned cmd")
	}

	if got := (resultItem{result: m.FileResult{Path: "x.yaml"}}).FilterValue(); got != "x.yaml" {
		t.Fatalf("FilterValue() = %q", got)
	}
}
