package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/listedit/internal/model"
)

type tickMsg time.Time

// Title, summary, header, borders and footer rows around the result list.
const batchChrome = 9

// resultItem is one batch result in the list.
type resultItem struct {
	result m.FileResult
}

func (r resultItem) FilterValue() string {
	return string(r.result.Path)
}

// Simple delegate for batch result rows.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(resultItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()
	width := lm.Width() - 12 // action column (10) + spacing (2)

	var actionStyle, rowPathStyle lipgloss.Style

	displayPath := truncateToWidth(string(row.result.Path), width)

	if isSelected {
		rowPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		actionStyle = rowPathStyle.Width(10)

		displayPath = animateScroll(string(row.result.Path), width, d.offset)
	} else {
		rowPathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		actionStyle = actionColor(row.result).Width(10)
	}

	line := fmt.Sprintf("%s  %s",
		actionStyle.Render(actionLabel(row.result)),
		rowPathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func actionLabel(result m.FileResult) string {
	if result.Err != nil {
		return "error"
	}

	if result.Outcome.Action == "" {
		return string(m.ActionNoop)
	}

	return string(result.Outcome.Action)
}

func actionColor(result m.FileResult) lipgloss.Style {
	switch {
	case result.Err != nil:
		return errorStyle
	case result.Outcome.Changed():
		return changedStyle
	default:
		return mutedStyle
	}
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// batchModel browses batch results that do not fit on one screen.
type batchModel struct {
	width        int
	height       int
	results      list.Model
	delegate     resultDelegate
	summary      batchSummary
	total        int
	animOffset   int
	lastSelected int
}

func newBatchModel(results []m.FileResult) batchModel {
	delegate := resultDelegate{}

	items := make([]list.Item, 0, len(results))
	for _, result := range results {
		items = append(items, resultItem{result: result})
	}

	resultList := list.New(items, delegate, 80, 20)
	resultList.SetShowPagination(false)
	resultList.SetShowFilter(true)
	resultList.SetShowHelp(false)
	resultList.SetShowTitle(false)
	resultList.SetShowStatusBar(false)
	resultList.FilterInput.Placeholder = "Filter by path…"

	return batchModel{
		width:        80,
		results:      resultList,
		delegate:     delegate,
		summary:      summarize(results),
		total:        len(results),
		lastSelected: 0,
	}
}

func (bm batchModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (bm batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height

	case tickMsg:
		if bm.results.FilterState() == list.Filtering {
			return bm, nil
		}

		bm.animOffset++
		bm.delegate.offset = bm.animOffset
		bm.results.SetDelegate(bm.delegate)

		return bm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && bm.results.FilterState() != list.Filtering) {
			return bm, tea.Quit
		}

		bm.results, cmd = bm.results.Update(msg)

		// Restart the scroll animation when the selection moves.
		if bm.results.Index() != bm.lastSelected {
			bm.lastSelected = bm.results.Index()
			bm.animOffset = 0
			bm.delegate.offset = 0
			bm.results.SetDelegate(bm.delegate)
		}
	}

	return bm, cmd
}

func (bm batchModel) View() string {
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(bm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		bm.header(),
		bm.renderTable(max(bm.height-batchChrome, 5)),
		footer,
	)
}

// staticView renders every result without interaction.
func (bm batchModel) staticView(width int) string {
	bm.width = width
	bm.results.SetShowFilter(false)
	bm.results.SetFilteringEnabled(false)

	return lipgloss.JoinVertical(lipgloss.Left,
		bm.header(),
		bm.renderTable(max(bm.total, 1)),
	)
}

func (bm batchModel) header() string {
	title := titleStyle.Padding(1, 0, 0, 2).Render("List edit batch")

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summary := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2).
		Render(fmt.Sprintf(
			"Files: %s   Changed: %s   Failed: %s   Lists: %s   Items: %s",
			accent.Render(fmt.Sprintf("%d", bm.total)),
			accent.Render(fmt.Sprintf("%d", bm.summary.changed)),
			accent.Render(fmt.Sprintf("%d", bm.summary.failed)),
			accent.Render(fmt.Sprintf("%d", bm.summary.lists)),
			accent.Render(fmt.Sprintf("%d", bm.summary.items)),
		))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary)
}

func (bm batchModel) renderTable(listHeight int) string {
	// Window width minus margin, border and padding.
	listWidth := max(bm.width-6, 20)

	bm.results.SetHeight(listHeight)
	bm.results.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-10s  %s", "Action", "Document"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, bm.results.View()))
}
