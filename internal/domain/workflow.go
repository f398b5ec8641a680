package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/listedit/internal/adapter"
	"github.com/mouse-blink/listedit/internal/controller"
	m "github.com/mouse-blink/listedit/internal/model"
)

var (
	// ErrNoSelection is returned when a command needs a selection and the
	// document has none.
	ErrNoSelection = errors.New("document has no selection")
	// ErrInvalidSelection is returned when a selection point does not exist.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrUnknownCommand is returned for commands the workflow does not know.
	ErrUnknownCommand = errors.New("unknown command")
)

// ApplyArgs describes a single command run against one document.
type ApplyArgs struct {
	Path    m.FilePath
	Command m.Command
	List    ListArgs
	// Selection replaces the selection stored in the document.
	Selection *m.Selection
	// Output is where the result is written; empty means Path.
	Output m.FilePath
	DryRun bool
}

// BatchArgs describes a command run against many documents.
type BatchArgs struct {
	Paths []m.FilePath
	// Exclude drops documents whose path matches any of these regular expressions.
	Exclude         []string
	Command         m.Command
	List            ListArgs
	Reports         m.FilePath
	Threads         int
	ShardIndex      int
	TotalShardCount int
	DryRun          bool
}

// ViewArgs selects what to display: a document, or the batch reports saved
// in a directory when Reports is set.
type ViewArgs struct {
	Path    m.FilePath
	Reports m.FilePath
}

// ImportArgs converts an HTML file into a document file.
type ImportArgs struct {
	Source m.FilePath
	Output m.FilePath
}

// Workflow runs list commands against documents on disk.
type Workflow interface {
	Apply(args ApplyArgs) error
	Batch(args BatchArgs) error
	View(args ViewArgs) error
	Import(args ImportArgs) error
}

type workflow struct {
	fsAdapter   adapter.DocumentFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	lists       ListEditor
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.DocumentFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	lists ListEditor,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		lists:       lists,
	}
}

func (w *workflow) Apply(args ApplyArgs) error {
	result, doc, err := w.apply(args)
	if err != nil {
		return err
	}

	w.ui.DisplayOutcome(result)

	if args.DryRun {
		return w.ui.DisplayDocument(target(args), doc)
	}

	return nil
}

func (w *workflow) Batch(args BatchArgs) error {
	if !slices.Contains(m.Commands, args.Command) {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args.Command)
	}

	paths, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return fmt.Errorf("failed to get documents: %w", err)
	}

	paths, err = excludePaths(paths, args.Exclude)
	if err != nil {
		return err
	}

	paths = shardPaths(paths, args.ShardIndex, args.TotalShardCount)

	threads := max(args.Threads, 1)
	w.ui.DisplayConcurrencyInfo(threads, args.ShardIndex, max(args.TotalShardCount, 1))

	results := make([]m.FileResult, len(paths))
	done := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(threads)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			result, _, err := w.apply(ApplyArgs{
				Path:    path,
				Command: args.Command,
				List:    args.List,
				DryRun:  args.DryRun,
			})
			if err != nil {
				result.Err = err
			}

			results[i], done[i] = result, true

			if skippable(err) {
				return nil
			}

			return err
		})
	}

	runErr := g.Wait()

	processed := make([]m.FileResult, 0, len(results))

	for i, result := range results {
		if done[i] {
			processed = append(processed, result)
		}
	}

	if err := w.ui.DisplayBatch(processed); err != nil {
		return fmt.Errorf("failed to display batch: %w", err)
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, processed); err != nil {
			return fmt.Errorf("failed to save reports: %w", err)
		}
	}

	return runErr
}

func (w *workflow) View(args ViewArgs) error {
	if args.Reports != "" {
		results, err := w.reportStore.LoadReports(args.Reports)
		if err != nil {
			return fmt.Errorf("failed to load reports: %w", err)
		}

		return w.ui.DisplayBatch(results)
	}

	doc, err := w.fsAdapter.Load(args.Path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args.Path, err)
	}

	return w.ui.DisplayDocument(args.Path, doc)
}

func (w *workflow) Import(args ImportArgs) error {
	doc, err := w.fsAdapter.Load(args.Source)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args.Source, err)
	}

	if args.Output == "" {
		return w.ui.DisplayDocument(args.Source, doc)
	}

	if err := w.fsAdapter.Save(args.Output, doc); err != nil {
		return fmt.Errorf("failed to save %s: %w", args.Output, err)
	}

	return nil
}

// apply loads a document, runs the command on its own editor and saves the
// result unless DryRun is set.
func (w *workflow) apply(args ApplyArgs) (m.FileResult, *m.Document, error) {
	result := m.FileResult{Path: args.Path, Command: args.Command}

	doc, err := w.fsAdapter.Load(args.Path)
	if err != nil {
		return result, nil, fmt.Errorf("failed to load %s: %w", args.Path, err)
	}

	ed := adapter.NewTreeEditor(doc,
		adapter.WithNormalizers(w.lists.Normalizer()),
		adapter.WithEditorLogger(w.lists.Options().Logger),
	)

	if args.Selection != nil {
		sel, err := leafSelection(ed, *args.Selection)
		if err != nil {
			return result, nil, fmt.Errorf("%s: %w", args.Path, err)
		}

		ed.Select(sel)
	}

	outcome, err := w.execute(ed, args.Command, args.List)
	if err != nil {
		return result, nil, fmt.Errorf("%s: %w", args.Path, err)
	}

	result.Outcome = outcome
	out := ed.Document()

	w.lists.Options().Logger.Debug("applied command",
		"path", args.Path, "command", args.Command, "action", outcome.Action,
		"lists", outcome.Lists, "items", outcome.Items)

	if args.DryRun {
		return result, out, nil
	}

	if err := w.fsAdapter.Save(target(args), out); err != nil {
		return result, nil, fmt.Errorf("failed to save %s: %w", target(args), err)
	}

	return result, out, nil
}

func (w *workflow) execute(ed adapter.Editor, command m.Command, args ListArgs) (m.Outcome, error) {
	if command == m.CommandNormalize {
		return w.normalize(ed), nil
	}

	if _, ok := ed.Selection(); !ok {
		return m.Outcome{}, ErrNoSelection
	}

	switch command {
	case m.CommandToggle:
		return w.lists.Toggle(ed, args), nil
	case m.CommandWrap:
		return w.lists.Wrap(ed, args), nil
	case m.CommandUnwrap:
		return w.lists.Unwrap(ed), nil
	case m.CommandIndent:
		return w.lists.Indent(ed), nil
	case m.CommandOutdent:
		return w.lists.Outdent(ed), nil
	default:
		return m.Outcome{}, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// normalize runs the adjacency normalizer over the whole document and
// reports how many lists were merged away.
func (w *workflow) normalize(ed adapter.Editor) m.Outcome {
	opts := w.lists.Options()
	before := countLists(opts, ed.Root())

	ed.Normalize()

	return outcome(m.ActionNormalize, before-countLists(opts, ed.Root()), 0)
}

func countLists(opts Options, n *m.Node) int {
	count := 0
	if opts.IsList(n) {
		count++
	}

	for _, child := range n.Children {
		count += countLists(opts, child)
	}

	return count
}

// leafSelection checks that both points exist and moves points that
// address a block to the first or last leaf inside it.
func leafSelection(ed adapter.Editor, sel m.Selection) (m.Selection, error) {
	for _, point := range []m.Point{sel.Anchor, sel.Focus} {
		if len(point.Path) == 0 || !ed.Has(point.Path) {
			return sel, fmt.Errorf("%w: no node at %s", ErrInvalidSelection, point.Path)
		}
	}

	backward := sel.IsBackward()

	return m.Selection{
		Anchor: toLeaf(ed, sel.Anchor, backward),
		Focus:  toLeaf(ed, sel.Focus, !backward),
	}, nil
}

func toLeaf(ed adapter.Editor, point m.Point, atEnd bool) m.Point {
	n, err := ed.Node(point.Path)
	if err != nil || n.IsLeaf() {
		return point
	}

	if atEnd {
		return ed.End(point.Path)
	}

	return ed.Start(point.Path)
}

// skippable reports whether err concerns only the document's selection, so
// a batch can move on to the next document.
func skippable(err error) bool {
	return errors.Is(err, ErrNoSelection) || errors.Is(err, ErrInvalidSelection)
}

func target(args ApplyArgs) m.FilePath {
	if args.Output != "" {
		return args.Output
	}

	return args.Path
}

// excludePaths drops paths matching any of the patterns.
func excludePaths(paths []m.FilePath, patterns []string) ([]m.FilePath, error) {
	if len(patterns) == 0 {
		return paths, nil
	}

	exprs := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		expr, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		exprs = append(exprs, expr)
	}

	return slices.DeleteFunc(slices.Clone(paths), func(path m.FilePath) bool {
		return slices.ContainsFunc(exprs, func(expr *regexp.Regexp) bool {
			return expr.MatchString(string(path))
		})
	}), nil
}

// shardPaths keeps every path whose position modulo total equals index.
func shardPaths(paths []m.FilePath, index, total int) []m.FilePath {
	if total <= 1 {
		return paths
	}

	out := make([]m.FilePath, 0, len(paths)/total+1)

	for i, path := range paths {
		if i%total == index {
			out = append(out, path)
		}
	}

	return out
}
