package domain

import (
	"io"
	"log/slog"
	"slices"

	m "github.com/mouse-blink/listedit/internal/model"
)

// MergePredicate decides whether two adjacent lists may be fused into one.
type MergePredicate func(list, sibling *m.Node) bool

// SameType merges lists of the same type.
func SameType(list, sibling *m.Node) bool {
	return list.Type == sibling.Type
}

// Options configures the list editing core.
type Options struct {
	ListTypes      []m.NodeType
	ItemType       m.NodeType
	SeparatorTypes []m.NodeType
	CanMerge       MergePredicate
	Logger         *slog.Logger

	defaultListType m.NodeType
}

// Option mutates Options.
type Option func(*Options)

// WithListTypes sets the list type identifiers. The first one is the default
// type for new lists.
func WithListTypes(types ...m.NodeType) Option {
	return func(o *Options) {
		o.ListTypes = types
	}
}

// WithItemType sets the item type identifier.
func WithItemType(t m.NodeType) Option {
	return func(o *Options) {
		o.ItemType = t
	}
}

// WithSeparatorTypes sets the block types that keep lists apart.
func WithSeparatorTypes(types ...m.NodeType) Option {
	return func(o *Options) {
		o.SeparatorTypes = types
	}
}

// WithMergePredicate sets the predicate used by the adjacency normalizer.
func WithMergePredicate(fn MergePredicate) Option {
	return func(o *Options) {
		o.CanMerge = fn
	}
}

// WithLogger sets the logger for skipped candidates and failed primitives.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithDefaultListType sets the list type used when a command names none.
func WithDefaultListType(t m.NodeType) Option {
	return func(o *Options) {
		o.defaultListType = t
	}
}

// WithConfig applies a loaded configuration.
func WithConfig(cfg m.Config) Option {
	return func(o *Options) {
		if len(cfg.ListTypes) > 0 {
			o.ListTypes = cfg.ListTypes
		}

		if cfg.ItemType != "" {
			o.ItemType = cfg.ItemType
		}

		o.SeparatorTypes = cfg.SeparatorTypes
		o.CanMerge = mergePolicy(cfg.MergePolicy)
		o.defaultListType = cfg.DefaultListType
	}
}

func mergePolicy(policy m.MergePolicy) MergePredicate {
	switch policy {
	case m.MergeAlways:
		return func(_, _ *m.Node) bool { return true }
	case m.MergeNever:
		return func(_, _ *m.Node) bool { return false }
	default:
		return SameType
	}
}

// NewOptions applies opts over the defaults. A missing list type set falls
// back to ul_list.
func NewOptions(opts ...Option) Options {
	o := Options{
		ListTypes: []m.NodeType{m.TypeBulletList, m.TypeNumberList},
		ItemType:  m.TypeListItem,
		CanMerge:  SameType,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if len(o.ListTypes) == 0 {
		o.ListTypes = []m.NodeType{m.TypeBulletList}
	}

	if o.ItemType == "" {
		o.ItemType = m.TypeListItem
	}

	if o.CanMerge == nil {
		o.CanMerge = SameType
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if o.defaultListType == "" {
		o.defaultListType = o.ListTypes[0]
	}

	return o
}

// DefaultListType returns the list type used when a command names none.
func (o Options) DefaultListType() m.NodeType {
	return o.defaultListType
}

// IsList reports whether n is a list.
func (o Options) IsList(n *m.Node) bool {
	return n != nil && n.IsBlock() && slices.Contains(o.ListTypes, n.Type)
}

// IsItem reports whether n is a list item.
func (o Options) IsItem(n *m.Node) bool {
	return n != nil && n.IsBlock() && n.Type == o.ItemType
}

// IsListOrItem reports whether n is a list or a list item.
func (o Options) IsListOrItem(n *m.Node) bool {
	return o.IsList(n) || o.IsItem(n)
}

// IsSeparator reports whether n is one of the separator types.
func (o Options) IsSeparator(n *m.Node) bool {
	return n != nil && n.IsBlock() && slices.Contains(o.SeparatorTypes, n.Type)
}
