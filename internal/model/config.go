package model

// MergePolicy names the predicate used to decide whether two adjacent lists merge.
type MergePolicy string

const (
	// MergeSameType merges adjacent lists of the same type.
	MergeSameType MergePolicy = "same-type"
	// MergeAlways merges any two adjacent lists.
	MergeAlways MergePolicy = "always"
	// MergeNever disables merging.
	MergeNever MergePolicy = "never"
)

// Config is the on-disk configuration of the list editor.
type Config struct {
	ListTypes       []NodeType  `yaml:"list_types"`
	ItemType        NodeType    `yaml:"item_type"`
	SeparatorTypes  []NodeType  `yaml:"separator_types"`
	MergePolicy     MergePolicy `yaml:"merge_policy"`
	DefaultListType NodeType    `yaml:"default_list_type"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		ListTypes:   []NodeType{TypeBulletList, TypeNumberList},
		ItemType:    TypeListItem,
		MergePolicy: MergeSameType,
	}
}
