package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a location inside the document: a path plus a text offset.
type Point struct {
	Path   Path `yaml:"path,flow" json:"path"`
	Offset int  `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// ParsePoint parses "0.1.0:4" (path with optional offset).
func ParsePoint(s string) (Point, error) {
	pathPart, offsetPart, hasOffset := strings.Cut(strings.TrimSpace(s), ":")

	path, err := ParsePath(pathPart)
	if err != nil {
		return Point{}, err
	}

	point := Point{Path: path}

	if hasOffset {
		offset, err := strconv.Atoi(offsetPart)
		if err != nil || offset < 0 {
			return Point{}, fmt.Errorf("invalid offset %q in %q", offsetPart, s)
		}

		point.Offset = offset
	}

	return point, nil
}

// String renders the point in the form accepted by ParsePoint.
func (p Point) String() string {
	return fmt.Sprintf("%s:%d", p.Path, p.Offset)
}

// Compare orders points in document order.
func (p Point) Compare(other Point) int {
	if c := p.Path.Compare(other.Path); c != 0 {
		return c
	}

	switch {
	case len(p.Path) != len(other.Path):
		// An ancestor path sorts before its descendants.
		if len(p.Path) < len(other.Path) {
			return -1
		}

		return 1
	case p.Offset < other.Offset:
		return -1
	case p.Offset > other.Offset:
		return 1
	}

	return 0
}

// Selection is an (anchor, focus) pair. The anchor may come after the focus
// when the user selected backwards.
type Selection struct {
	Anchor Point `yaml:"anchor" json:"anchor"`
	Focus  Point `yaml:"focus" json:"focus"`
}

// Collapsed returns a caret selection at the given path.
func Collapsed(path Path) Selection {
	point := Point{Path: path.Copy()}

	return Selection{Anchor: point, Focus: point}
}

// Span returns a selection from one path to another with zero offsets.
func Span(anchor, focus Path) Selection {
	return Selection{Anchor: Point{Path: anchor.Copy()}, Focus: Point{Path: focus.Copy()}}
}

// IsCollapsed reports whether anchor and focus are the same point.
func (s Selection) IsCollapsed() bool {
	return s.Anchor.Compare(s.Focus) == 0
}

// IsBackward reports whether the anchor is after the focus.
func (s Selection) IsBackward() bool {
	return s.Anchor.Compare(s.Focus) > 0
}

// Edges returns the selection endpoints in document order.
func (s Selection) Edges() (start, end Point) {
	if s.IsBackward() {
		return s.Focus, s.Anchor
	}

	return s.Anchor, s.Focus
}

// String renders the selection for logs and terminal output.
func (s Selection) String() string {
	return fmt.Sprintf("%s → %s", s.Anchor, s.Focus)
}
