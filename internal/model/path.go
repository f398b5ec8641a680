package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a sequence of child indices from the document root to a node.
// It identifies a location, not a node: it changes when siblings to the
// left of any ancestor are inserted or removed.
type Path []int

// ParsePath parses a dot separated path such as "0.1.2". The empty string is the root.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, nil
	}

	parts := strings.Split(s, ".")
	path := make(Path, 0, len(parts))

	for _, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid path segment %q in %q", part, s)
		}

		path = append(path, idx)
	}

	return path, nil
}

// String renders the path in the dot separated form accepted by ParsePath.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}

	return strings.Join(parts, ".")
}

// Copy returns an independent copy of the path.
func (p Path) Copy() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Child returns the path of the i-th child of p.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i

	return out
}

// Parent returns the parent path. The root has no parent and returns itself.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}

	return p[:len(p)-1].Copy()
}

// Index returns the last index of the path, or -1 for the root.
func (p Path) Index() int {
	if len(p) == 0 {
		return -1
	}

	return p[len(p)-1]
}

// Next returns the path of the following sibling.
func (p Path) Next() Path {
	out := p.Copy()
	if len(out) > 0 {
		out[len(out)-1]++
	}

	return out
}

// Previous returns the path of the preceding sibling and false if p is a first child.
func (p Path) Previous() (Path, bool) {
	if len(p) == 0 || p[len(p)-1] == 0 {
		return nil, false
	}

	out := p.Copy()
	out[len(out)-1]--

	return out, true
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Compare orders paths in document order. A path and any of its ancestors
// compare as equal.
func (p Path) Compare(other Path) int {
	n := min(len(p), len(other))
	for i := 0; i < n; i++ {
		switch {
		case p[i] < other[i]:
			return -1
		case p[i] > other[i]:
			return 1
		}
	}

	return 0
}

// Before reports whether p is strictly before other in document order,
// ancestors excluded.
func (p Path) Before(other Path) bool {
	return p.Compare(other) < 0
}

// IsAncestorOf reports whether p is a strict ancestor of other.
func (p Path) IsAncestorOf(other Path) bool {
	return len(p) < len(other) && p.Compare(other) == 0
}

// IsDescendantOf reports whether p is a strict descendant of other.
func (p Path) IsDescendantOf(other Path) bool {
	return other.IsAncestorOf(p)
}

// IsParentOf reports whether other is a direct child of p.
func (p Path) IsParentOf(other Path) bool {
	return len(other) == len(p)+1 && p.Compare(other) == 0
}

// IsSibling reports whether both paths share the same parent.
func (p Path) IsSibling(other Path) bool {
	if len(p) == 0 || len(p) != len(other) {
		return false
	}

	return p.Parent().Equal(other.Parent()) && !p.Equal(other)
}

// Common returns the deepest path that is an ancestor of (or equal to) both.
func Common(a, b Path) Path {
	n := min(len(a), len(b))
	out := make(Path, 0, n)

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			break
		}

		out = append(out, a[i])
	}

	return out
}

// Relative strips the ancestor prefix from p. The caller guarantees that
// ancestor is an ancestor of (or equal to) p.
func (p Path) Relative(ancestor Path) Path {
	if len(ancestor) > len(p) {
		return Path{}
	}

	return p[len(ancestor):].Copy()
}
