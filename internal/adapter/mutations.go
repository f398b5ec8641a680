package adapter

import (
	"fmt"
	"slices"

	m "github.com/mouse-blink/listedit/internal/model"
)

// WrapNodes wraps children start..end (inclusive) of the block at parent in
// wrapper. The wrapper node itself is inserted; any children it had are discarded.
func (e *TreeEditor) WrapNodes(wrapper *m.Node, parent m.Path, start, end int) error {
	owner, err := e.nodeAt(parent)
	if err != nil {
		return fmt.Errorf("failed to wrap nodes at %s: %w", parent, err)
	}

	if owner.IsLeaf() {
		return fmt.Errorf("failed to wrap nodes at %s: %w", parent, ErrNotBlock)
	}

	if start < 0 || end < start || end >= len(owner.Children) {
		return fmt.Errorf("failed to wrap nodes %d..%d at %s: %w", start, end, parent, ErrInvalidPath)
	}

	if wrapper.IsLeaf() {
		return fmt.Errorf("failed to wrap nodes at %s: wrapper %w", parent, ErrNotBlock)
	}

	wrapper.Children = slices.Clone(owner.Children[start : end+1])
	for _, child := range wrapper.Children {
		e.parents[child] = wrapper
	}

	owner.Children = slices.Replace(owner.Children, start, end+1, wrapper)
	e.parents[wrapper] = owner

	e.changed()

	return nil
}

// WrapNode wraps the node at path in wrapper.
func (e *TreeEditor) WrapNode(wrapper *m.Node, at m.Path) error {
	if len(at) == 0 {
		return fmt.Errorf("failed to wrap node: %w", ErrRootNode)
	}

	return e.WrapNodes(wrapper, at.Parent(), at.Index(), at.Index())
}

// UnwrapNode replaces the block at path with its children.
func (e *TreeEditor) UnwrapNode(at m.Path) error {
	parent, idx, err := e.parentFor(at)
	if err != nil {
		return fmt.Errorf("failed to unwrap node at %s: %w", at, err)
	}

	n, err := e.nodeAt(at)
	if err != nil {
		return fmt.Errorf("failed to unwrap node at %s: %w", at, err)
	}

	if n.IsLeaf() {
		return fmt.Errorf("failed to unwrap node at %s: %w", at, ErrNotBlock)
	}

	children := n.Children
	for _, child := range children {
		e.parents[child] = parent
	}

	parent.Children = slices.Replace(parent.Children, idx, idx+1, children...)
	n.Children = nil
	delete(e.parents, n)

	e.changed()

	return nil
}

// LiftNode moves the node at path one level up.
func (e *TreeEditor) LiftNode(at m.Path) error {
	if len(at) < 2 {
		return fmt.Errorf("failed to lift node at %s: %w", at, ErrInvalidPath)
	}

	n, err := e.nodeAt(at)
	if err != nil {
		return fmt.Errorf("failed to lift node at %s: %w", at, err)
	}

	parent, idx, err := e.parentFor(at)
	if err != nil {
		return fmt.Errorf("failed to lift node at %s: %w", at, err)
	}

	grand, parentIdx, err := e.parentFor(at.Parent())
	if err != nil {
		return fmt.Errorf("failed to lift node at %s: %w", at, err)
	}

	last := len(parent.Children) - 1

	switch {
	case idx == 0 && last > 0:
		parent.Children = parent.Children[1:]
		grand.Children = slices.Insert(grand.Children, parentIdx, n)
	case idx == last:
		parent.Children = parent.Children[:last]
		grand.Children = slices.Insert(grand.Children, parentIdx+1, n)
	default:
		right := parent.Shell()
		right.Children = slices.Clone(parent.Children[idx+1:])
		parent.Children = slices.Clone(parent.Children[:idx])

		for _, child := range right.Children {
			e.parents[child] = right
		}

		grand.Children = slices.Insert(grand.Children, parentIdx+1, n, right)
		e.parents[right] = grand
	}

	e.parents[n] = grand

	e.changed()

	return nil
}

// MoveNode moves the node at path to the location currently addressed by to.
func (e *TreeEditor) MoveNode(at, to m.Path) error {
	n, err := e.nodeAt(at)
	if err != nil {
		return fmt.Errorf("failed to move node at %s: %w", at, err)
	}

	if len(at) == 0 {
		return fmt.Errorf("failed to move node: %w", ErrRootNode)
	}

	if at.Equal(to) || at.IsAncestorOf(to) {
		return fmt.Errorf("failed to move node %s to %s: %w", at, to, ErrInvalidPath)
	}

	target, targetIdx, err := e.parentFor(to)
	if err != nil {
		return fmt.Errorf("failed to move node %s to %s: %w", at, to, err)
	}

	if targetIdx < 0 || targetIdx > len(target.Children) {
		return fmt.Errorf("failed to move node %s to %s: %w", at, to, ErrInvalidPath)
	}

	source := e.parents[n]
	sourceIdx := at.Index()
	source.Children = slices.Delete(source.Children, sourceIdx, sourceIdx+1)

	if source == target && sourceIdx < targetIdx {
		targetIdx--
	}

	target.Children = slices.Insert(target.Children, targetIdx, n)
	e.parents[n] = target

	e.changed()

	return nil
}

// InsertNodes inserts nodes as consecutive siblings starting at path.
func (e *TreeEditor) InsertNodes(nodes []*m.Node, at m.Path) error {
	parent, idx, err := e.parentFor(at)
	if err != nil {
		return fmt.Errorf("failed to insert nodes at %s: %w", at, err)
	}

	if idx < 0 || idx > len(parent.Children) {
		return fmt.Errorf("failed to insert nodes at %s: %w", at, ErrInvalidPath)
	}

	parent.Children = slices.Insert(parent.Children, idx, nodes...)
	for _, n := range nodes {
		e.parents[n] = parent
		e.index(n)
	}

	e.changed()

	return nil
}

// RemoveNode removes the node at path together with its subtree.
func (e *TreeEditor) RemoveNode(at m.Path) error {
	parent, idx, err := e.parentFor(at)
	if err != nil {
		return fmt.Errorf("failed to remove node at %s: %w", at, err)
	}

	if idx < 0 || idx >= len(parent.Children) {
		return fmt.Errorf("failed to remove node at %s: %w", at, ErrNodeNotFound)
	}

	n := parent.Children[idx]
	parent.Children = slices.Delete(parent.Children, idx, idx+1)
	e.unindex(n)

	e.changed()

	return nil
}
