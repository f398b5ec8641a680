package adapter

import (
	m "github.com/mouse-blink/listedit/internal/model"
)

// PathRef follows a node across mutations. It must be released with Unref
// once the caller no longer needs it.
type PathRef struct {
	editor   *TreeEditor
	node     *m.Node
	released bool
}

// PathRef returns a reference to the node at path. A reference to a missing
// node never resolves.
func (e *TreeEditor) PathRef(at m.Path) *PathRef {
	ref := e.trackedRef(at)
	e.refs[ref] = struct{}{}

	return ref
}

func (e *TreeEditor) trackedRef(at m.Path) *PathRef {
	n, err := e.nodeAt(at)
	if err != nil {
		n = nil
	}

	return &PathRef{editor: e, node: n}
}

// Current returns the node's path in the tree as it is now. It reports false
// when the node was removed or the reference was released.
func (r *PathRef) Current() (m.Path, bool) {
	if r == nil || r.released || r.node == nil {
		return nil, false
	}

	return r.editor.pathOf(r.node)
}

// Unref releases the reference and returns its final value.
func (r *PathRef) Unref() (m.Path, bool) {
	if r == nil || r.released {
		return nil, false
	}

	path, ok := r.Current()
	r.released = true
	delete(r.editor.refs, r)

	return path, ok
}
