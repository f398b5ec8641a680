package adapter

// WithoutNormalizing runs fn with normalization suspended. Nested scopes are
// allowed; the tree is normalized once when the outermost scope exits.
func (e *TreeEditor) WithoutNormalizing(fn func()) {
	e.depth++

	defer func() {
		e.depth--
		if e.depth == 0 {
			e.Normalize()
		}
	}()

	fn()
}

// changed is called after every primitive mutation.
func (e *TreeEditor) changed() {
	if e.depth == 0 {
		e.Normalize()
	}
}

// Normalize applies the registered rules until a full pass fires none of
// them. Each pass restarts after the first rule that changed the tree,
// since paths collected before the change are stale.
func (e *TreeEditor) Normalize() {
	if e.normalizing || len(e.rules) == 0 {
		return
	}

	e.normalizing = true
	defer func() { e.normalizing = false }()

	limit := e.maxPasses
	if limit <= 0 {
		limit = 10*len(e.parents) + 100
	}

	for i := 0; i < limit; i++ {
		if !e.normalizePass() {
			return
		}
	}

	e.logger.Warn("normalization did not settle", "passes", limit)
}

func (e *TreeEditor) normalizePass() bool {
	for _, entry := range e.all() {
		if entry.Node.IsLeaf() {
			continue
		}

		for _, rule := range e.rules {
			if rule.Normalize(e, entry) {
				return true
			}
		}
	}

	return false
}
