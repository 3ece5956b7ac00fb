package tst

// Traversal stages for the explicit walk stack. A frame advances
// lo -> eq -> hi -> emit; children pushed by a stage run to completion
// before the frame advances to the next one.
const (
	walkLo = iota
	walkEq
	walkHi
	walkEmit
)

// ForEach calls fn for every entry. Lower sibling branches come first,
// but a node's own entry is emitted only after its entire subtree: an
// entry follows every longer entry it is a prefix of (with "dog" and
// "dogma" both present, "dogma" comes first) and follows its hikid
// keys, so the exact order depends on how sibling chains were built.
//
// The walk uses an explicit stack instead of function recursion, so
// arbitrarily long keys and degenerate sibling chains cannot exhaust
// the goroutine stack.
func (m *Map) ForEach(fn func(key string, val interface{})) {
	if m.root == nil {
		return
	}

	type frame struct {
		p     *node
		stage int8
	}

	var (
		buf   []byte
		stack = []frame{{m.root, walkLo}}
	)

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		p := f.p

		switch f.stage {
		case walkLo:
			f.stage++
			if p.lokid != nil {
				stack = append(stack, frame{p.lokid, walkLo})
			}
		case walkEq:
			f.stage++
			buf = append(buf, p.splitchar)
			if p.eqkid != nil {
				stack = append(stack, frame{p.eqkid, walkLo})
			}
		case walkHi:
			f.stage++
			buf = buf[:len(buf)-1]
			if p.hikid != nil {
				stack = append(stack, frame{p.hikid, walkLo})
			}
		default: // walkEmit
			stack = stack[:len(stack)-1]
			if p.val != nil {
				// buf holds the bytes from the root to p's parent here.
				fn(string(append(buf, p.splitchar)), *p.val)
			}
		}
	}
}

// Items returns every entry, in ForEach order.
func (m *Map) Items() []KV {
	items := make([]KV, 0, m.size)
	m.ForEach(func(key string, val interface{}) {
		items = append(items, KV{key, val})
	})
	return items
}

// Keys returns every key, in ForEach order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.size)
	m.ForEach(func(key string, _ interface{}) {
		keys = append(keys, key)
	})
	return keys
}
