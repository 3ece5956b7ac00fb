package tst

// KV is a single key/value pair as emitted by traversals.
type KV struct {
	Key string
	Val interface{}
}

// node holds one byte position along the set of keys sharing a prefix.
// lokid/hikid order sibling branches by splitchar at the same depth,
// eqkid continues the same key one byte deeper.
type node struct {
	splitchar byte
	lokid     *node
	eqkid     *node
	hikid     *node
	// val is non-nil iff some key terminates at this node. A nil val
	// only means the byte path exists as a prefix of longer keys.
	val *interface{}
}

// Map is a ternary-search-tree map from string keys to arbitrary values.
//
// A Map must be created with New, NewCompare or Init. It is not safe for
// concurrent mutation; concurrent read-only traversal is fine as long as
// no Set/Ref/Del/Clear/Swap/CopyFrom is in flight.
type Map struct {
	root *node
	size int
	cmp  Compare
}

func Init(m *Map, init ...KV) *Map {
	*m = Map{cmp: Natural}
	for _, kv := range init {
		m.Set(kv.Key, kv.Val)
	}
	return m
}

func New(init ...KV) *Map {
	return Init(&Map{}, init...)
}

// NewCompare creates a map ordered by a custom byte comparator.
func NewCompare(cmp Compare, init ...KV) *Map {
	m := &Map{cmp: cmp}
	if m.cmp == nil {
		m.cmp = Natural
	}
	for _, kv := range init {
		m.Set(kv.Key, kv.Val)
	}
	return m
}

// Len returns the number of keys currently holding a value.
func (m *Map) Len() int {
	return m.size
}

func (m *Map) Empty() bool {
	return m.size == 0
}

// compare returns the active comparator, defaulting to Natural so a
// zero-value Map still orders correctly.
func (m *Map) compare() Compare {
	if m.cmp == nil {
		return Natural
	}
	return m.cmp
}

// insert walks the key from the root, creating missing nodes along the
// way, and returns the terminal node - the node whose splitchar is the
// last byte of the key. Empty keys create nothing and yield nil.
func (m *Map) insert(key string) *node {
	if len(key) == 0 {
		return nil
	}
	cmp := m.compare()
	np := &m.root
	for i := 0; ; {
		if *np == nil {
			*np = &node{splitchar: key[i]}
		}
		p := *np
		switch d := cmp(key[i], p.splitchar); {
		case d < 0:
			np = &p.lokid
		case d > 0:
			np = &p.hikid
		default:
			if i++; i == len(key) {
				return p
			}
			np = &p.eqkid
		}
	}
}

// lookup walks the key without creating nodes and returns the terminal
// node, or nil when the descent runs off a missing child.
func (m *Map) lookup(key string) *node {
	if len(key) == 0 {
		return nil
	}
	cmp := m.compare()
	p := m.root
	for i := 0; p != nil; {
		switch d := cmp(key[i], p.splitchar); {
		case d < 0:
			p = p.lokid
		case d > 0:
			p = p.hikid
		default:
			if i++; i == len(key) {
				return p
			}
			p = p.eqkid
		}
	}
	return nil
}

// Set inserts a key with a value, or updates the value in place when the
// key is already present. It returns a pointer to the stored value slot.
// An empty key is silently ignored and yields nil.
func (m *Map) Set(key string, val interface{}) *interface{} {
	p := m.insert(key)
	if p == nil {
		return nil
	}
	if p.val == nil {
		p.val = new(interface{})
		m.size++
	}
	*p.val = val
	return p.val
}

// Ref is the indexing accessor: it returns a pointer to the value stored
// under the key, first inserting a nil value when the key is absent.
// Writes through the returned pointer update the map in place. An empty
// key yields nil.
func (m *Map) Ref(key string) *interface{} {
	p := m.insert(key)
	if p == nil {
		return nil
	}
	if p.val == nil {
		p.val = new(interface{})
		m.size++
	}
	return p.val
}

// Get returns the value stored under the key.
func (m *Map) Get(key string) (interface{}, bool) {
	p := m.lookup(key)
	if p == nil || p.val == nil {
		return nil, false
	}
	return *p.val, true
}

// GetRef returns a pointer to the value stored under the key without
// inserting, or nil when the key is absent.
func (m *Map) GetRef(key string) *interface{} {
	if p := m.lookup(key); p != nil {
		return p.val
	}
	return nil
}

// Has reports whether the key is present.
func (m *Map) Has(key string) bool {
	p := m.lookup(key)
	return p != nil && p.val != nil
}

// Del removes the key, reporting whether it was present. Removal only
// clears the value slot: the nodes along the key's path stay in place
// so other keys (and later re-inserts) can keep using them.
func (m *Map) Del(key string) bool {
	p := m.lookup(key)
	if p == nil || p.val == nil {
		return false
	}
	p.val = nil
	m.size--
	return true
}

// Clear drops every entry. The whole node tree is released at once and
// reclaimed by the garbage collector regardless of its depth.
func (m *Map) Clear() {
	m.root = nil
	m.size = 0
}

// Swap exchanges the contents of two maps in constant time. Only the
// root and the size move; comparators stay with their maps.
func (m *Map) Swap(other *Map) {
	m.root, other.root = other.root, m.root
	m.size, other.size = other.size, m.size
}

// CopyFrom replaces the contents of m with the entries of src,
// re-inserting them in src's traversal order. Copying a map into itself
// is a no-op. The two node trees end up fully independent; values are
// shared as-is.
func (m *Map) CopyFrom(src *Map) *Map {
	if m == src {
		return m
	}
	m.Clear()
	src.ForEach(func(key string, val interface{}) {
		m.Set(key, val)
	})
	return m
}

// Clone returns an independent copy of the map using the same comparator.
func (m *Map) Clone() *Map {
	c := NewCompare(m.cmp)
	return c.CopyFrom(m)
}
