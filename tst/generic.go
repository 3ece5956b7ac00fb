package tst

// GMap is a typed wrapper around Map. It stores values through the
// untyped map underneath, so a GMap and its Map view share contents.
type GMap[V any] struct{ *Map }

// NewG creates a new typed map. A nil cmp means natural byte ordering.
func NewG[V any](cmp Compare) *GMap[V] {
	return &GMap[V]{NewCompare(cmp)}
}

// Set inserts or updates a key with a typed value.
func (g *GMap[V]) Set(key string, val V) {
	g.Map.Set(key, val)
}

// Get retrieves the typed value for the key.
func (g *GMap[V]) Get(key string) (V, bool) {
	v, ok := g.Map.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	val, ok := v.(V)
	return val, ok
}

// GKV is a typed key/value pair.
type GKV[V any] struct {
	Key string
	Val V
}

// Items returns every entry with its typed value, in ForEach order.
func (g *GMap[V]) Items() []GKV[V] {
	items := make([]GKV[V], 0, g.Len())
	g.ForEach(func(key string, val interface{}) {
		v, _ := val.(V)
		items = append(items, GKV[V]{key, v})
	})
	return items
}
