package counter

import (
	"sort"

	"github.com/aglyzov/go-tst/tst"
)

type CountedKey struct {
	Key   string
	Count int
}
type CountedKeySlice []CountedKey

// Counter counts occurrences of string keys on top of a ternary search
// tree, so counts come back in the tree's traversal order and support
// the tree's partial-match lookups through Tree().
type Counter struct {
	tree *tst.Map
}

func InitCounter(counter *Counter, counted_keys ...CountedKey) *Counter {
	counter.tree = tst.New()
	for _, ckey := range counted_keys {
		counter.IncBy(ckey.Key, ckey.Count)
	}
	return counter
}

func NewCounter(counted_keys ...CountedKey) *Counter {
	return InitCounter(&Counter{}, counted_keys...)
}

// Len returns the number of distinct keys.
func (t *Counter) Len() int {
	return t.tree.Len()
}

func (t *Counter) Empty() bool {
	return t.tree.Empty()
}

// Get returns the count associated with the key.
func (t *Counter) Get(key string) int {
	v, ok := t.tree.Get(key)
	if !ok {
		return 0
	}
	return v.(int)
}

// Replace applies a func to the previous count of a key and stores the
// result. Returns the previous count. A previously unseen key counts
// as 0.
func (t *Counter) Replace(key string, replace func(int) int) int {
	slot := t.tree.Ref(key)
	if slot == nil {
		return 0 // empty keys are not counted
	}
	prev, _ := (*slot).(int)
	*slot = replace(prev)
	return prev
}

// Set associates a given count with a key. Returns the previous count.
func (t *Counter) Set(key string, count int) int {
	return t.Replace(key, func(int) int { return count })
}

// IncBy increments the count of the key by a given delta and returns it.
func (t *Counter) IncBy(key string, delta int) int {
	return t.Replace(key, func(prev int) int { return prev + delta }) + delta
}

// Inc increments the count of the key by 1 and returns it.
func (t *Counter) Inc(key string) int {
	return t.IncBy(key, 1)
}

// Dec decrements the count of the key by 1 and returns it.
func (t *Counter) Dec(key string) int {
	return t.IncBy(key, -1)
}

// Del removes the key and returns its count.
func (t *Counter) Del(key string) (count int) {
	count = t.Get(key)
	t.tree.Del(key)
	return
}

// Iter calls a handler for every counted key in the tree's traversal
// order. The handler can continue by returning true or abort with false.
func (t *Counter) Iter(handler func(CountedKey) bool) {
	aborted := false
	t.tree.ForEach(func(key string, val interface{}) {
		if aborted {
			return
		}
		count, _ := val.(int)
		if !handler(CountedKey{key, count}) {
			aborted = true
		}
	})
}

// Items returns every counted key in the tree's traversal order.
func (t *Counter) Items() CountedKeySlice {
	items := make(CountedKeySlice, 0, t.Len())
	t.Iter(func(ckey CountedKey) bool {
		items = append(items, ckey)
		return true
	})
	return items
}

// MostCommon returns up to n keys sorted by count (descending). Ties
// keep the traversal order.
func (t *Counter) MostCommon(n int) CountedKeySlice {
	items := t.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if n >= 0 && n < len(items) {
		items = items[:n]
	}
	return items
}

// Tree exposes the underlying map for partial-match and near-neighbor
// queries over the counted keys.
func (t *Counter) Tree() *tst.Map {
	return t.tree
}
