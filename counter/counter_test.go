package counter

import "testing"

func keys(tr *Counter) (s []string) {
	tr.Iter(func(ckey CountedKey) bool {
		s = append(s, ckey.Key)
		return true
	})
	return
}

func Test_EmptyCounter(t *testing.T) {
	tr := NewCounter()
	if keys(tr) != nil {
		t.Error("must be empty")
	}
	if c := tr.Get("a"); c != 0 {
		t.Errorf("wrong .Get() result: expected 0, got %v", c)
	}
	if c := tr.Del("a"); c != 0 {
		t.Errorf("wrong .Del() result: expected 0, got %v", c)
	}
}

func Test_IncGet(t *testing.T) {
	tr := NewCounter()
	ins := []string{"a", "b", "c", "a", "bb", "ccc", "a", "ccc"}

	for _, s := range ins {
		tr.Inc(s)
	}

	tests := []struct {
		key   string
		count int
	}{
		{"a", 3}, {"b", 1}, {"bb", 1}, {"c", 1}, {"ccc", 2}, {"x", 0},
	}
	for _, test := range tests {
		if c := tr.Get(test.key); c != test.count {
			t.Errorf("wrong count of %q: expected %d, got %d", test.key, test.count, c)
		}
	}
	if tr.Len() != 5 {
		t.Errorf("unexpected length %d", tr.Len())
	}
}

func Test_KeyOrder(t *testing.T) {
	tr := NewCounter()
	ins := []string{"x", "c", "b", "a", "a", "ccc", "cc"}
	// longer keys come out before the keys they extend
	expected := []string{"a", "b", "ccc", "cc", "c", "x"}

	for _, s := range ins {
		tr.Inc(s)
	}

	res := keys(tr)
	if len(res) != len(expected) {
		t.Fatalf("unexpected length %d", len(res))
	}
	for i, s := range expected {
		if res[i] != s {
			t.Errorf("unexpected element %q at %d", res[i], i)
		}
	}
}

func Test_ReplaceDel(t *testing.T) {
	tr := NewCounter()

	if prev := tr.Set("aa", 5); prev != 0 {
		t.Errorf("wrong previous count: expected 0, got %d", prev)
	}
	if prev := tr.Set("aa", 7); prev != 5 {
		t.Errorf("wrong previous count: expected 5, got %d", prev)
	}
	if c := tr.Dec("aa"); c != 6 {
		t.Errorf("wrong count after Dec: expected 6, got %d", c)
	}
	if c := tr.Del("aa"); c != 6 {
		t.Errorf("wrong .Del() result: expected 6, got %d", c)
	}
	if c := tr.Del("aa"); c != 0 {
		t.Errorf("wrong repeated .Del() result: expected 0, got %d", c)
	}
	if !tr.Empty() {
		t.Error("must be empty after deleting the only key")
	}
}

func Test_EmptyKeyIgnored(t *testing.T) {
	tr := NewCounter()
	if c := tr.Inc(""); c != 1 {
		// IncBy reports the would-be count but nothing is stored
		t.Logf("Inc(\"\") returned %d", c)
	}
	if tr.Len() != 0 {
		t.Errorf("empty key must not be stored, len=%d", tr.Len())
	}
}

func Test_MostCommon(t *testing.T) {
	tr := NewCounter()
	for key, count := range map[string]int{"a": 3, "b": 7, "c": 5, "d": 1} {
		tr.IncBy(key, count)
	}

	top := tr.MostCommon(2)
	if len(top) != 2 {
		t.Fatalf("unexpected length %d", len(top))
	}
	if top[0].Key != "b" || top[0].Count != 7 {
		t.Errorf("unexpected first element %+v", top[0])
	}
	if top[1].Key != "c" || top[1].Count != 5 {
		t.Errorf("unexpected second element %+v", top[1])
	}

	all := tr.MostCommon(-1)
	if len(all) != 4 {
		t.Errorf("unexpected length %d", len(all))
	}
}

func Test_IterAbort(t *testing.T) {
	tr := NewCounter()
	for _, s := range []string{"a", "b", "c"} {
		tr.Inc(s)
	}

	visited := 0
	tr.Iter(func(CountedKey) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("expected 1 visit, got %d", visited)
	}
}

func Test_PartialMatchOverCounts(t *testing.T) {
	tr := NewCounter()
	for _, s := range []string{"cat", "car", "cat", "cup"} {
		tr.Inc(s)
	}

	res := tr.Tree().PartialMatch("ca.")
	if len(res) != 2 {
		t.Fatalf("unexpected length %d", len(res))
	}
	if res[0].Key != "car" || res[0].Val != 1 {
		t.Errorf("unexpected first match %+v", res[0])
	}
	if res[1].Key != "cat" || res[1].Val != 2 {
		t.Errorf("unexpected second match %+v", res[1])
	}
}
