package tst

// Wildcard is the pattern byte that matches any single key byte in
// PartialMatch.
const Wildcard = '.'

// PartialMatch returns the entries whose keys have exactly the pattern's
// length and match it byte for byte, except at positions where the
// pattern holds a Wildcard. An empty pattern matches nothing. Results
// follow ForEach order restricted to the match set.
func (m *Map) PartialMatch(pattern string) []KV {
	var out []KV
	partialMatch(m.compare(), m.root, pattern, 0, nil, &out)
	return out
}

func partialMatch(cmp Compare, p *node, pat string, i int, buf []byte, out *[]KV) {
	if p == nil || i >= len(pat) {
		return
	}

	c := pat[i]
	wild := c == Wildcard
	d := cmp(c, p.splitchar)

	if wild || d < 0 {
		partialMatch(cmp, p.lokid, pat, i, buf, out)
	}
	if wild || d == 0 {
		if i+1 == len(pat) {
			if p.val != nil {
				*out = append(*out, KV{string(append(buf, p.splitchar)), *p.val})
			}
		} else {
			partialMatch(cmp, p.eqkid, pat, i+1, append(buf, p.splitchar), out)
		}
	}
	if wild || d > 0 {
		partialMatch(cmp, p.hikid, pat, i, buf, out)
	}
}

// NearSearch returns the entries whose keys can be reached from the
// pattern with at most d single-byte substitutions. A length difference
// between key and pattern is charged against the same budget, one unit
// per leftover byte. A negative d matches nothing; d == 0 degenerates
// to an exact lookup.
func (m *Map) NearSearch(pattern string, d int) []KV {
	var out []KV
	nearSearch(m.compare(), m.root, pattern, 0, d, nil, &out)
	return out
}

func nearSearch(cmp Compare, p *node, pat string, i, d int, buf []byte, out *[]KV) {
	if p == nil || d < 0 {
		return
	}

	// An exhausted pattern keeps comparing as byte zero, so every
	// further key byte costs one unit of budget.
	var c byte
	if i < len(pat) {
		c = pat[i]
	}
	diff := cmp(c, p.splitchar)

	if d > 0 || diff < 0 {
		nearSearch(cmp, p.lokid, pat, i, d, buf, out)
	}

	ni, nd := i, d
	if i < len(pat) {
		ni = i + 1
	}
	if diff != 0 {
		nd = d - 1
	}
	nearSearch(cmp, p.eqkid, pat, ni, nd, append(buf, p.splitchar), out)

	if d > 0 || diff > 0 {
		nearSearch(cmp, p.hikid, pat, i, d, buf, out)
	}

	// Candidate check: whatever the pattern still has left must fit
	// into the budget remaining after this byte.
	if p.val != nil && len(pat)-ni <= nd {
		*out = append(*out, KV{string(append(buf, p.splitchar)), *p.val})
	}
}
