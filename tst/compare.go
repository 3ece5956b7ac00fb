package tst

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Compare orders two key bytes: negative when a sorts before b, zero
// when they are considered equal, positive when a sorts after b. Every
// three-way branch decision in the tree goes through the comparator, so
// "equal" here decides which bytes share a node.
type Compare func(a, b byte) int

// Natural orders bytes by their numeric value.
func Natural(a, b byte) int {
	return int(a) - int(b)
}

// CaseFold orders bytes by value but treats ASCII letters of both cases
// as equal. Keys inserted under CaseFold keep the spelling of their
// first insert.
func CaseFold(a, b byte) int {
	return int(lower(a)) - int(lower(b))
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Fold lowercases a key and strips combining marks, so that accented
// and differently-cased spellings land on the same path. The map never
// rewrites keys itself: callers that want folded behaviour apply Fold
// before both insert and lookup.
func Fold(key string) string {
	key = strings.ToLower(key)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, key)
	if err != nil {
		return key
	}
	return folded
}
