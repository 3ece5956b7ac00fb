// Package tst implements a ternary search tree (TST) map from string
// keys to arbitrary values.
//
// A TST combines the branching of a binary search tree with the depth
// of a digital trie. Every node tests a single key byte (its splitchar)
// and has up to three children:
//
//   - lokid - keys whose byte at this depth sorts before splitchar;
//   - eqkid - keys sharing splitchar here, continued one byte deeper;
//   - hikid - keys whose byte at this depth sorts after splitchar.
//
// A value hangs off the node where its key's last byte lives, so a node
// can simultaneously terminate one key and sit in the middle of others:
//
//	          [s]
//	         / | \
//	      [i] [t]*      keys: "st", "sit", "sting"
//	       |   |
//	      [t]*[i]
//	           |
//	          [n]
//	           |
//	          [g]*
//
// Deleting a key clears its value slot but keeps the nodes: repeated
// insert/delete cycles over the same key set never grow the tree, and
// shared path segments stay valid for the remaining keys. Nodes are
// reclaimed only when the whole map is cleared or dropped.
//
// Byte ordering is a pluggable Compare strategy, so case-insensitive or
// custom-alphabet maps need no algorithm changes.
//
// Traversal order
// ---------------
//
// ForEach (and everything built on it: Items, Keys, PartialMatch and
// NearSearch result order, CopyFrom) walks lokid, then the eqkid spine,
// then hikid, and emits a node's own entry last. Two consequences: a
// key comes out only after every longer key it prefixes ("dogma" before
// "dog"), and a key terminating at a node comes out after everything in
// that node's hikid subtree, which makes the exact order sensitive to
// insertion history. Do not rely on conventional lexicographic order.
//
// A Map is not safe for concurrent mutation. Concurrent readers are
// fine only while no mutating call is in flight; that is a caller
// obligation, the map itself takes no locks.
package tst
