package trie

import (
	"github.com/xiaonanln/go-lzw/engine/common"
)

// Trie is a prefix tree over byte strings used as the compression-side
// dictionary. Lookup cost is proportional to the key length and independent
// of the number of entries, which is what makes probing successively longer
// candidates affordable during compression.
type Trie struct {
	root node
}

type node struct {
	children [common.AlphabetSize]*node
	code     common.Codeword
	hasCode  bool
}

// New creates an empty Trie
func New() *Trie {
	return &Trie{}
}

// Put inserts the mapping from byte string w to code. If w is already mapped
// the existing mapping is left unchanged.
func (t *Trie) Put(w []byte, code common.Codeword) {
	n := &t.root
	for _, c := range w {
		if n.children[c] == nil {
			n.children[c] = &node{}
		}
		n = n.children[c]
	}
	if !n.hasCode {
		n.code = code
		n.hasCode = true
	}
}

// Get returns the codeword mapped to the exact byte string w. The second
// return value is false if w was never inserted, so that entry 0 (the byte
// 0x00) is never confused with absence.
func (t *Trie) Get(w []byte) (common.Codeword, bool) {
	n := &t.root
	for _, c := range w {
		if n.children[c] == nil {
			return 0, false
		}
		n = n.children[c]
	}
	return n.code, n.hasCode
}
