package lzw

import (
	"github.com/xiaonanln/go-lzw/engine/common"
	"github.com/xiaonanln/go-lzw/engine/trie"
)

// Compress encodes src as a sequence of codewords. The first element of the
// returned stream is the length of src in bytes, the rest is the encoded
// content. Compress never fails on well-formed input; the only error is a
// source longer than the length codeword can represent.
func Compress(src []byte) ([]common.Codeword, error) {
	if uint64(len(src)) > uint64(common.MaxSourceLen) {
		return nil, ErrSourceTooLarge
	}

	dict := trie.New()
	seed := make([]byte, 1)
	for c := 0; c < common.AlphabetSize; c++ {
		seed[0] = byte(c)
		dict.Put(seed, common.Codeword(c))
	}

	// worst case is one codeword per source byte plus the length codeword
	out := make([]common.Codeword, 1, len(src)+1)
	out[0] = common.Codeword(len(src))

	nextCode := common.FirstDynamicCodeword
	substr := make([]byte, 0, 64)
	for _, c := range src {
		substr = append(substr, c)
		if _, ok := dict.Get(substr); ok {
			// still matching a known entry, keep extending
			continue
		}
		code, _ := dict.Get(substr[:len(substr)-1])
		out = append(out, code)
		dict.Put(substr, nextCode)
		nextCode++
		substr[0] = c
		substr = substr[:1]
	}
	if len(substr) > 0 {
		// the remaining candidate was matched on a previous probe
		code, _ := dict.Get(substr)
		out = append(out, code)
	}
	return out, nil
}
