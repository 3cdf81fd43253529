package lzw

import (
	"github.com/pkg/errors"

	"github.com/xiaonanln/go-lzw/engine/common"
)

// Decompress decodes a codeword stream produced by Compress back into the
// original bytes. The first stream element is the original byte length and
// is used to presize the output; the decoded size must agree with it.
func Decompress(stream []common.Codeword) ([]byte, error) {
	if len(stream) == 0 {
		return nil, errors.Wrap(ErrCorruptStream, "missing length codeword")
	}
	origLen := int(stream[0])
	if len(stream) == 1 {
		if origLen != 0 {
			return nil, errors.Wrapf(ErrCorruptStream, "stream claims %d bytes but has no content codewords", origLen)
		}
		return []byte{}, nil
	}

	dict := newIndexedDict()
	out := make([]byte, 0, origLen)

	prev, err := dict.get(stream[1])
	if err != nil {
		return nil, err
	}
	out = append(out, prev...)

	for _, cw := range stream[2:] {
		var entry []byte
		if cw > dict.next {
			return nil, errors.Wrapf(ErrCorruptStream, "codeword %d skips ahead of %d", cw, dict.next)
		} else if cw == dict.next {
			// the entry referenced is the one about to be created: it must
			// be the previous entry followed by its own first byte
			entry = make([]byte, 0, len(prev)+1)
			entry = append(entry, prev...)
			entry = append(entry, prev[0])
		} else {
			entry, err = dict.get(cw)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, entry...)

		grown := make([]byte, 0, len(prev)+1)
		grown = append(grown, prev...)
		grown = append(grown, entry[0])
		dict.appendEntry(grown)

		prev = entry
	}

	if len(out) != origLen {
		return nil, errors.Wrapf(ErrCorruptStream, "decoded %d bytes but stream claims %d", len(out), origLen)
	}
	return out, nil
}
