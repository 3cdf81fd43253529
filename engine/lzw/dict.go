package lzw

import (
	"github.com/pkg/errors"

	"github.com/xiaonanln/go-lzw/engine/common"
)

// dictEntry is one decoded dictionary slot. assigned distinguishes an empty
// slot from a real entry, since entry bytes can legitimately be anything.
type dictEntry struct {
	bytes    []byte
	assigned bool
}

// indexedDict is the decompression-side dictionary: a growable table of byte
// strings indexed directly by codeword. Slot 256 stays unassigned forever.
type indexedDict struct {
	entries []dictEntry
	next    common.Codeword // next codeword to be assigned by appendEntry
}

func newIndexedDict() *indexedDict {
	d := &indexedDict{
		entries: make([]dictEntry, common.FirstDynamicCodeword),
		next:    common.FirstDynamicCodeword,
	}
	for c := 0; c < common.AlphabetSize; c++ {
		d.entries[c] = dictEntry{bytes: []byte{byte(c)}, assigned: true}
	}
	return d
}

// get returns the entry bytes of codeword cw. Callers must not modify the
// returned slice.
func (d *indexedDict) get(cw common.Codeword) ([]byte, error) {
	if cw >= common.Codeword(len(d.entries)) || !d.entries[cw].assigned {
		return nil, errors.Wrapf(ErrCorruptStream, "codeword %d is not assigned", cw)
	}
	return d.entries[cw].bytes, nil
}

// appendEntry assigns the next sequential codeword to b and returns it,
// doubling the backing table first when it is full. b is owned by the
// dictionary afterwards.
func (d *indexedDict) appendEntry(b []byte) common.Codeword {
	if d.next == common.Codeword(len(d.entries)) {
		grown := make([]dictEntry, len(d.entries)*2)
		copy(grown, d.entries)
		d.entries = grown
	}
	cw := d.next
	d.entries[cw] = dictEntry{bytes: b, assigned: true}
	d.next++
	return cw
}
