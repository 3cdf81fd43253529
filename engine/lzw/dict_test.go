package lzw

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/xiaonanln/go-lzw/engine/common"
)

func TestDictSeed(t *testing.T) {
	d := newIndexedDict()
	for c := 0; c < common.AlphabetSize; c++ {
		b, err := d.get(common.Codeword(c))
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != 1 || b[0] != byte(c) {
			t.Fatalf("entry %d is %v", c, b)
		}
	}
	if _, err := d.get(common.ReservedCodeword); err == nil {
		t.Fatal("reserved codeword 256 should not be assigned")
	}
	if _, err := d.get(common.FirstDynamicCodeword); err == nil {
		t.Fatal("codeword 257 should not be assigned yet")
	}
}

func TestDictAppendSequential(t *testing.T) {
	d := newIndexedDict()
	for i := 0; i < 10; i++ {
		cw := d.appendEntry([]byte(fmt.Sprintf("entry%d", i)))
		if cw != common.FirstDynamicCodeword+common.Codeword(i) {
			t.Fatalf("append %d assigned codeword %d", i, cw)
		}
	}
	b, err := d.get(260)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "entry3" {
		t.Fatalf("entry 260 is %q", b)
	}
}

func TestDictGrowth(t *testing.T) {
	d := newIndexedDict()
	// push well past the doubling boundaries at 257, 514 and 1028
	var want [][]byte
	for i := 0; i < 1500; i++ {
		entry := []byte{byte(i), byte(i >> 8), 0}
		want = append(want, entry)
		d.appendEntry(entry)
	}
	for i, entry := range want {
		b, err := d.get(common.FirstDynamicCodeword + common.Codeword(i))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, entry) {
			t.Fatalf("entry %d changed after growth: %v != %v", i, b, entry)
		}
	}
	// slot 256 stays unassigned through every growth
	if _, err := d.get(common.ReservedCodeword); err == nil {
		t.Fatal("reserved codeword became assigned")
	}
}

func TestDictUnassignedError(t *testing.T) {
	d := newIndexedDict()
	_, err := d.get(9999)
	if errors.Cause(err) != ErrCorruptStream {
		t.Fatalf("error %v is not ErrCorruptStream", err)
	}
}
