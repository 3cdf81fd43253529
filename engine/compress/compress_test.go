package compress

import (
	"math/rand"
	"testing"
)

func TestLzwCompressor(t *testing.T) {
	testCompressor(t, NewLzwCompressor())
}

func TestSnappyCompressor(t *testing.T) {
	testCompressor(t, NewSnappyCompressor())
}

func TestFlateCompressor(t *testing.T) {
	testCompressor(t, NewFlateCompressor())
}

func TestZlibCompressor(t *testing.T) {
	testCompressor(t, NewZlibCompressor())
}

func TestNewCompressor(t *testing.T) {
	for _, format := range []string{"lzw", "LZW", "snappy", "flate", "zlib"} {
		if cr := NewCompressor(format); cr == nil {
			t.Errorf("no compressor for format %s", format)
		}
	}
}

func testCompressor(t *testing.T, cr Compressor) {
	dataSize := 1024
	for i := 0; i < 8; i++ {
		b := make([]byte, dataSize)
		for j := 0; j < dataSize; j++ {
			b[j] = byte(97 + rand.Intn(10))
		}

		c, err := cr.Compress(b)
		if err != nil {
			t.Fatal(err)
		}

		t.Logf("original size is %d, compressed size is %d (%d%%)", len(b), len(c), len(c)*100/len(b))

		rb, err := cr.Decompress(c)
		if err != nil {
			t.Fatal(err)
		}

		if len(rb) != len(b) {
			t.Errorf("original data size is %d, but restore data size is %d", len(b), len(rb))
		}

		if string(rb) != string(b) {
			t.Errorf("original data and restored data mismatch")
		}

		dataSize = dataSize * 2
	}
}

func TestCompressorsEmptyInput(t *testing.T) {
	for _, format := range []string{"lzw", "snappy", "flate", "zlib"} {
		cr := NewCompressor(format)
		c, err := cr.Compress(nil)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		rb, err := cr.Decompress(c)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if len(rb) != 0 {
			t.Errorf("%s: empty input restored to %d bytes", format, len(rb))
		}
	}
}
