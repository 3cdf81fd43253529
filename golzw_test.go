package golzw

import (
	"bytes"
	"fmt"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	in := []byte("TOBEORNOTTOBEORTOBEORNOT")
	stream, err := Compress(in)
	if err != nil {
		t.Fatal(err)
	}
	if stream[0] != Codeword(len(in)) {
		t.Errorf("length codeword is %d, want %d", stream[0], len(in))
	}
	out, err := Decompress(stream)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("round trip mismatch: %q != %q", in, out)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	in := bytes.Repeat([]byte("hello world "), 100)
	data, err := CompressToBytes(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) >= len(in)*4 {
		t.Errorf("compressed %d bytes to %d bytes", len(in), len(data))
	}
	out, err := DecompressBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("round trip mismatch")
	}
}

func ExampleCompress() {
	stream, _ := Compress([]byte("abababab"))
	fmt.Println(stream)
	// Output: [8 97 98 257 259 98]
}
