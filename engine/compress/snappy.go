package compress

import (
	"github.com/golang/snappy"
)

// NewSnappyCompressor creates a snappy block-format Compressor
func NewSnappyCompressor() Compressor {
	return snappyCompressor{}
}

type snappyCompressor struct {
}

func (sc snappyCompressor) Compress(b []byte) ([]byte, error) {
	return snappy.Encode(nil, b), nil
}

func (sc snappyCompressor) Decompress(c []byte) ([]byte, error) {
	return snappy.Decode(nil, c)
}
