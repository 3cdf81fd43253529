package compress

import (
	"github.com/xiaonanln/go-lzw/engine/codec"
	"github.com/xiaonanln/go-lzw/engine/lzw"
)

// NewLzwCompressor creates a Compressor backed by this module's LZW codec,
// with codewords serialized in the storage format of the codec package.
func NewLzwCompressor() Compressor {
	return lzwCompressor{}
}

type lzwCompressor struct {
}

func (lc lzwCompressor) Compress(b []byte) ([]byte, error) {
	stream, err := lzw.Compress(b)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(stream), nil
}

func (lc lzwCompressor) Decompress(c []byte) ([]byte, error) {
	stream, err := codec.Unmarshal(c)
	if err != nil {
		return nil, err
	}
	return lzw.Decompress(stream)
}
