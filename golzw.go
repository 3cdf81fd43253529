package golzw

import (
	"github.com/xiaonanln/go-lzw/engine/codec"
	"github.com/xiaonanln/go-lzw/engine/common"
	"github.com/xiaonanln/go-lzw/engine/lzw"
)

// Codeword is the fixed-width integer identifier of a dictionary entry
type Codeword = common.Codeword

// Compress encodes src as a codeword stream: element 0 is the byte length
// of src, the rest is the LZW-encoded content.
func Compress(src []byte) ([]Codeword, error) {
	return lzw.Compress(src)
}

// Decompress decodes a codeword stream produced by Compress back into the
// original bytes.
func Decompress(stream []Codeword) ([]byte, error) {
	return lzw.Decompress(stream)
}

// CompressToBytes compresses src and serializes the codeword stream as
// 4-byte little-endian codewords.
func CompressToBytes(src []byte) ([]byte, error) {
	stream, err := lzw.Compress(src)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(stream), nil
}

// DecompressBytes decodes data produced by CompressToBytes.
func DecompressBytes(data []byte) ([]byte, error) {
	stream, err := codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return lzw.Decompress(stream)
}
