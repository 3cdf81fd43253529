package compress

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/xiaonanln/go-lzw/engine/lzlog"
)

// Compressor compresses and decompresses byte buffers. Each call returns an
// owned buffer; implementations keep no state between calls, so a single
// Compressor is safe for concurrent use.
type Compressor interface {
	Compress(b []byte) ([]byte, error)
	Decompress(c []byte) ([]byte, error)
}

var (
	errNotFullyCompressed = errors.Errorf("not fully compressed")
)

// NewCompressor creates the Compressor for the specified format
func NewCompressor(compressFormat string) Compressor {
	compressFormat = strings.ToLower(compressFormat)
	if compressFormat == "lzw" {
		return NewLzwCompressor()
	} else if compressFormat == "snappy" {
		return NewSnappyCompressor()
	} else if compressFormat == "flate" {
		return NewFlateCompressor()
	} else if compressFormat == "zlib" {
		return NewZlibCompressor()
	} else {
		lzlog.Panicf("unknown compress format: %s", compressFormat)
		return nil
	}
}
