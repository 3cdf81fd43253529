// Package lzw implements LZW compression and decompression over byte
// buffers. Compression drives a trie dictionary keyed by byte string,
// decompression drives an indexed dictionary keyed by codeword; the two
// stay consistent because both sides apply the same dictionary growth rule
// in the same order.
//
// The compressed form is an ordered sequence of codewords whose first
// element is the byte length of the original input. Codewords 0~255 encode
// the single-byte strings, 256 is reserved, dynamic entries start at 257.
package lzw

import (
	"github.com/pkg/errors"
)

var (
	// ErrCorruptStream indicates a codeword stream that can not have been
	// produced by Compress: a reference to an entry that can not exist yet,
	// the reserved codeword 256, a truncated stream, or a decoded size that
	// disagrees with the embedded length codeword.
	ErrCorruptStream = errors.New("lzw: corrupt codeword stream")

	// ErrSourceTooLarge indicates a source buffer whose length does not fit
	// in the length codeword.
	ErrSourceTooLarge = errors.New("lzw: source too large")
)
