// Package codec serializes codeword streams to bytes: each codeword is
// written as a 4-byte little-endian unsigned integer, in stream order, with
// no header or trailer. This is the storage format of the golzw tool.
package codec

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/xiaonanln/go-lzw/engine/common"
	"github.com/xiaonanln/go-lzw/engine/lzioutil"
)

const codewordSize = 4

var codewordEndian = binary.LittleEndian

// ErrBadStreamLength indicates serialized data whose length is not a whole
// number of codewords.
var ErrBadStreamLength = errors.New("codec: data length is not a multiple of codeword size")

// Marshal serializes a codeword stream
func Marshal(stream []common.Codeword) []byte {
	data := make([]byte, len(stream)*codewordSize)
	for i, cw := range stream {
		codewordEndian.PutUint32(data[i*codewordSize:], uint32(cw))
	}
	return data
}

// Unmarshal deserializes a codeword stream
func Unmarshal(data []byte) ([]common.Codeword, error) {
	if len(data)%codewordSize != 0 {
		return nil, errors.Wrapf(ErrBadStreamLength, "%d bytes", len(data))
	}
	stream := make([]common.Codeword, len(data)/codewordSize)
	for i := range stream {
		stream[i] = common.Codeword(codewordEndian.Uint32(data[i*codewordSize:]))
	}
	return stream, nil
}

// Write serializes stream to w
func Write(w io.Writer, stream []common.Codeword) error {
	return lzioutil.WriteAll(w, Marshal(stream))
}

// Read deserializes a whole codeword stream from r
func Read(r io.Reader) ([]common.Codeword, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "codec: read stream")
	}
	return Unmarshal(data)
}
