package compress

import (
	"bytes"

	"compress/zlib"

	"io"
)

// NewZlibCompressor creates a zlib Compressor
func NewZlibCompressor() Compressor {
	return zlibCompressor{}
}

type zlibCompressor struct {
}

func (zc zlibCompressor) Compress(b []byte) ([]byte, error) {
	wb := bytes.NewBuffer(nil)
	writer, err := zlib.NewWriterLevel(wb, zlib.BestSpeed)
	if err != nil {
		return nil, err
	}
	n, err := writer.Write(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, errNotFullyCompressed
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	return wb.Bytes(), nil
}

func (zc zlibCompressor) Decompress(c []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(c))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
