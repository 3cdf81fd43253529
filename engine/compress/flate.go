package compress

import (
	"bytes"

	"compress/flate"

	"io"
)

// NewFlateCompressor creates a flate Compressor
func NewFlateCompressor() Compressor {
	return flateCompressor{}
}

type flateCompressor struct {
}

func (fc flateCompressor) Compress(b []byte) ([]byte, error) {
	wb := bytes.NewBuffer(nil)
	writer, err := flate.NewWriter(wb, flate.BestSpeed)
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

func (fc flateCompressor) Decompress(c []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(c))
	defer reader.Close()
	return io.ReadAll(reader)
}
