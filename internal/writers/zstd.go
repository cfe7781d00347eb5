package writers

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewZstdWriter wraps w in a zstd stream at the given zstd level (1..22).
// Close flushes the stream but does not close w.
func NewZstdWriter(w io.Writer, level int) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, err
	}

	return enc, nil
}

// NewZstdReader decodes a zstd stream from r.
func NewZstdReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}
