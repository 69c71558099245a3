// Package compress provides extension-keyed compression for dataset files.
//
// COCO annotation files are large and commonly shipped compressed; the editor
// picks the algorithm from the file name, so "annotations.json.gz",
// "annotations.json.zst" and "annotations.json.lz4" load and export
// transparently. Unrecognized extensions pass through unchanged.
package compress

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type identifies a compression algorithm.
type Type uint8

const (
	// TypeNone indicates no compression.
	TypeNone Type = iota
	// TypeGzip indicates gzip stream compression (.gz).
	TypeGzip
	// TypeZstd indicates zstandard stream compression (.zst).
	TypeZstd
	// TypeLZ4 indicates LZ4 frame compression (.lz4).
	TypeLZ4
)

// String returns the string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeGzip:
		return "gzip"
	case TypeZstd:
		return "zstd"
	case TypeLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// ByPath returns the compression type implied by the file name's extension.
func ByPath(path string) Type {
	switch filepath.Ext(path) {
	case ".gz":
		return TypeGzip
	case ".zst":
		return TypeZstd
	case ".lz4":
		return TypeLZ4
	default:
		return TypeNone
	}
}

// NewWriter wraps w with a compressing writer for the given type. The caller
// must Close the returned writer to flush the stream; for TypeNone the Close
// is a no-op and w is not closed.
func NewWriter(w io.Writer, t Type) (io.WriteCloser, error) {
	switch t {
	case TypeGzip:
		return gzip.NewWriter(w), nil
	case TypeZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case TypeLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// NewReader wraps r with a decompressing reader for the given type.
func NewReader(r io.Reader, t Type) (io.ReadCloser, error) {
	switch t {
	case TypeGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gr, nil
	case TypeZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case TypeLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// Encode compresses data for the given type in one shot.
func Encode(data []byte, t Type) ([]byte, error) {
	if t == TypeNone {
		return data, nil
	}
	var buf bytes.Buffer
	w, err := NewWriter(&buf, t)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses data for the given type in one shot.
func Decode(data []byte, t Type) ([]byte, error) {
	if t == TypeNone {
		return data, nil
	}
	r, err := NewReader(bytes.NewReader(data), t)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
