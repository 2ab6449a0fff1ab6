// Package binary provides type-safe binary writing primitives with offset tracking.
package binary

import (
	"encoding/binary"
	"io"

	"github.com/simonhull/apetag/internal/types"
)

// SafeWriter wraps io.Writer with position tracking and full-write checking.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{
		w:      w,
		offset: 0,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes b to the underlying writer in a single call.
//
// A writer error or a write of fewer than len(b) bytes is reported as a
// *types.IOError tagged with what. Nothing is retried.
func (sw *SafeWriter) WriteBytes(b []byte, what string) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	if err != nil {
		return &types.IOError{Stage: what, Written: n, Expected: len(b), Err: err}
	}
	if n < len(b) {
		return &types.IOError{Stage: what, Written: n, Expected: len(b)}
	}
	return nil
}

// AppendLE appends val to dst in little-endian byte order and returns the
// extended slice.
func AppendLE[T uint8 | uint16 | uint32 | uint64](dst []byte, val T) []byte {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return append(dst, byte(val))
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, uint16(val))
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, uint32(val))
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, uint64(val))
	}
	return dst
}
