package binary

import "encoding/binary"

// ReadLE reads a numeric value of type T at the given offset using little-endian byte order.
//
// Example:
//
//	version, err := binary.ReadLE[uint32](sr, 8, "tag version")
func ReadLE[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T

	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.LittleEndian.Uint16(buf))
	case uint32:
		val = T(binary.LittleEndian.Uint32(buf))
	case uint64:
		val = T(binary.LittleEndian.Uint64(buf))
	}

	return val, nil
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return 1
	}
}
