// Package ape encodes APEv2 tag blocks.
//
// A block is a 32-byte header, the item records, and a 32-byte footer:
//
//	[header:32][item1][item2]...[itemN][footer:32]
//
// Header and footer share the same layout and differ only in their flags.
// All integers are little-endian.
package ape

import (
	"github.com/simonhull/apetag/internal/binary"
)

const (
	// HeaderSize is the size of the header and of the footer.
	HeaderSize = 32

	// Version is the APEv2 version number written to header and footer.
	Version = 2000

	// FlagsHeader marks the record preceding the items: header present,
	// this is the header.
	FlagsHeader uint32 = 0xA0000001
	// FlagsFooter marks the record following the items: header present.
	FlagsFooter uint32 = 0x80000001

	// ItemFlagsText marks an item whose value is UTF-8 text.
	ItemFlagsText uint32 = 0x00000001
)

// Magic is the preamble of every header and footer.
var Magic = [8]byte{'A', 'P', 'E', 'T', 'A', 'G', 'E', 'X'}

// Header is the 32-byte record written before and after the items.
type Header struct {
	// Length is the size of the item data plus the footer (HeaderSize).
	Length uint32
	// ItemCount is the number of item records.
	ItemCount uint32
	Flags     uint32
	Version   uint32
}

// newHeader returns the header or footer for dataSize bytes of item data.
func newHeader(dataSize, itemCount uint32, footer bool) Header {
	flags := FlagsHeader
	if footer {
		flags = FlagsFooter
	}
	return Header{
		Version:   Version,
		Length:    dataSize + HeaderSize,
		ItemCount: itemCount,
		Flags:     flags,
	}
}

// IsHeader reports whether the header flag bit (29) is set.
func (h Header) IsHeader() bool {
	return h.Flags&(1<<29) != 0
}

// DataSize returns the size of the item data described by h.
func (h Header) DataSize() uint32 {
	return h.Length - HeaderSize
}

func (h Header) appendTo(dst []byte) []byte {
	dst = append(dst, Magic[:]...)
	dst = binary.AppendLE(dst, h.Version)
	dst = binary.AppendLE(dst, h.Length)
	dst = binary.AppendLE(dst, h.ItemCount)
	dst = binary.AppendLE(dst, h.Flags)
	var reserved [8]byte
	return append(dst, reserved[:]...)
}
