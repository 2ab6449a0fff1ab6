package ape

import (
	"bytes"
	"fmt"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Item is one decoded item record.
type Item struct {
	Key   string
	Value []byte
	Flags uint32
}

// Decoded is the result of decoding a tag block.
type Decoded struct {
	Header Header
	Footer Header
	Items  []Item
}

// Decode parses a complete block of the shape produced by Encode.
//
// It exists to verify freshly written blocks; it does not attempt to
// handle footer-only tags or the other variants found in the wild.
func Decode(block []byte) (*Decoded, error) {
	if len(block) < 2*HeaderSize {
		return nil, &types.CorruptedTagError{
			Reason: fmt.Sprintf("block is %d bytes, need at least %d", len(block), 2*HeaderSize),
		}
	}

	sr := binary.NewSafeReader(bytes.NewReader(block), int64(len(block)), "tag block")

	header, err := readHeader(sr, 0)
	if err != nil {
		return nil, err
	}
	if !header.IsHeader() {
		return nil, &types.CorruptedTagError{Reason: "first record is not flagged as header"}
	}
	if want := uint64(header.DataSize()) + 2*HeaderSize; header.Length < HeaderSize || want != uint64(len(block)) {
		return nil, &types.CorruptedTagError{
			Offset: 12,
			Reason: fmt.Sprintf("header length %d does not match block size %d", header.Length, len(block)),
		}
	}

	footerOffset := int64(len(block) - HeaderSize)
	footer, err := readHeader(sr, footerOffset)
	if err != nil {
		return nil, err
	}
	if footer.IsHeader() {
		return nil, &types.CorruptedTagError{Offset: footerOffset, Reason: "last record is flagged as header"}
	}
	if footer.Length != header.Length || footer.ItemCount != header.ItemCount {
		return nil, &types.CorruptedTagError{
			Offset: footerOffset,
			Reason: fmt.Sprintf("footer (length %d, count %d) disagrees with header (length %d, count %d)",
				footer.Length, footer.ItemCount, header.Length, header.ItemCount),
		}
	}

	data := binary.NewSafeReader(bytes.NewReader(block[HeaderSize:footerOffset]), footerOffset-HeaderSize, "item data")
	r := binary.NewReader(data, 0)

	items := make([]Item, 0, header.ItemCount)
	for i := uint32(0); i < header.ItemCount; i++ {
		item, err := readItem(r)
		if err != nil {
			return nil, &types.CorruptedTagError{
				Offset: HeaderSize + r.Offset(),
				Reason: fmt.Sprintf("item %d: %v", i, err),
			}
		}
		items = append(items, item)
	}
	if r.Remaining() != 0 {
		return nil, &types.CorruptedTagError{
			Offset: HeaderSize + r.Offset(),
			Reason: fmt.Sprintf("%d trailing bytes after %d items", r.Remaining(), header.ItemCount),
		}
	}

	return &Decoded{Header: header, Footer: footer, Items: items}, nil
}

func readHeader(sr *binary.SafeReader, off int64) (Header, error) {
	cr := binary.NewChainReader(binary.NewReader(sr, off))

	magic := cr.Bytes(len(Magic), "magic")
	h := Header{
		Version:   binary.ReadChained[uint32](cr, "version"),
		Length:    binary.ReadChained[uint32](cr, "length"),
		ItemCount: binary.ReadChained[uint32](cr, "item count"),
		Flags:     binary.ReadChained[uint32](cr, "flags"),
	}
	reserved := cr.Bytes(8, "reserved")
	if err := cr.Error(); err != nil {
		return Header{}, &types.CorruptedTagError{Offset: off, Reason: err.Error()}
	}

	if !bytes.Equal(magic, Magic[:]) {
		return Header{}, &types.CorruptedTagError{Offset: off, Reason: fmt.Sprintf("bad magic %q", magic)}
	}
	if h.Version != Version {
		return Header{}, &types.CorruptedTagError{Offset: off + 8, Reason: fmt.Sprintf("unsupported version %d", h.Version)}
	}
	if !bytes.Equal(reserved, make([]byte, 8)) {
		return Header{}, &types.CorruptedTagError{Offset: off + 24, Reason: "reserved bytes are not zero"}
	}
	return h, nil
}

func readItem(r *binary.Reader) (Item, error) {
	size, err := binary.ReadValue[uint32](r, "value length")
	if err != nil {
		return Item{}, err
	}
	flags, err := binary.ReadValue[uint32](r, "item flags")
	if err != nil {
		return Item{}, err
	}
	key, err := r.ReadCString(types.MaxKeyLength, "item key")
	if err != nil {
		return Item{}, err
	}
	if int64(size) > r.Remaining() {
		return Item{}, fmt.Errorf("value length %d exceeds remaining %d bytes", size, r.Remaining())
	}
	value, err := r.ReadBytes(int(size), "item value")
	if err != nil {
		return Item{}, err
	}
	return Item{Key: key, Value: value, Flags: flags}, nil
}
