package ape

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Block is a fully encoded tag block, ready to be written.
type Block struct {
	Header Header
	Footer Header
	// Data holds the concatenated item records.
	Data []byte
}

// Size returns the total number of bytes in the block.
func (b *Block) Size() int {
	return 2*HeaderSize + len(b.Data)
}

// Bytes returns header, data, and footer as one slice.
func (b *Block) Bytes() []byte {
	out := make([]byte, 0, b.Size())
	out = b.Header.appendTo(out)
	out = append(out, b.Data...)
	return b.Footer.appendTo(out)
}

// Encode renders items into a Block without writing anything.
//
// Items are stored in order. Any render failure aborts the whole block.
func Encode(items []types.TagItem) (*Block, error) {
	return encode(items, nil)
}

func encode(items []types.TagItem, logger *slog.Logger) (*Block, error) {
	var data []byte
	for i, item := range items {
		value, err := Render(item.Value())
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, item.Key(), err)
		}
		data = appendItem(data, item.Key(), value)

		if logger != nil {
			logger.Debug("encoded tag item", "key", item.Key(), "value", string(value))
		}
	}

	if uint64(len(data)) > math.MaxUint32-HeaderSize || uint64(len(items)) > math.MaxUint32 {
		return nil, &types.InvalidArgumentError{
			Field:  "items",
			Reason: fmt.Sprintf("%d bytes of item data do not fit a 32-bit length", len(data)),
		}
	}

	size, count := uint32(len(data)), uint32(len(items))
	return &Block{
		Header: newHeader(size, count, false),
		Footer: newHeader(size, count, true),
		Data:   data,
	}, nil
}

// appendItem appends one item record: value length, flags, NUL-terminated
// key, value. Values are always flagged as text, numbers and dates included.
func appendItem(dst []byte, key string, value []byte) []byte {
	dst = binary.AppendLE(dst, uint32(len(value)))
	dst = binary.AppendLE(dst, ItemFlagsText)
	dst = append(dst, key...)
	dst = append(dst, 0)
	return append(dst, value...)
}

// Encoder writes APEv2 tag blocks to a sink.
//
// The sink is expected to be positioned at the end of the target, for
// example a file opened with O_APPEND. The Encoder never seeks or reads.
type Encoder struct {
	w      io.Writer
	logger *slog.Logger
}

// NewEncoder returns an Encoder writing to w. A nil logger disables logging.
func NewEncoder(w io.Writer, logger *slog.Logger) *Encoder {
	return &Encoder{w: w, logger: logger}
}

// WriteTags encodes items and writes header, item data, and footer in
// three writes.
//
// Nothing is written if any item fails to render. A failed or short write
// stops immediately with a *types.IOError; bytes from earlier writes are
// left in the sink, so an interrupted call can leave a truncated block.
func (e *Encoder) WriteTags(items []types.TagItem) (*Block, error) {
	block, err := encode(items, e.logger)
	if err != nil {
		return nil, err
	}

	sw := binary.NewSafeWriter(e.w)

	if err := sw.WriteBytes(block.Header.appendTo(nil), "header"); err != nil {
		return nil, err
	}
	if err := sw.WriteBytes(block.Data, "items"); err != nil {
		return nil, err
	}
	if err := sw.WriteBytes(block.Footer.appendTo(nil), "footer"); err != nil {
		return nil, err
	}

	if e.logger != nil {
		e.logger.Debug("wrote tag block",
			"items", block.Header.ItemCount,
			"bytes", sw.Offset())
	}
	return block, nil
}

// WriteTags writes items to w as one APEv2 tag block.
func WriteTags(w io.Writer, items []types.TagItem) error {
	_, err := NewEncoder(w, nil).WriteTags(items)
	return err
}
