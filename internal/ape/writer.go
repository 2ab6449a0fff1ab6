package ape

import (
	"io"
	"log/slog"

	"github.com/simonhull/apetag/internal/registry"
	"github.com/simonhull/apetag/internal/types"
)

// tagWriter implements registry.TagWriter for APEv2.
type tagWriter struct{}

// Validate renders items and discards the result.
func (tagWriter) Validate(items []types.TagItem) error {
	_, err := Encode(items)
	return err
}

// WriteTags writes items as an APEv2 block and returns the bytes written.
func (tagWriter) WriteTags(w io.Writer, items []types.TagItem, logger *slog.Logger) ([]byte, error) {
	block, err := NewEncoder(w, logger).WriteTags(items)
	if err != nil {
		return nil, err
	}
	return block.Bytes(), nil
}

func init() {
	registry.RegisterWriter(types.FormatAPEv2, tagWriter{})
}
