// Package registry holds the tables consulted when turning command-line
// input into tag blocks: tag-format writers and recognized tag keys.
package registry

import (
	"io"
	"log/slog"

	"github.com/simonhull/apetag/internal/types"
)

// TagWriter is the interface tag-format writers implement.
type TagWriter interface {
	// Validate reports whether items can be encoded, without writing.
	Validate(items []types.TagItem) error
	// WriteTags encodes items and appends them to w as one tag block.
	// It returns the bytes it wrote on success.
	WriteTags(w io.Writer, items []types.TagItem, logger *slog.Logger) ([]byte, error)
}

// writers maps formats to their writers.
var writers = make(map[types.TagFormat]TagWriter)

// RegisterWriter registers a writer for a format.
// This is called by format packages during initialization (init functions).
func RegisterWriter(format types.TagFormat, writer TagWriter) {
	writers[format] = writer
}

// GetWriter returns the writer for a given format.
// Returns nil if no writer is registered for the format.
func GetWriter(format types.TagFormat) TagWriter {
	return writers[format]
}
