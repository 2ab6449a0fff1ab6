package apetag

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/simonhull/apetag/internal/ape"
	"github.com/simonhull/apetag/internal/registry"
	"github.com/simonhull/apetag/internal/types"
)

// Result describes a tag block appended to a file.
type Result struct {
	// Path is the file the block was appended to.
	Path string
	// Items is the number of tag items in the block.
	Items int
	// Bytes is the size of the block, header and footer included.
	Bytes int
	// Digest is the xxhash64 of the block bytes.
	Digest uint64
}

// Append writes items to w as one tag block and returns the bytes written.
//
// w should already be positioned where the block belongs, usually the end
// of the file. Nothing is written if an item fails to render; a failed write
// returns an *IOError and leaves earlier bytes in w.
func Append(w io.Writer, items []TagItem, opts ...AppendOption) ([]byte, error) {
	options := applyAppendOptions(opts)
	return writeBlock(w, items, options)
}

func writeBlock(w io.Writer, items []TagItem, options *appendOptions) ([]byte, error) {
	writer := registry.GetWriter(options.format)
	if writer == nil {
		return nil, &types.UnsupportedFormatError{Name: options.format.String()}
	}
	return writer.WriteTags(w, items, options.logger)
}

// AppendFile appends items as a tag block to the end of the file at path.
//
// The file must already exist; it is opened in append mode and existing
// bytes are never rewritten. Appending is not transactional: if a write
// fails partway, the file keeps a truncated block and an *IOError is
// returned. Use WithBackup to keep a copy of the original.
//
// Options can be provided to customize append behavior:
//
//	res, err := apetag.AppendFile("song.mp3", items,
//	    apetag.WithBackup(".bak"),
//	    apetag.WithVerify(),
//	)
func AppendFile(path string, items []TagItem, opts ...AppendOption) (*Result, error) { //nolint:gocyclo // Sequential file steps
	options := applyAppendOptions(opts)
	logger := options.logger.With("path", path)

	writer := registry.GetWriter(options.format)
	if writer == nil {
		return nil, &types.UnsupportedFormatError{Name: options.format.String()}
	}

	// Render failures must leave the filesystem untouched
	if err := writer.Validate(items); err != nil {
		return nil, err
	}

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		info, err := os.Stat(path)
		if err == nil {
			origInfo = info
		}
	}

	if options.backupSuffix != "" {
		if err := copyFile(path, path+options.backupSuffix); err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		logger.Debug("created backup", "backup", path+options.backupSuffix)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return nil, fmt.Errorf("open file for appending: %w", err)
	}

	written, err := writeBlock(f, items, options)
	if err != nil {
		_ = f.Close() //nolint:errcheck // Reporting the write error
		return nil, err
	}

	if options.sync {
		if err := f.Sync(); err != nil {
			_ = f.Close() //nolint:errcheck // Reporting the sync error
			return nil, fmt.Errorf("sync file: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close file: %w", err)
	}

	// Handle preserveModTime option
	if origInfo != nil {
		_ = os.Chtimes(path, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: tags were written successfully
	}

	res := &Result{
		Path:   path,
		Items:  len(items),
		Bytes:  len(written),
		Digest: xxhash.Sum64(written),
	}

	if options.verify {
		if err := verifyTail(path, written, res.Digest); err != nil {
			return nil, err
		}
		logger.Debug("verified tag block", "digest", fmt.Sprintf("%016x", res.Digest))
	}

	logger.Debug("appended tag block", "items", res.Items, "bytes", res.Bytes)
	return res, nil
}

// verifyTail re-reads the last len(written) bytes of path and checks them
// against the block that was written.
func verifyTail(path string, written []byte, digest uint64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	defer f.Close() //nolint:errcheck // Best effort close

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if info.Size() < int64(len(written)) {
		return &types.VerifyError{
			Path:   path,
			Reason: fmt.Sprintf("file is %d bytes, smaller than the %d byte block", info.Size(), len(written)),
		}
	}

	tail := make([]byte, len(written))
	if _, err := f.ReadAt(tail, info.Size()-int64(len(written))); err != nil {
		return fmt.Errorf("read back tag block: %w", err)
	}

	if got := xxhash.Sum64(tail); got != digest {
		return &types.VerifyError{
			Path:   path,
			Reason: fmt.Sprintf("digest mismatch: read %016x, wrote %016x", got, digest),
		}
	}
	if !bytes.Equal(tail, written) {
		return &types.VerifyError{Path: path, Reason: "block bytes differ"}
	}
	if _, err := ape.Decode(tail); err != nil {
		return &types.VerifyError{Path: path, Reason: err.Error()}
	}
	return nil
}

// copyFile copies src to dst, replacing dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close() //nolint:errcheck // Reporting the copy error
		return err
	}
	return out.Close()
}
