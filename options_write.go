package apetag

import (
	"log/slog"

	"github.com/simonhull/apetag/internal/types"
)

// AppendOption configures behavior when appending a tag block.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	res, err := apetag.AppendFile("song.mp3", items,
//	    apetag.WithSync(),
//	    apetag.WithVerify(),
//	)
type AppendOption func(*appendOptions)

// appendOptions holds configuration for appending.
type appendOptions struct {
	logger          *slog.Logger
	backupSuffix    string    // Suffix for a copy of the file made before appending
	format          TagFormat // Tag block format to write
	sync            bool      // fsync after writing
	verify          bool      // Re-read the appended block and compare
	preserveModTime bool      // Keep original modification time
}

// defaultAppendOptions returns the default configuration for appending.
func defaultAppendOptions() *appendOptions {
	return &appendOptions{
		logger:          slog.New(slog.DiscardHandler),
		backupSuffix:    "",
		format:          types.FormatAPEv2,
		sync:            false,
		verify:          false,
		preserveModTime: false,
	}
}

func applyAppendOptions(opts []AppendOption) *appendOptions {
	options := defaultAppendOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sends debug output about each encoded item to logger.
//
// By default nothing is logged.
func WithLogger(logger *slog.Logger) AppendOption {
	return func(o *appendOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFormat selects the tag block format. The default is APEv2, currently
// the only registered format.
func WithFormat(format TagFormat) AppendOption {
	return func(o *appendOptions) {
		o.format = format
	}
}

// WithSync flushes the file to stable storage before AppendFile returns.
func WithSync() AppendOption {
	return func(o *appendOptions) {
		o.sync = true
	}
}

// WithVerify re-reads the end of the file after appending and checks that
// it holds exactly the block that was written.
//
// Example:
//
//	_, err := apetag.AppendFile("song.mp3", items, apetag.WithVerify())
//	var verr *apetag.VerifyError
//	if errors.As(err, &verr) {
//		log.Printf("tag block did not land intact: %v", verr)
//	}
func WithVerify() AppendOption {
	return func(o *appendOptions) {
		o.verify = true
	}
}

// WithBackup copies the file before appending.
//
// The copy has the specified suffix appended to the original filename.
// For example, WithBackup(".bak") copies "song.mp3" to "song.mp3.bak".
// An existing backup file is overwritten.
//
// Appending is not transactional; the backup is the way to recover from
// a block left truncated by a failed write.
func WithBackup(suffix string) AppendOption {
	return func(o *appendOptions) {
		o.backupSuffix = suffix
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// Example:
//
//	_, err := apetag.AppendFile("song.mp3", items, apetag.WithPreserveModTime())
//	// File modification time unchanged
func WithPreserveModTime() AppendOption {
	return func(o *appendOptions) {
		o.preserveModTime = true
	}
}
