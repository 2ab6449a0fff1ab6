// Command apetag appends an APEv2 tag block to the end of a media file.
//
// Usage:
//
//	apetag [options] <type> <file> [<key=value> ...]
//
// Example:
//
//	apetag APE2 song.mp3 "Artist=John Doe" Track=7 Year=2021
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/simonhull/apetag"
	"github.com/simonhull/apetag/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "apetag:", err)
		os.Exit(1)
	}
}

// run holds the whole command so tests can drive it without exiting.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	inv, shouldExit, err := parseArgs(args, cfg, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(inv.logLevel, inv.logFormat, stderr)
	logger.Debug("arguments parsed", "format", inv.format, "path", inv.path, "args", len(inv.tagArgs))

	items, err := collectItems(inv)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if len(items) == 0 {
		return &ExitError{Code: 2, Message: "no tags have been specified, need at least one key=value"}
	}

	opts := []apetag.AppendOption{
		apetag.WithLogger(logger),
		apetag.WithFormat(inv.format),
	}
	if inv.sync {
		opts = append(opts, apetag.WithSync())
	}
	if inv.verify {
		opts = append(opts, apetag.WithVerify())
	}
	if inv.backup != "" {
		opts = append(opts, apetag.WithBackup(inv.backup))
	}

	res, err := apetag.AppendFile(inv.path, items, opts...)
	if err != nil {
		return err
	}

	logger.Info("tags have been written",
		slog.String("path", res.Path),
		slog.Int("items", res.Items),
		slog.Int("bytes", res.Bytes),
		slog.String("xxhash", fmt.Sprintf("%016x", res.Digest)),
	)
	return nil
}

// collectItems parses tag-file items first, then command-line items, so
// the block keeps the order the user gave.
func collectItems(inv *invocation) ([]apetag.TagItem, error) {
	var items []apetag.TagItem
	if inv.tagFile != "" {
		fileItems, err := apetag.ParseTagFile(inv.tagFile)
		if err != nil {
			return nil, err
		}
		items = append(items, fileItems...)
	}
	argItems, err := apetag.ParseTags(inv.tagArgs)
	if err != nil {
		return nil, err
	}
	return append(items, argItems...), nil
}
