package apetag

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AppendMany appends the same items to several files concurrently.
//
// Each path gets its own AppendFile call; a path may appear only once so
// that no file has two writers. Results are returned in path order.
//
// On the first failure the context passed to the remaining work is
// cancelled: files not yet started are skipped, files already being
// written finish. Files that were tagged before the failure keep their
// tags.
//
// Example:
//
//	ctx := context.Background()
//	results, err := apetag.AppendMany(ctx, items, []string{"a.mp3", "b.mp3"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range results {
//		fmt.Printf("%s: %d bytes\n", r.Path, r.Bytes)
//	}
func AppendMany(ctx context.Context, items []TagItem, paths []string, opts ...AppendOption) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		key := filepath.Clean(path)
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		if prev, ok := seen[key]; ok {
			return nil, &InvalidArgumentError{
				Field:  "paths",
				Reason: fmt.Sprintf("%q and %q name the same file", prev, path),
			}
		}
		seen[key] = path
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := AppendFile(path, items, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
