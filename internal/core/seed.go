package core

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/kilupskalvis/reposeed/internal/config"
)

// SeedOptions configures a batch provisioning run.
type SeedOptions struct {
	Branch     string
	WriteDelay time.Duration // fixed pause between writes; blunt throttle
}

// SeedResult contains the outcome of a batch provisioning run.
type SeedResult struct {
	Created int
	Updated int
}

// SeedProgress is called after each file write to report progress.
type SeedProgress func(path string, current, total int)

// Seed writes the given files to the remote repository in order. Parent
// directories are materialized with a placeholder before the first file that
// needs them. The first failed file write aborts the whole run; a failed
// placeholder write is logged and skipped instead, since the file write that
// follows creates the directory anyway.
func Seed(ctx context.Context, w *Writer, files []config.File, opts SeedOptions, progress SeedProgress) (*SeedResult, error) {
	if progress == nil {
		progress = func(string, int, int) {}
	}

	result := &SeedResult{}
	seenDirs := make(map[string]bool)

	for i, f := range files {
		w.logger.Info("creating file", "path", f.Path, "index", i+1, "total", len(files))

		if dir := path.Dir(f.Path); strings.Contains(f.Path, "/") && !seenDirs[dir] {
			seenDirs[dir] = true
			if _, err := w.EnsureDirectory(ctx, dir, opts.Branch); err != nil {
				w.logger.Warn("directory placeholder failed", "dir", dir, "error", err)
			}
		}

		res, err := w.Write(ctx, WriteRequest{
			Path:    f.Path,
			Content: []byte(f.Content),
			Branch:  opts.Branch,
		})
		if err != nil {
			return nil, fmt.Errorf("seed aborted at %s (%d/%d): %w", f.Path, i+1, len(files), err)
		}

		switch res.Outcome {
		case OutcomeCreated:
			result.Created++
		case OutcomeUpdated:
			result.Updated++
		}
		progress(f.Path, i+1, len(files))

		if opts.WriteDelay > 0 && i+1 < len(files) {
			if err := w.sleep(ctx, opts.WriteDelay); err != nil {
				return nil, fmt.Errorf("seed aborted: %w", err)
			}
		}
	}

	return result, nil
}
