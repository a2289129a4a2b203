// Package core implements the resilient remote-write operation and the
// sequential batch driver built on top of it.
package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kilupskalvis/reposeed/internal/github"
)

// PlaceholderName is the empty file written to materialize a directory in a
// store that has no directory primitive.
const PlaceholderName = ".gitkeep"

// RetryConfig configures the writer's retry behavior.
type RetryConfig struct {
	MaxRetries     int           // total attempt budget
	BaseDelay      time.Duration // first backoff; doubles each attempt
	MaxDelay       time.Duration // backoff cap
	UpdateExisting bool          // fetch the current SHA and update when the path exists
}

// DefaultRetryConfig returns sensible retry defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
	}
}

// Outcome classifies the result of a write.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeCreated
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "failed"
	}
}

// WriteRequest describes a single logical "ensure file exists" operation.
type WriteRequest struct {
	Path    string // repo-relative, no leading slash
	Content []byte
	Message string // commit message; defaults to "Add <path>"
	Branch  string
}

// WriteResult reports how a write concluded.
type WriteResult struct {
	Outcome  Outcome
	Path     string
	Attempts int
}

// Writer performs create-or-update calls against a repository contents API,
// tolerating transient transport failures and concurrent-write conflicts.
// The logger and the sleep function are injected so callers control output
// and tests control time.
type Writer struct {
	client github.ContentsClient
	cfg    RetryConfig
	logger *slog.Logger
	sleep  func(context.Context, time.Duration) error
}

// NewWriter creates a Writer. A nil logger discards all output.
func NewWriter(client github.ContentsClient, cfg RetryConfig, logger *slog.Logger) *Writer {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultRetryConfig().MaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultRetryConfig().BaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultRetryConfig().MaxDelay
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{
		client: client,
		cfg:    cfg,
		logger: logger,
		sleep:  sleep,
	}
}

// backoff computes the delay before the next attempt. attempt counts from 0.
func (w *Writer) backoff(attempt int) time.Duration {
	d := w.cfg.BaseDelay << attempt
	if d > w.cfg.MaxDelay || d <= 0 {
		d = w.cfg.MaxDelay
	}
	return d
}

// sleep waits for the given duration or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func validateRequest(req *WriteRequest) error {
	if req.Path == "" {
		return fmt.Errorf("write: path must not be empty")
	}
	if strings.HasPrefix(req.Path, "/") {
		return fmt.Errorf("write %s: path must be repo-relative", req.Path)
	}
	return nil
}

// Write ensures a file exists at req.Path with req.Content. Conflicts and
// transient transport failures are retried with exponential backoff up to the
// attempt budget; anything else fails immediately. The returned error is
// non-nil exactly when the outcome is OutcomeFailed.
func (w *Writer) Write(ctx context.Context, req WriteRequest) (*WriteResult, error) {
	if err := validateRequest(&req); err != nil {
		return &WriteResult{Outcome: OutcomeFailed, Path: req.Path}, err
	}

	message := req.Message
	if message == "" {
		message = "Add " + req.Path
	}

	put := &github.PutFileRequest{
		Message: message,
		Content: github.EncodeContent(req.Content),
		Branch:  req.Branch,
	}

	var lastErr error
	for attempt := 0; attempt < w.cfg.MaxRetries; attempt++ {
		res, err := w.client.PutFile(ctx, req.Path, put)
		if err == nil {
			outcome := OutcomeUpdated
			if res.Created {
				outcome = OutcomeCreated
			}
			w.logger.Info("wrote file",
				"path", req.Path,
				"outcome", outcome.String(),
				"commit", res.CommitSHA,
				"attempt", attempt+1)
			return &WriteResult{Outcome: outcome, Path: req.Path, Attempts: attempt + 1}, nil
		}
		lastErr = err

		switch {
		case github.IsConflict(err):
			w.logger.Warn("conflict detected, retrying",
				"path", req.Path,
				"attempt", attempt+1,
				"max_retries", w.cfg.MaxRetries)
		case github.IsPathExists(err) && w.cfg.UpdateExisting:
			// The path already exists and the request carried no SHA.
			// Fetch the current blob SHA and re-issue immediately.
			info, gerr := w.client.GetFile(ctx, req.Path, req.Branch)
			if gerr != nil {
				w.logger.Error("write failed", "path", req.Path, "error", gerr)
				return &WriteResult{Outcome: OutcomeFailed, Path: req.Path, Attempts: attempt + 1},
					fmt.Errorf("write %s: fetch existing: %w", req.Path, gerr)
			}
			put.SHA = info.SHA
			continue
		case github.IsTransient(err):
			w.logger.Warn("transient failure, retrying",
				"path", req.Path,
				"attempt", attempt+1,
				"error", err)
		default:
			w.logger.Error("write failed", "path", req.Path, "error", err)
			return &WriteResult{Outcome: OutcomeFailed, Path: req.Path, Attempts: attempt + 1},
				fmt.Errorf("write %s: %w", req.Path, err)
		}

		if attempt+1 < w.cfg.MaxRetries {
			if serr := w.sleep(ctx, w.backoff(attempt)); serr != nil {
				return &WriteResult{Outcome: OutcomeFailed, Path: req.Path, Attempts: attempt + 1},
					fmt.Errorf("write %s: %w (retry cancelled)", req.Path, lastErr)
			}
		}
	}

	w.logger.Error("write failed, retries exhausted",
		"path", req.Path,
		"attempts", w.cfg.MaxRetries,
		"error", lastErr)
	return &WriteResult{Outcome: OutcomeFailed, Path: req.Path, Attempts: w.cfg.MaxRetries},
		fmt.Errorf("write %s: %w (after %d attempts)", req.Path, lastErr, w.cfg.MaxRetries)
}

// EnsureDirectory materializes a directory by writing an empty placeholder
// file inside it. The store has no directory primitive, so this is the only
// way to make an empty path component exist.
func (w *Writer) EnsureDirectory(ctx context.Context, dir, branch string) (*WriteResult, error) {
	return w.Write(ctx, WriteRequest{
		Path:    dir + "/" + PlaceholderName,
		Content: nil,
		Branch:  branch,
	})
}
