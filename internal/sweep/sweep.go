// Package sweep walks source trees and hands every matching file to a formatter, one at a time.
package sweep

import (
	"context"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/andyballingall/srcfmt/internal/fs"
	"github.com/andyballingall/srcfmt/internal/report"
	"github.com/andyballingall/srcfmt/internal/tool"
)

// Sweeper formats the files under one or more roots.
type Sweeper struct {
	formatter tool.Formatter
	progress  report.Progress
	logger    *slog.Logger
	exclude   []string
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithExclude skips files and directories whose slash-separated path matches
// any of the given doublestar patterns.
func WithExclude(patterns []string) Option {
	return func(s *Sweeper) {
		s.exclude = append(s.exclude, patterns...)
	}
}

// New creates a Sweeper.
func New(f tool.Formatter, p report.Progress, logger *slog.Logger, opts ...Option) *Sweeper {
	s := &Sweeper{
		formatter: f,
		progress:  p,
		logger:    logger.With("component", "sweep"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run calls FormatTree for each root in order.
func (s *Sweeper) Run(ctx context.Context, roots, extensions []string) error {
	for _, root := range roots {
		if err := s.FormatTree(ctx, root, extensions); err != nil {
			return err
		}
	}
	return nil
}

// FormatTree walks root in lexical order. For every file whose name ends with
// one of extensions it reports progress and then runs the formatter, waiting
// for it to finish before moving on.
//
// A root that does not exist, unreadable directories and formatter failures
// are logged at debug level and otherwise ignored. Only cancellation of ctx
// and failure to write progress stop the walk.
func (s *Sweeper) FormatTree(ctx context.Context, root string, extensions []string) error {
	logger := s.logger.With("root", root)

	// A root that is itself a symlink to a directory is still walked.
	walkRoot := root
	if fi, err := os.Lstat(root); err == nil && fi.Mode()&os.ModeSymlink != 0 && fs.IsDir(root) {
		walkRoot = root + string(filepath.Separator)
	}

	return filepath.WalkDir(walkRoot, func(path string, d iofs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			logger.Debug("Skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if path != walkRoot && s.excluded(path) {
				logger.Debug("Skipping excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !hasExtension(d.Name(), extensions) {
			return nil
		}

		// Symlinks to directories are not descended into and are not files.
		if d.Type()&iofs.ModeSymlink != 0 && fs.IsDir(path) {
			return nil
		}

		if s.excluded(path) {
			logger.Debug("Skipping excluded file", "path", path)
			return nil
		}

		return s.formatFile(ctx, logger, root, path)
	})
}

func (s *Sweeper) formatFile(ctx context.Context, logger *slog.Logger, root, path string) error {
	display := filepath.ToSlash(path)
	if err := s.progress.Formatting(root, display); err != nil {
		return err
	}

	if err := s.formatter.Format(ctx, path); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Debug("Formatter failed", "path", display, "error", err)
		return nil
	}

	logger.Debug("Formatted", "path", display)
	return nil
}

func (s *Sweeper) excluded(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}
	return false
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
