// Package tool runs the external formatter that rewrites source files in place.
package tool

import (
	"context"
)

// DefaultCommand is the formatter run when no override is configured.
const DefaultCommand = "clang-format"

// DefaultArgs returns the arguments placed before the file path on every invocation:
// rewrite in place, using the style file the tool finds for itself.
func DefaultArgs() []string {
	return []string{"-i", "--style=file"}
}

// Formatter defines the interface for formatting a single file in place.
type Formatter interface {
	// Format rewrites the file at path. The returned error describes a failed
	// invocation; callers are free to ignore it.
	Format(ctx context.Context, path string) error
}

// DryRunFormatter satisfies Formatter without running anything.
type DryRunFormatter struct{}

// Format does nothing.
func (DryRunFormatter) Format(_ context.Context, _ string) error {
	return nil
}
