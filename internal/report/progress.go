// Package report writes the per-file progress lines emitted while formatting.
package report

import (
	"fmt"
	"io"
)

// Format names an output format for progress lines.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Progress is told about each file immediately before it is handed to the formatter.
type Progress interface {
	// Formatting announces that path, found under root, is about to be formatted.
	Formatting(root, path string) error
}

// New returns the Progress implementation for the given format.
func New(f Format, w io.Writer) (Progress, error) {
	switch f {
	case FormatText, "":
		return NewTextReporter(w), nil
	case FormatJSON:
		return NewJSONReporter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", f)
	}
}
