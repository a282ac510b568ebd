package report

import (
	"fmt"
	"io"
)

// TextReporter implements Progress with the plain human-readable line
// "Formatting: <path>".
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (tr *TextReporter) Formatting(_, path string) error {
	_, err := fmt.Fprintf(tr.w, "Formatting: %s\n", path)
	return err
}
