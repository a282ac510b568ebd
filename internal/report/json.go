package report

import (
	"encoding/json"
	"io"
)

// JSONReporter implements Progress by writing one JSON object per matched file.
type JSONReporter struct {
	enc *json.Encoder
}

type jsonProgress struct {
	Event string `json:"event"`
	Root  string `json:"root"`
	Path  string `json:"path"`
}

// NewJSONReporter creates a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

func (jr *JSONReporter) Formatting(root, path string) error {
	return jr.enc.Encode(jsonProgress{
		Event: "formatting",
		Root:  root,
		Path:  path,
	})
}
