package render

import (
	"encoding/json"
	"io"
)

// JSON writes reports as an indented JSON array.
func JSON(w io.Writer, reports ...Report) error {
	if reports == nil {
		reports = []Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(reports)
}
