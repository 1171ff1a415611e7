// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"tesim/pkg/api"
)

// WriteJSON writes all step records as one indented JSON array.
func WriteJSON(w io.Writer, steps []api.StepV1) error {
	if steps == nil {
		steps = []api.StepV1{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(steps)
}

// WriteJSONL writes one JSON object per line, one line per step record.
func WriteJSONL(w io.Writer, steps []api.StepV1) error {
	enc := json.NewEncoder(w)
	for _, s := range steps {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}
