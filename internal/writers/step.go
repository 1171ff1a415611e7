// internal/writers/step.go
package writers

import (
	"io"

	"tesim/internal/output"
	"tesim/pkg/api"
)

func init() {
	RegisterStep(output.FormatText, output.WriteText)
	RegisterStep(output.FormatJSON, func(w io.Writer, steps []api.StepV1, _ bool) error {
		return output.WriteJSON(w, steps)
	})
	RegisterStep(output.FormatJSONL, func(w io.Writer, steps []api.StepV1, _ bool) error {
		return output.WriteJSONL(w, steps)
	})
}
