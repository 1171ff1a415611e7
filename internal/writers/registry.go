// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"tesim/pkg/api"
)

// StepWriterFunc writes a full set of step records in one format.
type StepWriterFunc func(w io.Writer, steps []api.StepV1, header bool) error

// StepWriters maps format name → handler. Writer files register themselves
// in init() blocks.
var StepWriters = map[string]StepWriterFunc{}

// RegisterStep installs a writer for a format (idempotent, last wins).
func RegisterStep(format string, fn StepWriterFunc) { StepWriters[format] = fn }

// WriteSteps dispatches to the writer registered for format.
func WriteSteps(format string, w io.Writer, steps []api.StepV1, header bool) error {
	fn, ok := StepWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, steps, header)
}
