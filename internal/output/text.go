// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tesim/pkg/api"
)

// intsCSV renders ids as a comma-separated list; "." for none.
func intsCSV(xs []int) string {
	if len(xs) == 0 {
		return "."
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// dotted renders an optional column; "." stands for "not present".
func dotted(s string) string {
	if s == "" {
		return "."
	}
	return s
}

// WriteText writes step records as a tab-delimited table.
func WriteText(w io.Writer, steps []api.StepV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range steps {
		id := "."
		if s.ID != 0 {
			id = strconv.Itoa(s.ID)
		}
		if _, err := fmt.Fprintf(
			w, "%d\t%s\t%s\t%t\t%d\t%s\t%s\n",
			s.Step, s.Op, id, s.Skipped, s.Length,
			intsCSV(s.Active), dotted(s.Render),
		); err != nil {
			return err
		}
	}
	return nil
}
