// pkg/api/steps_v1.go
package api

// StepV1 is the stable JSON/JSONL schema for simulation step records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StepV1 struct {
	Step    int    `json:"step"`
	Op      string `json:"op"`
	ID      int    `json:"id,omitempty"`      // id returned by insert/copy (0 = none)
	Skipped bool   `json:"skipped,omitempty"` // copy of an inactive element: no-op
	Length  int    `json:"length"`
	Active  []int  `json:"active"`
	Render  string `json:"render,omitempty"`
}
