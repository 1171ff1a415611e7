// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"tesim/pkg/api"
)

func TestWriteJSONRoundTrips(t *testing.T) {
	buf := &bytes.Buffer{}
	in := []api.StepV1{{Step: 1, Op: "insert 0 2", ID: 1, Length: 7, Active: []int{1}, Render: "AA-----"}}
	if err := WriteJSON(buf, in); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []api.StepV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteJSON(buf, nil); err != nil {
		t.Fatalf("json: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("empty output = %q, want []", got)
	}
}

func TestWriteJSONLOneObjectPerLine(t *testing.T) {
	buf := &bytes.Buffer{}
	steps := []api.StepV1{
		{Step: 1, Op: "insert 0 2", ID: 1, Length: 7, Active: []int{1}},
		{Step: 2, Op: "disable 1", Length: 7, Active: []int{}},
	}
	if err := WriteJSONL(buf, steps); err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, ln := range lines {
		var s api.StepV1
		if err := json.Unmarshal([]byte(ln), &s); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if s.Step != i+1 {
			t.Fatalf("line %d: step = %d", i, s.Step)
		}
	}
}
