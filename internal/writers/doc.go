// Package writers turns simulation step records into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text/TSV, JSON, JSONL).
//   • The genome core stays domain-only; app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
