// Package writers turns finished records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (pretty blocks, TSV, JSON/JSONL/YAML).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
