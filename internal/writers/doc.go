// Package writers turns k-mer batches into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV rows, JSONL lines).
//   - Extraction stays domain-only; the pipeline stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
