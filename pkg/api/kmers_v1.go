// pkg/api/kmers_v1.go
package api

// KmerV1 is the stable JSONL schema for one extracted k-mer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type KmerV1 struct {
	RecordID string `json:"record_id"`
	Pos      int    `json:"pos"`
	Kmer     string `json:"kmer"`
	Code     string `json:"code,omitempty"` // lowercase hex, bit mode only
	Strand   string `json:"strand"`         // "+" | "-"
}
