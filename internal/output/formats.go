package output

// Output format names accepted by --output.
const (
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

// TSVHeader is the header row of TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "record_id\tpos\tkmer\tcode\tstrand"

// Strand renders the orientation of a chosen k-mer.
func Strand(reverse bool) string {
	if reverse {
		return "-"
	}
	return "+"
}
