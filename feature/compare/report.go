package compare

import (
	"io"

	"bom-matcher/core/aggregate"
	"bom-matcher/core/export"
	"bom-matcher/core/reconcile"
	"bom-matcher/core/tokenizer"
	"bom-matcher/feature/stock"
)

// Diagnostics collects the non-terminal findings of a run.
type Diagnostics struct {
	BOM tokenizer.Diagnostics `json:"bom"`
	PKP tokenizer.Diagnostics `json:"pkp"`
	// DroppedBOM and DroppedPKP count fragments whose canonical key is empty.
	DroppedBOM int `json:"dropped_bom,omitempty"`
	DroppedPKP int `json:"dropped_pkp,omitempty"`
	// ShortBOM lists BOM keys of one character or less. They are kept in the
	// reconciliation but usually point at a wrong explode mode.
	ShortBOM []string `json:"short_bom,omitempty"`
	// Stock describes the stock overlay, nil when none was applied.
	Stock *stock.Snapshot `json:"stock,omitempty"`
}

// Report is the complete outcome of one reconciliation run.
type Report struct {
	RunID   string                `json:"run_id"`
	Records []reconcile.Record    `json:"records"`
	Summary reconcile.Summary     `json:"summary"`
	Groups  []aggregate.PartGroup `json:"groups"`
	// PartColumn is the BOM column the groups were built from.
	PartColumn string `json:"part_column"`
	// PartColumnGuessed flags a fallback to the first BOM column.
	PartColumnGuessed bool `json:"part_column_guessed"`
	// BOMColumns lists the detected BOM columns for remapping.
	BOMColumns []string `json:"bom_columns"`
	// PKPColumns lists the detected PKP columns.
	PKPColumns  []string    `json:"pkp_columns"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Result returns the records and summary as a reconciliation result.
func (r *Report) Result() *reconcile.Result {
	return &reconcile.Result{
		Records:    r.Records,
		Summary:    r.Summary,
		BOMColumns: r.BOMColumns,
		PKPColumns: r.PKPColumns,
	}
}

// Tables returns the selected exportable tables of the report, the
// reconciliation table first.
func (r *Report) Tables(sel export.Selection) []export.Table {
	switch sel {
	case export.SelectReconciliation:
		return []export.Table{export.ReconciliationTable(r.Result())}
	case export.SelectGroups:
		return []export.Table{export.PartGroupTable(r.Groups)}
	default:
		return []export.Table{
			export.ReconciliationTable(r.Result()),
			export.PartGroupTable(r.Groups),
		}
	}
}

// Export writes the selected tables in the given format. CSV with SelectAll
// carries the reconciliation table.
func (r *Report) Export(w io.Writer, format export.Format, sel export.Selection) error {
	return export.Write(w, format, r.Tables(sel)...)
}

// ObjectKey returns the storage key of the uploaded report. A single-table
// selection is appended to the run id.
func (r *Report) ObjectKey(prefix string, format export.Format, sel export.Selection) string {
	key := prefix + r.RunID
	if sel != export.SelectAll {
		key += "-" + string(sel)
	}
	return key + format.Extension()
}
