package reconcile

import (
	"maps"

	"bom-matcher/core/tokenizer"
)

// AttachRows copies the first source row of each side onto every record, so
// a report keeps columns such as the comment or the placement coordinates next
// to the classification. The tables must be the ones the token sets were
// built from. A nil table leaves its side empty.
func AttachRows(result *Result, bom, pkp *tokenizer.RawTable) {
	if bom != nil {
		result.BOMColumns = bom.Columns
	}
	if pkp != nil {
		result.PKPColumns = pkp.Columns
	}

	for i := range result.Records {
		rec := &result.Records[i]
		rec.BOMRow = firstRow(bom, rec.BOMRows)
		rec.PKPRow = firstRow(pkp, rec.PKPRows)
	}
}

func firstRow(table *tokenizer.RawTable, rows []int) tokenizer.Row {
	if table == nil || len(rows) == 0 || rows[0] >= len(table.Rows) {
		return nil
	}
	return maps.Clone(table.Rows[rows[0]])
}
