package reconcile

import (
	"bom-matcher/core/tokenizer"

	"github.com/shopspring/decimal"
)

// Classification is the outcome for one canonical designator.
type Classification string

const (
	// Both marks a designator present in the BOM and the PKP file.
	Both Classification = "both"
	// BOMOnly marks a designator missing from the PKP file.
	BOMOnly Classification = "bom_only"
	// PKPOnly marks a designator missing from the BOM.
	PKPOnly Classification = "pkp_only"
	// InsufficientStock marks a matched designator whose part has no positive
	// stock quantity. It is only ever applied on top of Both.
	InsufficientStock Classification = "insufficient_stock"
)

// Label returns the operator-facing description of a classification.
func (c Classification) Label() string {
	switch c {
	case Both:
		return "Matched"
	case BOMOnly:
		return "Only in BOM (missing from PKP)"
	case PKPOnly:
		return "Only in PKP (missing from BOM)"
	case InsufficientStock:
		return "Matched, insufficient stock"
	default:
		return string(c)
	}
}

// Record is the reconciliation output for a single canonical designator.
type Record struct {
	// Canonical is the comparison key.
	Canonical string `json:"canonical_designator"`

	// Display is the designator as the operator wrote it. BOM text wins when the
	// designator is present in the BOM.
	Display string `json:"display_designator"`

	// InBOM indicates whether the designator appears in the BOM.
	InBOM bool `json:"in_bom"`

	// InPKP indicates whether the designator appears in the PKP file.
	InPKP bool `json:"in_pkp"`

	Classification Classification `json:"classification"`

	// BOMCount and PKPCount are the occurrence counts per side.
	BOMCount int `json:"bom_count"`
	PKPCount int `json:"pkp_count"`

	// PartCode and StockQuantity are filled by ApplyStock.
	PartCode      string           `json:"part_code,omitempty"`
	StockQuantity *decimal.Decimal `json:"stock_quantity,omitempty"`

	// BOMRow and PKPRow are the first source row of each side, filled by
	// AttachRows.
	BOMRow tokenizer.Row `json:"bom_row,omitempty"`
	PKPRow tokenizer.Row `json:"pkp_row,omitempty"`

	// BOMRows and PKPRows hold the row indexes that produced the designator.
	BOMRows []int `json:"-"`
	PKPRows []int `json:"-"`
}

// Summary provides aggregate counts for a reconciliation.
type Summary struct {
	// Total is the number of distinct canonical designators.
	Total int `json:"total"`

	Both              int `json:"both"`
	BOMOnly           int `json:"bom_only"`
	PKPOnly           int `json:"pkp_only"`
	InsufficientStock int `json:"insufficient_stock"`

	// Mismatches counts every record not classified Both.
	Mismatches int `json:"mismatches"`

	// DuplicateBOM and DuplicatePKP list keys occurring more than once on a side.
	DuplicateBOM []string `json:"duplicate_bom,omitempty"`
	DuplicatePKP []string `json:"duplicate_pkp,omitempty"`
}

// Result holds the records of one reconciliation, sorted by canonical key.
type Result struct {
	Records []Record `json:"records"`
	Summary Summary  `json:"summary"`

	// BOMColumns and PKPColumns order the attached source rows.
	BOMColumns []string `json:"-"`
	PKPColumns []string `json:"-"`
}
