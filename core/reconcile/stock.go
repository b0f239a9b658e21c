package reconcile

import (
	"strings"

	"bom-matcher/core/tokenizer"

	"github.com/shopspring/decimal"
)

// StockLevels maps normalized part identifiers to available quantities.
type StockLevels map[string]decimal.Decimal

// NormalizePart canonicalizes a part identifier for the stock join.
func NormalizePart(part string) string {
	return strings.ToUpper(strings.TrimSpace(part))
}

// Set stores a quantity for a part. Repeated parts accumulate.
func (s StockLevels) Set(part string, qty decimal.Decimal) {
	key := NormalizePart(part)
	if key == "" {
		return
	}
	if prev, ok := s[key]; ok {
		qty = prev.Add(qty)
	}
	s[key] = qty
}

// Lookup returns the quantity for a part.
func (s StockLevels) Lookup(part string) (decimal.Decimal, bool) {
	qty, ok := s[NormalizePart(part)]
	return qty, ok
}

// ApplyStock left-joins the reconciled BOM rows onto stock levels by the BOM's
// part column. Records classified Both whose part is absent from stock or has
// a non-positive quantity become InsufficientStock. Presence classifications
// are never changed. The summary is recomputed.
func ApplyStock(result *Result, bom *tokenizer.RawTable, partColumn string, levels StockLevels) error {
	column, err := bom.RequireColumn(partColumn)
	if err != nil {
		return err
	}

	for i := range result.Records {
		rec := &result.Records[i]
		if len(rec.BOMRows) == 0 {
			continue
		}

		rec.PartCode = bom.Rows[rec.BOMRows[0]][column]
		if qty, ok := levels.Lookup(rec.PartCode); ok {
			q := qty
			rec.StockQuantity = &q
		}

		if rec.Classification != Both {
			continue
		}
		if rec.StockQuantity == nil || !rec.StockQuantity.IsPositive() {
			rec.Classification = InsufficientStock
		}
	}

	dupBOM, dupPKP := result.Summary.DuplicateBOM, result.Summary.DuplicatePKP
	result.Summary = Summarize(result.Records)
	result.Summary.DuplicateBOM = dupBOM
	result.Summary.DuplicatePKP = dupPKP
	return nil
}
