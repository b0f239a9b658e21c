package reconcile

import (
	"sort"

	"bom-matcher/core/designator"
)

// Reconcile performs the three-way outer join between the BOM and PKP token
// sets. Every distinct canonical key in the union gets exactly one record;
// records are sorted by canonical key ascending.
func Reconcile(bom, pkp *designator.TokenSet) *Result {
	// Build union of all keys
	unionKeys := buildUnion(bom, pkp)

	// Build records for each key
	records := make([]Record, 0, len(unionKeys))
	for key := range unionKeys {
		records = append(records, buildRecord(key, bom, pkp))
	}

	// Sort records by key for deterministic output
	sort.Slice(records, func(i, j int) bool {
		return records[i].Canonical < records[j].Canonical
	})

	summary := Summarize(records)
	summary.DuplicateBOM = bom.Duplicates()
	summary.DuplicatePKP = pkp.Duplicates()

	return &Result{Records: records, Summary: summary}
}

// buildUnion creates a union of the keys of both sides.
func buildUnion(bom, pkp *designator.TokenSet) map[string]struct{} {
	union := make(map[string]struct{}, bom.Len()+pkp.Len())
	for _, key := range bom.Keys() {
		union[key] = struct{}{}
	}
	for _, key := range pkp.Keys() {
		union[key] = struct{}{}
	}
	return union
}

// buildRecord creates the record for a single key.
func buildRecord(key string, bom, pkp *designator.TokenSet) Record {
	bomEntry, inBOM := bom.Get(key)
	pkpEntry, inPKP := pkp.Get(key)

	record := Record{
		Canonical:      key,
		InBOM:          inBOM,
		InPKP:          inPKP,
		Classification: classify(inBOM, inPKP),
	}

	if inBOM {
		record.Display = bomEntry.Display
		record.BOMCount = bomEntry.Occurrences()
		record.BOMRows = append([]int(nil), bomEntry.Rows...)
	}
	if inPKP {
		if !inBOM {
			record.Display = pkpEntry.Display
		}
		record.PKPCount = pkpEntry.Occurrences()
		record.PKPRows = append([]int(nil), pkpEntry.Rows...)
	}

	return record
}

func classify(inBOM, inPKP bool) Classification {
	switch {
	case inBOM && inPKP:
		return Both
	case inBOM:
		return BOMOnly
	default:
		return PKPOnly
	}
}

// Summarize counts records per classification.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Classification {
		case Both:
			s.Both++
		case BOMOnly:
			s.BOMOnly++
		case PKPOnly:
			s.PKPOnly++
		case InsufficientStock:
			s.InsufficientStock++
		}
		if r.Classification != Both {
			s.Mismatches++
		}
	}
	return s
}

// Bucket returns the canonical keys with the given classification, ascending.
func (r *Result) Bucket(c Classification) []string {
	keys := []string{}
	for _, rec := range r.Records {
		if rec.Classification == c {
			keys = append(keys, rec.Canonical)
		}
	}
	return keys
}

// Mismatches returns a copy of the result holding only records not
// classified Both. The summary still describes the full run.
func (r *Result) Mismatches() *Result {
	filtered := &Result{
		Summary:    r.Summary,
		Records:    []Record{},
		BOMColumns: r.BOMColumns,
		PKPColumns: r.PKPColumns,
	}
	for _, rec := range r.Records {
		if rec.Classification != Both {
			filtered.Records = append(filtered.Records, rec)
		}
	}
	return filtered
}
