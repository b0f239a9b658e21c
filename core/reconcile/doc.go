// Package reconcile compares the designators of a Bill of Materials against
// those of a Pick-and-Place file.
//
// The engine builds the union of canonical keys from both token sets and
// classifies every key exactly once:
//   - both: present on both sides
//   - bom_only: present in the BOM only (the PKP file is missing a placement)
//   - pkp_only: present in the PKP file only (the BOM is missing a part)
//
// Duplicates within a side collapse to membership for classification; the
// per-side occurrence counts are kept on each Record.
//
// # Stock
//
// ApplyStock layers a fourth state, insufficient_stock, on top of both. It joins
// the BOM row that produced a matched designator onto StockLevels by part
// identifier. Stock shortage is a severity, not a presence signal, so bom_only
// and pkp_only records are never reclassified.
//
// # Usage
//
//	bom, _ := designator.Build(bomTable, "DESIGNATOR", opts)
//	pkp, _ := designator.Build(pkpTable, "DESIGNATOR", opts)
//	result := reconcile.Reconcile(bom, pkp)
//	fmt.Println(result.Bucket(reconcile.BOMOnly))
package reconcile
