// Package aggregate summarizes BOM rows per part code.
//
// The summary is computed from the original, unexploded rows and is
// independent of the per-designator reconciliation. Each group sums the
// per-row designator counts, so Total equals the number of exploded BOM
// tokens. Rows with an empty part code form the "" group.
//
// Operators may overlay a resolved code on each group; overlays never touch
// counts or designators.
//
// # Usage
//
//	groups, err := aggregate.Group(bomTable, aggregate.Options{
//		DesignatorColumn: "DESIGNATOR",
//		PartColumn:       "COMMENT",
//		Mode:             designator.Loose,
//		Explode:          designator.ExplodeFull,
//	})
//	groups, err = aggregate.ApplyOverrides(groups, map[string]string{"10k": "RES-10K-0402"})
package aggregate
