// Package stock loads available part quantities for the reconciliation's
// stock overlay.
//
// Levels come either from a stock spreadsheet uploaded with the run, keyed by
// a part identifier column, or from a read-only table in the configured
// database. Quantities are parsed as decimals; values that do not parse are
// counted as skipped and treated as absent, which the overlay reports as
// insufficient stock.
//
// # Usage
//
//	snap, err := stock.FromTable(table, cfg.PartColumn, cfg.QuantityColumn)
//	snap, err := stock.FromDatabase(ctx, db, cfg)
//	err = reconcile.ApplyStock(result, bom, partColumn, snap.Levels)
package stock
