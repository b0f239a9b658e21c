// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (or SQLite) connections
// based on the application's configuration. The database is only ever read:
// it is one of the possible sources of stock levels for a reconciliation run.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table so callers can verify that a
// stock table carries the columns they need before querying it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "stock_items")
package database
