// Package health provides checks of the optional backends.
//
// Reconciliation itself needs neither storage nor a database; these checks let
// an operator confirm that report uploads and database stock levels will work
// before relying on them.
//
// # Checks Provided
//
//   - Storage: Checks that the report bucket exists (and can create it).
//   - Stock: Validates that the stock table has a textual part column and a numeric quantity column.
//
// # HTTP Endpoints
//
//   - GET /health : Runs all checks.
//   - GET /health/storage : Runs the storage check (supports ?fix=true).
//   - GET /health/stock : Runs the stock table check.
package health
