// Package compare runs designator reconciliations between a BOM and a
// pick-and-place file.
//
// A run tokenizes both documents, builds canonical designator sets,
// reconciles them into both, bom_only and pkp_only records, and groups the
// BOM rows per part code. An optional stock source (spreadsheet or database)
// marks matched designators whose part is out of stock as insufficient_stock.
//
// The part-code column is guessed here, not in the core packages: an explicit
// column wins, then the first configured candidate, then the first BOM
// column. The last case is flagged on the report so operators can remap.
//
// # HTTP Endpoints
//
//   - POST /compare : Runs a reconciliation over multipart uploads (bom, pkp, stock).
//   - POST /compare/columns : Lists the detected columns of one upload.
//
// # Errors
//
// Unreadable documents and missing columns answer 422 with a message naming
// the cause (and the detected columns when relevant). Invalid options answer
// 400. No partial report is ever returned.
package compare
