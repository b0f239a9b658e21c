// Package export serializes report tables as CSV (UTF-8 with BOM) or XLSX.
//
// A CSV file holds one table. An XLSX workbook holds one sheet per table.
// Selection picks the reconciliation table, the part-group table, or both.
package export
