// Package tokenizer turns raw uploaded blobs into RawTables with a discoverable
// designator column.
//
// Three input kinds are supported:
//   - Spreadsheet: .xlsx workbooks, header on row 0 of the selected sheet.
//   - Delimited: .csv text, header on row 0, delimiter sniffed from the header line.
//   - Freeform: pick-and-place exports with an unknown header offset and no reliable
//     delimiter. The header line is located by a marker ("Designator" by default) and
//     every following line is handed to a LineClassifier that extracts the candidate
//     designator.
//
// # Column names
//
// Column names are upper-cased and trimmed at ingestion so that lookups such as
// "Designator", " designator " and "DESIGNATOR" resolve to the same column.
//
// # Errors
//
// DecodeError, MissingColumnError and HeaderNotFoundError are terminal for a run.
// MalformedRowWarning values are collected in Diagnostics and never abort parsing.
//
// # Usage
//
//	table, err := tokenizer.Tokenize("bom.xlsx", tokenizer.KindSpreadsheet, data, tokenizer.Options{})
//	if err != nil {
//	    fmt.Println(tokenizer.UserMessage(err))
//	}
//	values, err := table.Column("DESIGNATOR")
package tokenizer
