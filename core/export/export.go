package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bom-matcher/core/aggregate"
	"bom-matcher/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// Format is an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv or xlsx)", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Selection picks the tables of an export. SelectAll keeps every table the
// format can hold.
type Selection string

const (
	SelectAll            Selection = ""
	SelectReconciliation Selection = "reconciliation"
	SelectGroups         Selection = "groups"
)

// ParseSelection validates a table name. Empty and "all" mean SelectAll.
func ParseSelection(s string) (Selection, error) {
	switch sel := Selection(strings.ToLower(strings.TrimSpace(s))); sel {
	case SelectAll, "all":
		return SelectAll, nil
	case SelectReconciliation, SelectGroups:
		return sel, nil
	default:
		return "", fmt.Errorf("unknown table %q (want reconciliation or groups)", s)
	}
}

// Table is a named grid of strings.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ReconciliationTable renders reconciliation records. Attached source rows
// follow as "bom:<column>" and "pkp:<column>" columns.
func ReconciliationTable(result *reconcile.Result) Table {
	t := Table{
		Name: "Reconciliation",
		Header: []string{
			"canonical_designator", "display_designator", "classification", "status",
			"bom_count", "pkp_count", "part_code", "stock_quantity",
		},
	}
	for _, col := range result.BOMColumns {
		t.Header = append(t.Header, "bom:"+col)
	}
	for _, col := range result.PKPColumns {
		t.Header = append(t.Header, "pkp:"+col)
	}

	for _, r := range result.Records {
		qty := ""
		if r.StockQuantity != nil {
			qty = r.StockQuantity.String()
		}
		row := []string{
			r.Canonical,
			r.Display,
			string(r.Classification),
			r.Classification.Label(),
			strconv.Itoa(r.BOMCount),
			strconv.Itoa(r.PKPCount),
			r.PartCode,
			qty,
		}
		for _, col := range result.BOMColumns {
			row = append(row, r.BOMRow[col])
		}
		for _, col := range result.PKPColumns {
			row = append(row, r.PKPRow[col])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// PartGroupTable renders the part-code summary.
func PartGroupTable(groups []aggregate.PartGroup) Table {
	t := Table{
		Name:   "Part Groups",
		Header: []string{"part_code", "total_count", "designator_list", "resolved_code"},
	}
	for _, g := range groups {
		t.Rows = append(t.Rows, []string{
			g.PartCode,
			strconv.Itoa(g.Count),
			strings.Join(g.Designators, ", "),
			g.ResolvedCode,
		})
	}
	return t
}

// WriteCSV writes the table as CSV prefixed with a UTF-8 byte-order mark so
// spreadsheet tools keep locale-specific characters intact.
func WriteCSV(w io.Writer, t Table) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX writes every table to its own sheet of one workbook.
func WriteXLSX(w io.Writer, tables ...Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		name := sheetName(t.Name, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}

		if err := writeRow(f, name, 1, t.Header); err != nil {
			return err
		}
		for r, row := range t.Rows {
			if err := writeRow(f, name, r+2, row); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// Write serializes tables in the given format. CSV holds one table, so only the
// first is written.
func Write(w io.Writer, format Format, tables ...Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}
	if format == FormatXLSX {
		return WriteXLSX(w, tables...)
	}
	return WriteCSV(w, tables[0])
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheet, cell, &row)
}

// sheetName trims a table name to the 31-character sheet limit.
func sheetName(name string, i int) string {
	if name == "" {
		name = "Sheet" + strconv.Itoa(i+1)
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}
