package tokenizer

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Kind is the declared format of an input blob.
type Kind string

const (
	// KindSpreadsheet is an .xlsx workbook.
	KindSpreadsheet Kind = "spreadsheet"
	// KindDelimited is a delimited text table with a header on the first line.
	KindDelimited Kind = "delimited"
	// KindFreeform is loosely structured text with a marker header line.
	KindFreeform Kind = "freeform"
)

// ParseKind validates a kind name. An empty name is not a kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSpreadsheet:
		return KindSpreadsheet, true
	case KindDelimited:
		return KindDelimited, true
	case KindFreeform:
		return KindFreeform, true
	default:
		return "", false
	}
}

// KindFromName infers the kind from a file name extension.
func KindFromName(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return KindSpreadsheet
	case ".csv":
		return KindDelimited
	default:
		return KindFreeform
	}
}

// Row maps normalized column names to cell values.
type Row map[string]string

// RawTable is an ordered sequence of rows produced from one input blob.
type RawTable struct {
	// Source identifies the file the table was parsed from.
	Source string `json:"source"`
	// Columns holds the normalized column names in header order.
	Columns []string `json:"columns"`
	// Rows holds the data rows in file order.
	Rows []Row `json:"-"`
	// Diagnostics holds non-terminal parse findings.
	Diagnostics Diagnostics `json:"diagnostics"`
}

// NormalizeColumn canonicalizes a column name for lookups.
func NormalizeColumn(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// HasColumn reports whether the table has the given column (by normalized name).
func (t *RawTable) HasColumn(name string) bool {
	key := NormalizeColumn(name)
	for _, c := range t.Columns {
		if c == key {
			return true
		}
	}
	return false
}

// RequireColumn returns the normalized name or a MissingColumnError.
func (t *RawTable) RequireColumn(name string) (string, error) {
	key := NormalizeColumn(name)
	if key == "" || !t.HasColumn(key) {
		return "", &MissingColumnError{
			Source:  t.Source,
			Column:  key,
			Columns: append([]string(nil), t.Columns...),
		}
	}
	return key, nil
}

// Column returns every row's value for the named column.
func (t *RawTable) Column(name string) ([]string, error) {
	key, err := t.RequireColumn(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[key]
	}
	return values, nil
}

// headerColumns normalizes a header row. Blank headers become COLUMN<n>, and
// repeated names get the first numeric suffix that no other header uses, so
// no column is shadowed.
func headerColumns(header []string) []string {
	columns := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		name := NormalizeColumn(h)
		if name == "" {
			name = "COLUMN" + strconv.Itoa(i+1)
		}
		columns[i] = name
		taken[name] = true
	}

	used := make(map[string]bool, len(header))
	next := make(map[string]int, len(header))
	for i, name := range columns {
		if used[name] {
			n := next[name]
			candidate := name
			for taken[candidate] {
				n++
				candidate = name + "." + strconv.Itoa(n)
			}
			next[name] = n
			taken[candidate] = true
			name = candidate
		}
		used[name] = true
		columns[i] = name
	}
	return columns
}

// buildRows maps records onto columns, skipping records with no content.
func buildRows(columns []string, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if isBlank(record) {
			continue
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
