package tokenizer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet reads an .xlsx workbook into a RawTable using row 0 of the
// sheet as header. An empty sheet name selects the first sheet.
func ParseSpreadsheet(source string, data []byte, sheet string) (*RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open workbook: %w", source, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", source)
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read sheet %q: %w", source, sheet, err)
	}

	return tableFromRecords(source, records), nil
}

// tableFromRecords builds a table whose header is the first record.
func tableFromRecords(source string, records [][]string) *RawTable {
	table := &RawTable{Source: source}
	if len(records) == 0 {
		return table
	}
	table.Columns = headerColumns(records[0])
	table.Rows = buildRows(table.Columns, records[1:])
	return table
}
