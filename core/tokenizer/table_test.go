package tokenizer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestKindFromName(t *testing.T) {
	assert.Equal(t, KindSpreadsheet, KindFromName("BOM.XLSX"))
	assert.Equal(t, KindDelimited, KindFromName("pkp.csv"))
	assert.Equal(t, KindFreeform, KindFromName("pkp.txt"))
	assert.Equal(t, KindFreeform, KindFromName("Pick Place"))
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind(" Freeform ")
	assert.True(t, ok)
	assert.Equal(t, KindFreeform, k)

	_, ok = ParseKind("pdf")
	assert.False(t, ok)
}

func TestParseSpreadsheet(t *testing.T) {
	data := workbook(t, [][]any{
		{" Designator ", "Comment", "Quantity"},
		{"R1, R2", "10k", 2},
		{"", "", ""},
		{"C1", "100n"},
	})

	table, err := ParseSpreadsheet("bom.xlsx", data, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"DESIGNATOR", "COMMENT", "QUANTITY"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "R1, R2", table.Rows[0]["DESIGNATOR"])
	assert.Equal(t, "2", table.Rows[0]["QUANTITY"])
	assert.Equal(t, "", table.Rows[1]["QUANTITY"])
}

func TestParseSpreadsheet_Invalid(t *testing.T) {
	_, err := ParseSpreadsheet("bom.xlsx", []byte("not a workbook"), "")
	assert.Error(t, err)
}

func TestParseDelimited(t *testing.T) {
	t.Run("Semicolon", func(t *testing.T) {
		data := []byte("\xEF\xBB\xBFDesignator;Comment\r\nR1;10k\r\nC1;\"100n; 50V\"\r\n")

		table, err := ParseDelimited("bom.csv", data)
		require.NoError(t, err)
		assert.Equal(t, []string{"DESIGNATOR", "COMMENT"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "100n; 50V", table.Rows[1]["COMMENT"])
	})

	t.Run("Comma", func(t *testing.T) {
		data := []byte("Designator,Mid X\n\"R1, R2\",3.2\n")

		table, err := ParseDelimited("pkp.csv", data)
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "R1, R2", table.Rows[0]["DESIGNATOR"])
		assert.Equal(t, "3.2", table.Rows[0]["MID X"])
	})
}

func TestHeaderColumns(t *testing.T) {
	got := headerColumns([]string{"Name", "", " name", "Value"})
	assert.Equal(t, []string{"NAME", "COLUMN2", "NAME.1", "VALUE"}, got)
}

func TestHeaderColumns_SuffixCollision(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{"RealSuffixLater", []string{"A", "A", "A.1"}, []string{"A", "A.2", "A.1"}},
		{"RealSuffixEarlier", []string{"A.1", "A", "A"}, []string{"A.1", "A", "A.2"}},
		{"Triple", []string{"A", "A", "A"}, []string{"A", "A.1", "A.2"}},
		{"BlankMatchesGenerated", []string{"COLUMN2", ""}, []string{"COLUMN2", "COLUMN2.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, headerColumns(tt.header))
		})
	}
}

func TestParseDelimited_DuplicateHeaderKeepsEveryColumn(t *testing.T) {
	table, err := ParseDelimited("bom.csv", []byte("A,A,A.1\nx,y,z\n"))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Len(t, table.Rows[0], 3)
	assert.Equal(t, "x", table.Rows[0]["A"])
	assert.Equal(t, "y", table.Rows[0]["A.2"])
	assert.Equal(t, "z", table.Rows[0]["A.1"])
}

func TestRawTable_RequireColumn(t *testing.T) {
	table := &RawTable{Source: "bom.xlsx", Columns: []string{"REF", "COMMENT"}}

	_, err := table.RequireColumn("Designator")
	require.Error(t, err)

	var columnErr *MissingColumnError
	require.True(t, errors.As(err, &columnErr))
	assert.Equal(t, "DESIGNATOR", columnErr.Column)
	assert.Equal(t, []string{"REF", "COMMENT"}, columnErr.Columns)

	key, err := table.RequireColumn(" ref ")
	require.NoError(t, err)
	assert.Equal(t, "REF", key)
}

func TestUserMessage(t *testing.T) {
	err := &MissingColumnError{Source: "bom.xlsx", Column: "DESIGNATOR", Columns: []string{"REF"}}
	assert.Contains(t, UserMessage(err), "Detected columns: REF")

	wrapped := errors.Join(errors.New("run failed"), &HeaderNotFoundError{Source: "pkp.txt", Marker: "Designator"})
	assert.Contains(t, UserMessage(wrapped), "pkp.txt")

	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}

func TestTokenize_UnknownKind(t *testing.T) {
	_, err := Tokenize("x", Kind("pdf"), nil, Options{})
	assert.Error(t, err)
}
