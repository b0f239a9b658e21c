package stock

import (
	"context"
	"errors"
	"testing"

	"bom-matcher/core/tokenizer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

var defaultConfig = Config{
	Source:              SourceDatabase,
	PartColumn:          "PART NUMBER",
	QuantityColumn:      "QUANTITY",
	Table:               "stock_items",
	TablePartColumn:     "part_number",
	TableQuantityColumn: "quantity",
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12", "12", true},
		{" 3.5 ", "3.5", true},
		{"2,5", "2.5", true},
		{"1 000", "1000", true},
		{"-4", "-4", true},
		{"", "0", false},
		{"n/a", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseQuantity(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFromTable(t *testing.T) {
	table := &tokenizer.RawTable{
		Source:  "stock.xlsx",
		Columns: []string{"PART NUMBER", "QUANTITY"},
		Rows: []tokenizer.Row{
			{"PART NUMBER": "RES-10K", "QUANTITY": "100"},
			{"PART NUMBER": "res-10k", "QUANTITY": "20"},
			{"PART NUMBER": "CAP-1U", "QUANTITY": "0"},
			{"PART NUMBER": "IC-MCU", "QUANTITY": "unknown"},
			{"PART NUMBER": "", "QUANTITY": "5"},
		},
	}

	snap, err := FromTable(table, "PART NUMBER", "QUANTITY")
	require.NoError(t, err)

	assert.Equal(t, "stock.xlsx", snap.Source)
	assert.Equal(t, 2, snap.Parts)
	assert.Equal(t, 1, snap.Skipped)

	qty, ok := snap.Levels.Lookup("RES-10K")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(120).Equal(qty))

	_, ok = snap.Levels.Lookup("IC-MCU")
	assert.False(t, ok)
}

func TestFromTable_MissingColumn(t *testing.T) {
	table := &tokenizer.RawTable{
		Source:  "stock.csv",
		Columns: []string{"PART NUMBER", "QTY"},
	}

	_, err := FromTable(table, "PART NUMBER", "QUANTITY")
	var colErr *tokenizer.MissingColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, []string{"PART NUMBER", "QTY"}, colErr.Columns)
}

func TestFromDatabase(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `stock_items`").WillReturnRows(
		sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "int", "NO", "PRI", nil, "").
			AddRow("part_number", "varchar(64)", "NO", "", nil, "").
			AddRow("quantity", "decimal(12,3)", "YES", "", nil, ""))

	mock.ExpectQuery("SELECT .* FROM `stock_items`").WillReturnRows(
		sqlmock.NewRows([]string{"part_number", "quantity"}).
			AddRow("RES-10K", []byte("50.000")).
			AddRow("CAP-1U", nil).
			AddRow("IC-MCU", "7"))

	snap, err := FromDatabase(context.Background(), db, defaultConfig)
	require.NoError(t, err)

	assert.Equal(t, "database:stock_items", snap.Source)
	assert.Equal(t, 2, snap.Parts)
	assert.Equal(t, 1, snap.Skipped)

	qty, ok := snap.Levels.Lookup("res-10k")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(50).Equal(qty))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFromDatabase_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `stock_items`").WillReturnRows(
		sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("part_number", "varchar(64)", "NO", "", nil, "").
			AddRow("qty", "int", "YES", "", nil, ""))

	_, err := FromDatabase(context.Background(), db, defaultConfig)

	var colErr *tokenizer.MissingColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "quantity", colErr.Column)
	assert.Equal(t, []string{"part_number", "qty"}, colErr.Columns)
}

func TestFromDatabase_NoConnection(t *testing.T) {
	_, err := FromDatabase(context.Background(), nil, defaultConfig)
	assert.ErrorIs(t, err, ErrNoDatabase)
}
