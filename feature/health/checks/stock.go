package checks

import (
	"fmt"
	"strings"

	"bom-matcher/core/database"
	"bom-matcher/feature/stock"

	"gorm.io/gorm"
)

// StockReport strictly types the result of a stock table check.
type StockReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// expectedTypes lists the accepted type families per stock column role.
var expectedTypes = map[string][]string{
	"part":     {"char", "text"},
	"quantity": {"int", "decimal", "numeric", "float", "double", "real"},
}

// CheckStockTable verifies that the configured stock table carries a textual
// part column and a numeric quantity column.
func CheckStockTable(db *gorm.DB, cfg stock.Config) (*StockReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &StockReport{
		Table:          cfg.Table,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	actualCols, err := database.GetTableColumns(db, cfg.Table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", cfg.Table, err))
		report.Matched = false
		return report, nil // Partial fail
	}

	actualMap := make(map[string]database.ColumnInfo)
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	expected := []struct {
		column string
		role   string
	}{
		{strings.ToLower(cfg.TablePartColumn), "part"},
		{strings.ToLower(cfg.TableQuantityColumn), "quantity"},
	}

	for _, exp := range expected {
		actCol, exists := actualMap[exp.column]
		if !exists {
			report.MissingColumns = append(report.MissingColumns, exp.column)
			report.Matched = false
			continue
		}

		// Soft check on the type family
		if !hasTypeFamily(actCol.Type, expectedTypes[exp.role]) {
			mismatch := fmt.Sprintf("%s: expected %s type, got %s", exp.column, exp.role, actCol.Type)
			report.TypeMismatches = append(report.TypeMismatches, mismatch)
			report.Matched = false
		}
	}

	return report, nil
}

func hasTypeFamily(actual string, families []string) bool {
	// SQLite may report no declared type at all
	if actual == "" {
		return true
	}
	for _, f := range families {
		if strings.Contains(actual, f) {
			return true
		}
	}
	return false
}
