package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bom-matcher/core/database"
	"bom-matcher/core/reconcile"
	"bom-matcher/core/tokenizer"
	"bom-matcher/core/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned when database stock is configured without a connection.
var ErrNoDatabase = errors.New("stock source is database but no database connection is available")

// Snapshot is the stock state loaded for one run.
type Snapshot struct {
	// Source identifies where the levels were read from.
	Source string `json:"source"`
	// Levels maps normalized part identifiers to quantities.
	Levels reconcile.StockLevels `json:"-"`
	// Parts is the number of distinct parts loaded.
	Parts int `json:"parts"`
	// Skipped counts rows whose quantity could not be parsed.
	Skipped int `json:"skipped"`
}

// ParseQuantity parses a stock quantity. Surrounding whitespace and thousands
// separators (spaces, underscores) are ignored; a lone comma is read as the
// decimal separator.
func ParseQuantity(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.NewReplacer(" ", "", "_", "").Replace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	qty, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return qty, true
}

// FromTable reads levels from a parsed stock spreadsheet. Both columns must
// exist; the error lists the detected columns otherwise.
func FromTable(table *tokenizer.RawTable, partColumn, quantityColumn string) (*Snapshot, error) {
	parts, err := table.Column(partColumn)
	if err != nil {
		return nil, err
	}
	quantities, err := table.Column(quantityColumn)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Source: table.Source, Levels: reconcile.StockLevels{}}
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		qty, ok := ParseQuantity(quantities[i])
		if !ok {
			snap.Skipped++
			continue
		}
		snap.Levels.Set(part, qty)
	}
	snap.Parts = len(snap.Levels)
	return snap, nil
}

// FromDatabase reads levels from the configured stock table. The table is
// inspected first so a missing column reports the columns actually present.
func FromDatabase(ctx context.Context, db *gorm.DB, cfg Config) (*Snapshot, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	source := "database:" + cfg.Table
	missing, found, err := database.MissingColumns(db, cfg.Table, cfg.TablePartColumn, cfg.TableQuantityColumn)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &tokenizer.MissingColumnError{Source: source, Column: missing[0], Columns: found}
	}

	var rows []map[string]any
	err = db.WithContext(ctx).
		Table(cfg.Table).
		Select(cfg.TablePartColumn, cfg.TableQuantityColumn).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read stock table %s: %w", cfg.Table, err)
	}

	snap := &Snapshot{Source: source, Levels: reconcile.StockLevels{}}
	for _, row := range rows {
		part := utils.ToString(row[cfg.TablePartColumn])
		if strings.TrimSpace(part) == "" {
			continue
		}
		qty, ok := ParseQuantity(utils.ToString(row[cfg.TableQuantityColumn]))
		if !ok {
			snap.Skipped++
			continue
		}
		snap.Levels.Set(part, qty)
	}
	snap.Parts = len(snap.Levels)
	return snap, nil
}
