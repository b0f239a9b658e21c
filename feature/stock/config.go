package stock

// Config holds configuration for the stock overlay.
type Config struct {
	// Source selects where stock levels come from (file, database).
	Source string `mapstructure:"source" default:"file"`
	// PartColumn is the part identifier column of stock spreadsheets.
	PartColumn string `mapstructure:"part_column" default:"PART NUMBER"`
	// QuantityColumn is the quantity column of stock spreadsheets.
	QuantityColumn string `mapstructure:"quantity_column" default:"QUANTITY"`
	// Table is the stock table when Source is database.
	Table string `mapstructure:"table" default:"stock_items"`
	// TablePartColumn is the part identifier column of Table.
	TablePartColumn string `mapstructure:"table_part_column" default:"part_number"`
	// TableQuantityColumn is the quantity column of Table.
	TableQuantityColumn string `mapstructure:"table_quantity_column" default:"quantity"`
	// BOMPartColumn is the BOM column joined against stock. Empty uses the
	// resolved part-code column.
	BOMPartColumn string `mapstructure:"bom_part_column" default:""`
}

const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

// UsesDatabase reports whether stock levels are read from the database.
func (c Config) UsesDatabase() bool {
	return c.Source == SourceDatabase
}
