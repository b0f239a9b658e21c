package health

import (
	"context"

	"bom-matcher/core/storage"
	"bom-matcher/feature/health/checks"
	"bom-matcher/feature/stock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles health checks of the optional backends.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	stock  stock.Config
	logger *zap.Logger
}

// NewService creates a new health service. client and db may be nil when the
// backend is not configured.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, stockCfg stock.Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		stock:  stockCfg,
		logger: logger,
	}
}

// CheckStorage reports whether the report bucket exists.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the report bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.client, s.bucket, s.logger)
}

// CheckStock verifies the stock table schema.
func (s *Service) CheckStock() (*checks.StockReport, error) {
	return checks.CheckStockTable(s.db, s.stock)
}

// StockEnabled reports whether stock is read from the database.
func (s *Service) StockEnabled() bool {
	return s.stock.UsesDatabase()
}
