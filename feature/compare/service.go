package compare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bom-matcher/core/aggregate"
	"bom-matcher/core/designator"
	"bom-matcher/core/metrics"
	"bom-matcher/core/reconcile"
	"bom-matcher/core/tokenizer"
	"bom-matcher/feature/stock"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrMissingInput is returned when the BOM or PKP document is empty.
	ErrMissingInput = errors.New("both a BOM and a PKP document are required")
	// ErrInvalidRequest wraps errors caused by the run's options.
	ErrInvalidRequest = errors.New("invalid request")
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

// Request describes one reconciliation run.
type Request struct {
	BOM Input
	PKP Input
	// Stock is an optional stock spreadsheet. When nil and the stock source is
	// the database, levels are read from there instead.
	Stock *Input
	// Match holds the matching rules for this run.
	Match Config
	// ErrorsOnly keeps only records not classified both.
	ErrorsOnly bool
	// Overrides maps part codes to operator-resolved codes.
	Overrides map[string]string
}

// Service runs reconciliations.
type Service struct {
	stock  stock.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new compare service. db may be nil when stock levels
// never come from the database.
func NewService(stockCfg stock.Config, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{stock: stockCfg, db: db, logger: logger}
}

// Run tokenizes both documents, reconciles their designators, and aggregates
// the BOM per part code. Any terminal error aborts the run with a nil report.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	started := time.Now()

	report, err := s.run(ctx, req)
	if err != nil {
		metrics.RecordRun("error", started)
		s.logger.Warn("Reconciliation aborted",
			zap.String("bom", req.BOM.Name),
			zap.String("pkp", req.PKP.Name),
			zap.Error(err))
		return nil, err
	}

	metrics.RecordRun("success", started)
	s.record(report)
	return report, nil
}

func (s *Service) run(ctx context.Context, req Request) (*Report, error) {
	if len(req.BOM.Data) == 0 || len(req.PKP.Data) == 0 {
		return nil, ErrMissingInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	match := req.Match
	tokOpts, err := match.TokenizerOptions()
	if err != nil {
		return nil, invalid(err)
	}
	setOpts, err := match.TokenOptions()
	if err != nil {
		return nil, invalid(err)
	}

	bomTable, err := tokenizer.Tokenize(req.BOM.Name, req.BOM.Kind, req.BOM.Data, tokOpts)
	if err != nil {
		return nil, err
	}
	pkpTable, err := tokenizer.Tokenize(req.PKP.Name, req.PKP.Kind, req.PKP.Data, tokOpts)
	if err != nil {
		return nil, err
	}

	column := match.Column()
	bomSet, err := designator.Build(bomTable, column, setOpts)
	if err != nil {
		return nil, err
	}
	// Freeform PKP cells hold one candidate each; tabular PKP cells explode
	// like the BOM.
	pkpSet, err := designator.Build(pkpTable, column, setOpts)
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(bomSet, pkpSet)
	reconcile.AttachRows(result, bomTable, pkpTable)

	partColumn, choice := ResolveColumn(bomTable.Columns, match.PartColumn, match.Candidates())
	groups, err := aggregate.Group(bomTable, aggregate.Options{
		DesignatorColumn: column,
		PartColumn:       partColumn,
		Mode:             setOpts.Mode,
		Explode:          setOpts.Explode,
	})
	if err != nil {
		return nil, err
	}

	snap, err := s.loadStock(ctx, req.Stock, tokOpts)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		joinColumn := partColumn
		if s.stock.BOMPartColumn != "" {
			joinColumn = s.stock.BOMPartColumn
		}
		if err := reconcile.ApplyStock(result, bomTable, joinColumn, snap.Levels); err != nil {
			return nil, err
		}
	}

	if len(req.Overrides) > 0 {
		groups, err = aggregate.ApplyOverrides(groups, req.Overrides)
		if err != nil {
			return nil, invalid(err)
		}
	}

	if req.ErrorsOnly {
		result = result.Mismatches()
	}

	return &Report{
		RunID:             uuid.NewString(),
		Records:           result.Records,
		Summary:           result.Summary,
		Groups:            groups,
		PartColumn:        partColumn,
		PartColumnGuessed: choice == ChoiceFallback,
		BOMColumns:        bomTable.Columns,
		PKPColumns:        pkpTable.Columns,
		Diagnostics: Diagnostics{
			BOM:        bomTable.Diagnostics,
			PKP:        pkpTable.Diagnostics,
			DroppedBOM: bomSet.Dropped,
			DroppedPKP: pkpSet.Dropped,
			ShortBOM:   bomSet.Short(),
			Stock:      snap,
		},
	}, nil
}

// loadStock returns nil when no stock overlay applies to the run.
func (s *Service) loadStock(ctx context.Context, in *Input, opts tokenizer.Options) (*stock.Snapshot, error) {
	if in != nil && len(in.Data) > 0 {
		if in.Kind == tokenizer.KindFreeform {
			return nil, invalid(fmt.Errorf("%s: stock documents must be a spreadsheet or delimited table", in.Name))
		}
		table, err := tokenizer.Tokenize(in.Name, in.Kind, in.Data, opts)
		if err != nil {
			return nil, err
		}
		return stock.FromTable(table, s.stock.PartColumn, s.stock.QuantityColumn)
	}

	if s.stock.UsesDatabase() {
		return stock.FromDatabase(ctx, s.db, s.stock)
	}
	return nil, nil
}

func (s *Service) record(r *Report) {
	sum := r.Summary
	metrics.RecordClassification(string(reconcile.Both), sum.Both)
	metrics.RecordClassification(string(reconcile.BOMOnly), sum.BOMOnly)
	metrics.RecordClassification(string(reconcile.PKPOnly), sum.PKPOnly)
	metrics.RecordClassification(string(reconcile.InsufficientStock), sum.InsufficientStock)
	metrics.RecordDiscarded("bom", r.Diagnostics.BOM.Discarded())
	metrics.RecordDiscarded("pkp", r.Diagnostics.PKP.Discarded())

	for side, d := range map[string]tokenizer.Diagnostics{"bom": r.Diagnostics.BOM, "pkp": r.Diagnostics.PKP} {
		for _, w := range d.Warnings {
			s.logger.Debug("Skipped line",
				zap.String("side", side),
				zap.Int("line", w.Line),
				zap.String("text", w.Text),
				zap.String("reason", string(w.Reason)))
		}
	}

	if len(r.Diagnostics.ShortBOM) > 0 {
		s.logger.Warn("Single-character BOM designators",
			zap.String("run_id", r.RunID),
			zap.Strings("designators", r.Diagnostics.ShortBOM))
	}

	fields := []zap.Field{
		zap.String("run_id", r.RunID),
		zap.Int("total", sum.Total),
		zap.Int("both", sum.Both),
		zap.Int("bom_only", sum.BOMOnly),
		zap.Int("pkp_only", sum.PKPOnly),
		zap.Int("insufficient_stock", sum.InsufficientStock),
		zap.Int("discarded_bom", r.Diagnostics.BOM.Discarded()),
		zap.Int("discarded_pkp", r.Diagnostics.PKP.Discarded()),
		zap.String("part_column", r.PartColumn),
	}
	if r.PartColumnGuessed {
		fields = append(fields, zap.Bool("part_column_guessed", true))
	}
	s.logger.Info("Reconciliation completed", fields...)
}
