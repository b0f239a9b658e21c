package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bom-matcher/core/aggregate"
	"bom-matcher/core/config"
	"bom-matcher/core/database"
	"bom-matcher/core/export"
	"bom-matcher/core/logger"
	"bom-matcher/core/reconcile"
	"bom-matcher/core/storage"
	"bom-matcher/core/tokenizer"
	"bom-matcher/core/workflow"
	"bom-matcher/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the compare command
	bomPath          string
	pkpPath          string
	stockPath        string
	bomKind          string
	pkpKind          string
	strictMatch      bool
	explodeMode      string
	rejectHyphen     bool
	designatorColumn string
	partColumn       string
	errorsOnly       bool
	jsonOutput       bool
	exportPath       string
	exportFormat     string
	exportTable      string
	overridePairs    []string
	yesConfirm       bool
	uploadReport     bool
	fromStorage      bool
)

// compareCmd reconciles a BOM against a pick-and-place file.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare BOM designators against a pick-and-place file",
	Long: `Compare the reference designators of a BOM against a pick-and-place export.

Reports designators present in both, only in the BOM, or only in the PKP file,
and a per-part-code summary of the BOM. With a stock document (or database stock),
matched designators whose part is out of stock are flagged insufficient_stock.

Inputs are local paths or s3://bucket/key references.

Examples:
  # Report only
  compare --bom bom.xlsx --pkp pickplace.txt

  # Strict matching; "D 1" stays one reference
  compare --bom bom.xlsx --pkp pickplace.txt --strict

  # Review, overlay a part code and export (interactive confirmation)
  compare --bom bom.xlsx --pkp pickplace.txt --override 10K=RES-10K-0402 --export report.xlsx

  # Export the part-group summary as CSV
  compare --bom bom.xlsx --pkp pickplace.txt --export groups.csv --table groups

  # Export and upload without prompting
  compare --bom s3://boards/bom.xlsx --pkp s3://boards/pkp.txt --export report.csv --upload --yes`,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&bomPath, "bom", "", "BOM document (path or s3:// reference)")
	f.StringVar(&pkpPath, "pkp", "", "Pick-and-place document (path or s3:// reference)")
	f.StringVar(&stockPath, "stock", "", "Optional stock spreadsheet")
	f.StringVar(&bomKind, "bom-kind", "", "Override the BOM kind (spreadsheet, delimited, freeform)")
	f.StringVar(&pkpKind, "pkp-kind", "", "Override the PKP kind (spreadsheet, delimited, freeform)")
	f.BoolVar(&strictMatch, "strict", false, "Strip every non-alphanumeric character before comparing")
	f.StringVar(&explodeMode, "explode", "", "Cell explosion mode (full, delimiters, none); defaults to delimiters under --strict")
	f.BoolVar(&rejectHyphen, "reject-hyphen", false, "Discard freeform candidates containing '-'")
	f.StringVar(&designatorColumn, "designator-column", "", "Designator column name")
	f.StringVar(&partColumn, "part-column", "", "Part code column name (auto-detected when empty)")
	f.BoolVar(&errorsOnly, "errors-only", false, "Only show designators not found on both sides")
	f.BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	f.StringVar(&exportPath, "export", "", "Write the report to this file after review")
	f.StringVar(&exportFormat, "format", "", "Export format (csv, xlsx); inferred from --export when empty")
	f.StringVar(&exportTable, "table", "", "Export only one table (reconciliation, groups)")
	f.StringArrayVar(&overridePairs, "override", nil, "Resolved part code overlay as CODE=RESOLVED (repeatable)")
	f.BoolVar(&yesConfirm, "yes", false, "Auto-confirm the review (non-interactive)")
	f.BoolVar(&uploadReport, "upload", false, "Upload the exported report to object storage")
	f.BoolVar(&fromStorage, "from-storage", false, "Read every input from the configured bucket")

	_ = compareCmd.MarkFlagRequired("bom")
	_ = compareCmd.MarkFlagRequired("pkp")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	match := applyMatchFlags(cmd, cfg.Match)

	format, err := resolveExportFormat(cmd)
	if err != nil {
		return err
	}
	table, err := export.ParseSelection(exportTable)
	if err != nil {
		return err
	}

	refs, err := inputRefs()
	if err != nil {
		return err
	}

	// Storage is only needed for s3:// inputs or uploads
	var client storage.Client
	if needsStorage(refs) {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	// Database stock levels apply when no stock document is given
	var db *gorm.DB
	if cfg.Stock.UsesDatabase() && stockPath == "" {
		if db, err = database.Connect(cfg.Database); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	opener := &compare.Opener{Client: client, Bucket: cfg.Storage.Bucket, FromStorage: fromStorage}
	inputs, err := opener.OpenAll(ctx, refs...)
	if err != nil {
		return err
	}

	overrides, err := compare.ParseOverrides(overridePairs)
	if err != nil {
		return err
	}

	req := compare.Request{
		BOM:        inputs[0],
		PKP:        inputs[1],
		Match:      match,
		ErrorsOnly: errorsOnly,
		Overrides:  overrides,
	}
	if len(inputs) > 2 {
		req.Stock = &inputs[2]
	}

	svc := compare.NewService(cfg.Stock, db, l)
	report, err := svc.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("reconciliation aborted: %s", tokenizer.UserMessage(err))
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printCompareReport(l, report)
	}

	if exportPath == "" && !uploadReport {
		return nil
	}

	review := workflow.NewReview()
	confirmed, err := reviewReport(cmd.InOrStdin(), cmd.OutOrStdout(), l, report, review)
	if err != nil {
		return err
	}
	if !confirmed {
		l.Warn("Export cancelled by user. No report was written.")
		return nil
	}

	return review.Export(func() error {
		var buf bytes.Buffer
		if err := report.Export(&buf, format, table); err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}

		if exportPath != "" {
			if err := os.WriteFile(exportPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportPath, err)
			}
			l.Info("Report written", zap.String("path", exportPath))
		}

		if uploadReport {
			key := report.ObjectKey(storage.ReportPrefix, format, table)
			if err := storage.WriteObject(ctx, client, cfg.Storage.Bucket, key, format.ContentType(), buf.Bytes()); err != nil {
				return err
			}
			l.Info("Report uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.String("key", key))
		}
		return nil
	})
}

// applyMatchFlags overlays explicitly set flags onto the configured rules.
func applyMatchFlags(cmd *cobra.Command, m compare.Config) compare.Config {
	f := cmd.Flags()
	if f.Changed("strict") {
		m.Strict = strictMatch
	}
	if f.Changed("explode") {
		m.Explode = explodeMode
	}
	if f.Changed("reject-hyphen") {
		m.RejectHyphen = rejectHyphen
	}
	if f.Changed("designator-column") {
		m.DesignatorColumn = designatorColumn
	}
	if f.Changed("part-column") {
		m.PartColumn = partColumn
	}
	return m
}

func resolveExportFormat(cmd *cobra.Command) (export.Format, error) {
	if cmd.Flags().Changed("format") {
		return export.ParseFormat(exportFormat)
	}
	if strings.EqualFold(filepath.Ext(exportPath), ".xlsx") {
		return export.FormatXLSX, nil
	}
	return export.FormatCSV, nil
}

func inputRefs() ([]compare.Ref, error) {
	bk, err := parseKindFlag("bom-kind", bomKind)
	if err != nil {
		return nil, err
	}
	pk, err := parseKindFlag("pkp-kind", pkpKind)
	if err != nil {
		return nil, err
	}

	refs := []compare.Ref{
		{Location: bomPath, Kind: bk},
		{Location: pkpPath, Kind: pk},
	}
	if stockPath != "" {
		refs = append(refs, compare.Ref{Location: stockPath})
	}
	return refs, nil
}

func parseKindFlag(flag, value string) (tokenizer.Kind, error) {
	if value == "" {
		return "", nil
	}
	kind, ok := tokenizer.ParseKind(value)
	if !ok {
		return "", fmt.Errorf("--%s: unknown kind %q (want spreadsheet, delimited or freeform)", flag, value)
	}
	return kind, nil
}

func needsStorage(refs []compare.Ref) bool {
	if fromStorage || uploadReport {
		return true
	}
	for _, r := range refs {
		if storage.IsURI(r.Location) {
			return true
		}
	}
	return false
}

// printCompareReport prints a formatted reconciliation report using logger.
func printCompareReport(l *zap.Logger, report *compare.Report) {
	s := report.Summary

	l.Info("Reconciliation report",
		zap.String("run_id", report.RunID),
		zap.Int("total", s.Total),
		zap.Int("matched", s.Both),
		zap.Int("errors", s.Mismatches),
		zap.Int("bom_only", s.BOMOnly),
		zap.Int("pkp_only", s.PKPOnly),
		zap.Int("insufficient_stock", s.InsufficientStock),
	)

	for _, rec := range report.Records {
		if rec.Classification == reconcile.Both {
			continue
		}
		fields := []zap.Field{
			zap.String("designator", rec.Display),
			zap.String("status", rec.Classification.Label()),
		}
		if rec.PartCode != "" {
			fields = append(fields, zap.String("part_code", rec.PartCode))
		}
		l.Warn("Mismatch", fields...)
	}

	if len(s.DuplicateBOM) > 0 || len(s.DuplicatePKP) > 0 {
		l.Warn("Duplicate designators",
			zap.Strings("bom", s.DuplicateBOM),
			zap.Strings("pkp", s.DuplicatePKP))
	}

	printPartGroups(l, report)

	if d := report.Diagnostics; d.BOM.Discarded()+d.PKP.Discarded() > 0 {
		l.Info("Skipped lines",
			zap.Int("bom", d.BOM.Discarded()),
			zap.Int("pkp", d.PKP.Discarded()))
	}
}

func printPartGroups(l *zap.Logger, report *compare.Report) {
	if report.PartColumnGuessed {
		l.Warn("Part code column guessed; pass --part-column to choose another",
			zap.String("column", report.PartColumn),
			zap.Strings("available", report.BOMColumns))
	}

	l.Info("Part groups",
		zap.String("column", report.PartColumn),
		zap.Int("groups", len(report.Groups)),
		zap.Int("designators", aggregate.Total(report.Groups)))

	for _, g := range report.Groups {
		fields := []zap.Field{
			zap.String("part_code", g.PartCode),
			zap.Int("count", g.Count),
			zap.String("designators", strings.Join(g.Designators, ", ")),
		}
		if g.ResolvedCode != "" {
			fields = append(fields, zap.String("resolved_code", g.ResolvedCode))
		}
		l.Info("Part group", fields...)
	}
}

// reviewReport runs the confirmation prompt in front of an export. Operators
// may overlay resolved part codes with "edit CODE=RESOLVED" before confirming;
// every edit requires a fresh confirmation.
func reviewReport(in io.Reader, out io.Writer, l *zap.Logger, report *compare.Report, review *workflow.Review) (bool, error) {
	if yesConfirm {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true, review.Confirm()
	}

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "\n⚠️  Type 'yes' to export, 'edit CODE=RESOLVED' to overlay a part code: ")
		response, err := reader.ReadString('\n')
		response = strings.TrimSpace(response)

		switch {
		case response == "yes":
			return true, review.Confirm()
		case strings.HasPrefix(response, "edit "):
			ov, perr := compare.ParseOverrides([]string{strings.TrimPrefix(response, "edit ")})
			if perr == nil {
				var groups []aggregate.PartGroup
				if groups, perr = aggregate.ApplyOverrides(report.Groups, ov); perr == nil {
					report.Groups = groups
				}
			}
			if perr != nil {
				l.Warn("Edit rejected", zap.Error(perr))
			} else {
				if err := review.Edit(); err != nil {
					return false, err
				}
				printPartGroups(l, report)
			}
		default:
			return false, nil
		}

		if err != nil {
			return false, nil
		}
	}
}
