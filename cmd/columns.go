package cmd

import (
	"context"
	"errors"
	"fmt"

	"bom-matcher/core/config"
	"bom-matcher/core/logger"
	"bom-matcher/core/storage"
	"bom-matcher/core/tokenizer"
	"bom-matcher/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	columnsFile string
	columnsKind string
)

// columnsCmd lists the detected columns of a document.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns detected in a BOM or PKP document",
	Long: `Parses a document the same way compare does and prints its normalized
column names. Use it to pick --designator-column or --part-column.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		kind, err := parseKindFlag("kind", columnsKind)
		if err != nil {
			return err
		}

		opener := &compare.Opener{Bucket: cfg.Storage.Bucket}
		if storage.IsURI(columnsFile) {
			if opener.Client, err = storage.NewClient(cfg.Storage); err != nil {
				return fmt.Errorf("failed to connect to storage: %w", err)
			}
		}

		in, err := opener.Open(context.Background(), compare.Ref{Location: columnsFile, Kind: kind})
		if err != nil {
			return err
		}

		columns, err := compare.DetectColumns(in.Name, in.Kind, in.Data, cfg.Match)
		if err != nil {
			return errors.New(tokenizer.UserMessage(err))
		}

		l.Info("Detected columns",
			zap.String("file", in.Name),
			zap.String("kind", string(in.Kind)),
			zap.Strings("columns", columns))
		return nil
	},
}

func init() {
	columnsCmd.Flags().StringVar(&columnsFile, "file", "", "Document (path or s3:// reference)")
	columnsCmd.Flags().StringVar(&columnsKind, "kind", "", "Override the kind (spreadsheet, delimited, freeform)")
	_ = columnsCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(columnsCmd)
}
