package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbeeredd04/trecgen/internal/config"
	"github.com/sbeeredd04/trecgen/internal/report"
)

func newGenerateCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		template   string
		catalogOpt string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a TREC report PDF from an inspection JSON export",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if inputPath != "" {
				cfg.InspectionDataPath = inputPath
			}
			if template != "" {
				cfg.TemplatePath = template
			}
			if catalogOpt != "" {
				cfg.CatalogPath = catalogOpt
			}
			if workers > 0 {
				cfg.MaxWorkers = workers
			}

			rep, err := report.ParseFile(cfg.InspectionDataPath)
			if err != nil {
				return err
			}

			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			data, err := gen.Generate(cmd.Context(), rep)
			if err != nil {
				return err
			}

			path := outputPath
			if path == "" {
				if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
					return err
				}
				path = filepath.Join(cfg.OutputDir, fmt.Sprintf("trec_report_%s.pdf", uuid.NewString()))
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}

			slog.Info("report generated",
				"file", path, "bytes", len(data), "elapsed", time.Since(start))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "inspection JSON export (default from INSPECTION_DATA_PATH)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output PDF path (default a unique name under OUTPUT_DIR)")
	cmd.Flags().StringVar(&template, "template", "", "blank TREC form PDF to lay pages over")
	cmd.Flags().StringVar(&catalogOpt, "catalog", "", "YAML catalog overriding the built-in form layout")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent media downloads")

	return cmd
}
