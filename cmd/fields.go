package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/sbeeredd04/trecgen/internal/config"
	"github.com/sbeeredd04/trecgen/internal/report"
)

func newFieldsCmd() *cobra.Command {
	var (
		inputPath  string
		catalogOpt string
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the form field values a report would produce, as JSON",
		Long: `fields runs classification and checkbox addressing over an inspection
export and prints the resulting field map without generating a document.
Useful for checking how items land on the form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if inputPath != "" {
				cfg.InspectionDataPath = inputPath
			}
			if catalogOpt != "" {
				cfg.CatalogPath = catalogOpt
			}

			rep, err := report.ParseFile(cfg.InspectionDataPath)
			if err != nil {
				return err
			}

			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}

			fields, err := gen.FieldPreview(rep)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(fields)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "inspection JSON export (default from INSPECTION_DATA_PATH)")
	cmd.Flags().StringVar(&catalogOpt, "catalog", "", "YAML catalog overriding the built-in form layout")

	return cmd
}
