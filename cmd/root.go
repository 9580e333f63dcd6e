package cmd

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sbeeredd04/trecgen/internal/catalog"
	"github.com/sbeeredd04/trecgen/internal/config"
	"github.com/sbeeredd04/trecgen/internal/trec"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trecgen",
		Short: "Generate TREC-formatted property inspection reports",
		Long: `trecgen turns a property-inspection JSON export into a paginated,
print-ready PDF that follows the TREC REI 7-6 form layout: items are
classified onto the form's canonical sections, checkboxes are addressed on
its fixed grid, and photos and videos get their own pages.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newFieldsCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// newGenerator assembles a Generator from configuration. A missing template
// file is not an error; the cover page is synthesized instead.
func newGenerator(cfg *config.Config) (*trec.Generator, error) {
	opts := []trec.Option{
		trec.WithWorkers(cfg.MaxWorkers),
		trec.WithMaxImageBytes(cfg.MaxImageBytes),
		trec.WithHTTPClient(&http.Client{Timeout: cfg.ImageTimeout}),
	}
	if _, err := os.Stat(cfg.TemplatePath); err == nil {
		opts = append(opts, trec.WithTemplatePath(cfg.TemplatePath))
	}
	if cfg.CatalogPath != "" {
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, trec.WithCatalog(cat))
	}
	return trec.New(opts...)
}
