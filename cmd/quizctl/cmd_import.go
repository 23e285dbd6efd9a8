package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"thisorthat/internal/dataset"
	"thisorthat/internal/infra"
	"thisorthat/internal/metrics"
	"thisorthat/internal/preference"
	"thisorthat/internal/repositories"
	"thisorthat/internal/services"
)

func newImportCommand() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Normalize a dataset and upsert its designs into Postgres",
		Long: `Import a dataset into the design store configured by POSTGRES_URL.

Records are normalized first, so raw and already normalized documents are
both accepted. Existing designs with the same id are replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := infra.InitPostgresql(cfg.Database, logger)
			if err != nil {
				return err
			}
			defer func() { _ = infra.ClosePostgresql(db, logger) }()

			rules, err := preference.LoadRuleSet(cfg.Dataset.RulesPath)
			if err != nil {
				return err
			}
			catalog := services.NewCatalogService(
				repositories.NewDesignRepository(db),
				dataset.NewLoader(preference.NewNormalizer(rules), logger),
				metrics.MustNewMetrics(prometheus.NewRegistry()),
				logger,
			)

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("opening %s: %w", in, err)
			}
			defer f.Close()

			report, err := catalog.ImportDocument(context.Background(), f)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Dataset JSON file")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
