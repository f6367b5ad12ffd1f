package importer

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	importerApp "simvia/internal/application/importer"
	"simvia/internal/infrastructure/cache"
	"simvia/internal/infrastructure/config"
	"simvia/internal/infrastructure/database"
	"simvia/internal/infrastructure/destinations"
	"simvia/internal/infrastructure/repository"
	"simvia/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the destination catalog",
		Long:  `Fetch all destinations from the external products API and load them into the catalog. Destinations that fail are reported and skipped; the run continues.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if cfg.CatalogAPI.BaseURL == "" || cfg.CatalogAPI.Token == "" {
		log.Errorw("missing catalog API configuration",
			"base_url_set", cfg.CatalogAPI.BaseURL != "",
			"token_set", cfg.CatalogAPI.Token != "")
		return fmt.Errorf("catalog API base URL and token are required")
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	client := destinations.NewClient(cfg.CatalogAPI, log)

	imp := importerApp.New(
		client,
		repository.NewCountryRepository(db, log),
		repository.NewProductRepository(db, log),
		repository.NewVariantRepository(db, log),
		log,
	)

	ctx := context.Background()
	report, err := imp.Run(ctx)
	if err != nil {
		log.Errorw("import failed", "error", err)
		return fmt.Errorf("import failed: %w", err)
	}

	catalogCache := cache.NewCatalogCache(cfg.Redis, log)
	defer catalogCache.Close()
	catalogCache.InvalidateAll(ctx)

	fmt.Println("\nImport Summary:")
	fmt.Printf("  Total destinations processed: %d\n", report.Total)
	fmt.Printf("  Successfully imported:        %d\n", report.Succeeded)
	fmt.Printf("  Errors:                       %d\n", report.Failed)
	for _, failure := range report.Failures {
		fmt.Printf("    - %s (%s): %v\n", failure.Destination, failure.Code, failure.Err)
	}

	// Per-destination failures do not fail the run.
	return nil
}
