package serve

import (
	"fmt"

	"github.com/dtnitsch/wikilens/internal/common"
	"github.com/dtnitsch/wikilens/internal/server"
	"github.com/dtnitsch/wikilens/internal/ui"
	"github.com/dtnitsch/wikilens/pkg/caching"
	"github.com/dtnitsch/wikilens/pkg/coordinator"
	"github.com/dtnitsch/wikilens/pkg/db"
	"github.com/dtnitsch/wikilens/pkg/fetcher"
	"github.com/dtnitsch/wikilens/pkg/ranker"
	"github.com/dtnitsch/wikilens/pkg/scraper"
	"github.com/dtnitsch/wikilens/pkg/wiki"
	"github.com/urfave/cli/v2"
)

// ServeAction runs the backend API that the form coordinator calls.
func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	port := cfg.ServerPort
	if c.IsSet("port") {
		port = c.Int("port")
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()
	logger.Info("database opened", "path", database.Path())

	opts := []fetcher.Option{fetcher.WithRateLimit(cfg.RateLimit)}
	if cfg.CacheDir != "" {
		cache, err := caching.NewCache(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to initialize page cache: %w", err)
		}
		opts = append(opts, fetcher.WithCache(cache))
	}

	completer, err := ranker.NewGenAICompleter(c.Context, cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize ranker (set GEMINI_API_KEY): %w", err)
	}

	service := wiki.NewService(
		database,
		scraper.NewScraper(fetcher.NewFetcher(opts...)),
		ranker.NewRanker(completer, logger),
		cfg.WikiBaseURL,
		logger,
	)

	handler := server.NewHandler(service, logger)
	srv := server.New(port, cfg.CORSOrigins, c.Bool("debug"), logger, handler.Register)
	return srv.Run(c.Context)
}

// UIAction serves the form page. Submissions are sent to the backend API.
func UIAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	port := cfg.UIPort
	if c.IsSet("port") {
		port = c.Int("port")
	}

	coord := coordinator.New(coordinator.NewClient(cfg.BackendURL, nil), logger)
	logger.Info("form coordinator ready", "backend", cfg.BackendURL)

	srv := server.New(port, nil, c.Bool("debug"), logger, ui.NewHandler(coord).Register)
	return srv.Run(c.Context)
}
