// Command employee-api is a PostgreSQL-backed implementation of the
// employee REST contract the directory UI talks to.
package main

import (
	"context"
	"os"
	"time"

	"employee-directory/internal/config"
	"employee-directory/internal/db"
	"employee-directory/internal/handlers"
	"employee-directory/internal/logging"
	"employee-directory/internal/router"
	"employee-directory/internal/store"
)

func main() {
	cfg := config.Load("5000")
	logger := logging.New(os.Stdout, cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("missing required env: DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	err = db.Migrate(ctx, pool)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	eh := handlers.NewEmployeeHandler(store.NewPgStore(pool), logger)

	r := router.New(logger)
	router.SetupAPI(r, eh)

	logger.Info().Str("port", cfg.Port).Msg("employee api listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
