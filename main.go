package main

import (
	"os"

	"employee-directory/internal/client"
	"employee-directory/internal/config"
	"employee-directory/internal/directory"
	"employee-directory/internal/handlers"
	"employee-directory/internal/logging"
	"employee-directory/internal/router"
)

func main() {
	cfg := config.Load("8080")
	logger := logging.New(os.Stdout, cfg.LogLevel)

	backend := client.New(cfg.BackendURL, logger.With().Str("component", "client").Logger())
	dir := directory.New(backend, logger.With().Str("component", "directory").Logger())

	fh := handlers.NewFormHandler(backend, logger.With().Str("component", "form").Logger())
	if cfg.RefreshOnCreate {
		fh.OnCreated = dir.Invalidate
	}

	r := router.New(logger)
	router.SetupWeb(r, handlers.NewDirectoryHandler(dir), fh)

	logger.Info().Str("port", cfg.Port).Str("backend", cfg.BackendURL).Msg("directory UI listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
