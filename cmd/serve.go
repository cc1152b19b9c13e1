package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theopenlane/mailaudit/config"
	"github.com/theopenlane/mailaudit/internal/api"
)

// serveCmd is the cobra command that starts the mailaudit API sidecar
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the mailaudit api server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

// init registers the serve command on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
}

// serve starts the HTTP server and blocks until shutdown
func serve(ctx context.Context) error {
	cfg := config.New()

	handler := api.NewRouter(api.RouterConfig{
		MaxBodySize: cfg.MaxBodySize,
		ScanTimeout: cfg.ScanTimeout,
	})

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("listen", cfg.Listen).Msg("starting mailaudit service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
