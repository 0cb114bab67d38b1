package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pitchrank/ladder/internal/api"
	"github.com/pitchrank/ladder/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                                   - Health check
  GET  /api/rankings/{state}/{gender}/{age}      - Ranked table for a division
  GET  /api/connectivity/{state}/{gender}/{age}  - Opponent-graph view
  POST /api/rank/run                             - Trigger a ranking run

Example:
  go run ./cmd/ladder api
  go run ./cmd/ladder api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (default from PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	d, err := setup()
	if err != nil {
		return err
	}
	defer d.db.Close()

	if apiPort != "" {
		d.cfg.Port = apiPort
	}

	rankingHandler := handlers.NewRankingHandler(
		d.rankings, d.runner, d.matches, d.matches, d.pipeline,
		d.divisions, d.cfg.Ranking.Concurrency, d.log,
	)
	healthHandler := handlers.NewHealthHandler(d.db, d.log)

	router := api.NewRouter(rankingHandler, healthHandler, d.log)
	server := api.New(d.cfg, d.log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		d.log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
