// finmap-server exposes the finmap MCP tools over Streamable HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finmap-org/finmap-mcp/internal/app"
	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/server"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to config file (default: config/finmap.toml)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("finmap-server %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	srv := server.NewServer(a)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	a.Logger.Info().
		Str("version", common.GetVersion()).
		Str("addr", srv.Addr()).
		Msg("finmap-server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.Logger.Error().Err(err).Msg("HTTP server failed")
		os.Exit(1)
	case sig := <-sigCh:
		a.Logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}

	a.Logger.Info().Msg("Server stopped")
}
