// finmap-mcp exposes the finmap MCP tools over stdio for desktop clients.
package main

import (
	"flag"
	"fmt"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/finmap-org/finmap-mcp/internal/app"
	"github.com/finmap-org/finmap-mcp/internal/common"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to config file (default: config/finmap.toml)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("finmap-mcp %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	a.Logger.Info().
		Str("version", common.GetVersion()).
		Msg("finmap-mcp started on stdio")

	// Blocks until the client closes stdin.
	if err := mcpserver.ServeStdio(a.MCPServer); err != nil {
		a.Logger.Error().Err(err).Msg("Stdio server failed")
		os.Exit(1)
	}
}
