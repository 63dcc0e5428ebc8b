// Package app wires configuration, clients, services, and the MCP server.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/finmap-org/finmap-mcp/internal/clients/finmap"
	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/interfaces"
	"github.com/finmap-org/finmap-mcp/internal/services/market"
)

// App holds all initialized services, clients, and the MCP server.
// It is the shared core used by both cmd/finmap-server and cmd/finmap-mcp.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	Client        interfaces.MarketDataClient
	MarketService interfaces.MarketService
	MCPServer     *server.MCPServer
	StartupTime   time.Time
}

// NewApp initializes configuration, the dataset client, the market service,
// and the MCP server. configPath may be empty, in which case FINMAP_CONFIG
// and the default location are tried.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("FINMAP_CONFIG")
	}
	if configPath == "" {
		configPath = "config/finmap.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	baseClient := finmap.NewClient(
		finmap.WithBaseURL(config.Finmap.DataBaseURL),
		finmap.WithLogger(logger),
		finmap.WithRateLimit(config.Finmap.RateLimit),
		finmap.WithTimeout(config.Finmap.GetTimeout()),
	)

	client, err := finmap.NewCachingClient(baseClient, config.Finmap.CacheSize, config.Finmap.GetCacheTTL(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot cache: %w", err)
	}

	marketService := market.NewService(client, config.Finmap.ChartBaseURL, logger)

	mcpServer := server.NewMCPServer(
		"finmap-mcp",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:        config,
		Logger:        logger,
		Client:        client,
		MarketService: marketService,
		MCPServer:     mcpServer,
		StartupTime:   startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	svc := a.MarketService
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createListExchangesTool(), handleListExchanges(svc))
	s.AddTool(createListSectorsTool(), handleListSectors(svc, logger))
	s.AddTool(createListTickersTool(), handleListTickers(svc, logger))
	s.AddTool(createSearchCompaniesTool(), handleSearchCompanies(svc, logger))
	s.AddTool(createGetMarketOverviewTool(), handleGetMarketOverview(svc, logger))
	s.AddTool(createGetSectorsOverviewTool(), handleGetSectorsOverview(svc, logger))
	s.AddTool(createGetStockDataTool(), handleGetStockData(svc, logger))
	s.AddTool(createRankStocksTool(), handleRankStocks(svc, logger))
	s.AddTool(createGetCompanyProfileTool(), handleGetCompanyProfile(svc, logger))
	s.AddTool(createGetMarketChartTool(), handleGetMarketChart(svc, logger))
}
