package app

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/interfaces"
	"github.com/finmap-org/finmap-mcp/internal/models"
)

// requireExchange parses and validates the stockExchange parameter.
func requireExchange(request mcp.CallToolRequest) (models.Exchange, error) {
	raw, err := request.RequireString("stockExchange")
	if err != nil || raw == "" {
		return "", fmt.Errorf("stockExchange parameter is required")
	}
	return models.ParseExchange(raw)
}

// getDateParams reads the optional year/month/day parameters.
// Range validation happens in the date resolver.
func getDateParams(request mcp.CallToolRequest) interfaces.DateParams {
	return interfaces.DateParams{
		Year:  request.GetInt("year", 0),
		Month: request.GetInt("month", 0),
		Day:   request.GetInt("day", 0),
	}
}

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("finmap MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleListExchanges implements the list_exchanges tool
func handleListExchanges(marketService interfaces.MarketService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(marketService.ListExchanges())
	}
}

// handleListSectors implements the list_sectors tool
func handleListSectors(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		result, err := marketService.ListSectors(ctx, interfaces.QueryOptions{
			Exchange: exchange,
			Date:     getDateParams(request),
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Msg("List sectors failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleListTickers implements the list_tickers tool
func handleListTickers(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		result, err := marketService.ListTickers(ctx, interfaces.TickerListOptions{
			QueryOptions: interfaces.QueryOptions{
				Exchange: exchange,
				Date:     getDateParams(request),
			},
			Sector:       request.GetString("sector", ""),
			EnglishNames: request.GetBool("englishNames", true),
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Msg("List tickers failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleSearchCompanies implements the search_companies tool
func handleSearchCompanies(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return errorResult(fmt.Errorf("query parameter is required")), nil
		}

		result, err := marketService.SearchCompanies(ctx, interfaces.SearchOptions{
			QueryOptions: interfaces.QueryOptions{
				Exchange: exchange,
				Date:     getDateParams(request),
			},
			Query: query,
			Limit: request.GetInt("limit", 0),
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Str("query", query).Msg("Company search failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleGetMarketOverview implements the get_market_overview tool
func handleGetMarketOverview(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		result, err := marketService.GetMarketOverview(ctx, interfaces.QueryOptions{
			Exchange: exchange,
			Date:     getDateParams(request),
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Msg("Market overview failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleGetSectorsOverview implements the get_sectors_overview tool
func handleGetSectorsOverview(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		result, err := marketService.GetSectorsOverview(ctx, interfaces.SectorsOverviewOptions{
			QueryOptions: interfaces.QueryOptions{
				Exchange: exchange,
				Date:     getDateParams(request),
			},
			Sector: request.GetString("sector", ""),
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Msg("Sectors overview failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleGetStockData implements the get_stock_data tool
func handleGetStockData(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		ticker, err := request.RequireString("ticker")
		if err != nil || ticker == "" {
			return errorResult(fmt.Errorf("ticker parameter is required")), nil
		}

		result, err := marketService.GetStockData(ctx, interfaces.StockDataOptions{
			QueryOptions: interfaces.QueryOptions{
				Exchange: exchange,
				Date:     getDateParams(request),
			},
			Ticker: ticker,
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Str("ticker", ticker).Msg("Stock data lookup failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleRankStocks implements the rank_stocks tool
func handleRankStocks(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		rawSortBy, err := request.RequireString("sortBy")
		if err != nil || rawSortBy == "" {
			return errorResult(fmt.Errorf("sortBy parameter is required")), nil
		}
		sortBy, err := models.ParseSortField(rawSortBy)
		if err != nil {
			return errorResult(err), nil
		}

		order, err := models.ParseSortOrder(request.GetString("order", ""))
		if err != nil {
			return errorResult(err), nil
		}

		result, err := marketService.RankStocks(ctx, interfaces.RankOptions{
			QueryOptions: interfaces.QueryOptions{
				Exchange: exchange,
				Date:     getDateParams(request),
			},
			SortBy: sortBy,
			Order:  order,
			Limit:  request.GetInt("limit", 0),
			Sector: request.GetString("sector", ""),
			Ticker: request.GetString("ticker", ""),
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Str("sortBy", rawSortBy).Msg("Stock ranking failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleGetCompanyProfile implements the get_company_profile tool
func handleGetCompanyProfile(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("exchange")
		if err != nil || raw == "" {
			return errorResult(fmt.Errorf("exchange parameter is required")), nil
		}
		exchange, err := models.ParseUSExchange(raw)
		if err != nil {
			return errorResult(err), nil
		}

		ticker, err := request.RequireString("ticker")
		if err != nil || ticker == "" {
			return errorResult(fmt.Errorf("ticker parameter is required")), nil
		}

		result, err := marketService.GetCompanyProfile(ctx, exchange, ticker)
		if err != nil {
			logger.Error().Err(err).Str("exchange", raw).Str("ticker", ticker).Msg("Company profile lookup failed")
			return errorResult(err), nil
		}

		return jsonResult(result)
	}
}

// handleGetMarketChart implements the get_market_chart tool.
// Returns the rendered chart as inline PNG image content.
func handleGetMarketChart(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		exchange, err := requireExchange(request)
		if err != nil {
			return errorResult(err), nil
		}

		png, err := marketService.RenderMarketChart(ctx, interfaces.ChartOptions{
			QueryOptions: interfaces.QueryOptions{
				Exchange: exchange,
				Date:     getDateParams(request),
			},
			TopN: request.GetInt("topN", 0),
		})
		if err != nil {
			logger.Error().Err(err).Str("exchange", string(exchange)).Msg("Market chart render failed")
			return errorResult(err), nil
		}

		encoded := base64.StdEncoding.EncodeToString(png)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewImageContent(encoded, "image/png"),
			},
		}, nil
	}
}

// Helper functions

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// jsonResult marshals a response document as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("failed to encode response: %w", err)), nil
	}
	return textResult(string(data)), nil
}

// errorResult converts an error into the single textual error payload.
// Tool errors never propagate past this boundary.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(fmt.Sprintf("ERROR: %v", err)),
		},
		IsError: true,
	}
}
