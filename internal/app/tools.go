package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

const exchangeParamDescription = "Stock exchange: amex, nasdaq, nyse, us-all, lse, moex, bist"

// dateToolOptions returns the shared optional date parameters. Omitted
// fields default from the current date.
func dateToolOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("year",
			mcp.Description("Year (2012 or later, default: current year)"),
		),
		mcp.WithNumber("month",
			mcp.Description("Month 1-12 (default: current month)"),
		),
		mcp.WithNumber("day",
			mcp.Description("Day 1-31 (default: current day)"),
		),
	}
}

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the finmap MCP server version and status. Use this to verify connectivity."),
	)
}

// createListExchangesTool returns the list_exchanges tool definition
func createListExchangesTool() mcp.Tool {
	return mcp.NewTool("list_exchanges",
		mcp.WithDescription("Return supported exchanges with IDs, names, country, currency, earliest available date, and update frequency."),
	)
}

// createListSectorsTool returns the list_sectors tool definition
func createListSectorsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List available business sectors for an exchange on a specific date, including item counts."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("list_sectors", opts...)
}

// createListTickersTool returns the list_tickers tool definition
func createListTickersTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Return company tickers and names for an exchange on a specific date, grouped by sector."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
		mcp.WithString("sector",
			mcp.Description("Filter by specific sector"),
		),
		mcp.WithBoolean("englishNames",
			mcp.Description("Use English names if available (default: true)"),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("list_tickers", opts...)
}

// createSearchCompaniesTool returns the search_companies tool definition
func createSearchCompaniesTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Find companies by partial name or ticker on an exchange and return best matches."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term (partial ticker or company name)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results, 1-50 (default: 10)"),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("search_companies", opts...)
}

// createGetMarketOverviewTool returns the get_market_overview tool definition
func createGetMarketOverviewTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get total market cap, volume, value, and performance for an exchange on a specific date with a sector breakdown."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("get_market_overview", opts...)
}

// createGetSectorsOverviewTool returns the get_sectors_overview tool definition
func createGetSectorsOverviewTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get aggregated performance metrics by sector for an exchange on a specific date."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
		mcp.WithString("sector",
			mcp.Description("Get data for specific sector only"),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("get_sectors_overview", opts...)
}

// createGetStockDataTool returns the get_stock_data tool definition
func createGetStockDataTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get detailed market data for a specific ticker on an exchange and date, including price, change, volume, value, market cap, and trades."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (case-sensitive)"),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("get_stock_data", opts...)
}

// createRankStocksTool returns the rank_stocks tool definition
func createRankStocksTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Rank stocks on an exchange by a chosen metric (marketCap, priceChangePct, volume, value, numTrades) for a specific date with order and limit."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
		mcp.WithString("sortBy",
			mcp.Required(),
			mcp.Description("Sort by: marketCap, priceChangePct, volume, value, numTrades"),
		),
		mcp.WithString("order",
			mcp.Description("Sort order: asc or desc (default: desc)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of results, 1-500 (default: 10)"),
		),
		mcp.WithString("sector",
			mcp.Description("Filter by specific sector"),
		),
		mcp.WithString("ticker",
			mcp.Description("Restrict ranking to one ticker (exact match)"),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("rank_stocks", opts...)
}

// createGetCompanyProfileTool returns the get_company_profile tool definition
func createGetCompanyProfileTool() mcp.Tool {
	return mcp.NewTool("get_company_profile",
		mcp.WithDescription("Get business description, industry, and background for a US-listed company by ticker."),
		mcp.WithString("exchange",
			mcp.Required(),
			mcp.Description("US exchange: amex, nasdaq, nyse"),
		),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (case-sensitive)"),
		),
	)
}

// createGetMarketChartTool returns the get_market_chart tool definition
func createGetMarketChartTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Render a PNG bar chart of the largest sectors by market cap for an exchange on a specific date."),
		mcp.WithString("stockExchange",
			mcp.Required(),
			mcp.Description(exchangeParamDescription),
		),
		mcp.WithNumber("topN",
			mcp.Description("Number of sectors shown (default: 10)"),
		),
	}
	opts = append(opts, dateToolOptions()...)
	return mcp.NewTool("get_market_chart", opts...)
}
