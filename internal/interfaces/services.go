package interfaces

import (
	"context"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// DateParams holds optional calendar date fields; zero means "default from
// the current date".
type DateParams struct {
	Year  int
	Month int
	Day   int
}

// QueryOptions is the common parameter set shared by snapshot queries.
type QueryOptions struct {
	Exchange models.Exchange
	Date     DateParams
}

// TickerListOptions configures the ticker listing query.
type TickerListOptions struct {
	QueryOptions
	Sector       string // exact match, empty means all sectors
	EnglishNames bool
}

// SearchOptions configures the free-text company search.
type SearchOptions struct {
	QueryOptions
	Query string
	Limit int // 1-50, default 10
}

// SectorsOverviewOptions configures the sector performance query.
type SectorsOverviewOptions struct {
	QueryOptions
	Sector string // exact match against the aggregate's display name
}

// StockDataOptions configures the single-ticker lookup.
type StockDataOptions struct {
	QueryOptions
	Ticker string // case-sensitive exact match
}

// RankOptions configures the ranking query.
type RankOptions struct {
	QueryOptions
	SortBy models.SortField
	Order  models.SortOrder
	Limit  int    // 1-500, default 10
	Sector string // exact match, empty means all sectors
	Ticker string // optional full-match filter for single-ticker ranking
}

// ChartOptions configures the server-rendered sector chart.
type ChartOptions struct {
	QueryOptions
	TopN int // sectors shown, default 10
}

// MarketService answers structured queries against daily market snapshots.
// All operations are pure over their retrieved snapshot; one retrieval is
// performed per call and is the only suspension point.
type MarketService interface {
	// ListExchanges returns the static exchange descriptors.
	ListExchanges() *models.ExchangeListResult

	// ListSectors lists distinct sectors with security counts.
	ListSectors(ctx context.Context, opts QueryOptions) (*models.SectorListResult, error)

	// ListTickers lists (ticker, name) pairs grouped by sector.
	ListTickers(ctx context.Context, opts TickerListOptions) (*models.TickerListResult, error)

	// SearchCompanies finds securities by partial ticker or name.
	SearchCompanies(ctx context.Context, opts SearchOptions) (*models.SearchResult, error)

	// GetMarketOverview returns the whole-market total plus per-sector totals.
	GetMarketOverview(ctx context.Context, opts QueryOptions) (*models.MarketOverviewResult, error)

	// GetSectorsOverview returns per-sector totals, optionally one sector.
	GetSectorsOverview(ctx context.Context, opts SectorsOverviewOptions) (*models.SectorsOverviewResult, error)

	// GetStockData returns the full record for one ticker.
	GetStockData(ctx context.Context, opts StockDataOptions) (*models.StockDataResult, error)

	// RankStocks ranks securities by a numeric field.
	RankStocks(ctx context.Context, opts RankOptions) (*models.RankResult, error)

	// GetCompanyProfile returns the profile document for a US-listed company.
	GetCompanyProfile(ctx context.Context, exchange models.Exchange, ticker string) (*models.CompanyProfileResult, error)

	// RenderMarketChart renders a PNG bar chart of sector market caps.
	RenderMarketChart(ctx context.Context, opts ChartOptions) ([]byte, error)
}
