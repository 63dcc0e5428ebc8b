// Package market implements the snapshot query and aggregation engine.
package market

import (
	"context"
	"fmt"
	"time"

	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/interfaces"
	"github.com/finmap-org/finmap-mcp/internal/models"
)

// Limits for caller-supplied result counts.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	DefaultRankLimit   = 10
	MaxRankLimit       = 500
)

// Service answers structured queries against daily market snapshots.
// Each query resolves its date, performs one snapshot fetch, decodes, and
// derives its result without shared mutable state; concurrent queries are
// fully independent.
type Service struct {
	client       interfaces.MarketDataClient
	logger       *common.Logger
	chartBaseURL string
	now          func() time.Time
}

// NewService creates a new market query service
func NewService(client interfaces.MarketDataClient, chartBaseURL string, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	if chartBaseURL == "" {
		chartBaseURL = "https://finmap.org"
	}
	return &Service{
		client:       client,
		logger:       logger,
		chartBaseURL: chartBaseURL,
		now:          time.Now,
	}
}

// fetchSnapshot resolves the query date and retrieves + decodes the
// snapshot. This is the single suspension point of every query.
func (s *Service) fetchSnapshot(ctx context.Context, opts interfaces.QueryOptions) (*models.Snapshot, error) {
	date, err := ResolveDate(s.now(), opts.Date.Year, opts.Date.Month, opts.Date.Day)
	if err != nil {
		return nil, err
	}

	envelope, err := s.client.GetSnapshot(ctx, opts.Exchange, date)
	if err != nil {
		return nil, err
	}

	snap := DecodeSnapshot(opts.Exchange, date, envelope)

	s.logger.Debug().
		Str("exchange", string(opts.Exchange)).
		Str("date", date).
		Int("securities", len(snap.Securities)).
		Int("aggregates", len(snap.Aggregates)).
		Msg("Snapshot decoded")

	return snap, nil
}

// ListExchanges returns the static exchange descriptors and field glossary.
func (s *Service) ListExchanges() *models.ExchangeListResult {
	descriptors := make([]models.ExchangeDescriptor, 0, len(models.Exchanges))
	for _, e := range models.Exchanges {
		descriptors = append(descriptors, models.ExchangeDescriptor{
			ID:           string(e),
			ExchangeInfo: e.Info(),
		})
	}
	return &models.ExchangeListResult{
		Info:      providerInfo,
		Exchanges: descriptors,
		Glossary:  models.FieldGlossary,
	}
}

// ListSectors lists distinct sectors with security counts.
func (s *Service) ListSectors(ctx context.Context, opts interfaces.QueryOptions) (*models.SectorListResult, error) {
	snap, err := s.fetchSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &models.SectorListResult{
		Info:     providerInfo,
		Date:     snap.Date,
		Exchange: displayExchange(opts.Exchange),
		Currency: opts.Exchange.Info().Currency,
		Sectors:  ListSectors(snap.Securities),
	}, nil
}

// ListTickers lists (ticker, name) pairs grouped by sector.
func (s *Service) ListTickers(ctx context.Context, opts interfaces.TickerListOptions) (*models.TickerListResult, error) {
	snap, err := s.fetchSnapshot(ctx, opts.QueryOptions)
	if err != nil {
		return nil, err
	}

	return &models.TickerListResult{
		Info:     providerInfo,
		Date:     snap.Date,
		Exchange: displayExchange(opts.Exchange),
		Currency: opts.Exchange.Info().Currency,
		Sectors:  GroupTickers(snap.Securities, opts.Sector, opts.EnglishNames),
	}, nil
}

// SearchCompanies finds securities by partial ticker or name.
func (s *Service) SearchCompanies(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	snap, err := s.fetchSnapshot(ctx, opts.QueryOptions)
	if err != nil {
		return nil, err
	}

	limit := clampLimit(opts.Limit, DefaultSearchLimit, MaxSearchLimit)

	return &models.SearchResult{
		Info:     providerInfo,
		Date:     snap.Date,
		Exchange: displayExchange(opts.Exchange),
		Currency: opts.Exchange.Info().Currency,
		Query:    opts.Query,
		Matches:  SearchSecurities(snap.Securities, opts.Query, limit),
	}, nil
}

// GetMarketOverview returns the whole-market total plus per-sector totals.
func (s *Service) GetMarketOverview(ctx context.Context, opts interfaces.QueryOptions) (*models.MarketOverviewResult, error) {
	snap, err := s.fetchSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}

	total, sectors := SplitOverview(snap.Aggregates, "")

	return &models.MarketOverviewResult{
		Info:        providerInfo,
		Charts:      s.chartLinks(opts.Exchange, snap.Date),
		Date:        snap.Date,
		Exchange:    displayExchange(opts.Exchange),
		Currency:    opts.Exchange.Info().Currency,
		MarketTotal: total,
		Sectors:     sectors,
	}, nil
}

// GetSectorsOverview returns per-sector totals, optionally one sector.
func (s *Service) GetSectorsOverview(ctx context.Context, opts interfaces.SectorsOverviewOptions) (*models.SectorsOverviewResult, error) {
	snap, err := s.fetchSnapshot(ctx, opts.QueryOptions)
	if err != nil {
		return nil, err
	}

	_, sectors := SplitOverview(snap.Aggregates, opts.Sector)

	return &models.SectorsOverviewResult{
		Info:     providerInfo,
		Charts:   s.chartLinks(opts.Exchange, snap.Date),
		Date:     snap.Date,
		Exchange: displayExchange(opts.Exchange),
		Currency: opts.Exchange.Info().Currency,
		Sectors:  sectors,
	}, nil
}

// GetStockData returns the full record for one ticker.
func (s *Service) GetStockData(ctx context.Context, opts interfaces.StockDataOptions) (*models.StockDataResult, error) {
	snap, err := s.fetchSnapshot(ctx, opts.QueryOptions)
	if err != nil {
		return nil, err
	}

	sec, ok := FindTicker(snap.Securities, opts.Ticker)
	if !ok {
		return nil, fmt.Errorf("%w: ticker %s not found on %s for date %s",
			models.ErrTickerNotFound, opts.Ticker, opts.Exchange, snap.Date)
	}

	return &models.StockDataResult{
		Info:           providerInfo,
		Charts:         s.chartLinks(opts.Exchange, snap.Date),
		Exchange:       sec.Exchange,
		Country:        sec.Country,
		Currency:       opts.Exchange.Info().Currency,
		Sector:         sec.Sector,
		Ticker:         sec.Ticker,
		NameEng:        sec.NameEng,
		NameOriginal:   sec.NameOriginal,
		PriceOpen:      sec.PriceOpen,
		PriceLastSale:  sec.PriceLastSale,
		PriceChangePct: sec.PriceChangePct,
		Volume:         sec.Volume,
		Value:          sec.Value,
		NumTrades:      sec.NumTrades,
		MarketCap:      sec.MarketCap,
		ListedFrom:     sec.ListedFrom,
		ListedTill:     sec.ListedTill,
	}, nil
}

// RankStocks ranks securities by a numeric field.
func (s *Service) RankStocks(ctx context.Context, opts interfaces.RankOptions) (*models.RankResult, error) {
	snap, err := s.fetchSnapshot(ctx, opts.QueryOptions)
	if err != nil {
		return nil, err
	}

	limit := clampLimit(opts.Limit, DefaultRankLimit, MaxRankLimit)
	order := opts.Order
	if order == "" {
		order = models.OrderDesc
	}

	stocks := RankStocks(snap.Securities, opts.SortBy, order, limit, opts.Sector, opts.Ticker)

	return &models.RankResult{
		Info:     providerInfo,
		Charts:   s.chartLinks(opts.Exchange, snap.Date),
		Date:     snap.Date,
		Exchange: displayExchange(opts.Exchange),
		Currency: opts.Exchange.Info().Currency,
		SortBy:   opts.SortBy,
		Order:    order,
		Limit:    limit,
		Count:    len(stocks),
		Stocks:   stocks,
	}, nil
}

// GetCompanyProfile returns the profile document for a US-listed company.
func (s *Service) GetCompanyProfile(ctx context.Context, exchange models.Exchange, ticker string) (*models.CompanyProfileResult, error) {
	profile, err := s.client.GetCompanyProfile(ctx, exchange, ticker)
	if err != nil {
		return nil, err
	}

	return &models.CompanyProfileResult{
		Info:    providerInfo,
		Charts:  s.chartLinks(exchange, ""),
		Profile: profile,
	}, nil
}

// RenderMarketChart renders a PNG bar chart of sector market caps.
func (s *Service) RenderMarketChart(ctx context.Context, opts interfaces.ChartOptions) ([]byte, error) {
	snap, err := s.fetchSnapshot(ctx, opts.QueryOptions)
	if err != nil {
		return nil, err
	}

	_, sectors := SplitOverview(snap.Aggregates, "")
	return RenderSectorChart(opts.Exchange, snap.Date, sectors, opts.TopN)
}

// clampLimit applies default and maximum bounds to a result limit.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
