package market

import (
	"sort"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// The query operations below are pure: they take decoded rows plus
// parameters and derive new views without mutating the snapshot.

// ListSectors groups securities by sector name and counts them.
// Securities with an empty sector field are unclassified noise and are
// skipped. Sector order is first-seen order of the input.
func ListSectors(securities []models.Security) []models.SectorCount {
	counts := make(map[string]int)
	var order []string

	for i := range securities {
		sector := securities[i].Sector
		if sector == "" {
			continue
		}
		if _, seen := counts[sector]; !seen {
			order = append(order, sector)
		}
		counts[sector]++
	}

	sectors := make([]models.SectorCount, 0, len(order))
	for _, name := range order {
		sectors = append(sectors, models.SectorCount{Name: name, ItemsPerSector: counts[name]})
	}
	return sectors
}

// GroupTickers emits (ticker, display name) pairs per sector. A pair is
// dropped entirely when either side resolves empty. Within each group the
// pairs are sorted by ticker, byte-wise. An optional sector filter
// restricts the output to one exact sector name.
func GroupTickers(securities []models.Security, sector string, englishNames bool) map[string][]models.TickerName {
	groups := make(map[string][]models.TickerName)

	for i := range securities {
		sec := &securities[i]
		if sec.Sector == "" {
			continue
		}
		if sector != "" && sec.Sector != sector {
			continue
		}

		name := sec.DisplayName(englishNames)
		if sec.Ticker == "" || name == "" {
			continue
		}

		groups[sec.Sector] = append(groups[sec.Sector], models.TickerName{Ticker: sec.Ticker, Name: name})
	}

	for _, companies := range groups {
		sort.Slice(companies, func(i, j int) bool {
			return companies[i].Ticker < companies[j].Ticker
		})
	}

	return groups
}

// RankStocks filters securities to classified rows, optionally by sector
// and/or exact ticker, sorts them by the chosen field and order, and
// truncates to limit. The sort is stable: ties keep input order.
func RankStocks(securities []models.Security, sortBy models.SortField, order models.SortOrder, limit int, sector, ticker string) []models.RankedStock {
	var filtered []*models.Security
	for i := range securities {
		sec := &securities[i]
		if sec.Sector == "" {
			continue
		}
		if sector != "" && sec.Sector != sector {
			continue
		}
		if ticker != "" && sec.Ticker != ticker {
			continue
		}
		filtered = append(filtered, sec)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a := filtered[i].FieldValue(sortBy)
		b := filtered[j].FieldValue(sortBy)
		if order == models.OrderAsc {
			return a < b
		}
		return a > b
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	stocks := make([]models.RankedStock, 0, len(filtered))
	for _, sec := range filtered {
		stocks = append(stocks, models.RankedStock{
			Ticker:         sec.Ticker,
			Name:           sec.NameEng,
			Sector:         sec.Sector,
			PriceLastSale:  sec.PriceLastSale,
			PriceChangePct: sec.PriceChangePct,
			MarketCap:      sec.MarketCap,
			Volume:         sec.Volume,
			Value:          sec.Value,
			NumTrades:      sec.NumTrades,
		})
	}
	return stocks
}

// SplitOverview separates aggregate rows into the single whole-market total
// and the per-sector aggregates, preserving input order. The optional
// sector filter matches against the aggregate's display name, byte-wise.
func SplitOverview(aggregates []models.SectorAggregate, sector string) (models.SectorOverview, []models.SectorOverview) {
	var total models.SectorOverview
	var sectors []models.SectorOverview

	for i := range aggregates {
		agg := &aggregates[i]
		overview := models.SectorOverview{
			Name:               agg.Name,
			MarketCap:          agg.MarketCap,
			MarketCapChangePct: agg.MarketCapChangePct,
			Volume:             agg.Volume,
			Value:              agg.Value,
			NumTrades:          agg.NumTrades,
			ItemsPerSector:     agg.ItemsPerSector,
		}

		if agg.IsMarketTotal() {
			total = overview
			continue
		}
		if sector != "" && agg.Name != sector {
			continue
		}
		sectors = append(sectors, overview)
	}

	return total, sectors
}

// FindTicker locates the security with an exact, case-sensitive ticker
// match. Ticker is unique among security rows within one snapshot.
func FindTicker(securities []models.Security, ticker string) (*models.Security, bool) {
	for i := range securities {
		if securities[i].Ticker == ticker {
			return &securities[i], true
		}
	}
	return nil, false
}
