package models

// ProviderInfo is the static provider block included in every tool response.
type ProviderInfo struct {
	Provider    string            `json:"provider"`
	Description string            `json:"description"`
	Github      string            `json:"github"`
	Donate      map[string]string `json:"donate,omitempty"`
	Issues      string            `json:"issues"`
	Feedback    string            `json:"feedback"`
}

// ChartLinks holds interactive chart URLs for an exchange and date.
type ChartLinks struct {
	Histogram string `json:"histogram"`
	Treemap   string `json:"treemap"`
}

// SectorCount is one sector with its security count.
type SectorCount struct {
	Name           string `json:"name"`
	ItemsPerSector int    `json:"itemsPerSector"`
}

// TickerName is one (ticker, display name) pair within a sector group.
type TickerName struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// SectorOverview is a sector's (or the whole market's) rolled-up totals as
// presented to callers.
type SectorOverview struct {
	Name               string  `json:"name"`
	MarketCap          float64 `json:"marketCap"`
	MarketCapChangePct float64 `json:"marketCapChangePct"`
	Volume             float64 `json:"volume"`
	Value              float64 `json:"value"`
	NumTrades          float64 `json:"numTrades"`
	ItemsPerSector     int64   `json:"itemsPerSector"`
}

// SearchMatch is one scored free-text search hit.
type SearchMatch struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
	Score  int    `json:"score"`
}

// RankedStock is one entry in a ranking result.
type RankedStock struct {
	Ticker         string  `json:"ticker"`
	Name           string  `json:"name"`
	Sector         string  `json:"sector"`
	PriceLastSale  float64 `json:"priceLastSale"`
	PriceChangePct float64 `json:"priceChangePct"`
	MarketCap      float64 `json:"marketCap"`
	Volume         float64 `json:"volume"`
	Value          float64 `json:"value"`
	NumTrades      float64 `json:"numTrades"`
}

// ExchangeDescriptor is one entry in the exchange listing.
type ExchangeDescriptor struct {
	ID string `json:"id"`
	ExchangeInfo
}

// ExchangeListResult is the list_exchanges response document.
type ExchangeListResult struct {
	Info      ProviderInfo         `json:"info"`
	Exchanges []ExchangeDescriptor `json:"exchanges"`
	Glossary  []GlossaryTerm       `json:"glossary"`
}

// SectorListResult is the list_sectors response document.
type SectorListResult struct {
	Info     ProviderInfo  `json:"info"`
	Date     string        `json:"date"`
	Exchange string        `json:"exchange"`
	Currency string        `json:"currency"`
	Sectors  []SectorCount `json:"sectors"`
}

// TickerListResult is the list_tickers response document.
type TickerListResult struct {
	Info     ProviderInfo            `json:"info"`
	Date     string                  `json:"date"`
	Exchange string                  `json:"exchange"`
	Currency string                  `json:"currency"`
	Sectors  map[string][]TickerName `json:"sectors"`
}

// SearchResult is the search_companies response document.
type SearchResult struct {
	Info     ProviderInfo  `json:"info"`
	Date     string        `json:"date"`
	Exchange string        `json:"exchange"`
	Currency string        `json:"currency"`
	Query    string        `json:"query"`
	Matches  []SearchMatch `json:"matches"`
}

// MarketOverviewResult is the get_market_overview response document.
type MarketOverviewResult struct {
	Info        ProviderInfo     `json:"info"`
	Charts      ChartLinks       `json:"charts"`
	Date        string           `json:"date"`
	Exchange    string           `json:"exchange"`
	Currency    string           `json:"currency"`
	MarketTotal SectorOverview   `json:"marketTotal"`
	Sectors     []SectorOverview `json:"sectors"`
}

// SectorsOverviewResult is the get_sectors_overview response document.
type SectorsOverviewResult struct {
	Info     ProviderInfo     `json:"info"`
	Charts   ChartLinks       `json:"charts"`
	Date     string           `json:"date"`
	Exchange string           `json:"exchange"`
	Currency string           `json:"currency"`
	Sectors  []SectorOverview `json:"sectors"`
}

// StockDataResult is the get_stock_data response document.
type StockDataResult struct {
	Info           ProviderInfo `json:"info"`
	Charts         ChartLinks   `json:"charts"`
	Exchange       string       `json:"exchange"`
	Country        string       `json:"country"`
	Currency       string       `json:"currency"`
	Sector         string       `json:"sector"`
	Ticker         string       `json:"ticker"`
	NameEng        string       `json:"nameEng"`
	NameOriginal   string       `json:"nameOriginal"`
	PriceOpen      float64      `json:"priceOpen"`
	PriceLastSale  float64      `json:"priceLastSale"`
	PriceChangePct float64      `json:"priceChangePct"`
	Volume         float64      `json:"volume"`
	Value          float64      `json:"value"`
	NumTrades      float64      `json:"numTrades"`
	MarketCap      float64      `json:"marketCap"`
	ListedFrom     string       `json:"listedFrom"`
	ListedTill     string       `json:"listedTill"`
}

// RankResult is the rank_stocks response document.
type RankResult struct {
	Info     ProviderInfo  `json:"info"`
	Charts   ChartLinks    `json:"charts"`
	Date     string        `json:"date"`
	Exchange string        `json:"exchange"`
	Currency string        `json:"currency"`
	SortBy   SortField     `json:"sortBy"`
	Order    SortOrder     `json:"order"`
	Limit    int           `json:"limit"`
	Count    int           `json:"count"`
	Stocks   []RankedStock `json:"stocks"`
}

// CompanyProfileResult is the get_company_profile response document.
// Profile carries the upstream document as-is.
type CompanyProfileResult struct {
	Info    ProviderInfo   `json:"info"`
	Charts  ChartLinks     `json:"charts"`
	Profile map[string]any `json:"profile"`
}
