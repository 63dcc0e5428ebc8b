// Package models defines data structures for finmap-mcp
package models

import "fmt"

// SnapshotEnvelope mirrors the upstream marketdata JSON document: a flat
// positional dataset with one 23-field row per security or sector aggregate.
type SnapshotEnvelope struct {
	Securities struct {
		Columns []string `json:"columns,omitempty"`
		Data    [][]any  `json:"data"`
	} `json:"securities"`
}

// Security is one tradable instrument's record within a snapshot.
// Numeric market facts may be zero when the upstream field is absent.
type Security struct {
	Exchange          string  `json:"exchange"`
	Country           string  `json:"country"`
	Currency          string  `json:"currency"`
	Ticker            string  `json:"ticker"`
	Sector            string  `json:"sector"` // empty means unclassified, never user-facing
	Industry          string  `json:"industry"`
	NameEng           string  `json:"nameEng"`
	NameEngShort      string  `json:"nameEngShort"`
	NameOriginal      string  `json:"nameOriginal"`
	NameOriginalShort string  `json:"nameOriginalShort"`
	PriceOpen         float64 `json:"priceOpen"`
	PriceLastSale     float64 `json:"priceLastSale"`
	PriceChangePct    float64 `json:"priceChangePct"`
	Volume            float64 `json:"volume"`
	Value             float64 `json:"value"`
	NumTrades         float64 `json:"numTrades"`
	MarketCap         float64 `json:"marketCap"`
	ListedFrom        string  `json:"listedFrom"`
	ListedTill        string  `json:"listedTill"` // empty when still listed
	WikiPageIDEng     string  `json:"wikiPageIdEng,omitempty"`
	WikiPageIDOrig    string  `json:"wikiPageIdOriginal,omitempty"`
}

// DisplayName returns the user-facing company name. English by default;
// when english is false the original-language short name is preferred,
// falling back to the English name if absent.
func (s *Security) DisplayName(english bool) string {
	if english {
		return s.NameEng
	}
	if s.NameOriginalShort != "" {
		return s.NameOriginalShort
	}
	return s.NameEng
}

// SectorAggregate is one sector's (or the whole market's) rolled-up totals
// within a snapshot. The whole-market total carries an empty Sector field;
// Name holds the sector's display name taken from the row's ticker slot.
type SectorAggregate struct {
	Sector             string  `json:"sector"`
	Name               string  `json:"name"`
	MarketCap          float64 `json:"marketCap"`
	MarketCapChangePct float64 `json:"marketCapChangePct"`
	Volume             float64 `json:"volume"`
	Value              float64 `json:"value"`
	NumTrades          float64 `json:"numTrades"`
	ItemsPerSector     int64   `json:"itemsPerSector"`
}

// IsMarketTotal reports whether this aggregate is the whole-market total row.
func (a *SectorAggregate) IsMarketTotal() bool {
	return a.Sector == ""
}

// Snapshot holds one exchange's decoded market dataset for one calendar date.
// Row order within each class follows the source dataset; the engine never
// mutates a snapshot, it only derives new views.
type Snapshot struct {
	Exchange   Exchange
	Date       string
	Securities []Security
	Aggregates []SectorAggregate
}

// SortField enumerates the numeric fields rankings can sort by.
type SortField string

const (
	SortPriceChangePct SortField = "priceChangePct"
	SortMarketCap      SortField = "marketCap"
	SortValue          SortField = "value"
	SortVolume         SortField = "volume"
	SortNumTrades      SortField = "numTrades"
)

// SortFields lists the supported ranking fields.
var SortFields = []SortField{SortPriceChangePct, SortMarketCap, SortValue, SortVolume, SortNumTrades}

// ParseSortField validates a caller-supplied sort field.
func ParseSortField(s string) (SortField, error) {
	for _, f := range SortFields {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid sortBy %q: must be one of marketCap, priceChangePct, value, volume, numTrades", s)
}

// FieldValue returns the security's value for a sort field.
// Absent fields decode to zero and order as zero.
func (s *Security) FieldValue(field SortField) float64 {
	switch field {
	case SortPriceChangePct:
		return s.PriceChangePct
	case SortMarketCap:
		return s.MarketCap
	case SortValue:
		return s.Value
	case SortVolume:
		return s.Volume
	case SortNumTrades:
		return s.NumTrades
	default:
		return 0
	}
}

// SortOrder enumerates ranking directions.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder validates a caller-supplied order, defaulting to descending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", string(OrderDesc):
		return OrderDesc, nil
	case string(OrderAsc):
		return OrderAsc, nil
	default:
		return "", fmt.Errorf("invalid order %q: must be asc or desc", s)
	}
}
