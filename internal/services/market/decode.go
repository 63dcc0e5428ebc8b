package market

import (
	"strconv"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// Positional field offsets of the upstream snapshot rows. The schema is a
// data-interchange detail of the snapshot producer; these offsets never
// escape this file.
const (
	idxExchange = iota
	idxCountry
	idxType
	idxSector
	idxIndustry
	idxCurrencyID
	idxTicker
	idxNameEng
	idxNameEngShort
	idxNameOriginal
	idxNameOriginalShort
	idxPriceOpen
	idxPriceLastSale
	idxPriceChangePct
	idxVolume
	idxValue
	idxNumTrades
	idxMarketCap
	idxListedFrom
	idxListedTill
	idxWikiPageIDEng
	idxWikiPageIDOriginal
	idxItemsPerSector
)

// rowTypeSector tags a sector-aggregate row in the type field.
const rowTypeSector = "sector"

// DecodeSnapshot interprets the raw positional dataset into typed records,
// classifying each row by its type field. Source order is preserved within
// each class. Missing or oddly typed optional fields decode to zero values;
// decoding itself never fails.
func DecodeSnapshot(exchange models.Exchange, date string, envelope *models.SnapshotEnvelope) *models.Snapshot {
	snap := &models.Snapshot{
		Exchange: exchange,
		Date:     date,
	}

	for _, row := range envelope.Securities.Data {
		if fieldString(row, idxType) == rowTypeSector {
			snap.Aggregates = append(snap.Aggregates, decodeAggregate(row))
		} else {
			snap.Securities = append(snap.Securities, decodeSecurity(row))
		}
	}

	return snap
}

func decodeSecurity(row []any) models.Security {
	return models.Security{
		Exchange:          fieldString(row, idxExchange),
		Country:           fieldString(row, idxCountry),
		Currency:          fieldString(row, idxCurrencyID),
		Ticker:            fieldString(row, idxTicker),
		Sector:            fieldString(row, idxSector),
		Industry:          fieldString(row, idxIndustry),
		NameEng:           fieldString(row, idxNameEng),
		NameEngShort:      fieldString(row, idxNameEngShort),
		NameOriginal:      fieldString(row, idxNameOriginal),
		NameOriginalShort: fieldString(row, idxNameOriginalShort),
		PriceOpen:         fieldFloat(row, idxPriceOpen),
		PriceLastSale:     fieldFloat(row, idxPriceLastSale),
		PriceChangePct:    fieldFloat(row, idxPriceChangePct),
		Volume:            fieldFloat(row, idxVolume),
		Value:             fieldFloat(row, idxValue),
		NumTrades:         fieldFloat(row, idxNumTrades),
		MarketCap:         fieldFloat(row, idxMarketCap),
		ListedFrom:        fieldString(row, idxListedFrom),
		ListedTill:        fieldString(row, idxListedTill),
		WikiPageIDEng:     fieldString(row, idxWikiPageIDEng),
		WikiPageIDOrig:    fieldString(row, idxWikiPageIDOriginal),
	}
}

// decodeAggregate maps a sector row. The ticker slot holds the sector's
// display name ("" on the whole-market total); the price-change slot holds
// the market-cap change percent.
func decodeAggregate(row []any) models.SectorAggregate {
	return models.SectorAggregate{
		Sector:             fieldString(row, idxSector),
		Name:               fieldString(row, idxTicker),
		MarketCap:          fieldFloat(row, idxMarketCap),
		MarketCapChangePct: fieldFloat(row, idxPriceChangePct),
		Volume:             fieldFloat(row, idxVolume),
		Value:              fieldFloat(row, idxValue),
		NumTrades:          fieldFloat(row, idxNumTrades),
		ItemsPerSector:     int64(fieldFloat(row, idxItemsPerSector)),
	}
}

// fieldString reads a positional field as a string. Numeric identifiers
// (wiki page ids) are rendered back to their integer form.
func fieldString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// fieldFloat reads a positional field as a number, tolerating string-typed
// numerics and treating anything else as zero.
func fieldFloat(row []any, idx int) float64 {
	if idx >= len(row) {
		return 0
	}
	switch v := row[idx].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
