package models

// GlossaryTerm describes one market data field for callers.
type GlossaryTerm struct {
	Field      string `json:"field"`
	Label      string `json:"label"`
	Definition string `json:"definition"`
}

// FieldGlossary documents the market fact fields used across responses.
// Static, process-wide, read-only.
var FieldGlossary = []GlossaryTerm{
	{Field: "marketCap", Label: "Market capitalization", Definition: "Total market value of the security's outstanding shares, in the exchange currency."},
	{Field: "priceOpen", Label: "Opening price", Definition: "Price of the first trade of the session."},
	{Field: "priceLastSale", Label: "Last sale price", Definition: "Price of the most recent trade in the snapshot."},
	{Field: "priceChangePct", Label: "Price change %", Definition: "Percent change of the last sale price against the previous session close. On sector rows this is the market-cap change percent."},
	{Field: "volume", Label: "Traded volume", Definition: "Number of shares traded during the session."},
	{Field: "value", Label: "Traded value", Definition: "Total traded amount during the session, in the exchange currency."},
	{Field: "numTrades", Label: "Number of trades", Definition: "Count of executed trades during the session."},
	{Field: "itemsPerSector", Label: "Items per sector", Definition: "Number of securities aggregated into a sector row."},
	{Field: "listedFrom", Label: "Listed from", Definition: "First listing date of the security."},
	{Field: "listedTill", Label: "Listed till", Definition: "Delisting date; empty while the security is still listed."},
}
