package models

import "fmt"

// Exchange identifies a market venue or a combined view.
type Exchange string

const (
	ExchangeAMEX   Exchange = "amex"
	ExchangeNASDAQ Exchange = "nasdaq"
	ExchangeNYSE   Exchange = "nyse"
	ExchangeUSAll  Exchange = "us-all"
	ExchangeLSE    Exchange = "lse"
	ExchangeMOEX   Exchange = "moex"
	ExchangeBIST   Exchange = "bist"
)

// Exchanges lists all supported exchange codes in catalog order.
var Exchanges = []Exchange{
	ExchangeAMEX,
	ExchangeNASDAQ,
	ExchangeNYSE,
	ExchangeUSAll,
	ExchangeLSE,
	ExchangeMOEX,
	ExchangeBIST,
}

// USExchanges lists the venues with company profile coverage.
var USExchanges = []Exchange{ExchangeAMEX, ExchangeNASDAQ, ExchangeNYSE}

// ParseExchange validates a caller-supplied exchange code.
func ParseExchange(s string) (Exchange, error) {
	for _, e := range Exchanges {
		if s == string(e) {
			return e, nil
		}
	}
	return "", fmt.Errorf("invalid exchange %q: must be one of amex, nasdaq, nyse, us-all, lse, moex, bist", s)
}

// ParseUSExchange validates a caller-supplied US exchange code.
func ParseUSExchange(s string) (Exchange, error) {
	for _, e := range USExchanges {
		if s == string(e) {
			return e, nil
		}
	}
	return "", fmt.Errorf("invalid exchange %q: company profiles cover amex, nasdaq, nyse", s)
}

// Country returns the country grouping used to route dataset retrieval.
func (e Exchange) Country() string {
	switch e {
	case ExchangeLSE:
		return "uk"
	case ExchangeMOEX:
		return "russia"
	case ExchangeBIST:
		return "turkey"
	default:
		return "us"
	}
}

// ExchangeInfo holds the static descriptor for one exchange.
type ExchangeInfo struct {
	Name            string `json:"name"`
	Country         string `json:"country"`
	Currency        string `json:"currency"`
	AvailableSince  string `json:"availableSince"`
	UpdateFrequency string `json:"updateFrequency"`
}

// ExchangeCatalog is the process-wide read-only descriptor table.
var ExchangeCatalog = map[Exchange]ExchangeInfo{
	ExchangeAMEX: {
		Name:            "American Stock Exchange",
		Country:         "United States",
		Currency:        "USD",
		AvailableSince:  "2024-12-09",
		UpdateFrequency: "Hourly (weekdays)",
	},
	ExchangeNASDAQ: {
		Name:            "NASDAQ Stock Market",
		Country:         "United States",
		Currency:        "USD",
		AvailableSince:  "2024-12-09",
		UpdateFrequency: "Hourly (weekdays)",
	},
	ExchangeNYSE: {
		Name:            "New York Stock Exchange",
		Country:         "United States",
		Currency:        "USD",
		AvailableSince:  "2024-12-09",
		UpdateFrequency: "Hourly (weekdays)",
	},
	ExchangeUSAll: {
		Name:            "US Combined (AMEX + NASDAQ + NYSE)",
		Country:         "United States",
		Currency:        "USD",
		AvailableSince:  "2024-12-09",
		UpdateFrequency: "Hourly (weekdays)",
	},
	ExchangeLSE: {
		Name:            "London Stock Exchange",
		Country:         "United Kingdom",
		Currency:        "GBP",
		AvailableSince:  "2025-02-07",
		UpdateFrequency: "Hourly (weekdays)",
	},
	ExchangeMOEX: {
		Name:            "Moscow Exchange",
		Country:         "Russia",
		Currency:        "RUB",
		AvailableSince:  "2011-12-19",
		UpdateFrequency: "Every 15 minutes (weekdays)",
	},
	ExchangeBIST: {
		Name:            "Borsa Istanbul",
		Country:         "Turkey",
		Currency:        "TRY",
		AvailableSince:  "2015-11-30",
		UpdateFrequency: "Every two months",
	},
}

// Info returns the static descriptor for the exchange.
func (e Exchange) Info() ExchangeInfo {
	return ExchangeCatalog[e]
}
