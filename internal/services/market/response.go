package market

import (
	"fmt"
	"strings"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// providerInfo is the static provider block included in every response.
var providerInfo = models.ProviderInfo{
	Provider:    "finmap.org",
	Description: "Discover interactive stock charts and curated news at finmap.org",
	Github:      "https://github.com/finmap-org",
	Donate: map[string]string{
		"patreon": "https://patreon.com/finmap",
		"boosty":  "https://boosty.to/finmap",
	},
	Issues:   "https://github.com/finmap-org/mcp-server/issues",
	Feedback: "contact@finmap.org",
}

// chartLinks builds the interactive chart URLs for an exchange. The treemap
// link pins the queried date when one is given.
func (s *Service) chartLinks(exchange models.Exchange, date string) models.ChartLinks {
	links := models.ChartLinks{
		Histogram: fmt.Sprintf("%s/?chartType=histogram&dataType=marketcap&exchange=%s", s.chartBaseURL, exchange),
		Treemap:   fmt.Sprintf("%s/?chartType=treemap&dataType=marketcap&exchange=%s", s.chartBaseURL, exchange),
	}
	if date != "" {
		links.Treemap += "&date=" + date
	}
	return links
}

// displayExchange renders the exchange code the way responses present it.
func displayExchange(exchange models.Exchange) string {
	return strings.ToUpper(string(exchange))
}
