package market

import (
	"sort"
	"strings"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// Match scores, highest matching rule wins. The rules are checked in fixed
// priority order and never combine.
const (
	scoreTickerExact    = 100
	scoreTickerPrefix   = 90
	scoreTickerContains = 80
	scoreNameContains   = 70
)

// MatchScore ranks how well a security matches a search term. The term must
// already be lowercased; ticker and name are lowercased for comparison only.
// Zero means no match.
func MatchScore(ticker, name, term string) int {
	tickerLower := strings.ToLower(ticker)
	nameLower := strings.ToLower(name)

	switch {
	case tickerLower == term:
		return scoreTickerExact
	case strings.HasPrefix(tickerLower, term):
		return scoreTickerPrefix
	case strings.Contains(tickerLower, term):
		return scoreTickerContains
	case strings.Contains(nameLower, term):
		return scoreNameContains
	default:
		return 0
	}
}

// SearchSecurities scores every classified security against the query,
// drops non-matches, sorts by descending score (ties keep input order), and
// truncates to limit. Original casing is preserved in the output.
func SearchSecurities(securities []models.Security, query string, limit int) []models.SearchMatch {
	term := strings.ToLower(query)

	var matches []models.SearchMatch
	for i := range securities {
		sec := &securities[i]
		if sec.Sector == "" {
			continue
		}
		score := MatchScore(sec.Ticker, sec.NameEng, term)
		if score == 0 {
			continue
		}
		matches = append(matches, models.SearchMatch{
			Ticker: sec.Ticker,
			Name:   sec.NameEng,
			Sector: sec.Sector,
			Score:  score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
