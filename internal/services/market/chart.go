package market

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/models"
)

// DefaultChartSectors bounds how many sectors a rendered chart shows.
const DefaultChartSectors = 10

// RenderSectorChart renders a PNG bar chart of the largest sectors by
// market cap. Sectors come pre-aggregated from the snapshot; rendering
// derives nothing beyond ordering and truncation. Returns raw PNG bytes.
func RenderSectorChart(exchange models.Exchange, date string, sectors []models.SectorOverview, topN int) ([]byte, error) {
	if len(sectors) == 0 {
		return nil, fmt.Errorf("no sector aggregates to chart for %s on %s", exchange, date)
	}
	if topN <= 0 {
		topN = DefaultChartSectors
	}

	ranked := make([]models.SectorOverview, len(sectors))
	copy(ranked, sectors)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MarketCap > ranked[j].MarketCap
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	var totalCap float64
	for _, s := range sectors {
		totalCap += s.MarketCap
	}

	bars := make([]chart.Value, 0, len(ranked))
	for _, s := range ranked {
		label := s.Name
		if len(label) > 18 {
			label = label[:15] + "..."
		}
		bars = append(bars, chart.Value{
			Label: label,
			Value: s.MarketCap,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("2563eb"), // blue-600
				StrokeColor: drawing.ColorFromHex("1e40af"),
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s sector market cap, %s (total %s)", displayExchange(exchange), date, common.FormatMoney(totalCap)),
		Width:    1000,
		Height:   450,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return common.FormatCompact(f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
