package app

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// tradingDate pins every query to a known weekday so tests never depend on
// the wall clock.
var tradingDate = map[string]any{"year": 2025, "month": 3, "day": 10}

func withDate(args map[string]any) map[string]any {
	merged := make(map[string]any, len(args)+3)
	for k, v := range tradingDate {
		merged[k] = v
	}
	for k, v := range args {
		merged[k] = v
	}
	return merged
}

func TestGetVersionTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("get_version", nil)
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, "Version:") || !strings.Contains(text, "Status: OK") {
		t.Errorf("version output = %q", text)
	}
}

func TestListExchangesTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("list_exchanges", nil)
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	for _, want := range []string{"amex", "nasdaq", "moex", "finmap.org", "availableSince"} {
		if !strings.Contains(text, want) {
			t.Errorf("list_exchanges output misses %q", want)
		}
	}
}

func TestListSectorsTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("list_sectors", withDate(map[string]any{"stockExchange": "nasdaq"}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", h.getTextContent(result, 0))
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, "Technology") || !strings.Contains(text, "Finance") {
		t.Errorf("list_sectors output = %q", text)
	}
	if !strings.Contains(text, "2025-03-10") {
		t.Errorf("output misses the resolved date: %q", text)
	}
}

func TestListSectorsTool_InvalidExchange(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("list_sectors", withDate(map[string]any{"stockExchange": "tsx"}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result for an unknown exchange")
	}
	text := h.getTextContent(result, 0)
	if !strings.HasPrefix(text, "ERROR:") || !strings.Contains(text, "tsx") {
		t.Errorf("error text = %q", text)
	}
}

func TestListSectorsTool_Weekend(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("list_sectors", map[string]any{
		"stockExchange": "nasdaq",
		"year":          2025, "month": 3, "day": 8, // a Saturday
	})
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result for a weekend date")
	}
	if text := h.getTextContent(result, 0); !strings.Contains(text, "work days") {
		t.Errorf("error text = %q", text)
	}
}

func TestListTickersTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("list_tickers", withDate(map[string]any{
		"stockExchange": "nasdaq",
		"sector":        "Finance",
	}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, "JPM") {
		t.Errorf("list_tickers output misses JPM: %q", text)
	}
	if strings.Contains(text, "AAPL") {
		t.Errorf("sector filter leaked other sectors: %q", text)
	}
}

func TestSearchCompaniesTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("search_companies", withDate(map[string]any{
		"stockExchange": "nasdaq",
		"query":         "apple",
	}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, "AAPL") || !strings.Contains(text, `"score": 70`) {
		t.Errorf("search output = %q", text)
	}
}

func TestSearchCompaniesTool_MissingQuery(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("search_companies", withDate(map[string]any{"stockExchange": "nasdaq"}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result without a query")
	}
}

func TestGetMarketOverviewTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("get_market_overview", withDate(map[string]any{"stockExchange": "nasdaq"}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	for _, want := range []string{"marketTotal", "Technology", "treemap", "NASDAQ"} {
		if !strings.Contains(text, want) {
			t.Errorf("market overview misses %q", want)
		}
	}
}

func TestGetStockDataTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("get_stock_data", withDate(map[string]any{
		"stockExchange": "nasdaq",
		"ticker":        "AAPL",
	}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, "Apple Inc.") || !strings.Contains(text, "101.5") {
		t.Errorf("stock data output = %q", text)
	}
}

func TestGetStockDataTool_NotFound(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("get_stock_data", withDate(map[string]any{
		"stockExchange": "nasdaq",
		"ticker":        "GOOG",
	}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result for an unknown ticker")
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, "GOOG") || !strings.Contains(text, "2025-03-10") {
		t.Errorf("error text should name the ticker and date: %q", text)
	}
}

func TestRankStocksTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("rank_stocks", withDate(map[string]any{
		"stockExchange": "nasdaq",
		"sortBy":        "marketCap",
		"limit":         2,
	}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, `"count": 2`) {
		t.Errorf("rank output = %q", text)
	}
	// AAPL and JPM tie on market cap; the stable sort keeps input order and
	// MSFT falls below the limit.
	if strings.Contains(text, "MSFT") {
		t.Errorf("limit 2 leaked a third stock: %q", text)
	}
}

func TestRankStocksTool_InvalidSortBy(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("rank_stocks", withDate(map[string]any{
		"stockExchange": "nasdaq",
		"sortBy":        "dividendYield",
	}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result for an unknown sort field")
	}
}

func TestGetCompanyProfileTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("get_company_profile", map[string]any{
		"exchange": "nasdaq",
		"ticker":   "AAPL",
	})
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	text := h.getTextContent(result, 0)
	if !strings.Contains(text, "AAPL") {
		t.Errorf("profile output = %q", text)
	}
}

func TestGetCompanyProfileTool_NonUSExchange(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("get_company_profile", map[string]any{
		"exchange": "moex",
		"ticker":   "SBER",
	})
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result for a non-US exchange")
	}
}

func TestGetMarketChartTool(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.callTool("get_market_chart", withDate(map[string]any{"stockExchange": "nasdaq"}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", result.Content)
	}
	if len(result.Content) != 1 {
		t.Fatalf("got %d content blocks, want 1", len(result.Content))
	}
	img, ok := result.Content[0].(mcp.ImageContent)
	if !ok {
		t.Fatalf("Content[0] is %T, not ImageContent", result.Content[0])
	}
	if img.MIMEType != "image/png" || img.Data == "" {
		t.Errorf("image = (%s, %d bytes of base64)", img.MIMEType, len(img.Data))
	}
}

func TestSnapshotErrorsSurfaceAsToolErrors(t *testing.T) {
	h := newTestHarness(t)
	h.data.err = models.ErrSnapshotNotFound

	result, err := h.callTool("get_market_overview", withDate(map[string]any{"stockExchange": "nasdaq"}))
	if err != nil {
		t.Fatalf("callTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result when the snapshot is missing")
	}
	if text := h.getTextContent(result, 0); !strings.HasPrefix(text, "ERROR:") {
		t.Errorf("error text = %q", text)
	}
}
