package app

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/models"
	"github.com/finmap-org/finmap-mcp/internal/services/market"
)

// fakeDataClient serves canned dataset documents so tool tests never touch
// the network.
type fakeDataClient struct {
	envelope *models.SnapshotEnvelope
	profile  map[string]any
	err      error
}

func (f *fakeDataClient) GetSnapshot(ctx context.Context, exchange models.Exchange, date string) (*models.SnapshotEnvelope, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.envelope, nil
}

func (f *fakeDataClient) GetCompanyProfile(ctx context.Context, exchange models.Exchange, ticker string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

// testEnvelope carries one market total, two sector aggregates, and three
// securities in the 23-slot row schema.
func testEnvelope() *models.SnapshotEnvelope {
	var env models.SnapshotEnvelope
	env.Securities.Data = [][]any{
		{"nasdaq", "us", "sector", "", "", "USD", "", "", "", "", "", 0.0, 0.0, 0.8, 5000.0, 700000.0, 400.0, 1000000.0, "", "", 0.0, 0.0, 3.0},
		{"nasdaq", "us", "sector", "tech", "", "USD", "Technology", "", "", "", "", 0.0, 0.0, 2.5, 0.0, 0.0, 0.0, 600000.0, "", "", 0.0, 0.0, 2.0},
		{"nasdaq", "us", "sector", "fin", "", "USD", "Finance", "", "", "", "", 0.0, 0.0, -1.0, 0.0, 0.0, 0.0, 400000.0, "", "", 0.0, 0.0, 1.0},
		{"nasdaq", "us", "", "Technology", "Software", "USD", "AAPL", "Apple Inc.", "Apple", "", "", 100.0, 101.5, 1.5, 2000.0, 203000.0, 150.0, 400000.0, "2010-01-04", "", 0.0, 0.0, 0.0},
		{"nasdaq", "us", "", "Technology", "Software", "USD", "MSFT", "Microsoft Corp.", "Microsoft", "", "", 200.0, 198.0, -1.0, 1500.0, 297000.0, 120.0, 200000.0, "2010-01-04", "", 0.0, 0.0, 0.0},
		{"nasdaq", "us", "", "Finance", "Banks", "USD", "JPM", "JPMorgan Chase", "JPMorgan", "", "", 150.0, 152.0, 1.3, 1000.0, 152000.0, 90.0, 400000.0, "2010-01-04", "", 0.0, 0.0, 0.0},
	}
	return &env
}

// testHarness provides an in-process MCP client connected to a server wired
// with a fake dataset client behind the real market service.
type testHarness struct {
	t      *testing.T
	client *client.Client
	data   *fakeDataClient
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	logger := common.NewLogger("error")
	data := &fakeDataClient{
		envelope: testEnvelope(),
		profile:  map[string]any{"ticker": "AAPL", "sector": "Technology"},
	}
	svc := market.NewService(data, "https://finmap.org", logger)

	mcpServer := server.NewMCPServer(
		"finmap-test",
		"test",
		server.WithToolCapabilities(true),
	)

	a := &App{
		Logger:        logger,
		Client:        data,
		MarketService: svc,
		MCPServer:     mcpServer,
	}
	a.registerTools()

	c, err := client.NewInProcessClient(mcpServer)
	if err != nil {
		t.Fatalf("Failed to create in-process client: %v", err)
	}

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Failed to start client: %v", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "finmap-test-client",
		Version: "1.0.0",
	}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		c.Close()
		t.Fatalf("Failed to initialize MCP: %v", err)
	}

	h := &testHarness{t: t, client: c, data: data}
	t.Cleanup(h.close)
	return h
}

// callTool invokes an MCP tool by name with the given arguments.
func (h *testHarness) callTool(name string, args map[string]any) (*mcp.CallToolResult, error) {
	h.t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return h.client.CallTool(context.Background(), req)
}

// getTextContent extracts text from a content block at the given index.
func (h *testHarness) getTextContent(result *mcp.CallToolResult, index int) string {
	h.t.Helper()
	if index >= len(result.Content) {
		h.t.Fatalf("Content index %d out of range (have %d blocks)", index, len(result.Content))
	}
	tc, ok := result.Content[index].(mcp.TextContent)
	if !ok {
		h.t.Fatalf("Content[%d] is %T, not TextContent", index, result.Content[index])
	}
	return tc.Text
}

func (h *testHarness) close() {
	if h.client != nil {
		h.client.Close()
	}
}
