package finmap

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

const testBaseURL = "https://datasets.test"

func newMockedClient(t *testing.T) *Client {
	t.Helper()
	client := NewClient(WithBaseURL(testBaseURL))
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

const snapshotBody = `{
	"securities": {
		"columns": [],
		"data": [
			["nasdaq","us","sector","","","USD","","","","","",0,0,0.8,0,0,0,1000000,"","",0,0,3],
			["nasdaq","us","","Technology","Software","USD","AAPL","Apple Inc.","","","",100,101.5,1.5,2000,203000,150,400000,"2010-01-04","",12345,0,0]
		]
	}
}`

func TestClient_GetSnapshot(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET",
		testBaseURL+"/data-us/refs/heads/main/marketdata/2025/03/10/nasdaq.json",
		httpmock.NewStringResponder(200, snapshotBody))

	envelope, err := client.GetSnapshot(context.Background(), models.ExchangeNASDAQ, "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, envelope.Securities.Data, 2)
}

func TestClient_GetSnapshot_CountryRouting(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET",
		testBaseURL+"/data-russia/refs/heads/main/marketdata/2024/11/15/moex.json",
		httpmock.NewStringResponder(200, snapshotBody))

	_, err := client.GetSnapshot(context.Background(), models.ExchangeMOEX, "2024-11-15")
	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestClient_GetSnapshot_NotFound(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET",
		testBaseURL+"/data-us/refs/heads/main/marketdata/2025/03/10/nasdaq.json",
		httpmock.NewStringResponder(404, "not found"))

	_, err := client.GetSnapshot(context.Background(), models.ExchangeNASDAQ, "2025-03-10")
	require.ErrorIs(t, err, models.ErrSnapshotNotFound)
	// The guidance names the exchange's earliest covered date.
	assert.Contains(t, err.Error(), "2024-12-09")
}

func TestClient_GetSnapshot_ServerError(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET",
		testBaseURL+"/data-us/refs/heads/main/marketdata/2025/03/10/nasdaq.json",
		httpmock.NewStringResponder(503, "unavailable"))

	_, err := client.GetSnapshot(context.Background(), models.ExchangeNASDAQ, "2025-03-10")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
}

func TestClient_GetSnapshot_MalformedBody(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET",
		testBaseURL+"/data-us/refs/heads/main/marketdata/2025/03/10/nasdaq.json",
		httpmock.NewStringResponder(200, "{not json"))

	_, err := client.GetSnapshot(context.Background(), models.ExchangeNASDAQ, "2025-03-10")
	assert.Error(t, err)
}

func TestClient_GetCompanyProfile(t *testing.T) {
	client := newMockedClient(t)
	// Profiles partition by the uppercased first letter of the ticker.
	httpmock.RegisterResponder("GET",
		testBaseURL+"/data-us/refs/heads/main/securities/nasdaq/A/AAPL.json",
		httpmock.NewStringResponder(200, `{"ticker":"AAPL","sector":"Technology"}`))

	profile, err := client.GetCompanyProfile(context.Background(), models.ExchangeNASDAQ, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", profile["ticker"])
}

func TestClient_GetCompanyProfile_NotFound(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET",
		testBaseURL+"/data-us/refs/heads/main/securities/nasdaq/Z/ZZZZ.json",
		httpmock.NewStringResponder(404, "not found"))

	_, err := client.GetCompanyProfile(context.Background(), models.ExchangeNASDAQ, "ZZZZ")
	require.ErrorIs(t, err, models.ErrProfileNotFound)
}

func TestClient_GetCompanyProfile_EmptyTicker(t *testing.T) {
	client := newMockedClient(t)

	_, err := client.GetCompanyProfile(context.Background(), models.ExchangeNASDAQ, "")
	require.ErrorIs(t, err, models.ErrProfileNotFound)
	assert.Zero(t, httpmock.GetTotalCallCount(), "empty ticker should not reach the network")
}
