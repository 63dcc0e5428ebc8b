// Package interfaces defines service contracts for finmap-mcp
package interfaces

import (
	"context"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// MarketDataClient retrieves raw market datasets from the snapshot store.
type MarketDataClient interface {
	// GetSnapshot retrieves the raw snapshot envelope for an exchange on a
	// canonical YYYY-MM-DD date. Returns models.ErrSnapshotNotFound when no
	// snapshot exists for the pair.
	GetSnapshot(ctx context.Context, exchange models.Exchange, date string) (*models.SnapshotEnvelope, error)

	// GetCompanyProfile retrieves the company profile document for a ticker
	// on a US exchange. Returns models.ErrProfileNotFound on a miss.
	GetCompanyProfile(ctx context.Context, exchange models.Exchange, ticker string) (map[string]any, error)
}
