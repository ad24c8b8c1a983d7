package api

import (
	"context"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// GetDashboardStats fetches the aggregated counts and grouped series
// for the dashboard. Aggregation happens entirely server-side.
func (c *Client) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	resp, err := c.doRequest(ctx, "GET", "/dashboard/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats domain.DashboardStats
	if err := parseResponse(resp, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
