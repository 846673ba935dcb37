package polymarket

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

const (
	volumePath            = "/volume"
	profitPath            = "/profit"
	positionsPath         = "/positions"
	defaultPositionsLimit = 1000
)

// FetchVolume devuelve el volumen histórico (window=all) de la wallet.
func (c *Client) FetchVolume(ctx context.Context, address string) ([]domain.AmountEntry, error) {
	entries, err := c.fetchLeaderboard(ctx, volumePath, address)
	if err != nil {
		return nil, fmt.Errorf("lb-api.FetchVolume: %w", err)
	}
	return entries, nil
}

// FetchProfit devuelve el P&L histórico (window=all) de la wallet.
func (c *Client) FetchProfit(ctx context.Context, address string) ([]domain.AmountEntry, error) {
	entries, err := c.fetchLeaderboard(ctx, profitPath, address)
	if err != nil {
		return nil, fmt.Errorf("lb-api.FetchProfit: %w", err)
	}
	return entries, nil
}

func (c *Client) fetchLeaderboard(ctx context.Context, path, address string) ([]domain.AmountEntry, error) {
	q := url.Values{}
	q.Set("window", "all")
	q.Set("limit", "1")
	q.Set("address", address)

	var resp []domain.AmountEntry
	if err := c.get(ctx, c.lbLimiter, c.lbBase+path+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FetchPositions devuelve todas las posiciones abiertas de la wallet
// (una sola página de hasta positionsLimit).
func (c *Client) FetchPositions(ctx context.Context, address string) ([]domain.Position, error) {
	q := url.Values{}
	q.Set("user", address)
	q.Set("limit", fmt.Sprint(c.positionsLimit))

	var resp positionsResponse
	if err := c.get(ctx, c.dataLimiter, c.dataBase+positionsPath+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("data-api.FetchPositions: %w", err)
	}
	return mapPositions(resp), nil
}
