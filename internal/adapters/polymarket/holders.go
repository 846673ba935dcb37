package polymarket

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

const (
	holdersPath            = "/holders"
	defaultOverFetchMargin = 10
)

// HolderLimit es el número de holders que se piden para cubrir limitPerSide
// en ambos lados, con margen por si la distribución entre lados es desigual.
func HolderLimit(limitPerSide, margin int) int {
	return 2*limitPerSide + margin
}

// FetchHolders devuelve los buckets de /holders del mercado dado.
func (c *Client) FetchHolders(ctx context.Context, conditionID string, limitPerSide int) ([]domain.HolderBucket, error) {
	q := url.Values{}
	q.Set("market", conditionID)
	q.Set("limit", fmt.Sprint(HolderLimit(limitPerSide, c.overFetchMargin)))
	endpoint := c.dataBase + holdersPath + "?" + q.Encode()

	var resp []holdersBucket
	if err := c.get(ctx, c.dataLimiter, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("data-api.FetchHolders: %w", err)
	}

	buckets := mapHolderBuckets(resp)
	slog.Debug("holders fetched", "condition_id", conditionID, "buckets", len(buckets))
	return buckets, nil
}
