package ports

import (
	"context"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

// HolderProvider obtiene los top holders de un mercado.
type HolderProvider interface {
	// FetchHolders devuelve los buckets raw de /holders (uno por token) con
	// margen suficiente para limitPerSide holders en cada lado.
	FetchHolders(ctx context.Context, conditionID string, limitPerSide int) ([]domain.HolderBucket, error)
}
