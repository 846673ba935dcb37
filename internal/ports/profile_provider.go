package ports

import (
	"context"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

// ProfileProvider expone las tres métricas de cuenta de un trader.
// Cada método falla por separado; el agregador decide cómo degradar.
type ProfileProvider interface {
	FetchVolume(ctx context.Context, address string) ([]domain.AmountEntry, error)
	FetchProfit(ctx context.Context, address string) ([]domain.AmountEntry, error)
	FetchPositions(ctx context.Context, address string) ([]domain.Position, error)
}
