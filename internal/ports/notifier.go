package ports

import (
	"context"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

// Notifier presenta el resultado de una ejecución al usuario.
type Notifier interface {
	NotifyMarkets(ctx context.Context, markets []domain.Market) error
	NotifyReport(ctx context.Context, report *domain.ExtractionReport) error
}
