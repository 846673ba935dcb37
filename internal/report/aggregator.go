package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/alejandrodnm/polyholders/internal/domain"
	"github.com/alejandrodnm/polyholders/internal/ports"
)

// Aggregator construye el TraderProfile de una wallet a partir de tres
// llamadas independientes. Ninguna falla aborta a las demás.
type Aggregator struct {
	profiles ports.ProfileProvider
}

// NewAggregator crea un Aggregator sobre el proveedor dado.
func NewAggregator(profiles ports.ProfileProvider) *Aggregator {
	return &Aggregator{profiles: profiles}
}

// Aggregate devuelve volumen, P&L, valor de cartera y la posición en
// (conditionID, outcome). Nunca devuelve error: cada métrica degrada sola.
func (a *Aggregator) Aggregate(ctx context.Context, address, conditionID string, outcome domain.Outcome) domain.TraderProfile {
	profile := domain.TraderProfile{
		Volume:         domain.Unavailable(),
		PnL:            domain.Unavailable(),
		PortfolioValue: domain.Unavailable(),
	}

	if entries, err := a.profiles.FetchVolume(ctx, address); err != nil {
		slog.Warn("volume unavailable", "address", address, "err", err)
	} else {
		profile.Volume = amountMetric(entries)
	}

	if entries, err := a.profiles.FetchProfit(ctx, address); err != nil {
		slog.Warn("profit unavailable", "address", address, "err", err)
	} else {
		profile.PnL = amountMetric(entries)
	}

	positions, err := a.profiles.FetchPositions(ctx, address)
	if err != nil {
		slog.Warn("positions unavailable", "address", address, "err", err)
		return profile
	}

	profile.PortfolioValue = domain.MetricOf(domain.FormatUSD(PortfolioValue(positions).InexactFloat64()))
	profile.Target = FindPosition(positions, conditionID, outcome)
	return profile
}

// amountMetric lee el amount de la primera fila del leaderboard.
// Una lista vacía es "no disponible"; un amount no numérico queda como marker.
func amountMetric(entries []domain.AmountEntry) domain.Metric {
	if len(entries) == 0 {
		return domain.Unavailable()
	}
	amount := entries[0].Amount
	f, err := amount.FloatOr(0)
	if err != nil {
		return domain.MetricOf(fmt.Sprintf("%s (%s)", domain.UnavailableMarker, amount.Literal()))
	}
	return domain.MetricOf(domain.FormatUSD(f))
}

// PortfolioValue suma currentValue de todas las posiciones. Solo los números
// JSON cuentan; cualquier otro valor aporta 0.
func PortfolioValue(positions []domain.Position) decimal.Decimal {
	total := decimal.Zero
	for _, p := range positions {
		if !p.CurrentValue.IsJSONNumber() {
			continue
		}
		v, err := decimal.NewFromString(string(p.CurrentValue))
		if err != nil {
			f, ferr := p.CurrentValue.Float()
			if ferr != nil {
				continue
			}
			v = decimal.NewFromFloat(f)
		}
		total = total.Add(v)
	}
	return total
}

// FindPosition devuelve el detalle de la primera posición que coincide con
// (conditionID, outcome), o nil. Los duplicados se ignoran.
func FindPosition(positions []domain.Position, conditionID string, outcome domain.Outcome) *domain.PositionDetail {
	for _, p := range positions {
		if !p.Matches(conditionID, outcome) {
			continue
		}
		return &domain.PositionDetail{
			Size:     domain.SharesOrLiteral(p.Size),
			AvgPrice: domain.CentsOrLiteral(p.AvgPrice),
			CurPrice: domain.CentsOrLiteral(p.CurPrice),
			CashPnl:  domain.USDOrLiteral(p.CashPnl),
		}
	}
	return nil
}
