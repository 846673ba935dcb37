package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/polyholders/internal/domain"
	"github.com/alejandrodnm/polyholders/internal/pagestate"
	"github.com/alejandrodnm/polyholders/internal/ports"
)

var errMaxHolders = errors.New("max holders per side must be positive")

// Assembler orquesta una extracción: render → mercados → holders → perfiles.
// Es secuencial: un perfil a la vez, con el Pacer entre llamadas.
type Assembler struct {
	renderer   ports.Renderer
	holders    ports.HolderProvider
	aggregator *Aggregator
	pacer      Pacer
}

// NewAssembler crea un Assembler con todas las dependencias inyectadas.
// Un pacer nil equivale a NoPacing.
func NewAssembler(
	renderer ports.Renderer,
	holders ports.HolderProvider,
	profiles ports.ProfileProvider,
	pacer Pacer,
) *Assembler {
	if pacer == nil {
		pacer = NoPacing
	}
	return &Assembler{
		renderer:   renderer,
		holders:    holders,
		aggregator: NewAggregator(profiles),
		pacer:      pacer,
	}
}

// ResolveMarkets renderiza url y devuelve los mercados de su estado embebido.
func ResolveMarkets(ctx context.Context, renderer ports.Renderer, url string) ([]domain.Market, error) {
	raw, err := renderer.Render(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("report.ResolveMarkets: render: %w", err)
	}
	state, err := pagestate.Locate(raw)
	if err != nil {
		return nil, fmt.Errorf("report.ResolveMarkets: %w", err)
	}
	markets, err := pagestate.Resolve(state)
	if err != nil {
		return nil, fmt.Errorf("report.ResolveMarkets: %w", err)
	}
	return markets, nil
}

// SelectMarket devuelve el mercado con el índice pedido.
func SelectMarket(markets []domain.Market, index int) (domain.Market, error) {
	for _, m := range markets {
		if m.Index == index {
			return m, nil
		}
	}
	maxIndex := -1
	if len(markets) > 0 {
		maxIndex = markets[len(markets)-1].Index
	}
	return domain.Market{}, fmt.Errorf("%w %d: max index %d", domain.ErrInvalidIndex, index, maxIndex)
}

// Assemble ejecuta la extracción completa para el mercado marketIndex.
// Los fallos de render, resolución, índice o /holders abortan sin reporte
// parcial; los fallos por holder quedan como markers dentro del reporte.
func (a *Assembler) Assemble(ctx context.Context, url string, marketIndex, maxPerSide int) (*domain.ExtractionReport, error) {
	if maxPerSide <= 0 {
		return nil, fmt.Errorf("report.Assemble: %w (got %d)", errMaxHolders, maxPerSide)
	}

	slog.Info("resolving market", "url", url, "index", marketIndex)
	markets, err := ResolveMarkets(ctx, a.renderer, url)
	if err != nil {
		return nil, err
	}
	market, err := SelectMarket(markets, marketIndex)
	if err != nil {
		return nil, fmt.Errorf("report.Assemble: %w", err)
	}

	b := newBuilder(market)
	slog.Info("found target market",
		"title", market.Title,
		"condition_id", market.ConditionID,
		"yes", market.YesOdds,
		"no", market.NoOdds,
	)

	buckets, err := a.holders.FetchHolders(ctx, market.ConditionID, maxPerSide)
	if err != nil {
		return nil, fmt.Errorf("report.Assemble: holders: %w", err)
	}
	sides := PartitionHolders(buckets, market)

	slog.Info("fetching holder stats", "max_per_side", maxPerSide)
	call := 0
	for _, side := range domain.Outcomes {
		for i, h := range sides[side] {
			if b.count(side) >= maxPerSide {
				break
			}
			if h.Address == "" {
				continue
			}
			if err := wait(ctx, a.pacer(call)); err != nil {
				return nil, fmt.Errorf("report.Assemble: interrupted: %w", err)
			}
			call++

			slog.Debug("aggregating holder", "side", side, "rank", i+1, "address", h.Address)
			profile := a.aggregator.Aggregate(ctx, h.Address, market.ConditionID, side)
			b = b.withHolder(side, holderStats(i+1, h, profile))
		}
		slog.Info("side processed", "side", side, "holders", b.count(side), "available", len(sides[side]))
	}

	return b.build(), nil
}
