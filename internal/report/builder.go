package report

import "github.com/alejandrodnm/polyholders/internal/domain"

// builder acumula el reporte paso a paso. Se pasa por valor y cada paso
// devuelve el builder siguiente; build entrega una copia independiente.
type builder struct {
	info  domain.MarketInfo
	sides [2][]domain.HolderStats
}

func newBuilder(m domain.Market) builder {
	return builder{info: m.Info()}
}

func (b builder) withHolder(side domain.Outcome, stats domain.HolderStats) builder {
	b.sides[side] = append(b.sides[side], stats)
	return b
}

func (b builder) count(side domain.Outcome) int {
	return len(b.sides[side])
}

func (b builder) build() *domain.ExtractionReport {
	yes := make([]domain.HolderStats, len(b.sides[domain.OutcomeYes]))
	copy(yes, b.sides[domain.OutcomeYes])
	no := make([]domain.HolderStats, len(b.sides[domain.OutcomeNo]))
	copy(no, b.sides[domain.OutcomeNo])

	return &domain.ExtractionReport{
		MarketInfo: b.info,
		Holders:    domain.HoldersBySide{Yes: yes, No: no},
	}
}

func holderStats(rank int, h domain.Holder, p domain.TraderProfile) domain.HolderStats {
	return domain.HolderStats{
		Rank:           rank,
		Name:           h.DisplayName,
		Address:        h.Address,
		SharesInMarket: h.Shares,
		Volume:         p.Volume,
		PnL:            p.PnL,
		PortfolioValue: p.PortfolioValue,
		Target:         domain.TargetPosition{Detail: p.Target},
	}
}
