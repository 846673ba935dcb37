package polymarket

import (
	"encoding/json"
	"log/slog"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

// mapHolderBuckets convierte la respuesta de /holders a domain.HolderBucket.
func mapHolderBuckets(raw []holdersBucket) []domain.HolderBucket {
	buckets := make([]domain.HolderBucket, 0, len(raw))
	for _, b := range raw {
		holders := make([]domain.Holder, 0, len(b.Holders))
		for _, h := range b.Holders {
			holders = append(holders, mapHolder(h))
		}
		buckets = append(buckets, domain.HolderBucket{Token: b.Token, Holders: holders})
	}
	return buckets
}

// mapHolder convierte un holder raw. Un outcomeIndex que no sea 0/1 queda
// como Outcome(-1) y no coincide con ningún lado.
func mapHolder(h rawHolder) domain.Holder {
	return domain.Holder{
		Address:      h.ProxyWallet,
		DisplayName:  holderName(h),
		OutcomeIndex: mapOutcome(h.OutcomeIndex),
		Shares:       domain.SharesOrLiteral(h.Amount),
	}
}

func holderName(h rawHolder) string {
	switch {
	case h.Name != "":
		return h.Name
	case h.Pseudonym != "":
		return h.Pseudonym
	case h.ProxyWallet == "":
		return "N/A"
	case len(h.ProxyWallet) > 10:
		return h.ProxyWallet[:10] + "..."
	}
	return h.ProxyWallet
}

func mapOutcome(n domain.Number) domain.Outcome {
	if !n.IsJSONNumber() {
		return domain.Outcome(-1)
	}
	f, err := n.Float()
	if err != nil {
		return domain.Outcome(-1)
	}
	o := domain.Outcome(int(f))
	if float64(o) != f || !o.Valid() {
		return domain.Outcome(-1)
	}
	return o
}

// mapPositions decodifica cada posición por separado. Si una no encaja en
// domain.Position se conserva al menos su currentValue.
func mapPositions(raw positionsResponse) []domain.Position {
	positions := make([]domain.Position, 0, len(raw))
	for i, r := range raw {
		var p domain.Position
		if err := json.Unmarshal(r, &p); err == nil {
			positions = append(positions, p)
			continue
		}
		var v positionValueOnly
		if err := json.Unmarshal(r, &v); err != nil {
			slog.Debug("position entry is not an object", "index", i)
			positions = append(positions, domain.Position{})
			continue
		}
		slog.Debug("position entry partially decoded", "index", i)
		positions = append(positions, domain.Position{CurrentValue: v.CurrentValue})
	}
	return positions
}
