package report

import "github.com/alejandrodnm/polyholders/internal/domain"

// PartitionHolders reparte los buckets de /holders entre Yes y No.
//
// Si el mercado trae clobTokenIds, un bucket cuyo token coincide con el del
// lado es ese lado (lookup por clave). Si no, se usa la heurística posicional:
// el primer bucket no vacío cuyo primer holder tiene el outcomeIndex del lado.
// Un lado sin bucket queda vacío; nunca es un error.
func PartitionHolders(buckets []domain.HolderBucket, m domain.Market) [2][]domain.Holder {
	var sides [2][]domain.Holder
	for _, side := range domain.Outcomes {
		if holders, ok := bucketByToken(buckets, m.TokenFor(side)); ok {
			sides[side] = holders
			continue
		}
		sides[side] = bucketByLeadingOutcome(buckets, side)
	}
	return sides
}

func bucketByToken(buckets []domain.HolderBucket, token string) ([]domain.Holder, bool) {
	if token == "" {
		return nil, false
	}
	for _, b := range buckets {
		if b.Token == token {
			return b.Holders, true
		}
	}
	return nil, false
}

func bucketByLeadingOutcome(buckets []domain.HolderBucket, side domain.Outcome) []domain.Holder {
	for _, b := range buckets {
		if len(b.Holders) > 0 && b.Holders[0].OutcomeIndex == side {
			return b.Holders
		}
	}
	return nil
}
