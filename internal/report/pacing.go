package report

import (
	"context"
	"time"
)

// Pacer devuelve la espera antes de la llamada de perfil número call (desde 0).
type Pacer func(call int) time.Duration

// FixedPacer espera d entre llamadas sucesivas; la primera no espera.
func FixedPacer(d time.Duration) Pacer {
	return func(call int) time.Duration {
		if call == 0 {
			return 0
		}
		return d
	}
}

// NoPacing no espera nunca. Para tests.
func NoPacing(int) time.Duration { return 0 }

// wait duerme d respetando el contexto.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
