package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/polyholders/internal/domain"
	"github.com/alejandrodnm/polyholders/internal/ports"
)

var _ ports.Notifier = (*Console)(nil)

// Console implementa ports.Notifier con tablas legibles. Escribe a stderr por
// defecto para no mezclarse con el JSON de stdout.
type Console struct {
	out io.Writer
}

// NewConsole crea un notificador que escribe a stderr.
func NewConsole() *Console {
	return &Console{out: os.Stderr}
}

// NewConsoleWriter crea un notificador sobre w. Para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// NotifyMarkets imprime los mercados en una tabla.
func (c *Console) NotifyMarkets(_ context.Context, markets []domain.Market) error {
	if len(markets) == 0 {
		fmt.Fprintln(c.out, "no markets found")
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Market", "Condition ID", "Yes", "No")
	for _, m := range markets {
		table.Append(
			fmt.Sprintf("%d", m.Index),
			truncate(m.Title, 50),
			shortID(m.ConditionID),
			m.YesOdds,
			m.NoOdds,
		)
	}
	return table.Render()
}

// NotifyReport imprime una tabla por lado con los holders y sus métricas.
func (c *Console) NotifyReport(_ context.Context, report *domain.ExtractionReport) error {
	if report == nil {
		return fmt.Errorf("notify.Console: nil report")
	}
	info := report.MarketInfo
	fmt.Fprintf(c.out, "\n%s  [#%d %s]\n", info.Title, info.Index, shortID(info.ConditionID))
	fmt.Fprintf(c.out, "  Yes %s | No %s\n", info.YesOdds, info.NoOdds)

	for _, side := range domain.Outcomes {
		holders := report.Holders.Side(side)
		fmt.Fprintf(c.out, "\n=== %s holders (%d) ===\n", side, len(holders))
		if len(holders) == 0 {
			continue
		}

		table := tablewriter.NewWriter(c.out)
		table.Header("#", "Name", "Shares", "Volume", "PnL", "Portfolio", "Position", "Avg", "Cur", "Pos PnL")
		for _, h := range holders {
			size, avg, cur, pnl := "-", "-", "-", "-"
			if d := h.Target.Detail; d != nil {
				size, avg, cur, pnl = d.Size, d.AvgPrice, d.CurPrice, d.CashPnl
			}
			table.Append(
				fmt.Sprintf("%d", h.Rank),
				truncate(h.Name, 20),
				h.SharesInMarket,
				h.Volume.String(),
				h.PnL.String(),
				h.PortfolioValue.String(),
				size, avg, cur, pnl,
			)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("notify.Console: render: %w", err)
		}
	}
	fmt.Fprintln(c.out)
	return nil
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func shortID(id string) string {
	if len(id) <= 14 {
		return id
	}
	return id[:8] + "..." + id[len(id)-4:]
}
