// Package cli contiene el arranque común de los binarios: logger, argumentos
// y construcción de adapters a partir de la configuración.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/alejandrodnm/polyholders/config"
	"github.com/alejandrodnm/polyholders/internal/adapters/browser"
	"github.com/alejandrodnm/polyholders/internal/adapters/notify"
	"github.com/alejandrodnm/polyholders/internal/adapters/polymarket"
	"github.com/alejandrodnm/polyholders/internal/ports"
)

const defaultMarketIndex = 0

// SetupLogger configura slog según cfg sobre w (stderr en los binarios:
// stdout queda para el JSON). Añade un run_id a cada línea.
func SetupLogger(w io.Writer, cfg config.LogConfig) string {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	runID := uuid.NewString()
	slog.SetDefault(slog.New(handler).With("run_id", runID))
	return runID
}

// ValidURL comprueba que target sea una URL http(s).
func ValidURL(target string) error {
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		return fmt.Errorf("invalid URL format: %q", target)
	}
	return nil
}

// HolderArgs son los argumentos posicionales de cmd/holders.
type HolderArgs struct {
	URL         string
	MarketIndex int
	MaxPerSide  int
	Warnings    []string
}

// ParseHolderArgs interpreta <url> [market_index] [max_holders].
// Con dos argumentos el segundo es max_holders; con tres, índice y máximo.
// Los valores inválidos se sustituyen por el default y se avisa en Warnings.
func ParseHolderArgs(args []string, defaultMax int) (HolderArgs, error) {
	if len(args) < 1 {
		return HolderArgs{}, fmt.Errorf("missing url")
	}
	out := HolderArgs{URL: args[0], MarketIndex: defaultMarketIndex, MaxPerSide: defaultMax}
	if err := ValidURL(out.URL); err != nil {
		return HolderArgs{}, err
	}

	switch {
	case len(args) == 2:
		out.MaxPerSide = out.parsePositive(args[1], "max_holders", defaultMax)
	case len(args) >= 3:
		out.MarketIndex = out.parseIndex(args[1])
		out.MaxPerSide = out.parsePositive(args[2], "max_holders", defaultMax)
	}
	return out, nil
}

func (a *HolderArgs) parsePositive(raw, name string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		a.Warnings = append(a.Warnings, fmt.Sprintf("invalid %s %q, using default %d", name, raw, def))
		return def
	}
	return n
}

func (a *HolderArgs) parseIndex(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		a.Warnings = append(a.Warnings, fmt.Sprintf("invalid market_index %q, using default %d", raw, defaultMarketIndex))
		return defaultMarketIndex
	}
	return n
}

// NewRenderer construye el renderer configurado.
func NewRenderer(cfg *config.Config) (ports.Renderer, error) {
	return browser.New(browser.Options{
		Mode:              cfg.Render.Mode,
		Headless:          cfg.Render.Headless,
		UserAgent:         cfg.API.UserAgent,
		NavigationTimeout: cfg.NavigationTimeout(),
		ActionTimeout:     cfg.ActionTimeout(),
		ScriptWait:        cfg.ScriptWait(),
	})
}

// NewClient construye el client de la data-api/lb-api configurado.
func NewClient(cfg *config.Config) *polymarket.Client {
	return polymarket.NewClient(polymarket.Options{
		DataBase:        cfg.API.DataBase,
		LeaderboardBase: cfg.API.LeaderboardBase,
		Origin:          cfg.API.Origin,
		UserAgent:       cfg.API.UserAgent,
		Timeout:         cfg.APITimeout(),
		PositionsLimit:  cfg.Holders.PositionsLimit,
		OverFetchMargin: cfg.Holders.OverFetchMargin,
	})
}

// Notifiers devuelve las salidas en orden: la tabla a stderr si se pidió y
// siempre el JSON a stdout, que va el último.
func Notifiers(table bool) []ports.Notifier {
	var out []ports.Notifier
	if table {
		out = append(out, notify.NewConsole())
	}
	return append(out, notify.NewJSON())
}
