package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/polyholders/config"
	"github.com/alejandrodnm/polyholders/internal/cli"
	"github.com/alejandrodnm/polyholders/internal/report"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	renderMode := flag.String("renderer", "", "page renderer: chrome|static (overrides config)")
	table := flag.Bool("table", false, "also print a table to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <polymarket_event_or_market_url>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	target := flag.Arg(0)
	if err := cli.ValidURL(target); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *renderMode != "" {
		cfg.Render.Mode = *renderMode
	}
	cli.SetupLogger(os.Stderr, cfg.Log)

	renderer, err := cli.NewRenderer(cfg)
	if err != nil {
		slog.Error("failed to build renderer", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	outputs := cli.Notifiers(*table)
	markets, err := report.ResolveMarkets(ctx, renderer, target)
	if err != nil {
		slog.Error("failed to extract market list", "url", target, "err", err)
		// Un fallo de extracción sigue siendo JSON válido: lista vacía.
		markets = nil
	}

	failed := false
	for _, n := range outputs {
		if err := n.NotifyMarkets(ctx, markets); err != nil {
			slog.Error("failed to write output", "err", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
