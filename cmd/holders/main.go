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
	table := flag.Bool("table", false, "also print holder tables to stderr")
	noPacing := flag.Bool("no-pacing", false, "skip the delay between holder profiles (may hit rate limits)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <url> [market_index] [max_holders]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  Defaults: market_index=0, max_holders from config (5)")
		flag.PrintDefaults()
	}
	flag.Parse()

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

	args, err := cli.ParseHolderArgs(flag.Args(), cfg.Holders.DefaultMaxPerSide)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	cli.SetupLogger(os.Stderr, cfg.Log)
	for _, w := range args.Warnings {
		slog.Warn(w)
	}

	renderer, err := cli.NewRenderer(cfg)
	if err != nil {
		slog.Error("failed to build renderer", "err", err)
		os.Exit(1)
	}
	client := cli.NewClient(cfg)

	pacer := report.FixedPacer(cfg.Pacing())
	if *noPacing {
		pacer = report.NoPacing
	}

	slog.Info("holders starting",
		"url", args.URL,
		"market_index", args.MarketIndex,
		"max_per_side", args.MaxPerSide,
		"renderer", cfg.Render.Mode,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	assembler := report.NewAssembler(renderer, client, client, pacer)
	result, err := assembler.Assemble(ctx, args.URL, args.MarketIndex, args.MaxPerSide)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nScript finished: failed to extract holder data: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, n := range cli.Notifiers(*table) {
		if err := n.NotifyReport(ctx, result); err != nil {
			slog.Error("failed to write output", "err", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	slog.Info("holders finished", "yes", len(result.Holders.Yes), "no", len(result.Holders.No))
}
