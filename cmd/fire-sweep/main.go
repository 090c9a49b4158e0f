package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"fire-ca/internal/app"
	"fire-ca/internal/report"
	"fire-ca/internal/sims/fire"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 8, "runs per ignite probability")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	points := flag.Int("points", 21, "number of ignite probabilities to sample")
	lo := flag.Float64("from", 0, "lowest ignite probability")
	hi := flag.Float64("to", 1, "highest ignite probability")
	maxTicks := flag.Int("max-ticks", fire.DefaultMaxTicks, "tick cap per run")
	out := flag.String("out", "sweep.png", "chart output (empty to skip)")
	flag.Parse()

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	base := fire.DefaultConfig()
	if cfg.ConfigPath != "" {
		base, err = fire.LoadConfig(cfg.ConfigPath)
		if err != nil {
			logger.Fatal("load config", "err", err)
		}
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		logger.Fatal("parse overrides", "err", err)
	}
	base = fire.ApplyMap(base, overrides)

	probs := fire.LinearProbabilities(*lo, *hi, *points)
	logger.Info("sweeping",
		"w", base.Width, "h", base.Height,
		"points", len(probs), "runs", *runs, "workers", *workers,
		"burn_duration_limit", base.Params.BurnDurationLimit,
		"initial_ignitions", base.Params.InitialIgnitions,
	)

	start := time.Now()
	results := fire.Sweep(base, probs, *runs, *workers, *maxTicks)
	logger.Info("sweep complete", "elapsed", time.Since(start).Round(time.Millisecond))

	if err := report.WriteTable(os.Stdout, results); err != nil {
		logger.Fatal("write table", "err", err)
	}
	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal("create chart", "err", err)
	}
	title := fmt.Sprintf("%dx%d, burn %d, %d ignitions", base.Width, base.Height, base.Params.BurnDurationLimit, base.Params.InitialIgnitions)
	if err := report.WriteChart(f, results, title); err != nil {
		f.Close()
		logger.Fatal("write chart", "err", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatal("close chart", "err", err)
	}
	logger.Info("wrote chart", "path", *out)
}
