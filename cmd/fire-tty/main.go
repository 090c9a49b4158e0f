package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fire-ca/internal/app"
	"fire-ca/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	exitOnFinish := flag.Bool("exit-on-finish", false, "quit once the fire has settled")
	flag.Parse()

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sim, err := app.BuildSim(cfg)
	if err != nil {
		logger.Fatal("build sim", "err", err)
	}
	app.LogStart(logger, sim)

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("open terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init terminal", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := term.New(screen, sim, app.Palette(sim), cfg.Seed, term.Options{TPS: cfg.TPS, ExitOnFinish: *exitOnFinish}, logger)
	err = driver.Run(ctx)
	screen.Fini()
	if err != nil {
		logger.Fatal("run", "err", err)
	}
}
