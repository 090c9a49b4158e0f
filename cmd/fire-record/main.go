package main

import (
	"flag"
	"fmt"
	"os"

	"fire-ca/internal/app"
	"fire-ca/internal/record"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	opts := record.DefaultOptions()
	out := flag.String("out", "fire.avi", "output AVI file")
	flag.IntVar(&opts.FPS, "fps", opts.FPS, "frames per second of the video")
	flag.IntVar(&opts.Quality, "quality", opts.Quality, "JPEG quality (1-100)")
	flag.IntVar(&opts.MaxFrames, "max-frames", opts.MaxFrames, "stop after this many frames (0 = until the fire settles)")
	flag.IntVar(&opts.HoldFrames, "hold", opts.HoldFrames, "frames to hold the final state")
	flag.Parse()
	opts.Scale = cfg.Scale

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

	rec, err := record.Create(*out, sim.Size(), app.Palette(sim), opts)
	if err != nil {
		logger.Fatal("create recording", "err", err)
	}
	runErr := rec.Run(sim, logger)
	if err := rec.Close(); err != nil {
		logger.Fatal("close recording", "err", err)
	}
	if runErr != nil {
		logger.Fatal("record", "err", runErr)
	}
	logger.Info("wrote video", "path", *out, "frames", rec.Frames())
}
