// Package main implements the main entry point for a headless CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Execution cancelled")
			return
		}
		logger.Error("Running program failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	m, kp, err := config.CreateMachine(opts)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	if err := loader.New().Load(opts.Input, m); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	logger.Info("Program loaded", log.String("file", opts.Input))

	screenOptions := screen.DefaultOptions()
	screenOptions.Border = !opts.NoBorder
	scr := screen.New(os.Stdout, screenOptions)

	frame := func(frame uint64, display *machine.Display) error {
		logger.Info("Display changed", log.Int("frame", int(frame)))
		return scr.Write(display)
	}

	r := runner.New(logger, m, config.CreateRunnerConfig(opts, kp, frame))
	runErr := r.Run(ctx, opts.Cycles)

	logger.Info("Execution stopped",
		log.Int("cycles", int(r.Cycle())),
		log.Int("frames", int(r.Frame())),
		log.Hex("pc", m.PC()),
	)

	// the display is also printed after a failed run to help debugging
	if opts.Dump {
		if err := scr.Write(m.Display()); err != nil {
			return fmt.Errorf("printing display: %w", err)
		}
	}
	return runErr
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
