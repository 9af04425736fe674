// Package config handles application configuration and setup
package config

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachine creates a machine with a scripted keypad based on the options.
func CreateMachine(opts options.Program) (*machine.Machine, *keypad.Scripted, error) {
	presses, err := keypad.ParsePresses(opts.Keys)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing key presses: %w", err)
	}
	kp := keypad.NewScripted(presses)

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	m := machine.New(machine.Dependencies{
		Keypad: kp,
		Random: machine.NewPseudoRandom(seed),
	})
	return m, kp, nil
}

// CreateRunnerConfig returns the runner configuration based on the options.
func CreateRunnerConfig(opts options.Program, observer runner.CycleObserver, frame runner.FrameFunc) runner.Config {
	cfg := runner.Config{
		CyclesPerFrame: runner.CyclesPerFrame(opts.Speed),
		Realtime:       opts.Realtime,
		Observer:       observer,
	}
	if opts.Frames {
		cfg.Frame = frame
	}
	return cfg
}
