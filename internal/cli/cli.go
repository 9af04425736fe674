// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
)

const defaultCycles = 1000

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks the value ranges of the options
func validateOptions(opts options.Program) error {
	if opts.Speed < 1 {
		return fmt.Errorf("invalid speed %d: must be at least 1 instruction per second", opts.Speed)
	}

	if _, err := keypad.ParsePresses(opts.Keys); err != nil {
		return fmt.Errorf("invalid keys option: %w", err)
	}

	if opts.Frames && opts.Quiet {
		return fmt.Errorf("options -frames and -q can not be combined")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Keys, "keys", "", "keys to hold down as comma separated list of key[@cycle][+duration], for example 5,a@100+30")
	flags.Uint64Var(&opts.Cycles, "cycles", defaultCycles, "number of instructions to execute, 0 runs until interrupted")
	flags.IntVar(&opts.Speed, "speed", runner.DefaultSpeed, "number of instructions executed per second")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, the clock is used if not set")
	flags.BoolVar(&opts.Realtime, "realtime", false, "pace the execution to 60 frames per second")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Dump, "dump", false, "print the display after the run")
	flags.BoolVar(&opts.Frames, "frames", false, "print the display after every frame that changed it")
	flags.BoolVar(&opts.NoBorder, "noborder", false, "do not print a frame around the display")
}
