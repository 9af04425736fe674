// Package runner drives a machine: it fetches, decodes and applies
// instructions and paces the timers.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the rate in Hz at which the timers are decremented.
const FrameRate = 60

// DefaultSpeed is the default number of instructions executed per second.
const DefaultSpeed = 700

// CycleObserver gets notified about the cycle that is about to execute.
// Scripted keypads use it to update the held keys.
type CycleObserver interface {
	SetCycle(cycle uint64)
}

// FrameFunc is called at the end of every frame that changed the display.
type FrameFunc func(frame uint64, display *machine.Display) error

// Config of the runner.
type Config struct {
	CyclesPerFrame int           // instructions executed between two timer ticks
	Realtime       bool          // pace frames to FrameRate
	Observer       CycleObserver // optional
	Frame          FrameFunc     // optional
}

// CyclesPerFrame returns the number of instructions per frame for the
// given speed in instructions per second, at least 1.
func CyclesPerFrame(speed int) int {
	n := speed / FrameRate
	if n < 1 {
		return 1
	}
	return n
}

// Fault is returned when an instruction can not be fetched, decoded or
// executed.
type Fault struct {
	PC   uint16 // address of the instruction
	Word uint16 // instruction word, 0 if it could not be fetched
	Err  error

	fetched bool
}

func (f *Fault) Error() string {
	if !f.fetched {
		return fmt.Sprintf("address $%04X: %v", f.PC, f.Err)
	}
	return fmt.Sprintf("executing word $%04X at address $%04X: %v", f.Word, f.PC, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Runner executes a program on a machine.
type Runner struct {
	logger  *log.Logger
	machine *machine.Machine
	config  Config

	cycle        uint64
	frame        uint64
	sound        bool
	frameChanged bool
}

// New returns a new runner for the machine.
func New(logger *log.Logger, m *machine.Machine, config Config) *Runner {
	if config.CyclesPerFrame < 1 {
		config.CyclesPerFrame = CyclesPerFrame(DefaultSpeed)
	}
	return &Runner{
		logger:  logger,
		machine: m,
		config:  config,
	}
}

// Cycle returns the number of executed instructions.
func (r *Runner) Cycle() uint64 { return r.cycle }

// Frame returns the number of completed frames.
func (r *Runner) Frame() uint64 { return r.frame }

// Step executes a single instruction.
func (r *Runner) Step() (machine.SideEffects, error) {
	if r.config.Observer != nil {
		r.config.Observer.SetCycle(r.cycle)
	}

	pc := r.machine.PC()
	word, err := r.machine.Fetch()
	if err != nil {
		return machine.SideEffects{}, &Fault{PC: pc, Err: err}
	}

	ins, err := instruction.Decode(word)
	if err != nil {
		return machine.SideEffects{}, &Fault{PC: pc, Word: word, Err: err, fetched: true}
	}

	r.logger.Debug("Executing instruction",
		log.Hex("address", pc),
		log.Hex("word", word),
		log.String("instruction", instruction.Format(ins)),
	)

	r.machine.Advance()
	effects, err := r.machine.Apply(ins)
	if err != nil {
		return effects, &Fault{PC: pc, Word: word, Err: err, fetched: true}
	}

	r.cycle++
	if effects.DisplayChanged {
		r.frameChanged = true
	}
	r.updateSound()
	return effects, nil
}

// Run executes instructions until the given number of cycles is reached or
// the context is cancelled. A cycle count of 0 runs without limit. The
// timers are decremented after every frame of CyclesPerFrame instructions.
// Cancellation is checked between instructions.
func (r *Runner) Run(ctx context.Context, cycles uint64) error {
	var ticker *time.Ticker
	if r.config.Realtime {
		ticker = time.NewTicker(time.Second / FrameRate)
		defer ticker.Stop()
	}

	r.logger.Info("Running program", log.Int("cycles_per_frame", r.config.CyclesPerFrame))

	for {
		for n := 0; n < r.config.CyclesPerFrame; n++ {
			if cycles > 0 && r.cycle >= cycles {
				r.logger.Info("Cycle limit reached", log.Int("frames", int(r.frame)))
				return nil
			}
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			if _, err := r.Step(); err != nil {
				return err
			}
		}

		if err := r.endFrame(); err != nil {
			return err
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("running program: %w", ctx.Err())
			case <-ticker.C:
			}
		}
	}
}

// endFrame decrements the timers and hands a changed display to the frame
// callback.
func (r *Runner) endFrame() error {
	r.machine.TickTimers()
	r.updateSound()
	r.frame++

	changed := r.frameChanged
	r.frameChanged = false
	if !changed || r.config.Frame == nil {
		return nil
	}
	if err := r.config.Frame(r.frame, r.machine.Display()); err != nil {
		return fmt.Errorf("processing frame %d: %w", r.frame, err)
	}
	return nil
}

// updateSound logs changes of the sound state.
func (r *Runner) updateSound() {
	active := r.machine.SoundActive()
	if active == r.sound {
		return
	}
	r.sound = active
	if active {
		r.logger.Debug("Sound on", log.Uint8("timer", r.machine.SoundTimer()))
	} else {
		r.logger.Debug("Sound off")
	}
}
