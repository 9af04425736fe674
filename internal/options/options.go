// Package options contains the program options.
package options

// Parameters contains input options.
type Parameters struct {
	Input string `arg:"positional" usage:"program file to run"`
	Keys  string `flag:"keys" usage:"scripted key presses, e.g. 5,a@100+30"`
}

// Flags contains behavior options.
type Flags struct {
	Cycles   uint64 `flag:"cycles" usage:"number of instructions to execute, 0 runs until cancelled" default:"1000"`
	Speed    int    `flag:"speed" usage:"instructions executed per second" default:"700"`
	Seed     uint64 `flag:"seed" usage:"seed of the random number generator, 0 seeds from the clock"`
	Realtime bool   `flag:"realtime" usage:"pace execution to 60 frames per second"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains display output options.
type OutputFlags struct {
	Dump     bool `flag:"dump" usage:"print the display after the run"`
	Frames   bool `flag:"frames" usage:"print the display after every frame that changed it"`
	NoBorder bool `flag:"noborder" usage:"omit the frame around printed displays"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	OutputFlags
}
