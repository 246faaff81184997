package options

import (
	"flag"
	"io"
)

// Fixed window and context parameters. These are not exposed as flags.
const (
	WindowWidth         = 1280
	WindowHeight        = 720
	WindowTitle         = "huskyTech2"
	ContextVersionMajor = 3
	ContextVersionMinor = 3
)

type AppOptions struct {
	Help         *bool
	CPUProfile   *bool
	SwapInterval *int
	Width        int
	Height       int
	Title        string
}

// Parse reads command-line flags from args (without the program name).
// Output for -help and parse errors is written to out.
func Parse(args []string, out io.Writer) (*AppOptions, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("huskytech2", flag.ContinueOnError)
	fs.SetOutput(out)

	opts := &AppOptions{
		Help:         fs.Bool("help", false, "Show help message"),
		CPUProfile:   fs.Bool("cpuprofile", false, "Write a CPU profile to the working directory"),
		SwapInterval: fs.Int("swapinterval", 1, "Buffer swap interval (0 disables vsync)"),
		Width:        WindowWidth,
		Height:       WindowHeight,
		Title:        WindowTitle,
	}

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return opts, fs, nil
}
