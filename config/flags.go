package config

import (
	"flag"
	"fmt"
	"io"
)

// Switches are command line options that select a mode rather than a
// setting, so they never live in a config file
type Switches struct {
	ConfigPath string
	TUI        bool
	Watch      bool
	Verbose    bool
}

// ParseArgs builds a Config from command line arguments. When -config
// names a file its values replace the defaults, and flags given
// explicitly on the command line override the file. A single positional
// argument is taken as the input file.
func ParseArgs(name string, args []string, output io.Writer) (*Config, Switches, error) {
	var sw Switches

	// first pass only locates the config file
	locate := newFlagSet(name, io.Discard, DefaultConfig(), &sw)
	if err := locate.Parse(args); err != nil {
		// report through the real flag set below so usage is printed once
		sw = Switches{}
	}

	cfg := DefaultConfig()
	if sw.ConfigPath != "" {
		loaded, err := Load(sw.ConfigPath)
		if err != nil {
			return nil, sw, err
		}
		cfg = loaded
	}

	sw = Switches{}
	fs := newFlagSet(name, output, cfg, &sw)
	if err := fs.Parse(args); err != nil {
		return nil, sw, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return nil, sw, fmt.Errorf("expected one input file, got %d arguments", fs.NArg())
	}

	if sw.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, sw, err
	}
	return cfg, sw, nil
}

func newFlagSet(name string, output io.Writer, cfg *Config, sw *Switches) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <trajectory.dat>\n\n", name)
		fs.PrintDefaults()
	}

	fs.StringVar(&sw.ConfigPath, "config", "", "JSON config file; explicit flags override it")
	fs.BoolVar(&sw.TUI, "tui", false, "start the interactive terminal view")
	fs.BoolVar(&sw.Watch, "watch", false, "re-export whenever the input file changes")
	fs.BoolVar(&sw.Verbose, "v", false, "debug logging, including intermediate arrays")

	fs.StringVar(&cfg.Output, "o", cfg.Output, "output file; format from extension (png, jpg, svg, pdf, dat, txt, parquet)")
	fs.IntVar(&cfg.Component, "component", cfg.Component, "signal component (0=x, 1=y, 2=z, 3=magnitude)")
	fs.Float64Var(&cfg.TimeStepFs, "dt", cfg.TimeStepFs, "time step in femtoseconds")
	fs.StringVar(&cfg.Window, "window", cfg.Window, "window function: none, hann, hamming, blackman")
	fs.BoolVar(&cfg.Autocorrelation, "autocorr", cfg.Autocorrelation, "transform the autocorrelation instead of the signal")
	fs.Float64Var(&cfg.FreqMin, "fmin", cfg.FreqMin, "lower bound of the displayed range (cm^-1)")
	fs.Float64Var(&cfg.FreqMax, "fmax", cfg.FreqMax, "upper bound of the displayed range (cm^-1)")
	fs.IntVar(&cfg.ZeroCount, "zero-count", cfg.ZeroCount, "number of leading bins to zero")
	fs.StringVar(&cfg.ZeroFrequencies, "zero-freqs", cfg.ZeroFrequencies, "comma separated wavenumbers whose nearest bin is zeroed")

	fs.StringVar(&cfg.Color, "color", cfg.Color, "plot color: blue, red, green, black, magenta, purple")
	fs.StringVar(&cfg.Style, "style", cfg.Style, "plot style: line, scatter, step, bar")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "plot title (default depends on autocorrelation)")
	fs.StringVar(&cfg.XLabel, "xlabel", cfg.XLabel, "x axis label")
	fs.StringVar(&cfg.YLabel, "ylabel", cfg.YLabel, "y axis label")
	fs.IntVar(&cfg.DPI, "dpi", cfg.DPI, "export resolution")
	fs.Float64Var(&cfg.WidthInches, "width", cfg.WidthInches, "figure width in inches")
	fs.Float64Var(&cfg.HeightInches, "height", cfg.HeightInches, "figure height in inches")

	fs.IntVar(&cfg.DebounceMs, "debounce", cfg.DebounceMs, "milliseconds to wait before acting on a burst of changes")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of the terminal")

	return fs
}
