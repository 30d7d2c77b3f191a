package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/RyanBlaney/sonido-spectra/algorithms/windowing"
	"github.com/RyanBlaney/sonido-spectra/logging"
	"github.com/RyanBlaney/sonido-spectra/render"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
)

// MaxFrequency bounds the display range in cm⁻¹
const MaxFrequency = 10000.0

var ErrInvalid = errors.New("invalid configuration")

// Config is the file and flag level view of every setting. Enums and the
// zero-frequency list are kept as text, exactly as a user types them.
type Config struct {
	// Input/Output
	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`

	// Signal
	Component  int     `json:"component"`
	TimeStepFs float64 `json:"time_step_fs"`

	// Preprocessing
	Window          string `json:"window"` // "none", "hann", "hamming", "blackman"
	Autocorrelation bool   `json:"autocorrelation"`

	// Display range in cm⁻¹; only applied when FreqMin < FreqMax
	FreqMin float64 `json:"freq_min"`
	FreqMax float64 `json:"freq_max"`

	// Zeroing
	ZeroCount       int    `json:"zero_count"`
	ZeroFrequencies string `json:"zero_frequencies"` // comma separated wavenumbers

	// Plot
	Color        string  `json:"color"`
	Style        string  `json:"style"` // "line", "scatter", "step", "bar"
	Title        string  `json:"title,omitempty"`
	XLabel       string  `json:"x_label"`
	YLabel       string  `json:"y_label"`
	DPI          int     `json:"dpi"`
	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`

	// Runtime
	DebounceMs int    `json:"debounce_ms"`
	LogLevel   string `json:"log_level"`
	LogFormat  string `json:"log_format"` // "text" or "json"
	LogFile    string `json:"log_file,omitempty"`
}

// DefaultConfig returns the settings the tool starts with
func DefaultConfig() *Config {
	params := spectrum.DefaultParameters()
	plot := render.DefaultPlotOptions()

	return &Config{
		Component:    params.Component,
		TimeStepFs:   params.TimeStepFs,
		Window:       string(windowing.TypeNone),
		FreqMin:      params.FreqMin,
		FreqMax:      params.FreqMax,
		Color:        string(plot.Color),
		Style:        string(plot.Style),
		XLabel:       plot.XLabel,
		YLabel:       plot.YLabel,
		DPI:          plot.DPI,
		WidthInches:  plot.WidthInches,
		HeightInches: plot.HeightInches,
		DebounceMs:   300,
		LogLevel:     "info",
		LogFormat:    string(logging.FormatText),
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file
// keep their default value; unknown fields are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	switch {
	case c.Component < 0:
		return invalid("component must not be negative, got %d", c.Component)
	case c.TimeStepFs <= 0 || math.IsNaN(c.TimeStepFs) || math.IsInf(c.TimeStepFs, 0):
		return invalid("time_step_fs must be positive, got %g", c.TimeStepFs)
	case c.FreqMin < 0 || c.FreqMin > MaxFrequency:
		return invalid("freq_min must be within [0, %g], got %g", MaxFrequency, c.FreqMin)
	case c.FreqMax < 0 || c.FreqMax > MaxFrequency:
		return invalid("freq_max must be within [0, %g], got %g", MaxFrequency, c.FreqMax)
	case c.ZeroCount < 0:
		return invalid("zero_count must not be negative, got %d", c.ZeroCount)
	case c.DebounceMs < 0:
		return invalid("debounce_ms must not be negative, got %d", c.DebounceMs)
	}

	if _, err := windowing.ParseType(c.Window); err != nil {
		return invalid("%v", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return invalid("%v", err)
	}
	switch logging.Format(c.LogFormat) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return invalid("log_format must be text or json, got %q", c.LogFormat)
	}
	if _, err := c.PlotOptions(); err != nil {
		return invalid("%v", err)
	}
	return nil
}

// Parameters builds the computation snapshot. Zero-frequency entries that
// do not parse are skipped and returned in rejected.
func (c *Config) Parameters() (params spectrum.Parameters, rejected []string, err error) {
	window, err := windowing.ParseType(c.Window)
	if err != nil {
		return spectrum.Parameters{}, nil, err
	}

	zeros, rejected := spectrum.ParseZeroFrequencies(c.ZeroFrequencies)
	return spectrum.Parameters{
		Component:       c.Component,
		TimeStepFs:      c.TimeStepFs,
		Window:          window,
		Autocorrelation: c.Autocorrelation,
		FreqMin:         c.FreqMin,
		FreqMax:         c.FreqMax,
		ZeroCount:       c.ZeroCount,
		ZeroFrequencies: zeros,
	}, rejected, nil
}

// PlotOptions builds the rendering settings
func (c *Config) PlotOptions() (render.PlotOptions, error) {
	color, err := render.ParseColor(c.Color)
	if err != nil {
		return render.PlotOptions{}, err
	}
	style, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.PlotOptions{}, err
	}

	opts := render.PlotOptions{
		Color:        color,
		Style:        style,
		Title:        c.Title,
		XLabel:       c.XLabel,
		YLabel:       c.YLabel,
		DPI:          c.DPI,
		WidthInches:  c.WidthInches,
		HeightInches: c.HeightInches,
	}
	if err := opts.Validate(); err != nil {
		return render.PlotOptions{}, err
	}
	return opts, nil
}

// Debounce returns the recompute delay
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// LoggingOptions builds the logger settings
func (c *Config) LoggingOptions() (logging.Options, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.Options{}, err
	}
	return logging.Options{
		Format: logging.Format(c.LogFormat),
		Level:  level,
	}, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
