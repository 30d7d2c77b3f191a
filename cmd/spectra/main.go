// Command spectra computes and exports the vibrational spectrum of a
// trajectory component.
//
//	spectra -o spectrum.png traj.dat            headless export
//	spectra -watch -o spectrum.svg traj.dat     re-export on every change
//	spectra -tui traj.dat                       interactive terminal view
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RyanBlaney/sonido-spectra/config"
	"github.com/RyanBlaney/sonido-spectra/logging"
	"github.com/RyanBlaney/sonido-spectra/render"
	"github.com/RyanBlaney/sonido-spectra/session"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
	"github.com/RyanBlaney/sonido-spectra/tui"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	summaryWidth  = 72
	summaryHeight = 12
	summaryPeaks  = 5
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, sw, err := config.ParseArgs("spectra", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
	if cfg.Input == "" {
		fmt.Fprintln(stderr, "Usage: spectra [flags] <trajectory.dat>  (-h for flags)")
		return exitUsage
	}

	cleanup, err := setupLogging(cfg, sw.TUI)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	defer cleanup()

	params, rejected, err := cfg.Parameters()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
	if len(rejected) > 0 {
		logging.Warn("Ignoring zero-frequency entries that are not numbers", logging.Fields{
			"rejected": rejected,
		})
	}
	opts, err := cfg.PlotOptions()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}

	s := session.New()

	switch {
	case sw.TUI:
		return runTUI(s, cfg, stderr)
	case sw.Watch:
		return runWatch(s, cfg, params, opts, stdout, stderr)
	default:
		if err := s.Process(cfg.Input, params, cfg.Output, opts); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return exitError
		}
		report(s, cfg, opts, stdout)
		return exitOK
	}
}

// setupLogging installs the global logger. The interactive view owns the
// terminal, so without a log file its records are dropped.
func setupLogging(cfg *config.Config, interactive bool) (func(), error) {
	logOpts, err := cfg.LoggingOptions()
	if err != nil {
		return func() {}, err
	}

	cleanup := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cleanup, fmt.Errorf("open log file: %w", err)
		}
		cleanup = func() { f.Close() }
		logOpts.Output = f
	} else if interactive {
		logging.SetGlobalLogger(&logging.NoOpLogger{})
		return cleanup, nil
	}

	logger, err := logging.New(logOpts)
	if err != nil {
		cleanup()
		return func() {}, err
	}
	logging.SetGlobalLogger(logger)

	if zl, ok := logger.(*logging.ZapLogger); ok {
		inner := cleanup
		cleanup = func() {
			_ = zl.Sync()
			inner()
		}
	}
	return cleanup, nil
}

func runTUI(s *session.Session, cfg *config.Config, stderr io.Writer) int {
	// a load failure is shown in the status line rather than aborting
	_ = s.Load(cfg.Input, cfg.TimeStepFs)

	m, err := tui.New(s, cfg)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	return exitOK
}

func runWatch(s *session.Session, cfg *config.Config, params spectrum.Parameters, opts render.PlotOptions, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.WithFields(logging.Fields{
		"component": "watch",
		"input":     cfg.Input,
	})

	update := func() {
		if err := s.Process(cfg.Input, params, cfg.Output, opts); err != nil {
			logger.Warn("Update failed", logging.Fields{"error": err.Error()})
			return
		}
		report(s, cfg, opts, stdout)
	}
	update()

	if err := session.Watch(ctx, cfg.Input, cfg.Debounce(), update); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	return exitOK
}

// report prints a summary and, when nothing was exported, a text plot
func report(s *session.Session, cfg *config.Config, opts render.PlotOptions, w io.Writer) {
	res, used := s.Result()
	if res == nil {
		return
	}

	fmt.Fprintf(w, "%s: %d bins, bin width %.4g cm⁻¹, peak %.1f cm⁻¹\n",
		cfg.Input, res.Len(), res.BinWidth, res.PeakFrequency())

	peaks := res.Peaks(summaryPeaks)
	if len(peaks) > 0 {
		parts := make([]string, len(peaks))
		for i, p := range peaks {
			parts[i] = fmt.Sprintf("%.1f (%.2f)", p.Frequency, p.Magnitude)
		}
		fmt.Fprintln(w, "lines:", strings.Join(parts, ", "))
	}
	if cfg.Output != "" {
		fmt.Fprintln(w, "saved", cfg.Output)
		return
	}

	fig, err := render.NewFigure(res, used, opts)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	for _, row := range fig.TextPlot(summaryWidth, summaryHeight) {
		fmt.Fprintln(w, row)
	}
}
