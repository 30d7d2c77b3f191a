// Package tui is the interactive terminal front end. Every parameter
// change schedules a recompute; changes made within the debounce delay
// of each other result in a single pipeline run.
package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RyanBlaney/sonido-spectra/config"
	"github.com/RyanBlaney/sonido-spectra/logging"
	"github.com/RyanBlaney/sonido-spectra/render"
	"github.com/RyanBlaney/sonido-spectra/session"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
)

type mode int

const (
	modeView mode = iota
	modeZeroList
	modeSavePath
)

const (
	timeStepIncrement = 0.1
	minTimeStep       = 0.1
	freqIncrement     = 50.0
	defaultExportPath = "spectrum.png"
)

// recomputeMsg asks for a pipeline run; only the newest seq is honoured
type recomputeMsg struct{ seq int }

// Model is the bubbletea model
type Model struct {
	session *session.Session
	logger  logging.Logger

	input  string // data file
	output string // last export path

	params   spectrum.Parameters
	opts     render.PlotOptions
	rejected []string // zero-list entries that did not parse

	delay   time.Duration
	seq     int
	pending bool

	mode   mode
	editor textinput.Model
	help   help.Model

	width  int
	height int
}

// New builds the model from the session and the starting configuration.
// The session is expected to have the input file loaded already.
func New(s *session.Session, cfg *config.Config) (*Model, error) {
	params, rejected, err := cfg.Parameters()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.PlotOptions()
	if err != nil {
		return nil, err
	}

	editor := textinput.New()
	editor.CharLimit = 256
	editor.Width = 50

	return &Model{
		session: s,
		logger: logging.WithFields(logging.Fields{
			"component": "tui",
		}),
		input:    cfg.Input,
		output:   cfg.Output,
		params:   params,
		opts:     opts,
		rejected: rejected,
		delay:    cfg.Debounce(),
		editor:   editor,
		help:     help.New(),
		width:    80,
		height:   24,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	m.logger.Debug("Initialised", logging.Fields{"input": m.input})
	return m.recomputeNow()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recomputeMsg:
		if msg.seq != m.seq {
			// superseded by a newer change
			return m, nil
		}
		m.recompute()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeView {
			return m.handleViewKey(msg)
		}
		return m.handleEditorKey(msg)
	}
	return m, nil
}

// Parameters returns the settings the next recompute will use
func (m *Model) Parameters() spectrum.Parameters {
	return m.params.Clone()
}

// PlotOptions returns the current rendering settings
func (m *Model) PlotOptions() render.PlotOptions {
	return m.opts
}

func (m *Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Component):
		if matrix := m.session.Matrix(); matrix != nil {
			m.params.Component = (m.params.Component + 1) % matrix.Components()
		}
	case key.Matches(msg, keys.Window):
		m.params.Window = m.params.Window.Next()
	case key.Matches(msg, keys.Autocorr):
		m.params.Autocorrelation = !m.params.Autocorrelation

	case key.Matches(msg, keys.StepDown):
		m.params.TimeStepFs = math.Max(minTimeStep, roundTenth(m.params.TimeStepFs-timeStepIncrement))
	case key.Matches(msg, keys.StepUp):
		m.params.TimeStepFs = roundTenth(m.params.TimeStepFs + timeStepIncrement)

	case key.Matches(msg, keys.MinDown):
		m.params.FreqMin = math.Max(0, m.params.FreqMin-freqIncrement)
	case key.Matches(msg, keys.MinUp):
		m.params.FreqMin = math.Min(config.MaxFrequency, m.params.FreqMin+freqIncrement)
	case key.Matches(msg, keys.MaxDown):
		m.params.FreqMax = math.Max(0, m.params.FreqMax-freqIncrement)
	case key.Matches(msg, keys.MaxUp):
		m.params.FreqMax = math.Min(config.MaxFrequency, m.params.FreqMax+freqIncrement)

	case key.Matches(msg, keys.ZeroLess):
		m.params.ZeroCount = max(0, m.params.ZeroCount-1)
	case key.Matches(msg, keys.ZeroMore):
		m.params.ZeroCount++

	case key.Matches(msg, keys.ZeroList):
		return m, m.openEditor(modeZeroList, spectrum.FormatZeroFrequencies(m.params.ZeroFrequencies), "1600, 3400")
	case key.Matches(msg, keys.Save):
		path := m.output
		if path == "" {
			path = defaultExportPath
		}
		return m, m.openEditor(modeSavePath, path, defaultExportPath)

	// rendering-only settings, nothing to recompute
	case key.Matches(msg, keys.Color):
		m.opts.Color = m.opts.Color.Next()
		return m, nil
	case key.Matches(msg, keys.Style):
		m.opts.Style = m.opts.Style.Next()
		return m, nil

	case key.Matches(msg, keys.Reload):
		if m.input == "" {
			return m, nil
		}
		if err := m.session.Load(m.input, m.params.TimeStepFs); err != nil {
			return m, nil
		}
		if matrix := m.session.Matrix(); m.params.Component >= matrix.Components() {
			m.params.Component = 0
		}
		return m, m.recomputeNow()

	default:
		return m, nil
	}

	return m, m.schedule()
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.closeEditor()
		return m, nil

	case key.Matches(msg, keys.Confirm):
		value := strings.TrimSpace(m.editor.Value())
		current := m.mode
		m.closeEditor()

		switch current {
		case modeZeroList:
			m.params.ZeroFrequencies, m.rejected = spectrum.ParseZeroFrequencies(value)
			if len(m.rejected) > 0 {
				m.logger.Debug("Ignored zero-list entries", logging.Fields{"rejected": m.rejected})
			}
			return m, m.schedule()
		case modeSavePath:
			m.export(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) openEditor(md mode, value, placeholder string) tea.Cmd {
	m.mode = md
	m.editor.SetValue(value)
	m.editor.Placeholder = placeholder
	m.editor.CursorEnd()
	m.editor.Focus()
	return textinput.Blink
}

func (m *Model) closeEditor() {
	m.mode = modeView
	m.editor.Blur()
}

func (m *Model) export(path string) {
	if path == "" {
		m.session.SetStatus(session.StatusWarn, "no export path given")
		return
	}
	// export what the user sees, not a result one debounce behind
	if m.pending {
		m.recompute()
	}
	m.output = path
	_ = m.session.Export(path, m.opts)
}

// schedule requests a recompute after the debounce delay, replacing any
// request still waiting
func (m *Model) schedule() tea.Cmd {
	m.seq++
	m.pending = true
	id := m.seq
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return recomputeMsg{seq: id}
	})
}

func (m *Model) recomputeNow() tea.Cmd {
	m.seq++
	m.pending = true
	id := m.seq
	return func() tea.Msg {
		return recomputeMsg{seq: id}
	}
}

func (m *Model) recompute() {
	m.pending = false
	if _, err := m.session.Recompute(m.params.Clone()); err != nil {
		m.logger.Debug("Recompute failed", logging.Fields{"error": err.Error()})
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
