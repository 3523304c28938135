// Package ui is the interactive watch view: it steps a scanner one rotor
// position per tick and draws the 64 bus wires as they light up.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/scanner"
)

// Options tune the watch view.
type Options struct {
	Delay      time.Duration
	HaltOnStop bool
	AutoStart  bool
	Colors     map[string]string
	Logger     *log.Logger
	Now        func() time.Time
}

// Model is the bubbletea model of the watch view
type Model struct {
	scanner *scanner.Scanner
	start   cipher.Position
	opts    Options

	keys     KeyMap
	styles   Styles
	help     help.Model
	progress progress.Model
	spinner  spinner.Model

	running bool
	gen     int
	last    scanner.StepResult
	steps   int
	stops   []scanner.Stop
	started time.Time
	elapsed time.Duration
	ended   bool
	atStop  bool // paused on a stop, resuming moves past it
	status  string

	width, height int
	quitting      bool
	logger        *log.Logger
}

// NewModel builds a watch view over sc. The sweep starts at the scanner's
// current position.
func NewModel(sc *scanner.Scanner, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	h := help.New()
	h.ShowAll = false

	m := Model{
		scanner:  sc,
		start:    sc.Position(),
		opts:     opts,
		keys:     DefaultKeyMap(),
		styles:   NewStyles(opts.Colors),
		help:     h,
		progress: progress.New(progress.WithDefaultGradient()),
		spinner:  sp,
		logger:   logger,
		status:   "halted",
	}
	m.last = sc.Evaluate()
	return m
}

// Init starts the spinner and, with AutoStart, the sweep
func (m Model) Init() tea.Cmd {
	if m.opts.AutoStart {
		return tea.Batch(m.spinner.Tick, func() tea.Msg { return startMsg{} })
	}
	return m.spinner.Tick
}

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.startRunning()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-20, 10), 60)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if !m.running || msg.gen != m.gen {
			return m, nil
		}
		return m.advance()

	case StopMsg:
		m.status = fmt.Sprintf("stop at %s (%d hot)", msg.Stop.Window(), msg.Stop.HotCount)
		return m, nil

	case EndMsg:
		m.status = fmt.Sprintf("end of cycle: %d stops in %s", len(msg.Result.Stops), msg.Result.Elapsed.Round(time.Millisecond))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		if p, ok := pm.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.running = false
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Run):
		if m.running {
			m.pause("paused")
			return m, nil
		}
		return m.startRunning()

	case key.Matches(msg, m.keys.Step):
		m.pause("halted")
		if m.ended {
			m.restart()
		}
		m.scanner.Forward()
		m.last = m.scanner.Evaluate()

	case key.Matches(msg, m.keys.Back):
		m.pause("halted")
		m.scanner.Back()
		m.last = m.scanner.Evaluate()

	case key.Matches(msg, m.keys.Restart):
		m.pause("halted")
		m.restart()

	case key.Matches(msg, m.keys.OpenAll):
		m.setSwitches(func(bool) bool { return false })
		m.status = "diagonal switches open"

	case key.Matches(msg, m.keys.CloseAll):
		m.setSwitches(func(bool) bool { return true })
		m.status = "diagonal switches closed"

	case key.Matches(msg, m.keys.ToggleAll):
		m.setSwitches(func(c bool) bool { return !c })
		m.status = "diagonal switches toggled"

	case key.Matches(msg, m.keys.Source):
		src := m.scanner.Source()
		src.Enabled = !src.Enabled
		m.scanner.SetSource(src)
		m.last = m.scanner.Evaluate()
		m.status = "voltage off"
		if src.Enabled {
			m.status = "voltage on"
		}
	}
	return m, nil
}

func (m Model) startRunning() (tea.Model, tea.Cmd) {
	if m.ended {
		m.restart()
	}
	if m.steps == 0 {
		m.started = m.opts.Now()
	}
	if m.atStop {
		m.atStop = false
		if m.scanner.Forward() {
			return m.finish(nil)
		}
	}
	m.running = true
	m.gen++
	m.status = "stepping"
	m.logger.Debug("sweep running", "window", m.scanner.Position().Window())
	return m, m.tick()
}

func (m *Model) pause(status string) {
	if m.running {
		m.running = false
		m.gen++
	}
	m.atStop = false
	m.status = status
}

// restart rewinds to the start window and forgets earlier stops
func (m *Model) restart() {
	m.scanner.Seek(m.start)
	m.scanner.ClearStops()
	m.stops = nil
	m.steps = 0
	m.elapsed = 0
	m.ended = false
	m.last = m.scanner.Evaluate()
}

func (m *Model) setSwitches(f func(closed bool) bool) {
	net := m.scanner.Network()
	for _, d := range net.DiagonalLinks() {
		if err := net.SetSwitch(d.Name, f(d.Closed)); err != nil {
			m.logger.Warn("switch not set", "switch", d.Name, "error", err)
		}
	}
	m.last = m.scanner.Evaluate()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.opts.Delay, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, time: t}
	})
}

// advance evaluates the current position, then moves the rotors on. It
// mirrors one iteration of scanner.Run with the event loop as the yield.
func (m Model) advance() (tea.Model, tea.Cmd) {
	step := m.scanner.Step()
	m.last = step
	m.steps++

	var cmds []tea.Cmd
	if step.Stop {
		all := m.scanner.Stops()
		st := all[len(all)-1]
		m.stops = append(m.stops, st)
		cmds = append(cmds, func() tea.Msg { return StopMsg{Stop: st} })
		m.logger.Info("stop", "window", st.Window(), "hot", st.HotCount)
		if m.opts.HaltOnStop {
			m.pause("paused at stop")
			m.atStop = true
			return m, tea.Batch(cmds...)
		}
	}

	if m.scanner.Forward() {
		return m.finish(cmds)
	}

	cmds = append(cmds, m.tick())
	return m, tea.Batch(cmds...)
}

// finish ends the cycle once the rotors are back at AAA
func (m Model) finish(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m.pause("end of cycle")
	m.ended = true
	m.elapsed = m.opts.Now().Sub(m.started)
	res := m.Result()
	m.logger.Info("end of cycle", "steps", m.steps, "stops", len(m.stops), "elapsed", m.elapsed)
	cmds = append(cmds, func() tea.Msg { return EndMsg{Result: res} })
	return m, tea.Batch(cmds...)
}

// Result summarises what the view has swept so far.
func (m Model) Result() scanner.Result {
	return scanner.Result{
		Start:     m.start,
		Steps:     m.steps,
		Stops:     append([]scanner.Stop(nil), m.stops...),
		Elapsed:   m.elapsed,
		Completed: m.ended,
		Paused:    !m.ended && !m.running && m.steps > 0 && !m.quitting,
		Cancelled: m.quitting && !m.ended,
	}
}

// Running reports whether a sweep is in progress.
func (m Model) Running() bool { return m.running }
