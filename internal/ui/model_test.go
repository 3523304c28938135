package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/menu"
	"github.com/neur0map/tinybombe/internal/network"
	"github.com/neur0map/tinybombe/internal/scanner"
)

const plain = "ACEDGBEACHHEADGAGBADGBEADEDGBEACHBABEGFEDGDAD"

func newTestScanner(t *testing.T) *scanner.Scanner {
	t.Helper()
	start, err := cipher.ParseWindow("CAA")
	require.NoError(t, err)
	enc := cipher.NewScrambler(start, cipher.Identity())
	require.NoError(t, enc.SetPlugboard("EA DG"))
	cipherText, err := enc.EncryptText(plain)
	require.NoError(t, err)

	links, err := menu.Build("     BEACHHEAD", cipherText)
	require.NoError(t, err)

	net := network.New(network.WithDiagonalBoard(network.NewSwitches()))
	return scanner.New(net, links, cipher.NewScrambler(0, cipher.Identity()),
		scanner.WithSource(scanner.Source{Node: network.NodeAt(4, 0), Enabled: true}),
		scanner.WithFreeRunning(true),
	)
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// sweep feeds ticks until the view stops running
func sweep(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.running && i <= cipher.Positions; i++ {
		next, _ := m.Update(tickMsg{gen: m.gen, time: time.Now()})
		m = next.(Model)
	}
	require.False(t, m.running, "sweep did not halt")
	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel(newTestScanner(t), Options{})

	assert.False(t, m.Running())
	assert.Equal(t, "halted", m.status)
	assert.Equal(t, 0, m.steps)
	assert.Equal(t, cipher.Position(0), m.last.Position)
	assert.NotNil(t, m.Init())
}

func TestHandleResize(t *testing.T) {
	m := NewModel(newTestScanner(t), Options{})
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
	assert.Equal(t, 60, m.progress.Width)
}

func TestFullSweepMatchesScanner(t *testing.T) {
	ref := newTestScanner(t)
	want, err := ref.Run(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, want.Completed)

	sc := newTestScanner(t)
	m, cmd := press(t, NewModel(sc, Options{}), " ")
	require.True(t, m.Running())
	require.NotNil(t, cmd)

	m = sweep(t, m)
	res := m.Result()
	assert.True(t, res.Completed)
	assert.False(t, res.Cancelled)
	assert.Equal(t, cipher.Positions, res.Steps)
	assert.Equal(t, want.Stops, res.Stops)
	assert.Equal(t, cipher.Position(0), sc.Position())
}

func TestHaltOnStop(t *testing.T) {
	sc := newTestScanner(t)
	m, _ := press(t, NewModel(sc, Options{HaltOnStop: true}), " ")
	m = sweep(t, m)

	require.Len(t, m.stops, 1)
	assert.Equal(t, "paused at stop", m.status)
	assert.True(t, m.Result().Paused)
	assert.Equal(t, m.stops[0].Position, sc.Position())

	// resuming moves past the stop
	m, _ = press(t, m, " ")
	assert.True(t, m.Running())
	assert.Equal(t, m.stops[0].Position.Add(1), sc.Position())
}

func TestStaleTickIgnored(t *testing.T) {
	m, _ := press(t, NewModel(newTestScanner(t), Options{}), " ")
	old := m.gen
	m, _ = press(t, m, " ")
	m, _ = press(t, m, " ")
	require.True(t, m.Running())

	next, cmd := m.Update(tickMsg{gen: old})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.steps)
}

func TestStepAndBack(t *testing.T) {
	sc := newTestScanner(t)
	m := NewModel(sc, Options{})

	m, _ = press(t, m, "n")
	m, _ = press(t, m, "n")
	assert.Equal(t, cipher.Position(2), sc.Position())
	assert.Equal(t, cipher.Position(2), m.last.Position)

	m, _ = press(t, m, "b")
	assert.Equal(t, cipher.Position(1), m.last.Position)

	m, _ = press(t, m, "b")
	m, _ = press(t, m, "b")
	assert.Equal(t, "HHH", m.last.Position.Window())
}

func TestRestart(t *testing.T) {
	sc := newTestScanner(t)
	m, _ := press(t, NewModel(sc, Options{}), " ")
	for i := 0; i < 5; i++ {
		next, _ := m.Update(tickMsg{gen: m.gen})
		m = next.(Model)
	}
	require.Equal(t, 5, m.steps)

	m, _ = press(t, m, "r")
	assert.False(t, m.Running())
	assert.Equal(t, 0, m.steps)
	assert.Empty(t, m.stops)
	assert.Equal(t, cipher.Position(0), sc.Position())
}

func TestSwitchKeys(t *testing.T) {
	sc := newTestScanner(t)
	m := NewModel(sc, Options{})

	m, _ = press(t, m, "o")
	for _, d := range sc.Network().DiagonalLinks() {
		assert.False(t, d.Closed, d.Name)
	}
	assert.Equal(t, "diagonal switches open", m.status)

	m, _ = press(t, m, "t")
	for _, d := range sc.Network().DiagonalLinks() {
		assert.True(t, d.Closed, d.Name)
	}

	m, _ = press(t, m, "o")
	_, _ = press(t, m, "c")
	for _, d := range sc.Network().DiagonalLinks() {
		assert.True(t, d.Closed, d.Name)
	}
}

func TestSourceToggle(t *testing.T) {
	sc := newTestScanner(t)
	m, _ := press(t, NewModel(sc, Options{}), "v")

	assert.False(t, sc.Source().Enabled)
	assert.Equal(t, 0, m.last.HotCount)
	assert.Equal(t, "voltage off", m.status)
}

func TestQuitMidSweep(t *testing.T) {
	m, _ := press(t, NewModel(newTestScanner(t), Options{}), " ")
	next, _ := m.Update(tickMsg{gen: m.gen})
	m = next.(Model)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.True(t, m.Result().Cancelled)
	assert.Equal(t, "", m.View())
}

func TestStopAndEndMessages(t *testing.T) {
	m := NewModel(newTestScanner(t), Options{})

	next, _ := m.Update(StopMsg{Stop: scanner.Stop{Position: 128, HotCount: 1}})
	m = next.(Model)
	assert.Equal(t, "stop at CAA (1 hot)", m.status)

	next, _ = m.Update(EndMsg{Result: scanner.Result{Elapsed: 1500 * time.Microsecond}})
	m = next.(Model)
	assert.True(t, strings.HasPrefix(m.status, "end of cycle: 0 stops"))
}

func TestView(t *testing.T) {
	m := NewModel(newTestScanner(t), Options{})
	out := m.View()

	assert.Contains(t, out, "tinybombe")
	assert.Contains(t, out, "window")
	assert.Contains(t, out, "AAA")
	assert.Contains(t, out, "stops (0)")
	assert.Contains(t, out, "E.a")
}

func TestRunnerLogsToGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)

	r := NewRunner(newTestScanner(t), Options{Logger: l}, false,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	)
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Cancelled)
	assert.Contains(t, buf.String(), "TUI starting")
	assert.Contains(t, buf.String(), "TUI stopped")
}
