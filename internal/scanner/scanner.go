// Package scanner drives a bombe through its rotor positions, testing the
// hypothesis network at each one and collecting the positions that survive.
package scanner

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/menu"
	"github.com/neur0map/tinybombe/internal/network"
)

// State of the machine.
type State int

const (
	Halted State = iota
	Stepping
)

func (s State) String() string {
	switch s {
	case Halted:
		return "halted"
	case Stepping:
		return "stepping"
	default:
		return "unknown"
	}
}

// Source is where the test voltage is applied: the wire whose hypothesis is
// under test.
type Source struct {
	Node    network.Node
	Enabled bool
}

// DefaultSource tests "E is steckered to c".
var DefaultSource = Source{Node: network.NodeAt(4, 2), Enabled: true}

// IsStop is the test register: exactly one or exactly seven hot wires on the
// test bus mark a candidate position.
func IsStop(hot int) bool { return hot == 1 || hot == 7 }

// StepResult describes one evaluated rotor position.
type StepResult struct {
	Position cipher.Position
	HotCount int
	Stop     bool
	Snapshot network.Snapshot
}

// Stop is a candidate position for further manual analysis.
type Stop struct {
	Position cipher.Position
	HotCount int
	HotWires []cipher.Symbol
}

// Window renders the stop position as rotor letters.
func (s Stop) Window() string { return s.Position.Window() }

// Result summarises one call to Run.
type Result struct {
	Start     cipher.Position
	Steps     int
	Stops     []Stop
	Elapsed   time.Duration
	Completed bool // rotors wrapped back to AAA
	Paused    bool // halted on a stop, can Resume
	Cancelled bool
}

// Observer is told about every step of a free-running sweep. OnStep is the
// point where a sweep yields between positions.
type Observer interface {
	OnStep(StepResult)
	OnStop(Stop)
	OnEnd(Result)
}

// Funcs adapts plain functions to Observer. Nil fields are skipped.
type Funcs struct {
	Step func(StepResult)
	Stop func(Stop)
	End  func(Result)
}

func (f Funcs) OnStep(r StepResult) {
	if f.Step != nil {
		f.Step(r)
	}
}

func (f Funcs) OnStop(s Stop) {
	if f.Stop != nil {
		f.Stop(s)
	}
}

func (f Funcs) OnEnd(r Result) {
	if f.End != nil {
		f.End(r)
	}
}

// Scanner owns a network and a scrambler for the duration of a sweep.
// Independent sweeps need independent scanners.
type Scanner struct {
	net       *network.Network
	links     menu.Menu
	scrambler *cipher.Scrambler

	source      Source
	freeRunning bool
	haltOnStop  bool

	state  State
	stops  []Stop
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithSource sets the test voltage attachment.
func WithSource(src Source) Option {
	return func(s *Scanner) { s.source = src }
}

// WithFreeRunning makes Run sweep until the rotors wrap instead of taking a
// single step.
func WithFreeRunning(on bool) Option {
	return func(s *Scanner) { s.freeRunning = on }
}

// WithHaltOnStop pauses a free-running sweep at every stop.
func WithHaltOnStop(on bool) Option {
	return func(s *Scanner) { s.haltOnStop = on }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for measuring a sweep.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) { s.now = now }
}

// New returns a halted scanner. The scrambler supplies the starting rotor
// position and the plugboard guess; the scanner only ever moves its rotors.
func New(net *network.Network, links menu.Menu, scrambler *cipher.Scrambler, opts ...Option) *Scanner {
	logger := log.New(io.Discard)
	s := &Scanner{
		net:       net,
		links:     links,
		scrambler: scrambler,
		source:    DefaultSource,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) State() State                { return s.state }
func (s *Scanner) Position() cipher.Position   { return s.scrambler.Position() }
func (s *Scanner) Network() *network.Network   { return s.net }
func (s *Scanner) Menu() menu.Menu             { return s.links }
func (s *Scanner) Source() Source              { return s.source }
func (s *Scanner) Plugboard() cipher.Plugboard { return s.scrambler.Plugboard() }

// Stops returns every stop recorded so far.
func (s *Scanner) Stops() []Stop { return append([]Stop(nil), s.stops...) }

// ClearStops forgets recorded stops.
func (s *Scanner) ClearStops() { s.stops = nil }

// SetSource moves or switches the test voltage. It takes effect at the next
// evaluation.
func (s *Scanner) SetSource(src Source) { s.source = src }

// SetFreeRunning switches between sweeping and single stepping.
func (s *Scanner) SetFreeRunning(on bool) { s.freeRunning = on }

// Seek moves the rotors to pos.
func (s *Scanner) Seek(pos cipher.Position) { s.scrambler.Reset(pos) }

// Forward moves the rotors one position on and reports whether they wrapped.
func (s *Scanner) Forward() bool {
	s.scrambler.Step()
	return s.scrambler.Position() == 0
}

// Back moves the rotors one position back.
func (s *Scanner) Back() { s.scrambler.Reset(s.scrambler.Position().Add(-1)) }

// Evaluate wires the network for the current position, applies the source
// and reads the test register. Nothing is recorded and the rotors stay put.
func (s *Scanner) Evaluate() StepResult {
	pos := s.scrambler.Position()
	s.net.Reset()
	s.net.RebuildScramblerEdges(s.links, pos, s.scrambler.Plugboard())
	if s.source.Enabled {
		s.net.Propagate(s.source.Node)
	}
	hot := s.net.CountHot(s.source.Node.Bus())
	return StepResult{
		Position: pos,
		HotCount: hot,
		Stop:     IsStop(hot),
		Snapshot: s.net.Snapshot(),
	}
}

// Step evaluates the current position once, recording a stop if the test
// register fires. The rotors do not move.
func (s *Scanner) Step() StepResult {
	r := s.Evaluate()
	if r.Stop {
		s.record(r)
	}
	return r
}

func (s *Scanner) record(r StepResult) Stop {
	st := Stop{
		Position: r.Position,
		HotCount: r.HotCount,
		HotWires: r.Snapshot.HotWires(s.source.Node.Bus()),
	}
	s.stops = append(s.stops, st)
	s.logger.Debug("stop", "window", st.Window(), "hot", st.HotCount)
	return st
}

// Run steps the machine. Without free running it evaluates one position and
// halts. Free running, it evaluates, yields to obs, then advances until the
// rotors wrap back to AAA, the context is cancelled, or (with halt on stop)
// a stop is found. Cancellation is honoured only between positions.
func (s *Scanner) Run(ctx context.Context, obs Observer) (Result, error) {
	if obs == nil {
		obs = Funcs{}
	}
	s.state = Stepping
	defer func() { s.state = Halted }()

	started := s.now()
	res := Result{Start: s.Position()}
	s.logger.Debug("sweep starting", "window", res.Start.Window(), "free", s.freeRunning, "links", len(s.links))

	for {
		step := s.Evaluate()
		res.Steps++
		if step.Stop {
			st := s.record(step)
			res.Stops = append(res.Stops, st)
			obs.OnStop(st)
		}
		obs.OnStep(step)

		if !s.freeRunning {
			res.Elapsed = s.now().Sub(started)
			return res, nil
		}
		if step.Stop && s.haltOnStop {
			res.Paused = true
			res.Elapsed = s.now().Sub(started)
			s.logger.Info("paused at stop", "window", step.Position.Window())
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			res.Cancelled = true
			res.Elapsed = s.now().Sub(started)
			s.logger.Info("sweep cancelled", "window", step.Position.Window(), "steps", res.Steps)
			return res, err
		}
		if s.Forward() {
			res.Completed = true
			res.Elapsed = s.now().Sub(started)
			s.logger.Info("end of cycle", "steps", res.Steps, "stops", len(res.Stops), "elapsed", res.Elapsed)
			obs.OnEnd(res)
			return res, nil
		}
	}
}

// Resume moves past the current position and carries on sweeping. If the
// rotors wrap while moving on, the cycle is already complete.
func (s *Scanner) Resume(ctx context.Context, obs Observer) (Result, error) {
	if s.Forward() {
		res := Result{Start: 0, Completed: true}
		if obs != nil {
			obs.OnEnd(res)
		}
		return res, nil
	}
	return s.Run(ctx, obs)
}
