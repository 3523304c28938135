package ui

import (
	"time"

	"github.com/neur0map/tinybombe/internal/scanner"
)

// tickMsg advances a running sweep by one position. gen ties a tick to the
// run that scheduled it so a pause followed by a quick resume never leaves
// two tick chains alive.
type tickMsg struct {
	gen  int
	time time.Time
}

// startMsg starts the sweep as soon as the program is up
type startMsg struct{}

// StopMsg reports a stop found by the sweep
type StopMsg struct {
	Stop scanner.Stop
}

// EndMsg reports the rotors wrapping back to AAA
type EndMsg struct {
	Result scanner.Result
}
