package network

import (
	"fmt"
	"strings"

	"github.com/neur0map/tinybombe/internal/cipher"
)

// DiagonalLayout names the 28 diagonal board wires, one per unordered pair of
// distinct buses.
var DiagonalLayout = []string{
	"AB", "AC", "AD", "AE", "AF", "AG", "AH",
	"BC", "BD", "BE", "BF", "BG", "BH",
	"CD", "CE", "CF", "CG", "CH",
	"DE", "DF", "DG", "DH",
	"EF", "EG", "EH",
	"FG", "FH",
	"GH",
}

// Switches records whether each diagonal board switch is closed. It outlives
// any single network so that switch positions survive rebuilds.
type Switches map[string]bool

// NewSwitches returns every diagonal switch closed.
func NewSwitches() Switches {
	s := make(Switches, len(DiagonalLayout))
	for _, name := range DiagonalLayout {
		s[name] = true
	}
	return s
}

// SwitchName canonicalizes a two letter bus pair, so "ea" and "AE" agree.
func SwitchName(name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) != 2 {
		return "", fmt.Errorf("diagonal switch %q: want two bus letters", name)
	}
	a, errA := cipher.ParseSymbol(rune(name[0]))
	b, errB := cipher.ParseSymbol(rune(name[1]))
	if errA != nil || errB != nil || a == b {
		return "", fmt.Errorf("diagonal switch %q: want two distinct letters A-H", name)
	}
	if a > b {
		a, b = b, a
	}
	return string([]byte{a.Letter(), b.Letter()}), nil
}

// Closed reports whether the named switch is closed. Unknown switches count
// as closed, the factory default.
func (s Switches) Closed(name string) bool {
	closed, ok := s[name]
	return !ok || closed
}

// Set opens or closes one switch.
func (s Switches) Set(name string, closed bool) error {
	canon, err := SwitchName(name)
	if err != nil {
		return err
	}
	s[canon] = closed
	return nil
}

// Toggle flips one switch and returns its new state.
func (s Switches) Toggle(name string) (bool, error) {
	canon, err := SwitchName(name)
	if err != nil {
		return false, err
	}
	s[canon] = !s.Closed(canon)
	return s[canon], nil
}

func (s Switches) CloseAll() { s.setAll(func(bool) bool { return true }) }

func (s Switches) OpenAll() { s.setAll(func(bool) bool { return false }) }

func (s Switches) ToggleAll() { s.setAll(func(c bool) bool { return !c }) }

func (s Switches) setAll(f func(bool) bool) {
	for _, name := range DiagonalLayout {
		s[name] = f(s.Closed(name))
	}
}

// Open lists the open switches in layout order.
func (s Switches) Open() []string {
	var open []string
	for _, name := range DiagonalLayout {
		if !s.Closed(name) {
			open = append(open, name)
		}
	}
	return open
}
