// Package menu turns a crib aligned against ciphertext into the list of
// scrambler hypotheses a bombe run is wired from.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neur0map/tinybombe/internal/cipher"
)

// Wildcard marks a crib position that should not produce a scrambler.
const Wildcard = ' '

// ErrInvalidCrib is returned when a crib cannot be aligned with the ciphertext.
var ErrInvalidCrib = errors.New("invalid crib")

// CribError pinpoints the alignment problem. Position is -1 when the problem
// is not tied to one column, e.g. an empty overlap.
type CribError struct {
	Position int
	Reason   string
}

func (e *CribError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("crib: %s", e.Reason)
	}
	return fmt.Sprintf("crib: position %d: %s", e.Position, e.Reason)
}

func (e *CribError) Unwrap() error { return ErrInvalidCrib }

// Link is one scrambler of the menu: it joins two buses and sits StepOffset
// positions ahead of the machine's base rotor position.
type Link struct {
	LeftBus    cipher.Symbol
	RightBus   cipher.Symbol
	Column     int
	StepOffset int
}

func (l Link) String() string {
	return fmt.Sprintf("%s-%s(+%d)", l.LeftBus, l.RightBus, l.StepOffset)
}

// Menu is the ordered list of links, one per non-wildcard crib position.
type Menu []Link

// Buses reports which buses have at least one scrambler attached.
func (m Menu) Buses() [cipher.Alphabet]bool {
	var used [cipher.Alphabet]bool
	for _, l := range m {
		used[l.LeftBus] = true
		used[l.RightBus] = true
	}
	return used
}

// NormalizeCrib upper-cases the crib and turns every character outside A..H
// into the wildcard.
func NormalizeCrib(crib string) string {
	crib = strings.ToUpper(crib)
	var sb strings.Builder
	sb.Grow(len(crib))
	for i := 0; i < len(crib); i++ {
		if cipher.IsLetter(crib[i]) {
			sb.WriteByte(crib[i])
		} else {
			sb.WriteByte(Wildcard)
		}
	}
	return sb.String()
}

// Validate checks a normalized crib against the ciphertext over their common
// length. A crib letter equal to the ciphertext letter beneath it is
// impossible, since no letter enciphers to itself.
func Validate(crib, cipherText string) error {
	n := min(len(crib), len(cipherText))
	if n == 0 {
		return &CribError{Position: -1, Reason: "crib and ciphertext do not overlap"}
	}
	for i := 0; i < n; i++ {
		c := cipherText[i]
		if !cipher.IsLetter(c) {
			return &CribError{Position: i, Reason: fmt.Sprintf("ciphertext letter %q outside A-H", c)}
		}
		if crib[i] == c {
			return &CribError{Position: i, Reason: fmt.Sprintf("%c cannot encipher to itself", c)}
		}
	}
	return nil
}

// Build validates the alignment and returns the menu in crib order. Links
// implying the same bus pair are kept as separate scramblers.
func Build(crib, cipherText string) (Menu, error) {
	crib = NormalizeCrib(crib)
	cipherText = strings.ToUpper(cipherText)
	if err := Validate(crib, cipherText); err != nil {
		return nil, err
	}

	n := min(len(crib), len(cipherText))
	m := make(Menu, 0, n)
	for i := 0; i < n; i++ {
		if crib[i] == Wildcard {
			continue
		}
		a := cipher.Symbol(crib[i] - 'A')
		b := cipher.Symbol(cipherText[i] - 'A')
		left, right := min(a, b), max(a, b)
		m = append(m, Link{
			LeftBus:    left,
			RightBus:   right,
			Column:     (int(left) + int(right)) / 2,
			StepOffset: i,
		})
	}
	return m, nil
}
