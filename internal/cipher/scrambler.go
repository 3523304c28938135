package cipher

import (
	"fmt"
	"strings"
)

// Scrambler is a working cipher machine: the rotor position plus the
// plugboard. The rotors step once after every symbol is encoded.
type Scrambler struct {
	pos  Position
	plug Plugboard
}

// NewScrambler returns a scrambler at pos with the given plugboard.
func NewScrambler(pos Position, plug Plugboard) *Scrambler {
	return &Scrambler{pos: pos.Norm(), plug: plug}
}

// Position returns the current rotor position.
func (s *Scrambler) Position() Position { return s.pos }

// Plugboard returns the current plugboard.
func (s *Scrambler) Plugboard() Plugboard { return s.plug }

// Reset moves the rotors to pos without touching the plugboard.
func (s *Scrambler) Reset(pos Position) { s.pos = pos.Norm() }

// Step advances the rotors by one position.
func (s *Scrambler) Step() { s.pos = s.pos.Add(1) }

// Clone returns an independent copy.
func (s *Scrambler) Clone() *Scrambler {
	c := *s
	return &c
}

// SetPlugboard replaces the plugboard from a pair specification. On failure
// the plugboard is reset to identity and the error describes the problem.
func (s *Scrambler) SetPlugboard(spec string) error {
	p, err := ParsePlugboard(spec)
	s.plug = p
	return err
}

// EncryptSymbol encodes c at the current position and then steps. The same
// call decrypts, since both the rotor row and the plugboard are involutions.
func (s *Scrambler) EncryptSymbol(c Symbol) Symbol {
	k := s.plug[c]
	pre := table[s.pos][k]
	out := s.plug[pre]
	s.Step()
	return out
}

// EncryptText encodes every letter of text in order, one rotor step per
// letter. Lower-case input is folded to upper case. Letters outside A..H are
// rejected before any stepping happens.
func (s *Scrambler) EncryptText(text string) (string, error) {
	text = strings.ToUpper(text)
	for i := 0; i < len(text); i++ {
		if !IsLetter(text[i]) {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, text[i], i)
		}
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = s.EncryptSymbol(Symbol(text[i] - 'A')).Letter()
	}
	return string(out), nil
}

// EdgeMap is the wiring a bombe scrambler presents between two buses at pos
// for a plugboard guess: wire i on one side joins wire m[i] on the other.
func EdgeMap(pos Position, plug Plugboard) Permutation {
	row := Row(pos)
	var m Permutation
	for i := range m {
		m[i] = plug[row[plug[i]]]
	}
	return m
}
