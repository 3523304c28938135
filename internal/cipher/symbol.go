package cipher

import "fmt"

// Alphabet is the number of letters the machine works with.
const Alphabet = 8

// Symbol is one of the eight letters A..H, held as 0..7.
type Symbol uint8

// ParseSymbol converts an upper- or lower-case letter A..H into a Symbol.
func ParseSymbol(r rune) (Symbol, error) {
	switch {
	case r >= 'A' && r <= 'H':
		return Symbol(r - 'A'), nil
	case r >= 'a' && r <= 'h':
		return Symbol(r - 'a'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
}

// Valid reports whether s is inside the alphabet.
func (s Symbol) Valid() bool { return s < Alphabet }

// Letter renders the symbol as an upper-case bus letter.
func (s Symbol) Letter() byte { return 'A' + byte(s) }

// WireLetter renders the symbol as a lower-case wire letter.
func (s Symbol) WireLetter() byte { return 'a' + byte(s) }

func (s Symbol) String() string { return string(s.Letter()) }

// IsLetter reports whether b is one of the upper-case letters A..H.
func IsLetter(b byte) bool { return b >= 'A' && b <= 'H' }
