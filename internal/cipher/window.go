package cipher

import "fmt"

// Positions is the number of distinct rotor positions, AAA..HHH.
const Positions = Alphabet * Alphabet * Alphabet

// Position is a rotor state in 0..511.
type Position int

// Norm folds p into 0..511.
func (p Position) Norm() Position {
	p %= Positions
	if p < 0 {
		p += Positions
	}
	return p
}

// Add returns the position n steps after p.
func (p Position) Add(n int) Position { return (p + Position(n)).Norm() }

// Window renders p as three base-8 letters, most significant rotor first.
func (p Position) Window() string {
	p = p.Norm()
	return string([]byte{
		'A' + byte(p/64),
		'A' + byte(p/8%8),
		'A' + byte(p%8),
	})
}

func (p Position) String() string { return p.Window() }

// ParseWindow is the inverse of Window. Lower-case letters are accepted.
func ParseWindow(s string) (Position, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("%w: %q must be three letters", ErrInvalidWindow, s)
	}
	var p Position
	for i := 0; i < 3; i++ {
		sym, err := ParseSymbol(rune(s[i]))
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidWindow, s, err)
		}
		p = p*Alphabet + Position(sym)
	}
	return p, nil
}
