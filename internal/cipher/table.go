package cipher

import "fmt"

// Permutation is the letter mapping of the rotor stack at one position.
type Permutation [Alphabet]Symbol

// Apply maps s through the permutation.
func (p Permutation) Apply(s Symbol) Symbol { return p[s] }

func (p Permutation) String() string {
	var buf [Alphabet]byte
	for i, s := range p {
		buf[i] = s.Letter()
	}
	return string(buf[:])
}

// Validate checks that p is an involution with no fixed point.
func (p Permutation) Validate() error {
	for i, j := range p {
		if !j.Valid() {
			return fmt.Errorf("%w: index %d maps to %d", ErrInvalidSymbol, i, j)
		}
		if int(j) == i {
			return fmt.Errorf("%c maps to itself", Symbol(i).Letter())
		}
		if int(p[j]) != i {
			return fmt.Errorf("%c->%c but %c->%c", Symbol(i).Letter(), j.Letter(), j.Letter(), p[j].Letter())
		}
	}
	return nil
}

// Table holds the scrambler permutation for every rotor position.
type Table [Positions]Permutation

var table Table

func init() {
	for pos, row := range rows {
		if len(row) != Alphabet {
			panic(fmt.Sprintf("cipher: row %d has %d letters", pos, len(row)))
		}
		for i := 0; i < Alphabet; i++ {
			table[pos][i] = Symbol(row[i] - 'A')
		}
		if err := table[pos].Validate(); err != nil {
			panic(fmt.Sprintf("cipher: row %d (%s): %v", pos, Position(pos).Window(), err))
		}
	}
}

// Row returns the permutation wired at pos.
func Row(pos Position) Permutation { return table[pos.Norm()] }

// Rows returns a copy of the whole table.
func Rows() Table { return table }
