// Package puzzle makes practice intercepts: a random machine setting and a
// message that hides a known crib word.
package puzzle

import (
	"fmt"
	"strings"

	"github.com/neur0map/tinybombe/internal/cipher"
)

// Separator stands in for a space between words, the alphabet has none.
const Separator = 'G'

// Source is the randomness used to build puzzles. *math/rand/v2.Rand
// satisfies it; tests can supply a scripted source.
type Source interface {
	IntN(n int) int
}

var shortWords = []string{
	"A", "ABE", "BE", "BED", "BEE", "ADD", "ADA", "FAB",
	"FED", "CAB", "CAD", "DAD", "BAD", "FAD", "FEE", "EBB",
}

var longWords = []string{
	"ACED", "BEAD", "BEACHBABE", "BEACHHEAD", "BEACHED", "BEDDED", "BABE", "BEHEAD", "DEAD",
	"DEAF", "DEADHEAD", "DEADHEADED", "EACH", "DEED", "FACE", "FEED", "FACED",
}

const messageWords = 6

// RandomScrambler picks a start position uniformly over all 512 positions and
// inserts one to four random plugs.
func RandomScrambler(src Source) *cipher.Scrambler {
	pos := cipher.Position(src.IntN(cipher.Positions))

	plug := cipher.Identity()
	free := []cipher.Symbol{0, 1, 2, 3, 4, 5, 6, 7}
	take := func() cipher.Symbol {
		k := src.IntN(len(free))
		s := free[k]
		free = append(free[:k], free[k+1:]...)
		return s
	}
	for n := src.IntN(4) + 1; n > 0; n-- {
		a := take()
		b := take()
		plug.Swap(a, b)
	}
	return cipher.NewScrambler(pos, plug)
}

// RandomMessage strings six words together with the crib as word 1, 2 or 3.
// Short words come before the crib and longer ones after it.
func RandomMessage(src Source, crib string) string {
	cribAt := src.IntN(3) + 1
	words := make([]string, 0, messageWords)
	for i := 0; i < messageWords; i++ {
		switch {
		case i == cribAt:
			words = append(words, crib)
		case i < cribAt:
			words = append(words, shortWords[src.IntN(len(shortWords))])
		default:
			words = append(words, longWords[src.IntN(len(longWords))])
		}
	}
	return strings.Join(words, string(Separator))
}

// Puzzle is a generated intercept together with its solution.
type Puzzle struct {
	Crib       string
	Plaintext  string
	Ciphertext string
	Start      cipher.Position
	Plugboard  cipher.Plugboard
	CribIndex  int
}

// Generate builds a puzzle hiding crib. Spaces inside the crib become the
// word separator; letters outside A..H are rejected.
func Generate(src Source, crib string) (Puzzle, error) {
	crib = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(crib)), " ", string(Separator))
	if crib == "" {
		return Puzzle{}, fmt.Errorf("puzzle: empty crib")
	}

	sc := RandomScrambler(src)
	start := sc.Position()
	plain := RandomMessage(src, crib)
	cipherText, err := sc.EncryptText(plain)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: %w", err)
	}
	return Puzzle{
		Crib:       crib,
		Plaintext:  plain,
		Ciphertext: cipherText,
		Start:      start,
		Plugboard:  sc.Plugboard(),
		CribIndex:  strings.Index(plain, crib),
	}, nil
}

// Hint spells out the solution: wheels, plugboard map, readable plaintext
// and the 1-based crib position.
func (p Puzzle) Hint() string {
	readable := strings.ReplaceAll(p.Plaintext, string(Separator), " ")
	return fmt.Sprintf("wheels=%s PlugboardMap=%s plainText=%q index=%d",
		p.Start.Window(), p.Plugboard.Map(), readable, p.CribIndex+1)
}

// AlignedCrib pads the crib with wildcards so it sits under its ciphertext.
func (p Puzzle) AlignedCrib() string {
	return strings.Repeat(" ", p.CribIndex) + p.Crib
}
