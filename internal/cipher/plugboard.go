package cipher

import "strings"

// Plugboard is the stecker permutation: an involution over the alphabet that
// swaps each plugged pair and leaves unplugged letters alone.
type Plugboard [Alphabet]Symbol

// Identity returns a plugboard with no plugs inserted.
func Identity() Plugboard {
	var p Plugboard
	for i := range p {
		p[i] = Symbol(i)
	}
	return p
}

// ParsePlugboard reads consecutive letter pairs such as "AE DG" or "aedg".
// Whitespace is ignored. On any error the identity plugboard is returned
// alongside a *PlugboardError.
func ParsePlugboard(spec string) (Plugboard, error) {
	letters := strings.ToUpper(strings.Join(strings.Fields(spec), ""))
	if len(letters)%2 != 0 {
		return Identity(), &PlugboardError{Spec: spec, Reason: "has odd length, must be pairs of letters"}
	}

	p := Identity()
	var used [Alphabet]bool
	for i := 0; i < len(letters); i += 2 {
		pair := letters[i : i+2]
		a, errA := ParseSymbol(rune(pair[0]))
		b, errB := ParseSymbol(rune(pair[1]))
		if errA != nil || errB != nil {
			return Identity(), &PlugboardError{Spec: spec, Pair: pair, Reason: "uses a letter outside A-H"}
		}
		if a == b || used[a] || used[b] {
			return Identity(), &PlugboardError{Spec: spec, Pair: pair, Reason: "clashes with other plugs"}
		}
		p[a], p[b] = b, a
		used[a], used[b] = true, true
	}
	return p, nil
}

// Apply maps s through the plugboard.
func (p Plugboard) Apply(s Symbol) Symbol { return p[s] }

// IsIdentity reports whether no plugs are inserted.
func (p Plugboard) IsIdentity() bool { return p == Identity() }

// Pairs lists the plugged pairs, lower letter first, in alphabet order.
func (p Plugboard) Pairs() [][2]Symbol {
	var pairs [][2]Symbol
	for i, j := range p {
		if Symbol(i) < j {
			pairs = append(pairs, [2]Symbol{Symbol(i), j})
		}
	}
	return pairs
}

// String renders the plugs as space separated pairs, e.g. "AE DG".
func (p Plugboard) String() string {
	pairs := p.Pairs()
	parts := make([]string, len(pairs))
	for i, pr := range pairs {
		parts[i] = string([]byte{pr[0].Letter(), pr[1].Letter()})
	}
	return strings.Join(parts, " ")
}

// Map renders the plugboard as the image of ABCDEFGH, e.g. "EBCGADFH".
func (p Plugboard) Map() string {
	var buf [Alphabet]byte
	for i, s := range p {
		buf[i] = s.Letter()
	}
	return string(buf[:])
}

// Swap plugs a and b together. Callers are responsible for keeping pairs
// disjoint.
func (p *Plugboard) Swap(a, b Symbol) {
	p[a], p[b] = p[b], p[a]
}
