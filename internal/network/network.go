// Package network models the bombe's 64 bus wires, the diagonal board that
// cross-connects them and the scrambler wiring rebuilt at every rotor step.
//
// Each wire is a hypothesis, "bus X is steckered to letter y". Voltage applied
// to one wire spreads to every hypothesis it implies. If more than one wire of
// the test bus lights up the starting hypothesis contradicts itself at this
// rotor position.
package network

import (
	"errors"
	"fmt"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/menu"
)

const (
	Buses = cipher.Alphabet
	Wires = cipher.Alphabet
	Nodes = Buses * Wires
)

// Node identifies one wire, packed as bus*8 + wire.
type Node int

// NodeAt returns the node for wire on bus.
func NodeAt(bus, wire cipher.Symbol) Node { return Node(int(bus)*Wires + int(wire)) }

func (n Node) Bus() cipher.Symbol  { return cipher.Symbol(int(n) / Wires) }
func (n Node) Wire() cipher.Symbol { return cipher.Symbol(int(n) % Wires) }

// String renders the node as "E.c".
func (n Node) String() string {
	return fmt.Sprintf("%c.%c", n.Bus().Letter(), n.Wire().WireLetter())
}

// ParseNode reads "Ec", "E.c" or "ec".
func ParseNode(s string) (Node, error) {
	if len(s) == 3 && s[1] == '.' {
		s = s[:1] + s[2:]
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("node %q: want bus letter and wire letter", s)
	}
	bus, err := cipher.ParseSymbol(rune(s[0]))
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", s, err)
	}
	wire, err := cipher.ParseSymbol(rune(s[1]))
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", s, err)
	}
	return NodeAt(bus, wire), nil
}

// DiagonalLink joins X.y with Y.x through a switch.
type DiagonalLink struct {
	Name   string
	A, B   Node
	Closed bool
}

func (d DiagonalLink) other(n Node) Node {
	if n == d.A {
		return d.B
	}
	return d.A
}

// Edge is one scrambler wire between two buses.
type Edge struct {
	Left, Right Node
}

// Snapshot is the hot/cold state of every node.
type Snapshot [Nodes]bool

// CountHot counts the hot wires of bus.
func (s Snapshot) CountHot(bus cipher.Symbol) int {
	count := 0
	for w := cipher.Symbol(0); w < Wires; w++ {
		if s[NodeAt(bus, w)] {
			count++
		}
	}
	return count
}

// HotWires lists the hot wires of bus.
func (s Snapshot) HotWires(bus cipher.Symbol) []cipher.Symbol {
	var wires []cipher.Symbol
	for w := cipher.Symbol(0); w < Wires; w++ {
		if s[NodeAt(bus, w)] {
			wires = append(wires, w)
		}
	}
	return wires
}

var errDiagonalsPresent = errors.New("diagonal board already fitted")

// Network is the bus wiring of one bombe. It is not safe for concurrent use;
// a sweep owns its network exclusively.
type Network struct {
	hot Snapshot

	// diagonal board, fixed once fitted; partner indexes into diag or is -1
	diag    []DiagonalLink
	partner [Nodes]int

	// scrambler wiring, cleared and refilled every step
	edges []Edge
	adj   [Nodes][]Node

	switches Switches
	stack    []Node
}

// Option configures a Network.
type Option func(*Network)

// WithDiagonalBoard fits the diagonal board using the given switch settings.
func WithDiagonalBoard(sw Switches) Option {
	return func(n *Network) {
		_ = n.AddDiagonalLinks(sw)
	}
}

// New returns a network with no scrambler wiring and all nodes cold.
func New(opts ...Option) *Network {
	n := &Network{stack: make([]Node, 0, Nodes)}
	for i := range n.partner {
		n.partner[i] = -1
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddDiagonalLinks fits the 28 diagonal board wires. Switch states are read
// from sw, missing entries are added as closed. It can be called once.
func (n *Network) AddDiagonalLinks(sw Switches) error {
	if n.diag != nil {
		return errDiagonalsPresent
	}
	if sw == nil {
		sw = NewSwitches()
	}
	n.switches = sw
	n.diag = make([]DiagonalLink, 0, len(DiagonalLayout))
	for _, name := range DiagonalLayout {
		if _, ok := sw[name]; !ok {
			sw[name] = true
		}
		src := cipher.Symbol(name[0] - 'A')
		dst := cipher.Symbol(name[1] - 'A')
		link := DiagonalLink{
			Name:   name,
			A:      NodeAt(src, dst),
			B:      NodeAt(dst, src),
			Closed: sw[name],
		}
		n.partner[link.A] = len(n.diag)
		n.partner[link.B] = len(n.diag)
		n.diag = append(n.diag, link)
	}
	return nil
}

// HasDiagonalBoard reports whether diagonal links are fitted.
func (n *Network) HasDiagonalBoard() bool { return n.diag != nil }

// DiagonalLinks returns a copy of the fitted diagonal links.
func (n *Network) DiagonalLinks() []DiagonalLink {
	return append([]DiagonalLink(nil), n.diag...)
}

// SetSwitch opens or closes a diagonal switch on the fitted board and in
// the shared switch settings.
func (n *Network) SetSwitch(name string, closed bool) error {
	canon, err := SwitchName(name)
	if err != nil {
		return err
	}
	for i := range n.diag {
		if n.diag[i].Name == canon {
			n.diag[i].Closed = closed
			n.switches[canon] = closed
			return nil
		}
	}
	return fmt.Errorf("diagonal switch %s: no diagonal board fitted", canon)
}

// Reset takes the voltage off every node and drops the scrambler wiring.
// The diagonal board is untouched.
func (n *Network) Reset() {
	n.hot = Snapshot{}
	n.edges = n.edges[:0]
	for i := range n.adj {
		n.adj[i] = n.adj[i][:0]
	}
}

// RebuildScramblerEdges replaces the scrambler wiring with the wiring of
// every menu link at base plus its step offset, seen through plug.
func (n *Network) RebuildScramblerEdges(links menu.Menu, base cipher.Position, plug cipher.Plugboard) {
	n.edges = n.edges[:0]
	for i := range n.adj {
		n.adj[i] = n.adj[i][:0]
	}
	for _, l := range links {
		m := cipher.EdgeMap(base.Add(l.StepOffset), plug)
		for w := cipher.Symbol(0); w < Wires; w++ {
			n.connect(NodeAt(l.LeftBus, w), NodeAt(l.RightBus, m[w]))
		}
	}
}

func (n *Network) connect(a, b Node) {
	n.edges = append(n.edges, Edge{Left: a, Right: b})
	n.adj[a] = append(n.adj[a], b)
	if a != b {
		n.adj[b] = append(n.adj[b], a)
	}
}

// Edges returns the scrambler wiring of the current step.
func (n *Network) Edges() []Edge { return append([]Edge(nil), n.edges...) }

// EdgeCount is the number of scrambler edges, eight per menu link.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Propagate applies voltage at from and marks everything it reaches hot. It
// returns how many nodes became hot; nodes already hot are not revisited.
func (n *Network) Propagate(from Node) int {
	if n.hot[from] {
		return 0
	}
	lit := 0
	push := func(x Node) {
		if !n.hot[x] {
			n.hot[x] = true
			lit++
			n.stack = append(n.stack, x)
		}
	}

	n.stack = n.stack[:0]
	push(from)
	for len(n.stack) > 0 {
		cur := n.stack[len(n.stack)-1]
		n.stack = n.stack[:len(n.stack)-1]

		if d := n.partner[cur]; d >= 0 && n.diag[d].Closed {
			push(n.diag[d].other(cur))
		}
		for _, next := range n.adj[cur] {
			push(next)
		}
	}
	return lit
}

// Hot reports whether node carries voltage.
func (n *Network) Hot(node Node) bool { return n.hot[node] }

// CountHot counts the hot wires of bus.
func (n *Network) CountHot(bus cipher.Symbol) int { return n.hot.CountHot(bus) }

// Snapshot copies the hot state of all 64 nodes.
func (n *Network) Snapshot() Snapshot { return n.hot }
