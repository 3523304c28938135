package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/network"
	"github.com/neur0map/tinybombe/internal/scanner"
)

var (
	accent     = lipgloss.Color("#7D56F4")
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	stopStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D946EF"))
	hotStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func wireLetters(ws []cipher.Symbol) string {
	b := make([]byte, len(ws))
	for i, w := range ws {
		b[i] = w.WireLetter()
	}
	return string(b)
}

// printStops lists every stop with what the ciphertext reads as there
func printStops(w io.Writer, res scanner.Result, read func(scanner.Stop) string) {
	if len(res.Stops) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no stops"))
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(mutedStyle).
			Headers("WINDOW", "HOT", "WIRES", "READS AS")
		for _, st := range res.Stops {
			t.Row(st.Window(), strconv.Itoa(st.HotCount), wireLetters(st.HotWires), read(st))
		}
		fmt.Fprintln(w, t.Render())
	}

	summary := fmt.Sprintf("%d stops in %d steps, %s", len(res.Stops), res.Steps, res.Elapsed.Round(time.Microsecond))
	switch {
	case res.Completed:
		summary += ", end of cycle"
	case res.Cancelled:
		summary += ", interrupted"
	case res.Paused:
		summary += ", paused"
	}
	fmt.Fprintln(w, titleStyle.Render(summary))
}

// renderGrid draws the 64 nodes, one bus per row
func renderGrid(snap network.Snapshot, src scanner.Source) string {
	var b strings.Builder
	b.WriteString("   ")
	for wire := cipher.Symbol(0); wire < network.Wires; wire++ {
		b.WriteString(" " + string(wire.WireLetter()))
	}
	b.WriteString("\n")

	for bus := cipher.Symbol(0); bus < network.Buses; bus++ {
		b.WriteString(" " + bus.String() + " ")
		for wire := cipher.Symbol(0); wire < network.Wires; wire++ {
			node := network.NodeAt(bus, wire)
			switch {
			case snap[node] && node == src.Node:
				b.WriteString(" " + hotStyle.Render("@"))
			case snap[node]:
				b.WriteString(" " + hotStyle.Render("#"))
			default:
				b.WriteString(" " + mutedStyle.Render("."))
			}
		}
		fmt.Fprintf(&b, "  %d\n", snap.CountHot(bus))
	}
	return b.String()
}
