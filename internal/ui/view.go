package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/network"
)

const maxListedStops = 10

// View renders the watch view
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.styles.Title.Render("tinybombe")
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", m.headerLine())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Panel.Render(m.renderGrid()),
		" ",
		m.styles.Panel.Render(m.renderStops()),
	)

	frac := float64(m.steps) / float64(cipher.Positions)
	bar := m.progress.ViewAs(frac)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		bar,
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m Model) headerLine() string {
	src := m.scanner.Source()
	voltage := "off"
	if src.Enabled {
		voltage = "on"
	}
	return fmt.Sprintf("%s %s  %s %s  %s %d  %s %s (%s)",
		m.styles.Label.Render("window"), m.last.Position.Window(),
		m.styles.Label.Render("plugs"), plugLabel(m.scanner.Plugboard()),
		m.styles.Label.Render("links"), len(m.scanner.Menu()),
		m.styles.Label.Render("source"), src.Node, voltage,
	)
}

func plugLabel(p cipher.Plugboard) string {
	if p.IsIdentity() {
		return "none"
	}
	return p.String()
}

// renderGrid draws bus rows against wire columns, hot wires lit
func (m Model) renderGrid() string {
	var b strings.Builder
	src := m.scanner.Source()
	used := m.scanner.Menu().Buses()
	testBus := src.Node.Bus()

	b.WriteString("   ")
	for w := cipher.Symbol(0); w < network.Wires; w++ {
		b.WriteString(" " + string(w.WireLetter()))
	}
	b.WriteString("\n")

	for bus := cipher.Symbol(0); bus < network.Buses; bus++ {
		label := bus.String()
		if used[bus] {
			label = m.styles.Label.Render(label)
		} else {
			label = m.styles.Muted.Render(label)
		}
		b.WriteString(" " + label + " ")
		for w := cipher.Symbol(0); w < network.Wires; w++ {
			node := network.NodeAt(bus, w)
			b.WriteString(" " + m.cell(node, node == src.Node && src.Enabled))
		}
		if bus == testBus {
			fmt.Fprintf(&b, "  %d", m.last.HotCount)
		}
		b.WriteString("\n")
	}

	open := m.openSwitches()
	if m.scanner.Network().HasDiagonalBoard() {
		fmt.Fprintf(&b, "\n%s %s", m.styles.Muted.Render("open switches:"), open)
	} else {
		b.WriteString("\n" + m.styles.Muted.Render("no diagonal board"))
	}
	return b.String()
}

func (m Model) cell(node network.Node, source bool) string {
	switch {
	case source:
		return m.styles.Source.Render("●")
	case m.last.Snapshot[node]:
		return m.styles.Hot.Render("●")
	default:
		return m.styles.Cold.Render("·")
	}
}

func (m Model) openSwitches() string {
	var open []string
	for _, d := range m.scanner.Network().DiagonalLinks() {
		if !d.Closed {
			open = append(open, d.Name)
		}
	}
	if len(open) == 0 {
		return "none"
	}
	return strings.Join(open, " ")
}

func (m Model) renderStops() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("stops (%d)", len(m.stops))))
	b.WriteString("\n")

	from := max(len(m.stops)-maxListedStops, 0)
	for _, st := range m.stops[from:] {
		wires := make([]byte, len(st.HotWires))
		for i, w := range st.HotWires {
			wires[i] = w.WireLetter()
		}
		fmt.Fprintf(&b, "%s  %d  %s\n", m.styles.Stop.Render(st.Window()), st.HotCount, wires)
	}
	if len(m.stops) == 0 {
		b.WriteString(m.styles.Muted.Render("none yet"))
	}
	return b.String()
}

func (m Model) renderStatus() string {
	var prefix string
	switch {
	case m.running:
		prefix = m.spinner.View() + " "
	case m.ended:
		prefix = m.styles.End.Render("■") + " "
	case m.last.Stop:
		prefix = m.styles.Stop.Render("◆") + " "
	}
	line := fmt.Sprintf("%s%s  step %d/%d", prefix, m.status, m.steps, cipher.Positions)
	if m.ended {
		line += "  " + m.elapsed.Round(time.Millisecond).String()
	}
	return m.styles.Status.Render(line)
}
