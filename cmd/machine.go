package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/config"
	"github.com/neur0map/tinybombe/internal/menu"
	"github.com/neur0map/tinybombe/internal/network"
	"github.com/neur0map/tinybombe/internal/puzzle"
	"github.com/neur0map/tinybombe/internal/report"
	"github.com/neur0map/tinybombe/internal/scanner"
)

// settings validates the machine config. A bad plugboard guess is not
// fatal: the machine carries on with no plugs, as the hardware would.
func (a *app) settings() (config.Settings, error) {
	s, err := a.cfg.Settings()
	if errors.Is(err, cipher.ErrInvalidPlugboard) {
		a.logger.Warn("ignoring plugboard guess", "error", err)
		return s, nil
	}
	return s, err
}

// newScanner wires a network and scanner for s
func (a *app) newScanner(s config.Settings, opts ...scanner.Option) (*scanner.Scanner, error) {
	links, err := menu.Build(s.Crib, s.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("building menu: %w", err)
	}

	var netOpts []network.Option
	if s.DiagonalBoard {
		netOpts = append(netOpts, network.WithDiagonalBoard(s.Switches))
	}
	net := network.New(netOpts...)

	base := []scanner.Option{
		scanner.WithSource(s.Source),
		scanner.WithFreeRunning(a.cfg.Scan.FreeRunning),
		scanner.WithHaltOnStop(a.cfg.Scan.HaltOnStop),
		scanner.WithLogger(a.logger),
	}
	sc := scanner.New(net, links, cipher.NewScrambler(s.Start, s.Plugboard), append(base, opts...)...)
	a.logger.Debug("machine ready",
		"window", s.Start.Window(),
		"links", len(links),
		"source", s.Source.Node,
		"diagonal", s.DiagonalBoard,
	)
	return sc, nil
}

// readAt deciphers the ciphertext as if the rotors started at pos
func (a *app) readAt(s config.Settings, pos cipher.Position) string {
	text, err := cipher.NewScrambler(pos, s.Plugboard).EncryptText(s.Ciphertext)
	if err != nil {
		return ""
	}
	if a.cfg.Output.ReplaceSeparator {
		text = strings.ReplaceAll(text, string(puzzle.Separator), " ")
	}
	return text
}

// writeReport stores a YAML report of res under the configured directory
func (a *app) writeReport(s config.Settings, links menu.Menu, res scanner.Result) (string, error) {
	m := report.Machine{
		Crib:          s.Crib,
		Ciphertext:    s.Ciphertext,
		Start:         s.Start.Window(),
		Plugboard:     s.Plugboard.String(),
		Source:        s.Source.Node.String(),
		SourceEnabled: s.Source.Enabled,
		DiagonalBoard: s.DiagonalBoard,
	}
	if s.DiagonalBoard {
		m.OpenSwitches = s.Switches.Open()
	}

	r := report.New(m, links, res, func(st scanner.Stop) string { return a.readAt(s, st.Position) })
	r.Host = report.ProbeHost()
	path, err := r.Write(a.cfg.Output.ReportDir)
	if err != nil {
		return "", err
	}
	a.logger.Info("report written", "path", path)
	return path, nil
}

// merge folds a resumed run into the running total
func merge(total, next scanner.Result) scanner.Result {
	total.Steps += next.Steps
	total.Stops = append(total.Stops, next.Stops...)
	total.Elapsed += next.Elapsed
	total.Completed = next.Completed
	total.Paused = next.Paused
	total.Cancelled = next.Cancelled
	return total
}
