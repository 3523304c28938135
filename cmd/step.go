package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "step [window]",
		Short: "Evaluate one rotor position and show which wires light up",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Machine.Window = args[0]
			}
			return a.runStep()
		},
	}
}

func (a *app) runStep() error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	sc, err := a.newScanner(s)
	if err != nil {
		return err
	}

	r := sc.Step()
	links := make([]string, len(sc.Menu()))
	for i, l := range sc.Menu() {
		links[i] = l.String()
	}

	fmt.Fprintf(a.out, "%s %s   %s %s\n",
		titleStyle.Render("window"), r.Position.Window(),
		titleStyle.Render("menu"), strings.Join(links, " "))
	fmt.Fprint(a.out, renderGrid(r.Snapshot, s.Source))
	a.logger.Debug("step evaluated", "edges", sc.Network().EdgeCount(), "hot", r.HotCount)

	verdict := "no stop"
	if r.Stop {
		verdict = stopStyle.Render("stop")
	}
	fmt.Fprintf(a.out, "%d hot on bus %s: %s\n", r.HotCount, s.Source.Node.Bus(), verdict)
	if r.Stop {
		fmt.Fprintf(a.out, "reads as %s\n", a.readAt(s, r.Position))
	}
	return nil
}
