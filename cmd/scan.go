package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neur0map/tinybombe/internal/config"
	"github.com/neur0map/tinybombe/internal/scanner"
)

// scanFlags are shared by scan and watch
type scanFlags struct {
	single     bool
	haltOnStop bool
	report     bool
	reportDir  string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.single, "single", false, "evaluate the start window only instead of free running")
	cmd.Flags().BoolVar(&f.haltOnStop, "halt-on-stop", false, "pause at every stop")
	cmd.Flags().BoolVar(&f.report, "report", false, "write a YAML run report")
	cmd.Flags().StringVar(&f.reportDir, "report-dir", "", "directory for run reports")
}

func (f *scanFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if f.single {
		cfg.Scan.FreeRunning = false
	}
	if cmd.Flags().Changed("halt-on-stop") {
		cfg.Scan.HaltOnStop = f.haltOnStop
	}
	if f.report {
		cfg.Output.WriteReport = true
	}
	if f.reportDir != "" {
		cfg.Output.ReportDir = f.reportDir
	}
}

func newScanCmd(a *app) *cobra.Command {
	f := &scanFlags{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Sweep all 512 rotor positions and list the stops",
		Example: `  tinybombe scan --crib "     BEACHHEAD" --ciphertext GFHAH... --source Ea
  tinybombe scan --config puzzle.yaml --report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.apply(cmd, a.cfg)
			return a.runScan(cmd.Context())
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) runScan(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := a.settings()
	if err != nil {
		return err
	}
	sc, err := a.newScanner(s)
	if err != nil {
		return err
	}

	obs := scanner.Funcs{
		Stop: func(st scanner.Stop) {
			a.logger.Info("stop", "window", st.Window(), "hot", st.HotCount, "wires", wireLetters(st.HotWires))
		},
	}
	a.logger.Info("scan starting", "window", s.Start.Window(), "links", len(sc.Menu()), "source", s.Source.Node)

	total, err := sc.Run(ctx, obs)
	for err == nil && total.Paused {
		a.logger.Info("resuming after stop", "window", sc.Position().Window())
		var next scanner.Result
		next, err = sc.Resume(ctx, obs)
		total = merge(total, next)
	}

	printStops(a.out, total, func(st scanner.Stop) string { return a.readAt(s, st.Position) })

	if a.cfg.Output.WriteReport {
		path, rerr := a.writeReport(s, sc.Menu(), total)
		if rerr != nil {
			return fmt.Errorf("writing report: %w", rerr)
		}
		fmt.Fprintf(a.out, "report: %s\n", path)
	}
	if err != nil {
		return fmt.Errorf("scan interrupted: %w", err)
	}
	return nil
}
