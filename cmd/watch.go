package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/neur0map/tinybombe/internal/logger"
	"github.com/neur0map/tinybombe/internal/scanner"
	"github.com/neur0map/tinybombe/internal/term"
	"github.com/neur0map/tinybombe/internal/ui"
)

// debugLogFile receives every log line of the watch view when DEBUG is set
const debugLogFile = "tinybombe-debug.log"

func newWatchCmd(a *app) *cobra.Command {
	f := &scanFlags{}
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the sweep in a live view of the 64 bus wires",
		Long: `Watch steps the machine one rotor position at a time and draws the
buses as the test voltage spreads. Space runs or pauses, n and b step by
hand, o/c/t open, close or toggle every diagonal switch.

Without an interactive terminal it falls back to a plain scan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.apply(cmd, a.cfg)
			if cmd.Flags().Changed("delay") {
				a.cfg.UI.StepDelayMs = int(delay / time.Millisecond)
			}
			if mode := term.GetOutputMode(); mode == term.OutputModePlain {
				a.logger.Warn("no interactive terminal, running a plain scan", "mode", mode)
				return a.runScan(cmd.Context())
			}
			return a.runWatch(cmd.Context())
		},
	}
	f.register(cmd)
	cmd.Flags().DurationVar(&delay, "delay", 20*time.Millisecond, "pause between rotor positions")
	return cmd
}

func (a *app) runWatch(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := a.settings()
	if err != nil {
		return err
	}

	// the terminal belongs to the view, so logs go to a file or nowhere
	tuiLog := logger.Discard()
	if term.IsDebugMode() {
		l, f, err := logger.ToFile(debugLogFile, logger.Options{Level: "debug", Prefix: appName})
		if err != nil {
			return err
		}
		defer f.Close()
		tuiLog = l
	}

	sc, err := a.newScanner(s, scanner.WithLogger(tuiLog))
	if err != nil {
		return err
	}

	runner := ui.NewRunner(sc, ui.Options{
		Delay:      time.Duration(a.cfg.UI.StepDelayMs) * time.Millisecond,
		HaltOnStop: a.cfg.Scan.HaltOnStop,
		AutoStart:  a.cfg.Scan.FreeRunning,
		Colors:     a.cfg.UI.Colors,
		Logger:     tuiLog,
	}, a.cfg.UI.AltScreen)

	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	a.logger.Log(levelFor(res), "watch finished", "steps", res.Steps, "stops", len(res.Stops))

	printStops(a.out, res, func(st scanner.Stop) string { return a.readAt(s, st.Position) })
	if a.cfg.Output.WriteReport && res.Steps > 0 {
		path, err := a.writeReport(s, sc.Menu(), res)
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(a.out, "report: %s\n", path)
	}
	return nil
}

func levelFor(res scanner.Result) log.Level {
	if res.Cancelled {
		return log.WarnLevel
	}
	return log.InfoLevel
}
