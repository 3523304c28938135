// Package cmd holds the tinybombe command line.
package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/neur0map/tinybombe/internal/config"
	"github.com/neur0map/tinybombe/internal/logger"
	"github.com/neur0map/tinybombe/internal/network"
)

const appName = "tinybombe"

// machineFlags override the machine section of the config file
type machineFlags struct {
	cfgFile    string
	logLevel   string
	crib       string
	ciphertext string
	window     string
	plugboard  string
	source     string
	noSource   bool
	noDiagonal bool
	open       []string
}

// app is shared by every subcommand once the root has loaded the config
type app struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	flags := &machineFlags{}
	a := &app{}

	root := &cobra.Command{
		Use:   appName,
		Short: "A miniature bombe for an 8-letter, 3-rotor cipher machine",
		Long: `tinybombe builds a menu from a crib placed under a ciphertext, wires the
hypotheses into 8 buses of 8 wires, and sweeps all 512 rotor positions
looking for stops: positions where the steckering guess does not
contradict itself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.cfgFile, "config", "", "config file (default: tinybombe.yaml in ., ./configs, ~/.tinybombe)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVarP(&flags.crib, "crib", "c", "", "crib aligned under the ciphertext, non A-H characters are wildcards")
	pf.StringVarP(&flags.ciphertext, "ciphertext", "x", "", "intercepted ciphertext")
	pf.StringVarP(&flags.window, "window", "w", "", "rotor window to start from, e.g. AAA")
	pf.StringVarP(&flags.plugboard, "plugboard", "p", "", "plugboard pairs, e.g. \"AE DG\"")
	pf.StringVarP(&flags.source, "source", "s", "", "wire the test voltage is applied to, e.g. Ec")
	pf.BoolVar(&flags.noSource, "no-source", false, "leave the test voltage off")
	pf.BoolVar(&flags.noDiagonal, "no-diagonal", false, "run without the diagonal board")
	pf.StringSliceVar(&flags.open, "open", nil, "diagonal switches to open, e.g. AB,CE")

	root.AddCommand(
		newScanCmd(a),
		newWatchCmd(a),
		newStepCmd(a),
		newEncryptCmd(a),
		newPuzzleCmd(a),
		newTableCmd(a),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, f *machineFlags) error {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := f.apply(cmd, cfg); err != nil {
		return err
	}

	l, err := logger.New(logger.Options{
		Level:     cfg.Output.LogLevel,
		Output:    cmd.ErrOrStderr(),
		Timestamp: cfg.Output.Timestamp,
		Prefix:    appName,
	})
	if err != nil {
		return fmt.Errorf("output.log_level: %w", err)
	}
	if cfg.File != "" {
		l.Debug("config loaded", "file", cfg.File)
	}

	a.cfg = cfg
	a.logger = l
	a.out = cmd.OutOrStdout()
	return nil
}

// apply copies explicitly set flags over the config values
func (f *machineFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	m := &cfg.Machine

	if changed("log-level") {
		cfg.Output.LogLevel = f.logLevel
	}
	if changed("crib") {
		m.Crib = f.crib
	}
	if changed("ciphertext") {
		m.Ciphertext = f.ciphertext
	}
	if changed("window") {
		m.Window = f.window
	}
	if changed("plugboard") {
		m.Plugboard = f.plugboard
	}
	if changed("source") {
		m.Source.Wire = f.source
	}
	if f.noSource {
		m.Source.Enabled = false
	}
	if f.noDiagonal {
		m.DiagonalBoard = false
	}
	if len(f.open) > 0 && m.Switches == nil {
		m.Switches = make(map[string]bool, len(f.open))
	}
	for _, name := range f.open {
		if err := openSwitch(m.Switches, name); err != nil {
			return fmt.Errorf("--open: %w", err)
		}
	}
	return nil
}

// openSwitch opens a switch in the config map. Viper lower-cases keys read
// from files, so every spelling of the same bus pair is replaced.
func openSwitch(sw map[string]bool, name string) error {
	canon, err := network.SwitchName(name)
	if err != nil {
		return err
	}
	for key := range sw {
		if other, err := network.SwitchName(key); err == nil && other == canon {
			delete(sw, key)
		}
	}
	sw[canon] = false
	return nil
}
