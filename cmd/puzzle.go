package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neur0map/tinybombe/internal/puzzle"
)

// puzzleFile is the machine section of a config file, enough to scan a
// puzzle with --config
type puzzleFile struct {
	Machine struct {
		Crib       string `yaml:"crib"`
		Ciphertext string `yaml:"ciphertext"`
	} `yaml:"machine"`
}

func newPuzzleCmd(a *app) *cobra.Command {
	var (
		seed    uint64
		crib    string
		hint    bool
		writeTo string
	)
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Make a practice intercept that hides a crib",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			return a.runPuzzle(seed, crib, hint, writeTo)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVar(&crib, "word", "BEACHHEAD", "crib word to hide in the message")
	cmd.Flags().BoolVar(&hint, "hint", false, "print the solution")
	cmd.Flags().StringVarP(&writeTo, "output", "o", "", "write a config file for scanning the puzzle")
	return cmd
}

func (a *app) runPuzzle(seed uint64, crib string, hint bool, writeTo string) error {
	p, err := puzzle.Generate(rand.New(rand.NewPCG(seed, seed)), crib)
	if err != nil {
		return err
	}
	a.logger.Debug("puzzle generated", "seed", seed, "window", p.Start.Window())

	fmt.Fprintf(a.out, "%s %s\n", titleStyle.Render("ciphertext"), p.Ciphertext)
	fmt.Fprintf(a.out, "%s       %s\n", titleStyle.Render("crib"), p.AlignedCrib())
	if hint {
		fmt.Fprintf(a.out, "%s       %s\n", titleStyle.Render("hint"), p.Hint())
	}

	if writeTo == "" {
		return nil
	}
	var f puzzleFile
	f.Machine.Crib = p.AlignedCrib()
	f.Machine.Ciphertext = p.Ciphertext
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encoding puzzle: %w", err)
	}
	if err := os.WriteFile(writeTo, data, 0o644); err != nil {
		return fmt.Errorf("writing puzzle: %w", err)
	}
	a.logger.Info("puzzle written", "path", writeTo)
	return nil
}
