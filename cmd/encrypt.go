package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/puzzle"
)

func newEncryptCmd(a *app) *cobra.Command {
	var readable bool
	cmd := &cobra.Command{
		Use:     "encrypt TEXT...",
		Aliases: []string{"decrypt"},
		Short:   "Encipher text at the configured window and plugboard",
		Long: `Encipher text letter by letter, stepping the rotors after each one. The
machine is its own inverse, so enciphering the ciphertext at the same
window and plugboard gives the plaintext back. Separate words are joined
with G.`,
		Example: `  tinybombe encrypt --window CAA --plugboard "EA DG" BEACHHEAD
  tinybombe decrypt --window CAA --plugboard "EA DG" --readable HGFBDCAHE`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runEncrypt(strings.Join(args, string(puzzle.Separator)), readable)
		},
	}
	cmd.Flags().BoolVar(&readable, "readable", false, "print G as a space")
	return cmd
}

func (a *app) runEncrypt(text string, readable bool) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	sc := cipher.NewScrambler(s.Start, s.Plugboard)
	out, err := sc.EncryptText(text)
	if err != nil {
		return err
	}
	a.logger.Debug("enciphered", "window", s.Start.Window(), "plugboard", s.Plugboard, "end", sc.Position().Window())

	if readable {
		out = strings.ReplaceAll(out, string(puzzle.Separator), " ")
	}
	fmt.Fprintln(a.out, out)
	return nil
}
