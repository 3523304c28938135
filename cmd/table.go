package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neur0map/tinybombe/internal/cipher"
)

func newTableCmd(a *app) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "table [window]",
		Short: "Print the scrambler wiring for one or all rotor positions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if verify {
				return a.verifyTable()
			}
			if len(args) == 1 {
				pos, err := cipher.ParseWindow(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s %s\n", pos.Window(), cipher.Row(pos))
				return nil
			}
			for pos, row := range cipher.Rows() {
				fmt.Fprintf(a.out, "%s %s\n", cipher.Position(pos).Window(), row)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "check every row is a fixed-point-free involution")
	return cmd
}

func (a *app) verifyTable() error {
	rows := cipher.Rows()
	for pos, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("row %s: %w", cipher.Position(pos).Window(), err)
		}
	}
	fmt.Fprintf(a.out, "%d rows, every one a fixed-point-free involution\n", len(rows))
	return nil
}
