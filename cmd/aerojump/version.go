package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ripxorip/aerojump.nvim/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "aerojump %s\n", version.Current())
			return err
		},
	}
}
