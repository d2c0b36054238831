package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ripxorip/aerojump.nvim/internal/config"
)

func newConfigCmd() *cobra.Command {
	var (
		write     bool
		overwrite bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if write {
				written, err := config.WriteDefault(path, overwrite)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", written)
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := config.Dump(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the default configuration file instead of printing")
	cmd.Flags().BoolVar(&overwrite, "force", false, "overwrite an existing file with --write")
	return cmd
}
