package main

import (
	"github.com/spf13/cobra"

	"github.com/ripxorip/aerojump.nvim/internal/shellsetup"
)

var parentShellDetector = shellsetup.DetectParentShellName

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [shell]",
		Short: "Print a shell function that opens $EDITOR at the chosen position",
		Long: `setup prints an "aj" function for bash, zsh, sh, ksh, fish or pwsh.
Add it to your shell profile, e.g. eval "$(aerojump setup)".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			return shellsetup.PrintSetup(cmd.OutOrStdout(), shell, shellsetup.Config{DetectParent: parentShellDetector})
		},
	}
}
