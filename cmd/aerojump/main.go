package main

import (
	"context"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	// UTF-8 fallback keeps non-ASCII buffers readable on odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("aerojump failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := newJumpCmd()
	root.AddCommand(newConfigCmd())
	root.AddCommand(newSetupCmd())
	root.AddCommand(newVersionCmd())
	return root
}
