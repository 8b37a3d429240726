package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/emitcopy/cmd/emitcopy/commands"
	"github.com/walteh/emitcopy/cmd/emitcopy/opts"
	emitcopylog "github.com/walteh/emitcopy/pkg/log"
)

func main() {
	o := &opts.RootOpts{}

	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create user feedback logger
	o.Feedback = emitcopylog.NewUserFeedback(ctx)

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "emitcopy",
		Short: "A post-build hook for copying static assets next to build output",
		Long: `emitcopy copies configured files and directories (optionally matched by
glob patterns) to destination paths after a build's emit step, so static
assets end up alongside generated output without a separate build step.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyLogLevel(o)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, o)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewValidateCmd(o),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		o.Feedback.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
