package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/emitcopy/cmd/emitcopy/opts"
	"github.com/walteh/emitcopy/pkg/config"
	"github.com/walteh/emitcopy/pkg/hook"
	"github.com/walteh/emitcopy/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured copy entries once",
		Long: `Run executes the configured copy entries without a host toolchain.
It will:
1. Load and validate the configuration
2. Install the emit hook on a standalone program
3. Perform one emit call, which runs every copy entry in order`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)

			// Load config
			cfg, err := config.Load(ctx, o.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			console := log.New(os.Stdout, zerolog.InfoLevel)
			console.StartRun(o.ConfigFile)

			// A standalone run has nothing to compile; the no-op emit stands
			// in for the host's emit step so the exact plugin code path runs.
			prog := &hook.Program{
				Emit: func(ctx context.Context, req *hook.EmitRequest) (*hook.EmitResult, error) {
					return &hook.EmitResult{EmitSkipped: true}, nil
				},
			}

			if _, err := hook.Install(ctx, prog, hook.Options{Config: cfg, Observer: console}); err != nil {
				return errors.Errorf("installing emit hook: %w", err)
			}

			if _, err := prog.Emit(ctx, &hook.EmitRequest{}); err != nil {
				return errors.Errorf("running copy entries: %w", err)
			}

			console.EndRun()
			console.Successf("copied %d entries", len(cfg.Copy))
			return nil
		},
	}

	return cmd
}
