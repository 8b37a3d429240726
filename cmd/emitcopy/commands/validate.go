package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/emitcopy/cmd/emitcopy/opts"
	"github.com/walteh/emitcopy/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewValidateCmd creates a new validate command
func NewValidateCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Validate loads the configuration file and checks its shape: the copy
entry list must be present and every entry needs both src and dest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "validate").Logger().WithContext(ctx)

			cfg, err := config.Load(ctx, o.ConfigFile)
			if err != nil {
				o.Feedback.LogValidation(false, "Configuration is invalid", err)
				return errors.Errorf("validating config: %w", err)
			}

			o.Feedback.LogValidation(true, "Configuration is valid: "+cfg.String(), nil)
			return nil
		},
	}

	return cmd
}
