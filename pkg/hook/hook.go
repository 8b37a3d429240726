package hook

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/emitcopy/pkg/config"
	"github.com/walteh/emitcopy/pkg/copier"
	"gitlab.com/tozd/go/errors"
)

// EmitRequest carries the host's arguments to an emit call. The hook passes
// it to the original emit untouched.
type EmitRequest struct {
	// TargetFile optionally restricts the emit to a single compilation unit
	TargetFile string
}

// EmitResult is what the host's emit entry point produces. The hook returns
// it unmodified.
type EmitResult struct {
	EmitSkipped  bool
	EmittedFiles []string
}

// EmitFunc is the host program's emit entry point
type EmitFunc func(ctx context.Context, req *EmitRequest) (*EmitResult, error)

// Program is the host-owned program object. Its Emit field is mutable by
// contract; Install replaces it in place.
type Program struct {
	Emit EmitFunc
}

// SourceUnit is a compilation unit as seen by the host's transformer chain
type SourceUnit struct {
	Path   string
	Source []byte
}

// Transformer rewrites a compilation unit. This plugin never transforms
// anything; its transformers return their input unchanged.
type Transformer func(unit *SourceUnit) *SourceUnit

// TransformerFactory is the value handed back to the host toolchain, required
// by its plugin contract
type TransformerFactory func(ctx context.Context) Transformer

// Options contains configuration for installing the hook
type Options struct {
	// Config is the plugin configuration; validated before anything is wrapped
	Config *config.Config
	// Observer receives per-entry copy events; may be nil
	Observer copier.Observer
}

// Install wraps the program's emit entry point so the configured copy entries
// run after every emit call, and returns the pass-through transformer factory
// the host expects.
//
// The configuration is validated first; on bad input Install fails before any
// filesystem access and the program is left untouched. On success the wrapped
// emit calls the original with the same arguments, runs the copier, and
// returns the original result unchanged. The wrapping is permanent for the
// program instance, and all emit calls share one processed-destination set,
// so re-emitting does not re-copy already-copied destinations.
//
// Copies run whether or not the original emit reported an error. An emit
// error takes precedence in the combined return; otherwise a failing copy
// fails the emit call itself.
func Install(ctx context.Context, prog *Program, opts Options) (TransformerFactory, error) {
	if prog == nil || prog.Emit == nil {
		return nil, errors.New("program with an emit entry point is required")
	}
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}

	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	c, err := copier.New(copier.Options{Config: opts.Config, Observer: opts.Observer})
	if err != nil {
		return nil, errors.Errorf("creating copier: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("entries", len(opts.Config.Copy)).
		Msg("installing emit hook")

	original := prog.Emit
	processed := copier.NewProcessedSet()

	prog.Emit = func(ctx context.Context, req *EmitRequest) (*EmitResult, error) {
		result, emitErr := original(ctx, req)

		if copyErr := c.CopyAll(ctx, processed); copyErr != nil {
			if emitErr != nil {
				return result, emitErr
			}
			return result, errors.Errorf("copying assets after emit: %w", copyErr)
		}

		return result, emitErr
	}

	return passthroughFactory, nil
}

// passthroughFactory satisfies the host's plugin contract without performing
// any source transformation
func passthroughFactory(ctx context.Context) Transformer {
	return func(unit *SourceUnit) *SourceUnit {
		return unit
	}
}
