package opts

import (
	"github.com/walteh/emitcopy/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Feedback   *log.UserFeedback
}
