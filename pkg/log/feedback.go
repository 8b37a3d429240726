package log

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/emitcopy/pkg/copier"
)

// 📢 UserFeedback provides user-friendly feedback about copy runs
type UserFeedback struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserFeedback creates a new user feedback logger
func NewUserFeedback(ctx context.Context) *UserFeedback {
	return &UserFeedback{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogCopy logs a handled copy entry with appropriate prefix and formatting
func (u *UserFeedback) LogCopy(ev copier.Event) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch ev.Kind {
	case copier.EventFile:
		prefix = "📄"
		action = "Copied"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case copier.EventPattern:
		prefix = "🌟"
		action = "Copied"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s -> %s", action, ev.Src, ev.Dest)
	printer.Println(msg)
	u.log.Info().Msg(msg) // Also log to zerolog for debugging
}

// 🔍 LogValidation logs validation results
func (u *UserFeedback) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}

	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}

// 📊 LogRun logs the start of a copy run
func (u *UserFeedback) LogRun(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}
