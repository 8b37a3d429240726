// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/emitcopy/pkg/copier"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent copy entries
	srcWidth    = 35 // Base width for the source column
	kindWidth   = 10 // Width for the entry kind
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	copies  []copier.Event
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 formatCopyEvent formats a copy event for display
func (l *Logger) formatCopyEvent(ev copier.Event) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch ev.Kind {
	case copier.EventFile:
		symbol = '✓'
		symbolColor = color.FgGreen
	case copier.EventPattern:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", srcWidth, ev.Src),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", kindWidth, string(ev.Kind))),
		color.New(color.FgCyan).Sprint(ev.Dest))
}

// 📝 OnCopy logs a handled copy entry. Logger implements copier.Observer.
func (l *Logger) OnCopy(ctx context.Context, ev copier.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to copies list
	l.copies = append(l.copies, ev)

	// Format and print
	fmt.Fprintln(l.console, l.formatCopyEvent(ev))

	// Log to zerolog
	l.zlog.Info().
		Str("src", ev.Src).
		Str("dest", ev.Dest).
		Str("kind", string(ev.Kind)).
		Msg("copy entry handled")
}

// 📝 StartRun prints the run header
func (l *Logger) StartRun(configPath string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.copies = nil

	fmt.Fprintf(l.console, "[copying %s]\n",
		color.New(color.FgCyan).Sprint(configPath))

	l.zlog.Info().Str("config", configPath).Msg("starting copy run")
}

// 📝 EndRun prints the run summary
func (l *Logger) EndRun() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Info().Int("entries", len(l.copies)).Msg("copy run complete")
	l.copies = nil
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("emitcopy")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
