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

package copier

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/walteh/emitcopy/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🎯 EventKind classifies how a copy entry was handled
type EventKind string

const (
	EventFile    EventKind = "file"    // Direct single-file copy
	EventPattern EventKind = "pattern" // Pattern or directory copy
	EventSkip    EventKind = "skip"    // Destination already processed this run
)

// 📦 Event describes a handled copy entry, for observers
type Event struct {
	Src  string    // Configured source path or pattern
	Dest string    // Configured destination path
	Kind EventKind // How the entry was handled
}

// 🔌 Observer receives an event per handled copy entry
type Observer interface {
	OnCopy(ctx context.Context, ev Event)
}

// 🔧 Options contains configuration for the copier
type Options struct {
	// Config is the validated emitcopy configuration
	Config *config.Config
	// Observer receives per-entry events; may be nil
	Observer Observer
}

// 🏭 New creates a new copier with the given options
func New(opts Options) (*Copier, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	return &Copier{
		cfg:      opts.Config,
		observer: opts.Observer,
	}, nil
}

// 🎮 Copier executes the configured copy entries
type Copier struct {
	cfg      *config.Config
	observer Observer
}

// CopyAll performs the configured copies in order, one at a time.
//
// Each entry's destination is resolved to an absolute path first. A resolved
// destination already present in processed is skipped outright, so the same
// destination is never copied to twice in one run, even when entries with
// different sources target it. After either copy branch the resolved
// destination is recorded. A failing entry aborts the run; earlier entries
// stay copied and recorded, later entries are not attempted.
func (c *Copier) CopyAll(ctx context.Context, processed *ProcessedSet) error {
	logger := zerolog.Ctx(ctx)

	for i, entry := range c.cfg.Copy {
		resolvedDest, err := filepath.Abs(filepath.Clean(entry.Dest))
		if err != nil {
			return errors.Errorf("copy entry %d: resolving destination %q: %w", i, entry.Dest, err)
		}

		if processed.Has(resolvedDest) {
			logger.Debug().Str("dest", resolvedDest).Msg("destination already processed, skipping")
			c.notify(ctx, Event{Src: entry.Src, Dest: entry.Dest, Kind: EventSkip})
			continue
		}

		if isDirectFileCopy(entry) {
			logger.Debug().Str("src", entry.Src).Str("dest", entry.Dest).Msg("copying single file")
			if err := copyFile(entry.Src, entry.Dest); err != nil {
				return errors.Errorf("copy entry %d: copying %s to %s: %w", i, entry.Src, entry.Dest, err)
			}
			c.notify(ctx, Event{Src: entry.Src, Dest: entry.Dest, Kind: EventFile})
		} else {
			logger.Debug().Str("src", entry.Src).Str("dest", entry.Dest).Msg("copying by pattern")
			if err := copyPattern(ctx, entry.Src, entry.Dest); err != nil {
				return errors.Errorf("copy entry %d: copying %s to %s: %w", i, entry.Src, entry.Dest, err)
			}
			c.notify(ctx, Event{Src: entry.Src, Dest: entry.Dest, Kind: EventPattern})
		}

		processed.Add(resolvedDest)
	}

	return nil
}

// 🔔 notify forwards an event to the observer, if any
func (c *Copier) notify(ctx context.Context, ev Event) {
	if c.observer != nil {
		c.observer.OnCopy(ctx, ev)
	}
}

// fileExtSuffix matches a trailing dot-plus-letters file extension.
// A suffix like ".v2" intentionally does not qualify, so such a destination
// is treated as a directory target even for a single-file source.
var fileExtSuffix = regexp.MustCompile(`\.[A-Za-z]+$`)

// 🔍 isDirectFileCopy reports whether an entry is a direct single-file copy:
// the source exists as a regular file and the destination looks like a file
// path. Everything else goes through the pattern engine.
func isDirectFileCopy(entry config.Entry) bool {
	info, err := os.Stat(entry.Src)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return fileExtSuffix.MatchString(filepath.Base(entry.Dest))
}

// 📄 copyFile copies a single file's bytes, overwriting the destination and
// creating parent directories as needed
func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("writing destination file: %w", err)
	}

	if err := out.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}

	return nil
}
