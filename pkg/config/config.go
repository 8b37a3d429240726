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

package config

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ❌ ErrMissingEntries is returned when the copy entry list is absent or not a list
	ErrMissingEntries = errors.Base("copy entries are missing or not a list")

	// ❌ ErrMissingSrc is returned when an entry has no src field
	ErrMissingSrc = errors.Base("src is required")

	// ❌ ErrMissingDest is returned when an entry has no dest field
	ErrMissingDest = errors.Base("dest is required")
)

// 🔧 Entry represents a single configured copy operation
type Entry struct {
	Src  string `json:"src" yaml:"src" hcl:"src"`    // Source path or glob pattern
	Dest string `json:"dest" yaml:"dest" hcl:"dest"` // Destination file or directory path
}

// 📚 Config represents the complete plugin configuration
type Config struct {
	Copy []Entry `json:"copy" yaml:"copy" hcl:"copy,block"` // Ordered copy entries
}

// 🔍 Validate checks if the configuration is valid.
//
// Validation is fail-fast: entries are checked in configured order, src before
// dest, and the first problem aborts with an error citing the entry's
// zero-based index. An empty entry list is valid. Validate performs no
// filesystem access.
func (cfg *Config) Validate() error {
	if cfg.Copy == nil {
		return errors.WithStack(ErrMissingEntries)
	}

	for i, entry := range cfg.Copy {
		if entry.Src == "" {
			return errors.Errorf("copy entry %d: %w", i, ErrMissingSrc)
		}
		if entry.Dest == "" {
			return errors.Errorf("copy entry %d: %w", i, ErrMissingDest)
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d copy entries", len(cfg.Copy))
}

// 🎯 ParseRaw builds a Config from a raw configuration object as handed over
// by a host toolchain. The host owns the config file format, so the value may
// have any shape; ParseRaw is where the shape is checked. A missing "copy"
// key, or a "copy" value that is not a list, fails with ErrMissingEntries.
// The resulting config is validated before being returned.
func ParseRaw(raw map[string]any) (*Config, error) {
	value, ok := raw["copy"]
	if !ok || value == nil {
		return nil, errors.WithStack(ErrMissingEntries)
	}

	list, ok := value.([]any)
	if !ok {
		return nil, errors.WithStack(ErrMissingEntries)
	}

	cfg := &Config{Copy: make([]Entry, 0, len(list))}
	for _, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			// Keep the entry so validation reports its index.
			cfg.Copy = append(cfg.Copy, Entry{})
			continue
		}
		cfg.Copy = append(cfg.Copy, Entry{
			Src:  stringField(fields, "src"),
			Dest: stringField(fields, "dest"),
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 stringField reads a string value from a raw config object
func stringField(fields map[string]any, key string) string {
	value, ok := fields[key].(string)
	if !ok {
		return ""
	}
	return value
}
