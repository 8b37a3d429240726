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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🌟 copyPattern copies everything the source pattern matches into dest.
//
// The pattern may use * (one directory level) or ** (recursive); a plain path
// with no glob syntax is handled the same way, matching itself. Matched files
// land at dest/<path relative to the pattern's meta-free base>; matched
// directories are copied recursively. Destination directories are created as
// needed.
func copyPattern(ctx context.Context, src, dest string) error {
	pattern := filepath.ToSlash(src)
	base, _ := doublestar.SplitPattern(pattern)

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return errors.Errorf("expanding pattern %q: %w", src, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", src).
		Str("base", base).
		Int("matches", len(matches)).
		Msg("expanded copy pattern")

	for _, match := range matches {
		rel, err := filepath.Rel(base, match)
		if err != nil {
			return errors.Errorf("relativizing %q against %q: %w", match, base, err)
		}
		target := filepath.Join(dest, rel)

		info, err := os.Stat(match)
		if err != nil {
			return errors.Errorf("inspecting match %q: %w", match, err)
		}

		if info.IsDir() {
			if err := copyTree(match, target); err != nil {
				return errors.Errorf("copying directory %q: %w", match, err)
			}
			continue
		}

		if err := copyFile(match, target); err != nil {
			return errors.Errorf("copying match %q: %w", match, err)
		}
	}

	return nil
}

// 🌲 copyTree recursively copies a directory's regular files into destDir,
// reproducing the directory structure
func copyTree(srcDir, destDir string) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return errors.Errorf("relativizing %q against %q: %w", path, srcDir, err)
		}
		target := filepath.Join(destDir, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Errorf("creating directory %q: %w", target, err)
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return copyFile(path, target)
	})
}
