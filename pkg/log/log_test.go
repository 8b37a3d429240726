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
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/emitcopy/pkg/copier"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_copy_event",
			op: func(t *testing.T, logger *Logger) {
				logger.OnCopy(context.Background(), copier.Event{
					Src:  "assets/logo.png",
					Dest: "dist/logo.png",
					Kind: copier.EventFile,
				})
			},
			wantLogs: []string{
				fmt.Sprintf("✓ %-35s %-10s %s", "assets/logo.png", "file", "dist/logo.png"),
			},
		},
		{
			name: "log_run_header",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(".emitcopy.yaml")
			},
			wantLogs: []string{
				"[copying .emitcopy.yaml]",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("copying build assets")
			},
			wantLogs: []string{
				"emitcopy • copying build assets",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, strings.TrimSpace(want), strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestCopyEventFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		ev   copier.Event
		want string
	}{
		{
			name: "direct_file_copy",
			ev: copier.Event{
				Src:  "tmp/single-file.txt",
				Dest: "dest/single-file-copy.txt",
				Kind: copier.EventFile,
			},
			want: fmt.Sprintf("    ✓ %-35s %-10s %s", "tmp/single-file.txt", "file", "dest/single-file-copy.txt"),
		},
		{
			name: "pattern_copy",
			ev: copier.Event{
				Src:  "tmp/wildcard/*.txt",
				Dest: "dest/wildcard",
				Kind: copier.EventPattern,
			},
			want: fmt.Sprintf("    ⟳ %-35s %-10s %s", "tmp/wildcard/*.txt", "pattern", "dest/wildcard"),
		},
		{
			name: "skipped_entry",
			ev: copier.Event{
				Src:  "tmp/a.txt",
				Dest: "dest/a.txt",
				Kind: copier.EventSkip,
			},
			want: fmt.Sprintf("    - %-35s %-10s %s", "tmp/a.txt", "skip", "dest/a.txt"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			// Log event
			logger.OnCopy(context.Background(), tt.ev)

			// Check output
			output := strings.TrimRight(buf.String(), "\n")
			assert.Equal(t, tt.want, output, "formatted output should match")
		})
	}
}
