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

package hook_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/emitcopy/pkg/config"
	"github.com/walteh/emitcopy/pkg/hook"
	"gitlab.com/tozd/go/errors"
)

// 🧪 testContext creates a context with a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 writeFile writes a file, creating parent directories
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent dirs should succeed")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing file should succeed")
}

// 🧪 countingEmit returns an emit func that counts calls and records the
// request it saw, returning a fixed result
type countingEmit struct {
	calls   int
	lastReq *hook.EmitRequest
	result  *hook.EmitResult
	emitErr error
}

func (e *countingEmit) emit(ctx context.Context, req *hook.EmitRequest) (*hook.EmitResult, error) {
	e.calls++
	e.lastReq = req
	return e.result, e.emitErr
}

func TestInstallValidatesFirst(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr error
	}{
		{
			name:    "missing_entries",
			cfg:     &config.Config{},
			wantErr: config.ErrMissingEntries,
		},
		{
			name:    "missing_src",
			cfg:     &config.Config{Copy: []config.Entry{{Dest: "dist"}}},
			wantErr: config.ErrMissingSrc,
		},
		{
			name:    "missing_dest",
			cfg:     &config.Config{Copy: []config.Entry{{Src: "assets"}}},
			wantErr: config.ErrMissingDest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			emitter := &countingEmit{result: &hook.EmitResult{}}
			prog := &hook.Program{Emit: emitter.emit}

			_, err := hook.Install(ctx, prog, hook.Options{Config: tt.cfg})
			require.Error(t, err, "Install should fail on invalid config")
			assert.True(t, errors.Is(err, tt.wantErr), "error should match sentinel, got: %v", err)

			// The program must be left untouched: its emit still runs
			// without copying anything.
			_, emitErr := prog.Emit(ctx, nil)
			require.NoError(t, emitErr, "original emit should still work")
			assert.Equal(t, 1, emitter.calls, "original emit should be callable directly")
		})
	}
}

func TestInstallRequiresProgram(t *testing.T) {
	ctx := testContext(t)
	cfg := &config.Config{Copy: []config.Entry{}}

	_, err := hook.Install(ctx, nil, hook.Options{Config: cfg})
	require.Error(t, err, "Install should fail without a program")

	_, err = hook.Install(ctx, &hook.Program{}, hook.Options{Config: cfg})
	require.Error(t, err, "Install should fail without an emit entry point")
}

func TestWrappedEmitPassesThrough(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "tmp", "single-file.txt")
	dest := filepath.Join(tmpDir, "dest", "single-file-copy.txt")
	writeFile(t, src, "Single File Content")

	want := &hook.EmitResult{EmittedFiles: []string{"main.o"}}
	emitter := &countingEmit{result: want}
	prog := &hook.Program{Emit: emitter.emit}

	cfg := &config.Config{Copy: []config.Entry{{Src: src, Dest: dest}}}
	_, err := hook.Install(ctx, prog, hook.Options{Config: cfg})
	require.NoError(t, err, "Install should succeed")

	req := &hook.EmitRequest{TargetFile: "main.go"}
	result, err := prog.Emit(ctx, req)
	require.NoError(t, err, "wrapped emit should succeed")

	assert.Same(t, want, result, "wrapped emit should return the original result unchanged")
	assert.Same(t, req, emitter.lastReq, "wrapped emit should pass the original arguments through")
	assert.Equal(t, 1, emitter.calls, "original emit should run exactly once per call")

	content, err := os.ReadFile(dest)
	require.NoError(t, err, "copy should run after emit")
	assert.Equal(t, "Single File Content", string(content), "copied content should match")
}

func TestRepeatedEmitDoesNotRecopy(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src.txt")
	dest := filepath.Join(tmpDir, "out", "copy.txt")
	writeFile(t, src, "content")

	emitter := &countingEmit{result: &hook.EmitResult{}}
	prog := &hook.Program{Emit: emitter.emit}

	cfg := &config.Config{Copy: []config.Entry{{Src: src, Dest: dest}}}
	_, err := hook.Install(ctx, prog, hook.Options{Config: cfg})
	require.NoError(t, err, "Install should succeed")

	_, err = prog.Emit(ctx, nil)
	require.NoError(t, err, "first emit should succeed")
	require.FileExists(t, dest, "first emit should copy")

	require.NoError(t, os.Remove(dest), "removing destination should succeed")

	_, err = prog.Emit(ctx, nil)
	require.NoError(t, err, "second emit should succeed")
	assert.Equal(t, 2, emitter.calls, "original emit should run on every call")
	assert.NoFileExists(t, dest, "second emit should not re-copy an already-processed destination")
}

func TestCopyFailureFailsEmit(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src.txt")
	writeFile(t, src, "content")

	blocked := filepath.Join(tmpDir, "blocked")
	writeFile(t, blocked, "in the way")

	emitter := &countingEmit{result: &hook.EmitResult{}}
	prog := &hook.Program{Emit: emitter.emit}

	cfg := &config.Config{Copy: []config.Entry{
		{Src: src, Dest: filepath.Join(blocked, "out.txt")},
	}}
	_, err := hook.Install(ctx, prog, hook.Options{Config: cfg})
	require.NoError(t, err, "Install should succeed")

	_, err = prog.Emit(ctx, nil)
	require.Error(t, err, "a failing copy should fail the emit call")
	assert.Contains(t, err.Error(), "copying assets after emit", "error should come from the copy step")
	assert.Equal(t, 1, emitter.calls, "original emit should still have run")
}

func TestEmitErrorTakesPrecedence(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src.txt")
	dest := filepath.Join(tmpDir, "out", "copy.txt")
	writeFile(t, src, "content")

	emitErr := errors.New("emit exploded")
	emitter := &countingEmit{result: nil, emitErr: emitErr}
	prog := &hook.Program{Emit: emitter.emit}

	cfg := &config.Config{Copy: []config.Entry{{Src: src, Dest: dest}}}
	_, err := hook.Install(ctx, prog, hook.Options{Config: cfg})
	require.NoError(t, err, "Install should succeed")

	_, err = prog.Emit(ctx, nil)
	require.Error(t, err, "emit error should propagate")
	assert.True(t, errors.Is(err, emitErr), "the original emit error should be returned")

	// Copies still ran for the attempted emit.
	assert.FileExists(t, dest, "copies should run even when the original emit errors")
}

func TestTransformerIsPassThrough(t *testing.T) {
	ctx := testContext(t)

	emitter := &countingEmit{result: &hook.EmitResult{}}
	prog := &hook.Program{Emit: emitter.emit}

	factory, err := hook.Install(ctx, prog, hook.Options{Config: &config.Config{Copy: []config.Entry{}}})
	require.NoError(t, err, "Install should succeed")
	require.NotNil(t, factory, "Install should return a transformer factory")

	transform := factory(ctx)
	unit := &hook.SourceUnit{Path: "main.go", Source: []byte("package main")}
	assert.Same(t, unit, transform(unit), "transformer should return its input unchanged")
}
