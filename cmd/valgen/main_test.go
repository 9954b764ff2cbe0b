// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/valgen/provider"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "valgen.toml")
	require.NoError(t, os.WriteFile(fn, []byte(text), 0666))
	return fn
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "> 0 calm")
	assert.Contains(t, out, "  1 sparks")
	assert.Contains(t, out, "  2 storm")

	out, err = run(t, "list", "--index", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "> 2 storm")
	assert.Contains(t, out, "  0 calm")

	out, err = run(t, "list", "--index=-3")
	require.NoError(t, err)
	assert.Contains(t, out, "> 0 calm")

	out, err = run(t, "list", "--preset", "sparks")
	require.NoError(t, err)
	assert.Contains(t, out, "> 1 sparks")

	_, err = run(t, "list", "--preset", "drizzle")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "--preset", "calm", "-n", "200", "--runs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "preset calm")
	assert.Contains(t, out, "run 0 size")
	assert.Contains(t, out, "run 1 spin")
	assert.Contains(t, out, "min     1.000  mean     1.000  max     1.000  bounds [1, 1]")
	assert.Equal(t, 7, strings.Count(out, "\n"))

	again, err := run(t, "sample", "--preset", "calm", "-n", "200", "--runs", "2")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	other, err := run(t, "sample", "--preset", "calm", "-n", "200", "--runs", "2", "--seed", "5")
	require.NoError(t, err)
	assert.NotEqual(t, out, other)
}

func TestCycle(t *testing.T) {
	out, err := run(t, "cycle", "--steps", "4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "1 sparks: size="))
	assert.True(t, strings.HasPrefix(lines[1], "2 storm:"))
	assert.True(t, strings.HasPrefix(lines[2], "0 calm:"))
	assert.True(t, strings.HasPrefix(lines[3], "1 sparks:"))
	assert.Contains(t, lines[2], "size=1.000")
}

func TestConfigFile(t *testing.T) {
	fn := writeConfig(t, "Preset = \"storm\"\nSamples = 10\n")
	out, err := run(t, "list", "--config", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "> 2 storm")

	out, err = run(t, "list", "--config", fn, "--preset", "calm")
	require.NoError(t, err)
	assert.Contains(t, out, "> 0 calm")

	bad := writeConfig(t, "Samples = 0\n")
	_, err = run(t, "sample", "--config", bad)
	assert.ErrorContains(t, err, "samples must be at least 1")

	_, err = run(t, "list", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestIndexFlagOverridesConfigPreset(t *testing.T) {
	fn := writeConfig(t, "Preset = \"storm\"\n")
	out, err := run(t, "list", "--config", fn, "--index", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "> 1 sparks")

	out, err = run(t, "list", "--config", fn, "--index", "1", "--preset", "calm")
	require.NoError(t, err)
	assert.Contains(t, out, "> 0 calm")
}

func TestErrorNotPrintedByCommand(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"list", "--preset", "drizzle"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "unknown preset")
	assert.NotContains(t, errOut.String(), "unknown preset")
	assert.NotContains(t, out.String(), "unknown preset")
}

func TestCycleDeterministic(t *testing.T) {
	out, err := run(t, "cycle", "--steps", "6")
	require.NoError(t, err)
	again, err := run(t, "cycle", "--steps", "6")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	other, err := run(t, "cycle", "--steps", "6", "--seed", "9")
	require.NoError(t, err)
	assert.NotEqual(t, out, other)
}

func TestDefaultConfigFile(t *testing.T) {
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "valgen")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("Index = 1\n"), 0666))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "> 1 sparks")
}

func TestPresetsValid(t *testing.T) {
	s := Presets()
	require.Equal(t, 3, s.Len())
	for i, em := range s.Values {
		for _, p := range em.Params() {
			assert.NoError(t, provider.Validate(p.Provider), "%s.%s", s.Name(i), p.Name)
		}
	}
}

func TestEmitterClone(t *testing.T) {
	em := Emitter{Size: provider.NewConstant(2)}
	cp := em.Clone()
	em.Size.(*provider.Constant).Value = 5
	assert.Equal(t, float32(2), cp.Size.(*provider.Constant).Value)
	assert.Nil(t, cp.Speed)
	assert.Nil(t, cp.Spin)
}
