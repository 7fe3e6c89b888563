package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhanghan177/cvsetup/internal/config"
	"github.com/zhanghan177/cvsetup/internal/testutil"
)

func TestInitCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.WithWorkingDir(t, dir, func() {
		stdout, _, err := runCLI(t, "init")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Wrote cvsetup.toml")
	})
	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "opencv-python")
}

func TestInitUnchanged(t *testing.T) {
	dir := t.TempDir()
	testutil.WithWorkingDir(t, dir, func() {
		_, _, err := runCLI(t, "init")
		require.NoError(t, err)

		stdout, _, err := runCLI(t, "init")
		require.NoError(t, err)
		assert.Contains(t, stdout, "nothing to do")
	})
}

func TestInitDriftWithoutTerminalFails(t *testing.T) {
	prev := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = prev })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("[pip]\npackages = [\"numpy\"]\n"), 0o644))

	testutil.WithWorkingDir(t, dir, func() {
		_, _, err := runCLI(t, "init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--force")
	})
}

func TestInitForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("stale"), 0o644))

	testutil.WithWorkingDir(t, dir, func() {
		stdout, _, err := runCLI(t, "init", "--force")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Overwrote cvsetup.toml")
	})
	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "opencv-python")
}
