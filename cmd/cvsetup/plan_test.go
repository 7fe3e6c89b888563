package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhanghan177/cvsetup/internal/testutil"
)

func TestPlanCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "pip3")
	testutil.WriteStub(t, dir, "apt-get")
	t.Setenv("PATH", dir)

	cfgPath := writeTestConfig(t, `
[pip]
packages = ["opencv-python"]

[apt]
update-index = false
packages = ["python-opencv"]
use-sudo = "always"
`)
	stdout, stderr, err := runCLI(t, "plan", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, cfgPath)
	assert.Contains(t, stdout, "1. Install Python packages (pip)")
	assert.Contains(t, stdout, "pip3 install opencv-python")
	assert.NotContains(t, stdout, "apt-get update")
	assert.Contains(t, stdout, "sudo apt-get install -y python-opencv")
}

func TestPlanCommandInvalidConfig(t *testing.T) {
	cfgPath := writeTestConfig(t, "[pip]\npackages = []\n")
	_, _, err := runCLI(t, "plan", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no packages configured")
}
