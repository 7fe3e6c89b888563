// Package config loads and validates the cvsetup TOML configuration.
package config

// Sudo modes accepted by the apt use-sudo setting.
const (
	// SudoAuto prefixes apt steps with sudo only when not running as root.
	SudoAuto = "auto"
	// SudoAlways prefixes apt steps with sudo unconditionally.
	SudoAlways = "always"
	// SudoNever runs apt steps without sudo regardless of privilege.
	SudoNever = "never"
)

// FileName is the config file name looked up in the working directory and
// under the user config directory.
const FileName = "cvsetup.toml"

// Config is the full cvsetup configuration.
type Config struct {
	Pip PipConfig `toml:"pip"`
	Apt AptConfig `toml:"apt"`
}

// PipConfig controls the language-level installation step.
type PipConfig struct {
	// Command is an explicit pip executable. When empty, pip then pip3 are
	// probed on PATH.
	Command  string   `toml:"command,omitempty"`
	Packages []string `toml:"packages"`
}

// AptConfig controls the system-level installation steps.
type AptConfig struct {
	// UpdateIndex runs `apt-get update` before installing. Defaults to true
	// when unset.
	UpdateIndex *bool    `toml:"update-index"`
	Packages    []string `toml:"packages"`
	// UseSudo is one of auto, always, never. Defaults to auto when unset.
	UseSudo string `toml:"use-sudo,omitempty"`
}

// UpdateIndexEnabled reports whether the apt index refresh step should run.
func (c *Config) UpdateIndexEnabled() bool {
	if c.Apt.UpdateIndex == nil {
		return true
	}
	return *c.Apt.UpdateIndex
}

// SudoMode returns the effective use-sudo setting.
func (c *Config) SudoMode() string {
	if c.Apt.UseSudo == "" {
		return SudoAuto
	}
	return c.Apt.UseSudo
}
