package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/zhanghan177/cvsetup/internal/messages"
)

var homedirFunc = homedir.Dir

// ResolvePath locates the config file to use.
// flagPath, when non-empty, is returned as-is and must exist. Otherwise the
// working directory is tried first, then ~/.config/cvsetup/cvsetup.toml.
// found is false when no file exists on the fallback chain, in which case the
// built-in defaults apply.
func ResolvePath(flagPath string) (path string, found bool, err error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err != nil {
			return "", false, fmt.Errorf(messages.ConfigMissingFileFmt, flagPath, err)
		}
		return flagPath, true, nil
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName, true, nil
	}

	home, err := homedirFunc()
	if err != nil {
		return "", false, fmt.Errorf(messages.ConfigResolveHomeErrFmt, err)
	}
	homePath := filepath.Join(home, ".config", "cvsetup", FileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, true, nil
	}
	return "", false, nil
}

// LoadResolved resolves the config path and loads it, falling back to the
// embedded defaults when no file is found. The returned source is the loaded
// path, or empty when defaults are in use.
func LoadResolved(flagPath string) (cfg *Config, source string, err error) {
	path, found, err := ResolvePath(flagPath)
	if err != nil {
		return nil, "", err
	}
	if !found {
		cfg, err := LoadTemplateConfig()
		return cfg, "", err
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
