package config

import (
	"fmt"
	"strings"

	"github.com/zhanghan177/cvsetup/internal/messages"
)

// Validate checks the config for semantic errors.
// source identifies the config origin in error messages.
func (c *Config) Validate(source string) error {
	if len(c.Pip.Packages) == 0 && len(c.Apt.Packages) == 0 {
		return fmt.Errorf(messages.ConfigNoPackagesFmt, source)
	}
	if err := validatePackages(source, "pip", c.Pip.Packages); err != nil {
		return err
	}
	if err := validatePackages(source, "apt", c.Apt.Packages); err != nil {
		return err
	}
	switch c.SudoMode() {
	case SudoAuto, SudoAlways, SudoNever:
	default:
		return fmt.Errorf(messages.ConfigInvalidUseSudoFmt, source, c.Apt.UseSudo)
	}
	return nil
}

func validatePackages(source string, section string, packages []string) error {
	for _, pkg := range packages {
		if strings.TrimSpace(pkg) == "" {
			return fmt.Errorf(messages.ConfigEmptyPackageFmt, source, section)
		}
		if strings.ContainsAny(pkg, " \t") {
			return fmt.Errorf(messages.ConfigPackageSpacesFmt, source, pkg)
		}
	}
	return nil
}
