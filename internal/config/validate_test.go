package config

import (
	"strings"
	"testing"
)

func TestValidateNoPackages(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate("test")
	if err == nil || !strings.Contains(err.Error(), "no packages configured") {
		t.Fatalf("expected no-packages error, got %v", err)
	}
}

func TestValidateEmptyPackageEntry(t *testing.T) {
	cfg := &Config{Pip: PipConfig{Packages: []string{"opencv-python", "  "}}}
	if err := cfg.Validate("test"); err == nil {
		t.Fatal("expected error for blank package entry")
	}
}

func TestValidatePackageWithWhitespace(t *testing.T) {
	cfg := &Config{Apt: AptConfig{Packages: []string{"python-opencv libopencv-dev"}}}
	if err := cfg.Validate("test"); err == nil {
		t.Fatal("expected error for package name containing whitespace")
	}
}

func TestValidateUseSudo(t *testing.T) {
	for _, mode := range []string{"", SudoAuto, SudoAlways, SudoNever} {
		cfg := &Config{
			Pip: PipConfig{Packages: []string{"opencv-python"}},
			Apt: AptConfig{UseSudo: mode},
		}
		if err := cfg.Validate("test"); err != nil {
			t.Errorf("mode %q: unexpected error %v", mode, err)
		}
	}

	cfg := &Config{
		Pip: PipConfig{Packages: []string{"opencv-python"}},
		Apt: AptConfig{UseSudo: "sometimes"},
	}
	if err := cfg.Validate("test"); err == nil {
		t.Fatal("expected error for invalid use-sudo mode")
	}
}
