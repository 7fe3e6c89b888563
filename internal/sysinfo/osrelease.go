// Package sysinfo probes the host for the facts provisioning depends on:
// OS family, privilege, and the presence of the package-management tools.
package sysinfo

import (
	"bufio"
	"bytes"
	"strings"
)

// OSReleasePath is the standard location of the os-release file.
const OSReleasePath = "/etc/os-release"

// OSRelease holds the fields of /etc/os-release that matter for provisioning.
type OSRelease struct {
	ID         string
	IDLike     []string
	Name       string
	VersionID  string
	PrettyName string
}

// ParseOSRelease parses os-release content. Unknown keys are ignored;
// malformed lines are skipped rather than treated as errors, matching how
// the file is consumed by other tooling.
func ParseOSRelease(data []byte) OSRelease {
	var osr OSRelease
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = unquote(strings.TrimSpace(value))
		switch strings.TrimSpace(key) {
		case "ID":
			osr.ID = value
		case "ID_LIKE":
			osr.IDLike = strings.Fields(value)
		case "NAME":
			osr.Name = value
		case "VERSION_ID":
			osr.VersionID = value
		case "PRETTY_NAME":
			osr.PrettyName = value
		}
	}
	return osr
}

// DebianFamily reports whether the release is Debian or a Debian derivative
// (Ubuntu, Mint, ...), which is the only family cvsetup supports.
func (o OSRelease) DebianFamily() bool {
	if o.ID == "debian" || o.ID == "ubuntu" {
		return true
	}
	for _, like := range o.IDLike {
		if like == "debian" || like == "ubuntu" {
			return true
		}
	}
	return false
}

// DisplayName returns the most specific human-readable name available.
func (o OSRelease) DisplayName() string {
	if o.PrettyName != "" {
		return o.PrettyName
	}
	if o.Name != "" {
		return o.Name
	}
	if o.ID != "" {
		return o.ID
	}
	return "unknown"
}

func unquote(value string) string {
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		return value[1 : len(value)-1]
	}
	return value
}
