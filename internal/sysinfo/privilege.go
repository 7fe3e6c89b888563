package sysinfo

import "golang.org/x/sys/unix"

// DpkgStateDir is the dpkg database directory whose writability indicates
// that system packages can be installed without elevation.
const DpkgStateDir = "/var/lib/dpkg"

// EffectiveUID returns the effective user id of the current process.
func EffectiveUID() int {
	return unix.Geteuid()
}

// CanWriteDpkgState reports whether the dpkg state directory is writable by
// the current process. Used as a secondary privilege signal: some provisioned
// images grant write access without uid 0.
func CanWriteDpkgState() bool {
	return unix.Access(DpkgStateDir, unix.W_OK) == nil
}
