package doctor

import (
	"os"
	"os/exec"

	"github.com/zhanghan177/cvsetup/internal/sysinfo"
)

// System abstracts the OS operations the checks need.
// This interface is intentionally package-local so checks can run against
// fabricated os-release content and stub PATHs in tests; provision defines
// its own System with the operations specific to running steps.
type System interface {
	ReadFile(name string) ([]byte, error)
	LookPath(file string) (string, error)
	Geteuid() int
	CanWriteDpkgState() bool
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Geteuid returns the effective user id of the current process.
func (RealSystem) Geteuid() int {
	return sysinfo.EffectiveUID()
}

// CanWriteDpkgState reports whether the dpkg state directory is writable.
func (RealSystem) CanWriteDpkgState() bool {
	return sysinfo.CanWriteDpkgState()
}
