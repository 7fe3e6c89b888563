package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhanghan177/cvsetup/internal/testutil"
)

// fakeSystem stubs the OS for check tests.
type fakeSystem struct {
	files        map[string][]byte
	available    map[string]bool
	euid         int
	dpkgWritable bool
}

func (f fakeSystem) ReadFile(name string) ([]byte, error) {
	if data, ok := f.files[name]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func (f fakeSystem) LookPath(file string) (string, error) {
	if f.available[file] {
		return "/usr/bin/" + file, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", file)
}

func (f fakeSystem) Geteuid() int { return f.euid }

func (f fakeSystem) CanWriteDpkgState() bool { return f.dpkgWritable }

func ubuntuSystem() fakeSystem {
	return fakeSystem{
		files: map[string][]byte{
			"/etc/os-release": []byte("ID=ubuntu\nID_LIKE=debian\nPRETTY_NAME=\"Ubuntu 22.04.4 LTS\"\n"),
		},
		available: map[string]bool{"python3": true, "pip": true, "apt-get": true, "sudo": true},
		euid:      1000,
	}
}

func requireSingle(t *testing.T, results []Result) Result {
	t.Helper()
	if len(results) != 1 {
		t.Fatalf("expected one result, got %v", results)
	}
	return results[0]
}

func TestCheckOS(t *testing.T) {
	r := requireSingle(t, CheckOS(ubuntuSystem()))
	if r.Status != StatusOK {
		t.Errorf("expected OK, got %s: %s", r.Status, r.Message)
	}
	if !strings.Contains(r.Message, "Ubuntu 22.04.4 LTS") {
		t.Errorf("expected pretty name in message, got %q", r.Message)
	}
}

func TestCheckOSNotDebian(t *testing.T) {
	sys := ubuntuSystem()
	sys.files["/etc/os-release"] = []byte("ID=fedora\nPRETTY_NAME=\"Fedora Linux 39\"\n")
	r := requireSingle(t, CheckOS(sys))
	if r.Status != StatusFail {
		t.Errorf("expected FAIL for Fedora, got %s", r.Status)
	}
}

func TestCheckOSUnreadable(t *testing.T) {
	sys := ubuntuSystem()
	delete(sys.files, "/etc/os-release")
	r := requireSingle(t, CheckOS(sys))
	if r.Status != StatusFail {
		t.Errorf("expected FAIL for missing os-release, got %s", r.Status)
	}
}

func TestCheckPython(t *testing.T) {
	results := CheckPython(ubuntuSystem(), "")
	if len(results) != 2 {
		t.Fatalf("expected interpreter and pip results, got %v", results)
	}
	for _, r := range results {
		if r.Status != StatusOK {
			t.Errorf("expected OK, got %s: %s", r.Status, r.Message)
		}
	}
}

func TestCheckPythonOnlyPython2(t *testing.T) {
	sys := ubuntuSystem()
	sys.available = map[string]bool{"python": true, "pip": true}
	results := CheckPython(sys, "")
	if results[0].Status != StatusWarn {
		t.Errorf("expected WARN for python without python3, got %s", results[0].Status)
	}
}

func TestCheckPythonMissingEverything(t *testing.T) {
	sys := ubuntuSystem()
	sys.available = map[string]bool{}
	results := CheckPython(sys, "")
	for _, r := range results {
		if r.Status != StatusFail {
			t.Errorf("expected FAIL, got %s: %s", r.Status, r.Message)
		}
	}
}

func TestCheckPythonConfiguredPip(t *testing.T) {
	sys := ubuntuSystem()
	results := CheckPython(sys, "pip3.11")
	pip := results[1]
	if pip.Status != StatusFail {
		t.Errorf("expected FAIL for missing configured pip, got %s", pip.Status)
	}

	sys.available["pip3.11"] = true
	results = CheckPython(sys, "pip3.11")
	pip = results[1]
	if pip.Status != StatusOK || !strings.Contains(pip.Message, "pip3.11") {
		t.Errorf("expected OK for configured pip, got %s: %s", pip.Status, pip.Message)
	}
}

func TestCheckApt(t *testing.T) {
	r := requireSingle(t, CheckApt(ubuntuSystem()))
	if r.Status != StatusOK {
		t.Errorf("expected OK, got %s", r.Status)
	}

	sys := ubuntuSystem()
	sys.available = map[string]bool{}
	r = requireSingle(t, CheckApt(sys))
	if r.Status != StatusFail {
		t.Errorf("expected FAIL without apt-get, got %s", r.Status)
	}
}

func TestCheckPrivilege(t *testing.T) {
	cases := []struct {
		name string
		sys  fakeSystem
		want Status
	}{
		{"root", fakeSystem{euid: 0}, StatusOK},
		{"dpkg writable", fakeSystem{euid: 1000, dpkgWritable: true}, StatusOK},
		{"sudo available", fakeSystem{euid: 1000, available: map[string]bool{"sudo": true}}, StatusOK},
		{"no privilege", fakeSystem{euid: 1000, available: map[string]bool{}}, StatusFail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := requireSingle(t, CheckPrivilege(tc.sys))
			if r.Status != tc.want {
				t.Errorf("expected %s, got %s: %s", tc.want, r.Status, r.Message)
			}
		})
	}
}

func TestCheckConfigDefaults(t *testing.T) {
	testutil.WithWorkingDir(t, t.TempDir(), func() {
		t.Setenv("HOME", t.TempDir())
		results, cfg := CheckConfig("")
		r := requireSingle(t, results)
		if r.Status != StatusOK {
			t.Errorf("expected OK for defaults, got %s: %s", r.Status, r.Message)
		}
		if cfg == nil || len(cfg.Pip.Packages) == 0 {
			t.Error("expected default config returned")
		}
	})
}

func TestCheckConfigInvalidFallsBackLenient(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cvsetup.toml")
	content := "[pip]\ncommand = \"pip3\"\npackages = []\n\n[apt]\npackages = []\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	results, cfg := CheckConfig(path)
	r := requireSingle(t, results)
	if r.Status != StatusFail {
		t.Errorf("expected FAIL for invalid config, got %s", r.Status)
	}
	if cfg == nil || cfg.Pip.Command != "pip3" {
		t.Errorf("expected lenient config with pip command, got %+v", cfg)
	}
}

func TestCheckConfigMissingFlagPath(t *testing.T) {
	results, cfg := CheckConfig(filepath.Join(t.TempDir(), "nope.toml"))
	r := requireSingle(t, results)
	if r.Status != StatusFail {
		t.Errorf("expected FAIL for missing flag path, got %s", r.Status)
	}
	if cfg != nil {
		t.Error("expected nil config")
	}
}

func TestHasFailure(t *testing.T) {
	if HasFailure([]Result{{Status: StatusOK}, {Status: StatusWarn}}) {
		t.Error("expected no failure")
	}
	if !HasFailure([]Result{{Status: StatusOK}, {Status: StatusFail}}) {
		t.Error("expected failure")
	}
}
