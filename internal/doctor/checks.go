package doctor

import (
	"fmt"

	"github.com/zhanghan177/cvsetup/internal/config"
	"github.com/zhanghan177/cvsetup/internal/messages"
	"github.com/zhanghan177/cvsetup/internal/sysinfo"
)

var loadConfigLenientFunc = config.LoadConfigLenient

// CheckOS verifies the host is a Debian/Ubuntu-family system.
func CheckOS(sys System) []Result {
	data, err := sys.ReadFile(sysinfo.OSReleasePath)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameOS,
			Message:        fmt.Sprintf(messages.DoctorOSReleaseUnreadableFmt, sysinfo.OSReleasePath, err),
			Recommendation: messages.DoctorOSReleaseRecommend,
		}}
	}
	osr := sysinfo.ParseOSRelease(data)
	if !osr.DebianFamily() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameOS,
			Message:        fmt.Sprintf(messages.DoctorOSNotDebianFmt, osr.DisplayName()),
			Recommendation: messages.DoctorOSNotDebianRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameOS,
		Message:   fmt.Sprintf(messages.DoctorOSDetectedFmt, osr.DisplayName()),
	}}
}

// CheckPython verifies a Python 3 interpreter and a pip executable are
// available. pipCommand is the configured pip executable; empty means the
// default pip/pip3 probing applies.
func CheckPython(sys System, pipCommand string) []Result {
	var results []Result

	if _, err := sys.LookPath("python3"); err == nil {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNamePython,
			Message:   messages.DoctorPython3Found,
		})
	} else if _, err := sys.LookPath("python"); err == nil {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNamePython,
			Message:        messages.DoctorPython3Missing,
			Recommendation: messages.DoctorPythonRecommend,
		})
	} else {
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePython,
			Message:        messages.DoctorPythonMissing,
			Recommendation: messages.DoctorPythonRecommend,
		})
	}

	results = append(results, checkPip(sys, pipCommand))
	return results
}

func checkPip(sys System, pipCommand string) Result {
	if pipCommand != "" {
		if _, err := sys.LookPath(pipCommand); err != nil {
			return Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNamePython,
				Message:        fmt.Sprintf(messages.DoctorPipConfiguredMissing, pipCommand),
				Recommendation: messages.DoctorPipConfiguredRecommend,
			}
		}
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNamePython,
			Message:   fmt.Sprintf(messages.DoctorPipFoundFmt, pipCommand),
		}
	}
	for _, candidate := range []string{"pip", "pip3"} {
		if _, err := sys.LookPath(candidate); err == nil {
			return Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNamePython,
				Message:   fmt.Sprintf(messages.DoctorPipFoundFmt, candidate),
			}
		}
	}
	return Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNamePython,
		Message:        messages.DoctorPipMissing,
		Recommendation: messages.DoctorPipRecommend,
	}
}

// CheckApt verifies apt-get is available.
func CheckApt(sys System) []Result {
	if _, err := sys.LookPath("apt-get"); err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameApt,
			Message:        messages.DoctorAptMissing,
			Recommendation: messages.DoctorAptRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameApt,
		Message:   messages.DoctorAptFound,
	}}
}

// CheckPrivilege verifies the process can install system packages: running as
// root, having write access to the dpkg state, or having sudo available.
func CheckPrivilege(sys System) []Result {
	switch {
	case sys.Geteuid() == 0:
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNamePrivilege,
			Message:   messages.DoctorRunningAsRoot,
		}}
	case sys.CanWriteDpkgState():
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNamePrivilege,
			Message:   messages.DoctorDpkgWritable,
		}}
	default:
		if _, err := sys.LookPath("sudo"); err == nil {
			return []Result{{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNamePrivilege,
				Message:   messages.DoctorSudoAvailable,
			}}
		}
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePrivilege,
			Message:        messages.DoctorNoPrivilege,
			Recommendation: messages.DoctorPrivilegeRecommend,
		}}
	}
}

// CheckConfig validates that the resolved config loads. A missing config is
// OK (built-in defaults apply); a present but invalid one fails, with a
// lenient reload so the returned config still drives the remaining checks.
func CheckConfig(flagPath string) ([]Result, *config.Config) {
	path, found, err := config.ResolvePath(flagPath)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	if !found {
		cfg, err := config.LoadTemplateConfig()
		if err != nil {
			return []Result{{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameConfig,
				Message:   fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			}}, nil
		}
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefaults,
		}}, cfg
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		// Strict load failed. Retry leniently so the remaining checks can
		// still use whatever parsed (e.g. a configured pip command).
		result := Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}
		lenient, lenientErr := loadConfigLenientFunc(path)
		if lenientErr != nil {
			return []Result{result}, nil
		}
		return []Result{result}, lenient
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
	}}, cfg
}
