package messages

// Doctor command output.
const (
	// DoctorUse is the doctor command name.
	DoctorUse = "doctor"
	// DoctorShort is the short description for the doctor command.
	DoctorShort = "Check that this machine can be provisioned"

	DoctorHeader = "Checking provisioning environment...\n\n"

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "

	DoctorFailureSummary = "Doctor found problems. Fix the failures above and re-run."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "Environment looks good."

	DoctorCheckNameOS        = "Operating system"
	DoctorCheckNamePython    = "Python runtime"
	DoctorCheckNameApt       = "Package manager"
	DoctorCheckNamePrivilege = "Privilege"
	DoctorCheckNameConfig    = "Config"

	DoctorOSReleaseUnreadableFmt = "cannot read %s: %v"
	DoctorOSReleaseRecommend     = "cvsetup only supports Debian/Ubuntu-family systems."
	DoctorOSNotDebianFmt         = "%s is not a Debian/Ubuntu-family system"
	DoctorOSNotDebianRecommend   = "Provision this machine manually; apt-get is not available here."
	DoctorOSDetectedFmt          = "detected %s"

	DoctorPython3Found           = "python3 found"
	DoctorPython3Missing         = "python3 not found in PATH (found python)"
	DoctorPythonMissing          = "no python interpreter found in PATH"
	DoctorPythonRecommend        = "Install Python 3 before provisioning: sudo apt-get install python3"
	DoctorPipFoundFmt            = "%s found"
	DoctorPipMissing             = "no pip executable found in PATH"
	DoctorPipRecommend           = "Install pip before provisioning: sudo apt-get install python3-pip"
	DoctorPipConfiguredMissing   = "configured pip command %q not found in PATH"
	DoctorPipConfiguredRecommend = "Fix the [pip] command entry in the config or install the tool."

	DoctorAptFound     = "apt-get found"
	DoctorAptMissing   = "apt-get not found in PATH"
	DoctorAptRecommend = "cvsetup installs system packages with apt-get and cannot run without it."

	DoctorRunningAsRoot      = "running as root"
	DoctorSudoAvailable      = "sudo available for system package installation"
	DoctorDpkgWritable       = "dpkg state is writable"
	DoctorNoPrivilege        = "not root and sudo not found in PATH"
	DoctorPrivilegeRecommend = "Run cvsetup as root or install sudo; installing system packages requires elevated privilege."

	DoctorConfigLoadedFmt     = "loaded %s"
	DoctorConfigDefaults      = "no config file found; built-in defaults will be used"
	DoctorConfigLoadFailedFmt = "config failed to load: %v"
	DoctorConfigLoadRecommend = "Fix the config file or remove it to fall back to the built-in defaults."
)
