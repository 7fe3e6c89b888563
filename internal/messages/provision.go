package messages

// Provisioning step names and runner output.
const (
	// StepNamePipInstall labels the pip package installation step.
	StepNamePipInstall = "Install Python packages (pip)"
	// StepNameAptUpdate labels the apt index refresh step.
	StepNameAptUpdate = "Refresh apt package index"
	// StepNameAptInstall labels the apt package installation step.
	StepNameAptInstall = "Install system packages (apt-get)"

	RunnerStepHeaderFmt = "==> %s\n    $ %s\n"
	RunnerDoneFmt       = "Done. Ran %d step(s).\n"

	ProvisionStepFailedFmt   = "%s: %v"
	ProvisionCommandNotFound = "%s not found in PATH"
)
