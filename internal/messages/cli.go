package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "cvsetup"
	// RootShort is the short description for the root command.
	RootShort = "Provision a Ubuntu machine with OpenCV"
	// RootLong describes the provisioning sequence the root command runs.
	RootLong = "Install the OpenCV Python binding via pip, refresh the apt package index,\n" +
		"and install the system OpenCV package via apt-get, in that order.\n" +
		"Every step is fatal on failure; the failing tool's exit status is propagated."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	RootFlagYes    = "Run without asking for confirmation"
	RootFlagDryRun = "Print the resolved steps without executing them"
	RootFlagConfig = "Path to a cvsetup config file"

	RunConfirmPromptFmt = "Install %s via pip and %s via apt-get?"
	RunAborted          = "Aborted. Nothing was installed."
	RunConfigSourceFmt  = "Using config: %s\n"
	RunDefaultsInUse    = "No config file found; using built-in defaults.\n"

	// PlanUse is the plan command name.
	PlanUse         = "plan"
	PlanShort       = "Print the provisioning steps without executing them"
	PlanHeader      = "Provisioning plan:"
	PlanStepLineFmt = "  %d. %s\n     $ %s\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Write the default cvsetup.toml to the current directory"

	InitFlagForce              = "Overwrite an existing config file without prompting"
	InitCreatedFmt             = "Wrote %s\n"
	InitUnchangedFmt           = "%s already matches the default config; nothing to do\n"
	InitOverwrittenFmt         = "Overwrote %s with the default config\n"
	InitSkippedFmt             = "Left %s unchanged\n"
	InitDiffHeader             = "Existing config differs from the default:"
	InitOverwritePromptFmt     = "Overwrite %s with the default config?"
	InitRequiresTerminal       = "init overwrite prompts require an interactive terminal; re-run with --force to overwrite without prompts"
	InitOverwritePromptMissing = "overwrite prompt is required when --force is not set"
)
