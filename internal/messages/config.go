package messages

// Config loading and validation errors.
const (
	ConfigMissingFileFmt      = "failed to read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid TOML in %s: %w"
	ConfigUnrecognizedKeysFmt = "unrecognized config keys in %s: %v."
	ConfigValidationGuidance  = "Run 'cvsetup init --force' to restore the default config."

	ConfigFailedReadTemplateFmt = "failed to read config template: %w"

	ConfigNoPackagesFmt     = "%s: no packages configured; list at least one package under [pip] or [apt]"
	ConfigEmptyPackageFmt   = "%s: %s packages must not contain empty entries"
	ConfigPackageSpacesFmt  = "%s: package name %q must not contain whitespace"
	ConfigInvalidUseSudoFmt = "%s: apt use-sudo must be one of auto, always, never (got %q)"

	ConfigResolveHomeErrFmt = "resolve home dir: %w"
)
