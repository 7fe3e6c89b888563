package provision

import (
	"github.com/zhanghan177/cvsetup/internal/config"
	"github.com/zhanghan177/cvsetup/internal/messages"
)

// pipCandidates are probed in order when no pip command is configured.
var pipCandidates = []string{"pip", "pip3"}

// BuildPlan resolves the ordered provisioning steps from the config:
// pip install, apt-get update, apt-get install. Steps whose package lists are
// empty are omitted; tool availability is deliberately not checked here, so a
// missing tool fails the run at its own step rather than blocking earlier ones.
func BuildPlan(sys System, cfg *config.Config) []Step {
	var steps []Step

	if len(cfg.Pip.Packages) > 0 {
		steps = append(steps, Step{
			ID:      StepPipInstall,
			Name:    messages.StepNamePipInstall,
			Command: resolvePip(sys, cfg),
			Args:    append([]string{"install"}, cfg.Pip.Packages...),
		})
	}

	if len(cfg.Apt.Packages) > 0 {
		elevate := elevateApt(sys, cfg)
		if cfg.UpdateIndexEnabled() {
			steps = append(steps, Step{
				ID:      StepAptUpdate,
				Name:    messages.StepNameAptUpdate,
				Command: "apt-get",
				Args:    []string{"update"},
				Elevate: elevate,
			})
		}
		steps = append(steps, Step{
			ID:      StepAptInstall,
			Name:    messages.StepNameAptInstall,
			Command: "apt-get",
			Args:    append([]string{"install", "-y"}, cfg.Apt.Packages...),
			Elevate: elevate,
		})
	}

	return steps
}

// resolvePip returns the pip executable for the plan: the configured command
// when set, otherwise the first PATH hit among the candidates. When nothing
// resolves, the first candidate is kept so the run fails at the pip step with
// a lookup error instead of failing plan construction.
func resolvePip(sys System, cfg *config.Config) string {
	if cfg.Pip.Command != "" {
		return cfg.Pip.Command
	}
	for _, candidate := range pipCandidates {
		if _, err := sys.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return pipCandidates[0]
}

// elevateApt decides whether apt steps get a sudo prefix.
func elevateApt(sys System, cfg *config.Config) bool {
	switch cfg.SudoMode() {
	case config.SudoAlways:
		return true
	case config.SudoNever:
		return false
	default:
		return sys.Geteuid() != 0
	}
}
