// Package doctor runs preflight checks on the machine being provisioned.
package doctor

// Status is the outcome of a single check.
type Status string

// Check outcomes.
const (
	// StatusOK means the check passed.
	StatusOK Status = "OK"
	// StatusWarn means the check found something worth flagging but not fatal.
	StatusWarn Status = "WARN"
	// StatusFail means the check found a problem that blocks provisioning.
	StatusFail Status = "FAIL"
)

// Result is the outcome of one doctor check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
