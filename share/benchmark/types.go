// Package benchmark holds the CIS Ubuntu 22.04 LTS check registry, the
// audit runner and the remediator. Checks are data driven: a small set
// of parameterized check kinds (kernel module, mount option, package,
// service, sysctl, file) is instantiated per resource in static tables.
package benchmark

import (
	"io/fs"

	"github.com/zarni99/ubuntu-audit/share/probe"
)

// Result is what a check function reports back: pass/fail, a
// human-readable message, and an optional remediation hint overriding
// the static one from the metadata table.
type Result struct {
	Passed      bool
	Message     string
	Remediation string
}

// CheckFn evaluates one benchmark item against the host. It must never
// panic on a probe failure; a command error becomes Passed=false with
// the error text in Message.
type CheckFn func(p probe.Prober) Result

// FixEnv is handed to automatic remediations. WriteFile is injectable
// so a permission failure can be simulated in tests.
type FixEnv struct {
	Prober    probe.Prober
	WriteFile func(name string, data []byte, perm fs.FileMode) error
}

// FixFn applies an automatic remediation and reports whether it took
// effect. It must not abort the remediation sequence on failure.
type FixFn func(env *FixEnv) (bool, string)

// Entry is one benchmark item. Static, defined at process start; the
// slice order within a section is the display order.
type Entry struct {
	ID          string
	Description string
	Check       CheckFn
	// Fix is nil for items that only have a manual procedure.
	Fix FixFn
	// Modules names the kernel modules this entry covers, used by the
	// --modules restriction. Empty for non-module entries.
	Modules []string
}

// Section groups entries under one benchmark heading.
type Section struct {
	ID    string
	Name  string
	Title string
	// Overview and Importance are shown in the non-technical report.
	Overview   string
	Importance string
	Entries    []Entry
}

// Outcome is the immutable result of running one entry.
type Outcome struct {
	ID          string `json:"check"`
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
	Message     string `json:"message"`
	Remediation string `json:"remediation,omitempty"`
}

// Report aggregates one audit run. OverallPassed is the logical AND of
// all outcomes actually executed.
type Report struct {
	RunID         string    `json:"run_id"`
	OverallPassed bool      `json:"overall_passed"`
	Outcomes      []Outcome `json:"results"`
}

// RemedyOutcome records the result of remediating one entry. Manual
// entries always report Success=false with the procedure in Message;
// re-running the audit is the only verification path.
type RemedyOutcome struct {
	ID          string `json:"check"`
	Description string `json:"description"`
	Manual      bool   `json:"manual"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
}

// RemediationReport aggregates one remediation run.
type RemediationReport struct {
	RunID    string          `json:"run_id"`
	Outcomes []RemedyOutcome `json:"results"`
}

// AllFixed reports whether every automatic remediation succeeded.
// Manual items do not count against it.
func (r *RemediationReport) AllFixed() bool {
	for _, o := range r.Outcomes {
		if !o.Manual && !o.Success {
			return false
		}
	}
	return true
}
