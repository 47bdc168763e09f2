package benchmark

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/zarni99/ubuntu-audit/share/probe"
)

// Runner executes registry subsets sequentially, in registry order.
// Probes against the live system carry no consistency guarantee between
// successive checks; the runner does not try to paper over that.
type Runner struct {
	reg *Registry
	pr  probe.Prober
}

func NewRunner(reg *Registry, pr probe.Prober) *Runner {
	return &Runner{reg: reg, pr: pr}
}

// Audit runs every entry and aggregates the overall verdict. A check
// whose probe fails yields a failed outcome, never an error.
func (r *Runner) Audit(entries []Entry) *Report {
	rep := &Report{
		RunID:         uuid.New().String(),
		OverallPassed: true,
		Outcomes:      make([]Outcome, 0, len(entries)),
	}
	for _, e := range entries {
		res := e.Check(r.pr)
		remediation := ""
		if !res.Passed {
			remediation = res.Remediation
			if remediation == "" {
				remediation = r.reg.Remediation(e.ID)
			}
		}
		o := Outcome{
			ID:          e.ID,
			Description: e.Description,
			Passed:      res.Passed,
			Message:     res.Message,
			Remediation: remediation,
		}
		log.WithFields(log.Fields{"check": o.ID, "passed": o.Passed}).Debug("Audit check done")
		if !o.Passed {
			rep.OverallPassed = false
		}
		rep.Outcomes = append(rep.Outcomes, o)
	}
	return rep
}
