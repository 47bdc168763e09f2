package benchmark

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/zarni99/ubuntu-audit/share/probe"
)

// Remediator applies automatic fixes where an entry has one and prints
// the manual procedure otherwise. It never verifies convergence; the
// only verification path is re-running the audit.
type Remediator struct {
	reg *Registry
	env *FixEnv
}

func NewRemediator(reg *Registry, pr probe.Prober) *Remediator {
	return &Remediator{
		reg: reg,
		env: &FixEnv{Prober: pr, WriteFile: os.WriteFile},
	}
}

// Remediate walks the subset in order. A failed fix (for example a
// permission error writing under /etc/modprobe.d/) is recorded and the
// sequence continues with the next entry.
func (r *Remediator) Remediate(entries []Entry) *RemediationReport {
	rep := &RemediationReport{
		RunID:    uuid.New().String(),
		Outcomes: make([]RemedyOutcome, 0, len(entries)),
	}
	for _, e := range entries {
		o := RemedyOutcome{ID: e.ID, Description: e.Description}
		if e.Fix == nil {
			o.Manual = true
			o.Message = r.reg.Remediation(e.ID)
			if o.Message == "" {
				o.Message = "no automatic remediation; consult the benchmark document"
			}
		} else {
			o.Success, o.Message = e.Fix(r.env)
			if !o.Success {
				log.WithFields(log.Fields{"check": e.ID, "message": o.Message}).Error("Remediation failed")
			}
		}
		rep.Outcomes = append(rep.Outcomes, o)
	}
	return rep
}

// ModuleDisableFix unloads each module if loaded and writes the
// modprobe drop-in that disables it. Partial failure keeps going over
// the remaining modules so one bad module does not hide the rest.
func ModuleDisableFix(modules ...string) FixFn {
	return func(env *FixEnv) (bool, string) {
		success := true
		var msgs []string
		for _, m := range modules {
			loaded, err := moduleLoaded(env.Prober, m)
			if err != nil {
				success = false
				msgs = append(msgs, err.Error())
				continue
			}
			if loaded {
				if r := env.Prober.Run("rmmod", m); !r.Ok() {
					success = false
					msgs = append(msgs, fmt.Sprintf("failed to unload %s: %s", m, r.Error()))
					continue
				}
				msgs = append(msgs, fmt.Sprintf("unloaded %s", m))
			}
			conf := fmt.Sprintf("/etc/modprobe.d/%s.conf", m)
			content := fmt.Sprintf("# Disable %s module\ninstall %s /bin/true\n", m, m)
			if err := env.WriteFile(conf, []byte(content), 0644); err != nil {
				success = false
				msgs = append(msgs, fmt.Sprintf("failed to write %s: %s", conf, err.Error()))
				continue
			}
			msgs = append(msgs, fmt.Sprintf("created %s to disable %s", conf, m))
		}
		return success, strings.Join(msgs, "; ")
	}
}
