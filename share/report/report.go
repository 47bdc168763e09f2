// Package report renders audit and remediation results, either as a
// colorized text report grouped by benchmark section or as JSON for
// machine consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zarni99/ubuntu-audit/share/benchmark"
)

// Writer renders reports to one output stream. Technical switches the
// text report from the plain-language explanations to the raw probe
// messages.
type Writer struct {
	out       io.Writer
	reg       *benchmark.Registry
	Technical bool
}

func NewWriter(out io.Writer, reg *benchmark.Registry) *Writer {
	return &Writer{out: out, reg: reg}
}

var (
	passText = color.New(color.FgGreen).SprintFunc()
	failText = color.New(color.FgRed).SprintFunc()
	warnText = color.New(color.FgYellow).SprintFunc()
	headText = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// WriteAudit prints the text report. Outcomes keep registry order;
// each section header is printed once, followed by its checks.
func (w *Writer) WriteAudit(rep *benchmark.Report) {
	var passed, failed int
	var lastSection string
	for _, o := range rep.Outcomes {
		if s := w.reg.SectionOf(o.ID); s != nil && s.ID != lastSection {
			lastSection = s.ID
			w.writeSectionHeader(s)
		}

		status := passText("PASS")
		if o.Passed {
			passed++
		} else {
			status = failText("FAIL")
			failed++
		}
		fmt.Fprintf(w.out, "  [%s] %-9s %s\n", status, o.ID, o.Description)

		if w.Technical && o.Message != "" {
			fmt.Fprintf(w.out, "         %s\n", o.Message)
		}
		if !o.Passed {
			if !w.Technical {
				if m, ok := benchmark.MetaOf(o.ID); ok && m.Explanation != "" {
					fmt.Fprintf(w.out, "         %s\n", m.Explanation)
				}
			}
			if o.Remediation != "" {
				fmt.Fprintf(w.out, "         %s %s\n", warnText("Fix:"), o.Remediation)
			}
		}
	}

	fmt.Fprintf(w.out, "\n%s\n", strings.Repeat("-", 72))
	fmt.Fprintf(w.out, "Run %s: %d of %d checks passed\n", rep.RunID, passed, passed+failed)
	if rep.OverallPassed {
		fmt.Fprintf(w.out, "%s\n", passText("Host is compliant with the selected checks."))
	} else {
		fmt.Fprintf(w.out, "%s\n", failText(fmt.Sprintf("%d checks need attention.", failed)))
	}
}

func (w *Writer) writeSectionHeader(s *benchmark.Section) {
	fmt.Fprintf(w.out, "\n%s\n", headText(fmt.Sprintf("%s %s", s.ID, s.Title)))
	if !w.Technical {
		if s.Overview != "" {
			fmt.Fprintf(w.out, "  %s\n", s.Overview)
		}
		if s.Importance != "" {
			fmt.Fprintf(w.out, "  %s\n", s.Importance)
		}
	}
}

// WriteRemediation prints the remediation text report. Manual items
// show the procedure to carry out; automatic ones show what was done.
func (w *Writer) WriteRemediation(rep *benchmark.RemediationReport) {
	var fixed, failedFix, manual int
	for _, o := range rep.Outcomes {
		switch {
		case o.Manual:
			manual++
			fmt.Fprintf(w.out, "  [%s] %-9s %s\n", warnText("MANUAL"), o.ID, o.Description)
			fmt.Fprintf(w.out, "           %s\n", o.Message)
		case o.Success:
			fixed++
			fmt.Fprintf(w.out, "  [%s] %-9s %s\n", passText("FIXED"), o.ID, o.Description)
			if o.Message != "" {
				fmt.Fprintf(w.out, "           %s\n", o.Message)
			}
		default:
			failedFix++
			fmt.Fprintf(w.out, "  [%s] %-9s %s\n", failText("FAILED"), o.ID, o.Description)
			fmt.Fprintf(w.out, "           %s\n", o.Message)
		}
	}

	fmt.Fprintf(w.out, "\n%s\n", strings.Repeat("-", 72))
	fmt.Fprintf(w.out, "Run %s: %d fixed, %d failed, %d manual\n", rep.RunID, fixed, failedFix, manual)
	if manual > 0 {
		fmt.Fprintf(w.out, "%s\n", warnText("Manual items require operator action; re-run the audit afterwards."))
	}
}

// jsonOutcome is the wire form of one audit result, with the PASS/FAIL
// status spelled out alongside the boolean.
type jsonOutcome struct {
	Check       string `json:"check"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	Passed      bool   `json:"passed"`
	Remediation string `json:"remediation,omitempty"`
}

type jsonAudit struct {
	RunID         string        `json:"run_id"`
	OverallPassed bool          `json:"overall_passed"`
	Results       []jsonOutcome `json:"results"`
}

// WriteAuditJSON emits the audit report as indented JSON.
func WriteAuditJSON(out io.Writer, rep *benchmark.Report) error {
	doc := jsonAudit{
		RunID:         rep.RunID,
		OverallPassed: rep.OverallPassed,
		Results:       make([]jsonOutcome, 0, len(rep.Outcomes)),
	}
	for _, o := range rep.Outcomes {
		status := "PASS"
		if !o.Passed {
			status = "FAIL"
		}
		doc.Results = append(doc.Results, jsonOutcome{
			Check:       o.ID,
			Description: o.Description,
			Status:      status,
			Message:     o.Message,
			Passed:      o.Passed,
			Remediation: o.Remediation,
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteRemediationJSON emits the remediation report as indented JSON.
func WriteRemediationJSON(out io.Writer, rep *benchmark.RemediationReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
