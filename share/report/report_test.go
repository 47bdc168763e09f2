package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarni99/ubuntu-audit/share/benchmark"
)

func init() {
	color.NoColor = true
}

func sampleReport() *benchmark.Report {
	return &benchmark.Report{
		RunID:         "8b9e9167-3c7e-4f3a-9a0d-2f4f5b6a7c8d",
		OverallPassed: false,
		Outcomes: []benchmark.Outcome{
			{ID: "1.1.1.1", Description: "Ensure cramfs kernel module is not available", Passed: true,
				Message: "cramfs is not loadable"},
			{ID: "1.1.2.1.4", Description: "Ensure noexec option set on /tmp partition", Passed: false,
				Message:     "mount option 'noexec' is not set on /tmp",
				Remediation: "Remount /tmp with the noexec option and persist it in /etc/fstab"},
		},
	}
}

func TestWriteAudit(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, benchmark.Default())
	w.WriteAudit(sampleReport())
	out := buf.String()

	assert.Contains(t, out, "[PASS] 1.1.1.1")
	assert.Contains(t, out, "[FAIL] 1.1.2.1.4")
	assert.Contains(t, out, "Fix: Remount /tmp with the noexec option")
	assert.Contains(t, out, "1 of 2 checks passed")
	// section headers come from the registry, one per group
	assert.Contains(t, out, "1.1.1 Filesystem Kernel Modules")
	assert.Contains(t, out, "1.1.2 Filesystem Partitions")
	// non-technical mode swaps raw probe output for the explanation
	assert.NotContains(t, out, "cramfs is not loadable")
}

func TestWriteAuditTechnical(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, benchmark.Default())
	w.Technical = true
	w.WriteAudit(sampleReport())
	out := buf.String()

	assert.Contains(t, out, "cramfs is not loadable")
	assert.Contains(t, out, "mount option 'noexec' is not set on /tmp")
}

func TestWriteAuditAllPassed(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, benchmark.Default())
	w.WriteAudit(&benchmark.Report{
		RunID:         "r",
		OverallPassed: true,
		Outcomes: []benchmark.Outcome{
			{ID: "1.5.1", Description: "Ensure address space layout randomization is enabled", Passed: true},
		},
	})
	assert.Contains(t, buf.String(), "Host is compliant")
}

func TestWriteRemediation(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, benchmark.Default())
	w.WriteRemediation(&benchmark.RemediationReport{
		RunID: "r",
		Outcomes: []benchmark.RemedyOutcome{
			{ID: "1.1.1.1", Description: "cramfs", Success: true, Message: "created /etc/modprobe.d/cramfs.conf"},
			{ID: "1.1.1.2", Description: "freevxfs", Success: false, Message: "permission denied"},
			{ID: "1.1.2.1.1", Description: "/tmp partition", Manual: true, Message: "Create a separate /tmp partition"},
		},
	})
	out := buf.String()

	assert.Contains(t, out, "[FIXED] 1.1.1.1")
	assert.Contains(t, out, "[FAILED] 1.1.1.2")
	assert.Contains(t, out, "[MANUAL] 1.1.2.1.1")
	assert.Contains(t, out, "1 fixed, 1 failed, 1 manual")
	assert.Contains(t, out, "re-run the audit")
}

func TestWriteAuditJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAuditJSON(&buf, sampleReport()))

	var doc struct {
		RunID         string `json:"run_id"`
		OverallPassed bool   `json:"overall_passed"`
		Results       []struct {
			Check       string `json:"check"`
			Status      string `json:"status"`
			Message     string `json:"message"`
			Passed      bool   `json:"passed"`
			Remediation string `json:"remediation"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "8b9e9167-3c7e-4f3a-9a0d-2f4f5b6a7c8d", doc.RunID)
	assert.False(t, doc.OverallPassed)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "PASS", doc.Results[0].Status)
	assert.True(t, doc.Results[0].Passed)
	assert.Empty(t, doc.Results[0].Remediation)
	assert.Equal(t, "FAIL", doc.Results[1].Status)
	assert.Contains(t, doc.Results[1].Remediation, "noexec")
}

func TestWriteRemediationJSON(t *testing.T) {
	var buf bytes.Buffer
	rep := &benchmark.RemediationReport{
		RunID: "r",
		Outcomes: []benchmark.RemedyOutcome{
			{ID: "1.1.1.1", Manual: false, Success: true, Message: "done"},
		},
	}
	require.NoError(t, WriteRemediationJSON(&buf, rep))

	var doc benchmark.RemediationReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Outcomes, 1)
	assert.True(t, doc.Outcomes[0].Success)
}
