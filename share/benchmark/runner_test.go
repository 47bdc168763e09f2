package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarni99/ubuntu-audit/share/probe"
)

// cleanHostResponses describes a host that passes the kernel-module
// section and fails the /tmp noexec item.
func cleanHostResponses() map[string]probe.Result {
	responses := map[string]probe.Result{
		"lsmod":           {Stdout: lsmodClean},
		"findmnt -n /tmp": {Stdout: "/tmp   /dev/sdb1  ext4   rw,nosuid,nodev,relatime\n"},
	}
	for _, km := range kernelModules {
		for _, m := range km.modules {
			responses["modprobe -n -v "+m] = probe.Result{Stdout: "install /bin/true \n"}
		}
	}
	return responses
}

func TestAuditAggregation(t *testing.T) {
	reg := Default()
	runner := NewRunner(reg, &stubProber{responses: cleanHostResponses()})

	entries, err := reg.Filter("1.1.2.1")
	require.NoError(t, err)
	rep := runner.Audit(entries)

	require.Len(t, rep.Outcomes, 4)
	assert.NotEmpty(t, rep.RunID)
	assert.False(t, rep.OverallPassed)

	byID := make(map[string]Outcome)
	allPassed := true
	for _, o := range rep.Outcomes {
		byID[o.ID] = o
		allPassed = allPassed && o.Passed
	}
	assert.Equal(t, allPassed, rep.OverallPassed)

	assert.True(t, byID["1.1.2.1.1"].Passed)
	assert.True(t, byID["1.1.2.1.2"].Passed)  // nodev
	assert.True(t, byID["1.1.2.1.3"].Passed)  // nosuid
	assert.False(t, byID["1.1.2.1.4"].Passed) // noexec
	assert.Contains(t, byID["1.1.2.1.4"].Remediation, "noexec")
}

func TestAuditAllPassed(t *testing.T) {
	reg := Default()
	runner := NewRunner(reg, &stubProber{responses: cleanHostResponses()})

	entries, err := reg.Filter("1.1.1")
	require.NoError(t, err)
	rep := runner.Audit(entries)

	assert.True(t, rep.OverallPassed)
	for _, o := range rep.Outcomes {
		assert.True(t, o.Passed, "check %s failed: %s", o.ID, o.Message)
		assert.Empty(t, o.Remediation)
	}
}

func TestAuditProbeErrorIsFailedOutcome(t *testing.T) {
	reg := Default()
	// Empty stub: every probe reports a missing binary.
	runner := NewRunner(reg, &stubProber{responses: map[string]probe.Result{}})

	entries, err := reg.Filter(TargetAll)
	require.NoError(t, err)

	var rep *Report
	assert.NotPanics(t, func() { rep = runner.Audit(entries) })
	assert.False(t, rep.OverallPassed)
	for _, o := range rep.Outcomes {
		assert.False(t, o.Passed, "check %s passed against a dead host", o.ID)
	}
}

func TestAuditIdempotent(t *testing.T) {
	reg := Default()
	runner := NewRunner(reg, &stubProber{responses: cleanHostResponses()})

	entries, err := reg.Filter(TargetAll)
	require.NoError(t, err)

	first := runner.Audit(entries)
	second := runner.Audit(entries)

	require.Len(t, second.Outcomes, len(first.Outcomes))
	assert.Equal(t, first.OverallPassed, second.OverallPassed)
	for i := range first.Outcomes {
		assert.Equal(t, first.Outcomes[i].ID, second.Outcomes[i].ID)
		assert.Equal(t, first.Outcomes[i].Passed, second.Outcomes[i].Passed)
		assert.Equal(t, first.Outcomes[i].Message, second.Outcomes[i].Message)
	}
}

func TestAuditFailureCarriesStderr(t *testing.T) {
	reg := Default()
	runner := NewRunner(reg, &stubProber{responses: map[string]probe.Result{
		"sysctl -n kernel.randomize_va_space": {ExitCode: 255, Stderr: "sysctl: permission denied"},
	}})

	entries, err := reg.Filter("1.5.1")
	require.NoError(t, err)
	rep := runner.Audit(entries)

	require.Len(t, rep.Outcomes, 1)
	assert.False(t, rep.Outcomes[0].Passed)
	assert.Contains(t, rep.Outcomes[0].Message, "permission denied")
}
