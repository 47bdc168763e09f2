package benchmark

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarni99/ubuntu-audit/share/probe"
)

func testFixEnv(responses map[string]probe.Result, writes map[string]string, writeErr error) *FixEnv {
	return &FixEnv{
		Prober: &stubProber{responses: responses},
		WriteFile: func(name string, data []byte, perm fs.FileMode) error {
			if writeErr != nil {
				return writeErr
			}
			writes[name] = string(data)
			return nil
		},
	}
}

func TestModuleDisableFix(t *testing.T) {
	writes := make(map[string]string)
	env := testFixEnv(map[string]probe.Result{
		"lsmod":        {Stdout: lsmodClean + "cramfs                 16384  0\n"},
		"rmmod cramfs": {},
	}, writes, nil)

	ok, msg := ModuleDisableFix("cramfs")(env)
	assert.True(t, ok)
	assert.Contains(t, msg, "unloaded cramfs")
	assert.Contains(t, msg, "created /etc/modprobe.d/cramfs.conf")
	assert.Equal(t, "# Disable cramfs module\ninstall cramfs /bin/true\n", writes["/etc/modprobe.d/cramfs.conf"])
}

func TestModuleDisableFixWriteFailure(t *testing.T) {
	env := testFixEnv(map[string]probe.Result{
		"lsmod": {Stdout: lsmodClean},
	}, nil, errors.New("open /etc/modprobe.d/cramfs.conf: permission denied"))

	ok, msg := ModuleDisableFix("cramfs")(env)
	assert.False(t, ok)
	assert.Contains(t, msg, "permission denied")
}

func TestModuleDisableFixRmmodFailure(t *testing.T) {
	writes := make(map[string]string)
	env := testFixEnv(map[string]probe.Result{
		"lsmod":      {Stdout: lsmodClean + "vfat                   90112  1\nfat                    86016  1 vfat\n"},
		"rmmod fat":  {ExitCode: 1, Stderr: "rmmod: ERROR: Module fat is in use by: vfat"},
		"rmmod vfat": {},
	}, writes, nil)

	ok, msg := ModuleDisableFix("fat", "vfat", "msdos")(env)
	assert.False(t, ok)
	assert.Contains(t, msg, "failed to unload fat")
	// the failure does not stop the remaining modules
	assert.Contains(t, msg, "created /etc/modprobe.d/vfat.conf")
	assert.Contains(t, msg, "created /etc/modprobe.d/msdos.conf")
}

func TestRemediateContinuesPastFailure(t *testing.T) {
	reg := Default()
	rem := NewRemediator(reg, &stubProber{responses: map[string]probe.Result{
		"lsmod": {Stdout: lsmodClean},
	}})
	rem.env.WriteFile = func(name string, data []byte, perm fs.FileMode) error {
		return errors.New("permission denied")
	}

	entries, err := reg.Filter("1.1.1")
	require.NoError(t, err)
	rep := rem.Remediate(entries)

	require.Len(t, rep.Outcomes, len(entries))
	for _, o := range rep.Outcomes {
		assert.False(t, o.Manual)
		assert.False(t, o.Success)
		assert.Contains(t, o.Message, "permission denied")
	}
	assert.False(t, rep.AllFixed())
}

func TestRemediateManualEntries(t *testing.T) {
	reg := Default()
	rem := NewRemediator(reg, &stubProber{responses: map[string]probe.Result{}})

	entries, err := reg.Filter("1.1.2.1")
	require.NoError(t, err)
	rep := rem.Remediate(entries)

	require.Len(t, rep.Outcomes, 4)
	for _, o := range rep.Outcomes {
		assert.True(t, o.Manual)
		assert.False(t, o.Success)
		assert.NotEmpty(t, o.Message)
	}
	// manual items do not count as failures
	assert.True(t, rep.AllFixed())
}

func TestRemediateMixedSequence(t *testing.T) {
	reg := Default()
	writes := make(map[string]string)
	rem := NewRemediator(reg, &stubProber{responses: map[string]probe.Result{
		"lsmod": {Stdout: lsmodClean},
	}})
	rem.env.WriteFile = func(name string, data []byte, perm fs.FileMode) error {
		writes[name] = string(data)
		return nil
	}

	entries, err := reg.Filter("1.1")
	require.NoError(t, err)
	rep := rem.Remediate(entries)

	var auto, manual int
	for _, o := range rep.Outcomes {
		if o.Manual {
			manual++
		} else {
			auto++
			assert.True(t, o.Success)
		}
	}
	assert.Equal(t, len(kernelModules), auto)
	assert.Equal(t, len(mountSectionEntries()), manual)
	assert.Contains(t, writes, "/etc/modprobe.d/cramfs.conf")
	assert.Contains(t, writes, "/etc/modprobe.d/msdos.conf")
}
