package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryUniqueIDs(t *testing.T) {
	reg := Default()

	seen := make(map[string]bool)
	total := 0
	for _, s := range reg.Sections {
		for _, e := range s.Entries {
			assert.False(t, seen[e.ID], "duplicate check id %s", e.ID)
			seen[e.ID] = true
			assert.NotNil(t, e.Check, "check %s has no check function", e.ID)
			total++
		}
	}
	assert.Greater(t, total, 50)
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Section{
		{ID: "9.1", Name: "a", Entries: []Entry{{ID: "9.1.1"}, {ID: "9.1.1"}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate check id 9.1.1")
}

func TestFilter(t *testing.T) {
	reg := Default()

	all, err := reg.Filter(TargetAll)
	require.NoError(t, err)
	var total int
	for _, s := range reg.Sections {
		total += len(s.Entries)
	}
	assert.Len(t, all, total)

	bySectionID, err := reg.Filter("1.1.1")
	require.NoError(t, err)
	assert.Len(t, bySectionID, len(kernelModules))

	byName, err := reg.Filter("kernel_modules")
	require.NoError(t, err)
	// Entry holds func fields, so compare by ID
	require.Len(t, byName, len(bySectionID))
	for i := range byName {
		assert.Equal(t, bySectionID[i].ID, byName[i].ID)
	}

	one, err := reg.Filter("1.1.1.1")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "1.1.1.1", one[0].ID)

	byPrefix, err := reg.Filter("1.1")
	require.NoError(t, err)
	assert.Len(t, byPrefix, len(bySectionID)+len(mountSectionEntries()))

	byPrefix2, err := reg.Filter("2")
	require.NoError(t, err)
	assert.Len(t, byPrefix2, len(bannedPackages)+1)
}

func TestFilterNotFound(t *testing.T) {
	reg := Default()

	subset, err := reg.Filter("5.5.5")
	assert.Nil(t, subset)
	assert.ErrorIs(t, err, ErrTargetNotFound)

	_, err = reg.Filter("nonsense")
	assert.ErrorIs(t, err, ErrTargetNotFound)

	assert.NotEmpty(t, reg.Targets())
}

func TestRestrictModules(t *testing.T) {
	reg := Default()
	entries, err := reg.Filter("1.1.1")
	require.NoError(t, err)

	subset := RestrictModules(entries, []string{"cramfs", "vfat"})
	require.Len(t, subset, 2)
	assert.Equal(t, "1.1.1.1", subset[0].ID)
	assert.Equal(t, "1.1.1.9", subset[1].ID) // vfat selects the FAT group entry

	assert.Empty(t, RestrictModules(entries, []string{"nosuch"}))
}

func TestRemediationOverrides(t *testing.T) {
	reg := Default()

	orig := reg.Remediation("1.1.1.1")
	assert.Contains(t, orig, "cramfs")

	reg.ApplyRemediationOverrides(map[string]string{
		"1.1.1.1": "see internal runbook FS-101",
		"no.such": "ignored",
	})
	assert.Equal(t, "see internal runbook FS-101", reg.Remediation("1.1.1.1"))
	assert.Empty(t, reg.Remediation("no.such"))
}

func TestSectionOf(t *testing.T) {
	reg := Default()

	s := reg.SectionOf("2.1.4")
	require.NotNil(t, s)
	assert.Equal(t, "services", s.Name)
	assert.Nil(t, reg.SectionOf("no.such"))
}
