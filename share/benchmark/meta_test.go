package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaCoversEveryEntry(t *testing.T) {
	reg := Default()
	for _, s := range reg.Sections {
		for _, e := range s.Entries {
			m, ok := MetaOf(e.ID)
			assert.True(t, ok, "check %s has no metadata", e.ID)
			assert.Equal(t, e.ID, m.TestNum)
			assert.NotEmpty(t, m.Description, "check %s has no description", e.ID)
			assert.NotEmpty(t, m.Remediation, "check %s has no remediation", e.ID)
			assert.NotEmpty(t, m.Profile, "check %s has no profile", e.ID)
		}
	}
}

func TestMetaAutomatedMatchesFix(t *testing.T) {
	// Only entries with an automatic fix may be marked Automated.
	reg := Default()
	for _, s := range reg.Sections {
		for _, e := range s.Entries {
			m, ok := MetaOf(e.ID)
			if !ok {
				continue
			}
			assert.Equal(t, e.Fix != nil, m.Automated, "check %s Automated flag disagrees with its fix", e.ID)
		}
	}
}

func TestMetaOfUnknown(t *testing.T) {
	_, ok := MetaOf("no.such.check")
	assert.False(t, ok)
}
