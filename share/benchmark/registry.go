package benchmark

import (
	"errors"
	"fmt"
	"strings"
)

// TargetAll selects every entry across every section.
const TargetAll = "all"

// ErrTargetNotFound distinguishes an unknown section/check name from a
// legitimately empty result set.
var ErrTargetNotFound = errors.New("target not found")

// Registry is the ordered set of benchmark sections. Read-only after
// construction; remediation text can be overridden once at startup.
type Registry struct {
	Sections []Section

	byID         map[string]*Entry
	remediations map[string]string
}

// NewRegistry builds a registry and rejects duplicate check IDs.
func NewRegistry(sections []Section) (*Registry, error) {
	r := &Registry{
		Sections:     sections,
		byID:         make(map[string]*Entry),
		remediations: make(map[string]string),
	}
	for si := range sections {
		for ei := range sections[si].Entries {
			e := &sections[si].Entries[ei]
			if _, ok := r.byID[e.ID]; ok {
				return nil, fmt.Errorf("duplicate check id %s", e.ID)
			}
			r.byID[e.ID] = e
			if m, ok := cisItems[e.ID]; ok {
				r.remediations[e.ID] = m.Remediation
			}
		}
	}
	return r, nil
}

// Default returns the full Ubuntu 22.04 registry. The tables are
// static, so a duplicate ID is a programming error.
func Default() *Registry {
	r, err := NewRegistry(defaultSections())
	if err != nil {
		panic(err)
	}
	return r
}

// Filter resolves a target to an ordered subset of entries. Accepted
// targets: "all", a section ID or name, an exact check ID, or a
// numbering prefix such as "1.1". An unknown target yields
// ErrTargetNotFound.
func (r *Registry) Filter(target string) ([]Entry, error) {
	target = strings.TrimSpace(target)
	if target == "" || target == TargetAll {
		return r.allEntries(), nil
	}

	for _, s := range r.Sections {
		if s.ID == target || s.Name == target {
			return append([]Entry(nil), s.Entries...), nil
		}
	}
	if e, ok := r.byID[target]; ok {
		return []Entry{*e}, nil
	}

	prefix := target + "."
	var subset []Entry
	for _, s := range r.Sections {
		if strings.HasPrefix(s.ID, prefix) {
			subset = append(subset, s.Entries...)
			continue
		}
		for _, e := range s.Entries {
			if strings.HasPrefix(e.ID, prefix) {
				subset = append(subset, e)
			}
		}
	}
	if len(subset) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}
	return subset, nil
}

// RestrictModules keeps only the kernel-module entries covering one of
// the named modules. Non-module entries are dropped.
func RestrictModules(entries []Entry, names []string) []Entry {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.TrimSpace(n)] = true
	}
	var subset []Entry
	for _, e := range entries {
		for _, m := range e.Modules {
			if want[m] {
				subset = append(subset, e)
				break
			}
		}
	}
	return subset
}

// Targets lists every valid filter target, for the not-found message.
func (r *Registry) Targets() []string {
	var out []string
	for _, s := range r.Sections {
		out = append(out, fmt.Sprintf("%s (%s)", s.ID, s.Name))
	}
	return out
}

// Remediation returns the remediation text for a check, with any
// override applied.
func (r *Registry) Remediation(id string) string {
	return r.remediations[id]
}

// ApplyRemediationOverrides replaces remediation text per check ID,
// typically loaded from a YAML override directory.
func (r *Registry) ApplyRemediationOverrides(overrides map[string]string) {
	for id, text := range overrides {
		if _, ok := r.byID[id]; ok {
			r.remediations[id] = text
		}
	}
}

func (r *Registry) allEntries() []Entry {
	var all []Entry
	for _, s := range r.Sections {
		all = append(all, s.Entries...)
	}
	return all
}

// SectionOf returns the section containing the check ID, for report
// grouping.
func (r *Registry) SectionOf(id string) *Section {
	for i := range r.Sections {
		for _, e := range r.Sections[i].Entries {
			if e.ID == id {
				return &r.Sections[i]
			}
		}
	}
	return nil
}
