package benchmark

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type overrideCheck struct {
	ID          string `yaml:"id"`
	Remediation string `yaml:"remediation"`
}

type overrideGroup struct {
	Checks []overrideCheck `yaml:"checks"`
}

type overrideFile struct {
	Groups []overrideGroup `yaml:"groups"`
}

// LoadRemediationOverrides walks a directory of YAML files and collects
// per-check remediation text. Sites use this to replace the canned
// procedures with their own runbooks. A missing directory is not an
// error; a malformed file is skipped with a log entry.
func LoadRemediationOverrides(dir string) map[string]string {
	overrides := make(map[string]string)
	if dir == "" {
		return overrides
	}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || (filepath.Ext(path) != ".yaml" && filepath.Ext(path) != ".yml") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			log.WithFields(log.Fields{"path": path, "error": err}).Error("Error reading override file")
			return nil
		}
		var f overrideFile
		if err := yaml.Unmarshal(content, &f); err != nil {
			log.WithFields(log.Fields{"path": path, "error": err}).Error("Error unmarshalling override file")
			return nil
		}
		for _, g := range f.Groups {
			for _, c := range g.Checks {
				if c.ID != "" && c.Remediation != "" {
					overrides[c.ID] = c.Remediation
				}
			}
		}
		return nil
	})
	if err != nil {
		log.WithFields(log.Fields{"dir": dir, "error": err}).Warn("Remediation override directory not loaded")
	}
	return overrides
}
