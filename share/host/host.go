// Package host identifies the audited platform from /etc/os-release.
package host

import (
	"bufio"
	"os"
	"strings"

	"github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
)

const osReleasePath = "/etc/os-release"

// benchmarkRelease is the Ubuntu release the check tables are written
// against.
const benchmarkRelease = "22.04"

// Info describes the distribution the tool is running on.
type Info struct {
	ID         string
	VersionID  string
	PrettyName string
}

// ParseOSRelease reads the os-release key=value format. Values may be
// quoted.
func ParseOSRelease(content string) Info {
	var info Info
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "ID":
			info.ID = value
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}
	return info
}

// Detect reads the live os-release file. An unreadable file yields an
// empty Info; the audit still runs, it just cannot vouch for the
// platform.
func Detect() Info {
	content, err := os.ReadFile(osReleasePath)
	if err != nil {
		log.WithFields(log.Fields{"path": osReleasePath, "error": err}).Warn("Unable to identify platform")
		return Info{}
	}
	return ParseOSRelease(string(content))
}

// Supported reports whether the platform matches the benchmark target.
// Anything except Ubuntu 22.04.x gets a warning; the checks still run
// since most of them are meaningful on neighboring releases.
func (i Info) Supported() bool {
	if i.ID != "ubuntu" {
		return false
	}
	v, err := version.NewVersion(i.VersionID)
	if err != nil {
		return false
	}
	// 22.04.x point releases count; 22.10 and other releases do not.
	seg, want := v.Segments(), version.Must(version.NewVersion(benchmarkRelease)).Segments()
	return seg[0] == want[0] && seg[1] == want[1]
}
