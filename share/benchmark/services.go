package benchmark

import "fmt"

// Section 2.1 packages that must not be installed on a server.
var bannedPackages = []struct {
	id  string
	pkg string
}{
	{"2.1.1", "xinetd"},
	{"2.1.2", "openbsd-inetd"},
	{"2.1.3", "avahi-daemon"},
	{"2.1.4", "cups"},
	{"2.1.5", "isc-dhcp-server"},
	{"2.1.6", "slapd"},
	{"2.1.7", "nfs-kernel-server"},
	{"2.1.8", "bind9"},
	{"2.1.9", "vsftpd"},
	{"2.1.10", "apache2"},
	{"2.1.11", "dovecot"},
	{"2.1.12", "samba"},
	{"2.1.13", "squid"},
	{"2.1.14", "snmpd"},
	{"2.1.15", "rsync"},
	{"2.1.16", "nis"},
}

func serviceSectionEntries() []Entry {
	var entries []Entry
	for _, bp := range bannedPackages {
		entries = append(entries, Entry{
			ID:          bp.id,
			Description: fmt.Sprintf("Ensure %s is not installed", bp.pkg),
			Check:       PackageAbsentCheck(bp.pkg),
		})
	}
	return entries
}

func servicesSections() []Section {
	return []Section{
		{
			ID:         "2.1",
			Name:       "services",
			Title:      "Server Services",
			Overview:   "These checks verify that network services with a history of exposure are not installed.",
			Importance: "Every installed service is a listening attack surface; a hardened server carries only what it needs.",
			Entries:    serviceSectionEntries(),
		},
		{
			ID:         "2.2",
			Name:       "time_sync",
			Title:      "Time Synchronization",
			Overview:   "This check verifies that the system clock is kept in sync by chronyd or systemd-timesyncd.",
			Importance: "Accurate clocks are required for certificate validation and for audit logs to be trustworthy.",
			Entries: []Entry{
				{
					ID:          "2.2.1",
					Description: "Ensure time synchronization is configured",
					Check:       TimeSyncCheck(),
				},
			},
		},
	}
}
