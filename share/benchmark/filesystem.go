package benchmark

import "fmt"

// Section 1.1.1 kernel modules. The FAT entry audits three modules at
// once, matching how the benchmark groups them.
var kernelModules = []struct {
	id      string
	modules []string
}{
	{"1.1.1.1", []string{"cramfs"}},
	{"1.1.1.2", []string{"freevxfs"}},
	{"1.1.1.3", []string{"hfs"}},
	{"1.1.1.4", []string{"hfsplus"}},
	{"1.1.1.5", []string{"jffs2"}},
	{"1.1.1.6", []string{"squashfs"}},
	{"1.1.1.7", []string{"udf"}},
	{"1.1.1.8", []string{"usb-storage"}},
	{"1.1.1.9", []string{"fat", "vfat", "msdos"}},
}

// Section 1.1.2 mount points and the options each one must carry.
var mountPoints = []struct {
	group   string
	mount   string
	options []string
}{
	{"1.1.2.1", "/tmp", []string{"nodev", "nosuid", "noexec"}},
	{"1.1.2.2", "/dev/shm", []string{"nodev", "nosuid", "noexec"}},
	{"1.1.2.3", "/home", []string{"nodev", "nosuid"}},
	{"1.1.2.4", "/var", []string{"nodev", "nosuid"}},
	{"1.1.2.5", "/var/tmp", []string{"nodev", "nosuid", "noexec"}},
	{"1.1.2.6", "/var/log", []string{"nodev", "nosuid", "noexec"}},
	{"1.1.2.7", "/var/log/audit", []string{"nodev", "nosuid", "noexec"}},
}

func moduleSectionEntries() []Entry {
	var entries []Entry
	for _, km := range kernelModules {
		name := km.modules[0]
		if len(km.modules) > 1 {
			name = "FAT"
		}
		entries = append(entries, Entry{
			ID:          km.id,
			Description: fmt.Sprintf("Ensure %s kernel module is not available", name),
			Check:       KernelModuleCheck(km.modules...),
			Fix:         ModuleDisableFix(km.modules...),
			Modules:     km.modules,
		})
	}
	return entries
}

func mountSectionEntries() []Entry {
	var entries []Entry
	for _, mp := range mountPoints {
		entries = append(entries, Entry{
			ID:          mp.group + ".1",
			Description: fmt.Sprintf("Ensure %s is a separate partition", mp.mount),
			Check:       SeparatePartitionCheck(mp.mount),
		})
		for i, opt := range mp.options {
			entries = append(entries, Entry{
				ID:          fmt.Sprintf("%s.%d", mp.group, i+2),
				Description: fmt.Sprintf("Ensure %s option set on %s partition", opt, mp.mount),
				Check:       MountOptionCheck(mp.mount, opt),
			})
		}
	}
	return entries
}

func filesystemSections() []Section {
	return []Section{
		{
			ID:         "1.1.1",
			Name:       "kernel_modules",
			Title:      "Filesystem Kernel Modules",
			Overview:   "These checks ensure that unnecessary and potentially vulnerable filesystem modules are disabled.",
			Importance: "Disabling unnecessary kernel modules reduces the attack surface of the system and minimizes potential security vulnerabilities.",
			Entries:    moduleSectionEntries(),
		},
		{
			ID:         "1.1.2",
			Name:       "partitions",
			Title:      "Filesystem Partitions",
			Overview:   "These checks verify that sensitive directories live on separate partitions mounted with restrictive options.",
			Importance: "Separate partitions with nodev, nosuid and noexec limit what an attacker can do with world-writable locations.",
			Entries:    mountSectionEntries(),
		},
	}
}
