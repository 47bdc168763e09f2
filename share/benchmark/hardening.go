package benchmark

const grubCfg = "/boot/grub/grub.cfg"

// Escape sequences that leak OS details into login banners.
const bannerLeakPattern = `\\v|\\r|\\m|\\s`

func hardeningSections() []Section {
	return []Section{
		{
			ID:         "1.2",
			Name:       "package_management",
			Title:      "Package Management",
			Overview:   "These checks verify that apt has trusted signing keys and configured repositories.",
			Importance: "Unsigned or missing repositories allow tampered packages onto the system.",
			Entries: []Entry{
				{
					ID:          "1.2.1",
					Description: "Ensure GPG keys are configured",
					Check:       CommandYieldsOutput("apt GPG keys", "apt-key", "list"),
				},
				{
					ID:          "1.2.2",
					Description: "Ensure package repositories are configured",
					Check:       CommandYieldsOutput("apt package repositories", "apt-cache", "policy"),
				},
				{
					ID:          "1.2.3",
					Description: "Ensure updates, patches, and additional security software are installed",
					Check:       NoPendingUpdatesCheck(),
				},
			},
		},
		{
			ID:         "1.3",
			Name:       "apparmor",
			Title:      "Mandatory Access Control",
			Overview:   "These checks verify that AppArmor is installed, enabled at boot, and confining processes.",
			Importance: "Mandatory access control contains a compromised process even when discretionary permissions fail.",
			Entries: []Entry{
				{
					ID:          "1.3.1",
					Description: "Ensure AppArmor is installed",
					Check:       PackagesInstalledCheck("apparmor", "apparmor-utils"),
				},
				{
					ID:          "1.3.2",
					Description: "Ensure AppArmor is enabled in the bootloader configuration",
					Check:       FileLacksCheck(grubCfg, `apparmor=0`, "an apparmor=0 kernel parameter"),
				},
				{
					ID:          "1.3.3",
					Description: "Ensure all AppArmor profiles are in enforce or complain mode",
					Check:       ApparmorProfilesCheck(),
				},
			},
		},
		{
			ID:         "1.4",
			Name:       "bootloader",
			Title:      "Bootloader",
			Overview:   "These checks verify that the GRUB configuration is password protected and not world readable.",
			Importance: "An unprotected bootloader lets anyone with console access boot into single-user mode and bypass every other control.",
			Entries: []Entry{
				{
					ID:          "1.4.1",
					Description: "Ensure bootloader password is set",
					Check:       FileContainsCheck(grubCfg, `^set superusers`, "a bootloader password"),
				},
				{
					ID:          "1.4.2",
					Description: "Ensure access to bootloader config is configured",
					Check:       FilePermCheck(grubCfg, 0o600, "root", "root"),
				},
			},
		},
		{
			ID:         "1.5",
			Name:       "process_hardening",
			Title:      "Additional Process Hardening",
			Overview:   "These checks verify kernel-level protections against memory disclosure and process inspection.",
			Importance: "ASLR, ptrace restrictions and core dump limits raise the cost of turning a bug into an exploit.",
			Entries: []Entry{
				{
					ID:          "1.5.1",
					Description: "Ensure address space layout randomization is enabled",
					Check:       SysctlCheck("kernel.randomize_va_space", "2"),
				},
				{
					ID:          "1.5.2",
					Description: "Ensure ptrace_scope is restricted",
					Check:       SysctlMinCheck("kernel.yama.ptrace_scope", 1),
				},
				{
					ID:          "1.5.3",
					Description: "Ensure core dumps are restricted",
					Check:       SysctlCheck("fs.suid_dumpable", "0"),
				},
				{
					ID:          "1.5.4",
					Description: "Ensure prelink is not installed",
					Check:       PackageAbsentCheck("prelink"),
				},
				{
					ID:          "1.5.5",
					Description: "Ensure Automatic Error Reporting is not enabled",
					Check:       ServiceDisabledCheck("apport"),
				},
			},
		},
		{
			ID:         "1.7",
			Name:       "banners",
			Title:      "Command Line Warning Banners",
			Overview:   "These checks verify that login banners do not advertise the OS and are not writable by unprivileged users.",
			Importance: "Version details in banners hand reconnaissance to attackers before they ever authenticate.",
			Entries: []Entry{
				{
					ID:          "1.7.1",
					Description: "Ensure message of the day does not contain OS information",
					Check:       FileLacksCheck("/etc/motd", bannerLeakPattern, "OS-identifying escape sequences"),
				},
				{
					ID:          "1.7.2",
					Description: "Ensure local login warning banner does not contain OS information",
					Check:       FileLacksCheck("/etc/issue", bannerLeakPattern, "OS-identifying escape sequences"),
				},
				{
					ID:          "1.7.3",
					Description: "Ensure remote login warning banner does not contain OS information",
					Check:       FileLacksCheck("/etc/issue.net", bannerLeakPattern, "OS-identifying escape sequences"),
				},
				{
					ID:          "1.7.4",
					Description: "Ensure access to /etc/motd is configured",
					Check:       FilePermIfPresentCheck("/etc/motd", 0o644, "root", "root"),
				},
				{
					ID:          "1.7.5",
					Description: "Ensure access to /etc/issue is configured",
					Check:       FilePermCheck("/etc/issue", 0o644, "root", "root"),
				},
				{
					ID:          "1.7.6",
					Description: "Ensure access to /etc/issue.net is configured",
					Check:       FilePermCheck("/etc/issue.net", 0o644, "root", "root"),
				},
			},
		},
	}
}

// defaultSections assembles the full Ubuntu 22.04 registry in display
// order.
func defaultSections() []Section {
	var sections []Section
	sections = append(sections, filesystemSections()...)
	sections = append(sections, hardeningSections()...)
	sections = append(sections, servicesSections()...)
	return sections
}
