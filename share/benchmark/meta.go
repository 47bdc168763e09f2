package benchmark

// Meta carries the static benchmark metadata for one check: profile
// level, whether the item is scored, whether remediation is automatic,
// the canonical remediation procedure, and a plain-language explanation
// for the non-technical report.
type Meta struct {
	TestNum     string
	Category    string
	Profile     string
	Scored      bool
	Automated   bool
	Description string
	Remediation string
	Explanation string
}

// MetaOf looks up the metadata for a check ID.
func MetaOf(id string) (Meta, bool) {
	m, ok := cisItems[id]
	return m, ok
}

var cisItems = map[string]Meta{
	"1.1.1.1": {
		TestNum:     "1.1.1.1",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure cramfs kernel module is not available",
		Remediation: "Unload the module with rmmod cramfs if loaded, then create /etc/modprobe.d/cramfs.conf containing: install cramfs /bin/true",
		Explanation: "An old, compressed read-only filesystem that is rarely needed in modern systems.",
	},
	"1.1.1.2": {
		TestNum:     "1.1.1.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure freevxfs kernel module is not available",
		Remediation: "Unload the module with rmmod freevxfs if loaded, then create /etc/modprobe.d/freevxfs.conf containing: install freevxfs /bin/true",
		Explanation: "The Veritas filesystem driver, which is not commonly used and may contain vulnerabilities.",
	},
	"1.1.1.3": {
		TestNum:     "1.1.1.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure hfs kernel module is not available",
		Remediation: "Unload the module with rmmod hfs if loaded, then create /etc/modprobe.d/hfs.conf containing: install hfs /bin/true",
		Explanation: "Apple's legacy Hierarchical File System, rarely needed on Linux servers.",
	},
	"1.1.1.4": {
		TestNum:     "1.1.1.4",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure hfsplus kernel module is not available",
		Remediation: "Unload the module with rmmod hfsplus if loaded, then create /etc/modprobe.d/hfsplus.conf containing: install hfsplus /bin/true",
		Explanation: "Apple's HFS+ filesystem, rarely needed on Linux servers.",
	},
	"1.1.1.5": {
		TestNum:     "1.1.1.5",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure jffs2 kernel module is not available",
		Remediation: "Unload the module with rmmod jffs2 if loaded, then create /etc/modprobe.d/jffs2.conf containing: install jffs2 /bin/true",
		Explanation: "A filesystem designed for flash devices, not typically needed on server systems.",
	},
	"1.1.1.6": {
		TestNum:     "1.1.1.6",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure squashfs kernel module is not available",
		Remediation: "Unload the module with rmmod squashfs if loaded, then create /etc/modprobe.d/squashfs.conf containing: install squashfs /bin/true",
		Explanation: "A compressed read-only filesystem, often used in live CDs but not typically needed on servers.",
	},
	"1.1.1.7": {
		TestNum:     "1.1.1.7",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure udf kernel module is not available",
		Remediation: "Unload the module with rmmod udf if loaded, then create /etc/modprobe.d/udf.conf containing: install udf /bin/true",
		Explanation: "Universal Disk Format, used for DVDs and optical media, rarely needed on servers.",
	},
	"1.1.1.8": {
		TestNum:     "1.1.1.8",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure usb-storage kernel module is not available",
		Remediation: "Unload the module with rmmod usb-storage if loaded, then create /etc/modprobe.d/usb-storage.conf containing: install usb-storage /bin/true",
		Explanation: "The USB mass storage driver; leaving it available makes data exfiltration via USB trivial.",
	},
	"1.1.1.9": {
		TestNum:     "1.1.1.9",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   true,
		Description: "Ensure FAT kernel module is not available",
		Remediation: "For each of fat, vfat and msdos: unload the module with rmmod if loaded, then create /etc/modprobe.d/<module>.conf containing: install <module> /bin/true",
		Explanation: "The FAT filesystem family (fat, vfat, msdos), primarily used for compatibility with Windows.",
	},
	"1.1.2.1.1": {
		TestNum:     "1.1.2.1.1",
		Category:    "filesystem",
		Profile:     "Level 2",
		Scored:      true,
		Automated:   false,
		Description: "Ensure /tmp is a separate partition",
		Remediation: "Create a separate partition for /tmp during system installation, or resize existing partitions to create space for /tmp.",
	},
	"1.1.2.1.2": {
		TestNum:     "1.1.2.1.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nodev option set on /tmp partition",
		Remediation: "Add nodev to the mount options for /tmp in /etc/fstab, then remount: mount -o remount /tmp",
	},
	"1.1.2.1.3": {
		TestNum:     "1.1.2.1.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nosuid option set on /tmp partition",
		Remediation: "Add nosuid to the mount options for /tmp in /etc/fstab, then remount: mount -o remount /tmp",
	},
	"1.1.2.1.4": {
		TestNum:     "1.1.2.1.4",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure noexec option set on /tmp partition",
		Remediation: "Add noexec to the mount options for /tmp in /etc/fstab, then remount: mount -o remount /tmp",
	},
	"1.1.2.2.1": {
		TestNum:     "1.1.2.2.1",
		Category:    "filesystem",
		Profile:     "Level 2",
		Scored:      true,
		Automated:   false,
		Description: "Ensure /dev/shm is a separate partition",
		Remediation: "Add an entry for /dev/shm in /etc/fstab: tmpfs /dev/shm tmpfs defaults,nodev,nosuid,noexec 0 0",
	},
	"1.1.2.2.2": {
		TestNum:     "1.1.2.2.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nodev option set on /dev/shm partition",
		Remediation: "Add nodev to the mount options for /dev/shm in /etc/fstab, then remount: mount -o remount /dev/shm",
	},
	"1.1.2.2.3": {
		TestNum:     "1.1.2.2.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nosuid option set on /dev/shm partition",
		Remediation: "Add nosuid to the mount options for /dev/shm in /etc/fstab, then remount: mount -o remount /dev/shm",
	},
	"1.1.2.2.4": {
		TestNum:     "1.1.2.2.4",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure noexec option set on /dev/shm partition",
		Remediation: "Add noexec to the mount options for /dev/shm in /etc/fstab, then remount: mount -o remount /dev/shm",
	},
	"1.1.2.3.1": {
		TestNum:     "1.1.2.3.1",
		Category:    "filesystem",
		Profile:     "Level 2",
		Scored:      true,
		Automated:   false,
		Description: "Ensure /home is a separate partition",
		Remediation: "Create a separate partition for /home during system installation, or resize existing partitions to create space for /home.",
	},
	"1.1.2.3.2": {
		TestNum:     "1.1.2.3.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nodev option set on /home partition",
		Remediation: "Add nodev to the mount options for /home in /etc/fstab, then remount: mount -o remount /home",
	},
	"1.1.2.3.3": {
		TestNum:     "1.1.2.3.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nosuid option set on /home partition",
		Remediation: "Add nosuid to the mount options for /home in /etc/fstab, then remount: mount -o remount /home",
	},
	"1.1.2.4.1": {
		TestNum:     "1.1.2.4.1",
		Category:    "filesystem",
		Profile:     "Level 2",
		Scored:      true,
		Automated:   false,
		Description: "Ensure /var is a separate partition",
		Remediation: "Create a separate partition for /var during system installation, or resize existing partitions to create space for /var.",
	},
	"1.1.2.4.2": {
		TestNum:     "1.1.2.4.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nodev option set on /var partition",
		Remediation: "Add nodev to the mount options for /var in /etc/fstab, then remount: mount -o remount /var",
	},
	"1.1.2.4.3": {
		TestNum:     "1.1.2.4.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nosuid option set on /var partition",
		Remediation: "Add nosuid to the mount options for /var in /etc/fstab, then remount: mount -o remount /var",
	},
	"1.1.2.5.1": {
		TestNum:     "1.1.2.5.1",
		Category:    "filesystem",
		Profile:     "Level 2",
		Scored:      true,
		Automated:   false,
		Description: "Ensure /var/tmp is a separate partition",
		Remediation: "Create a separate partition for /var/tmp during system installation, or resize existing partitions to create space for /var/tmp.",
	},
	"1.1.2.5.2": {
		TestNum:     "1.1.2.5.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nodev option set on /var/tmp partition",
		Remediation: "Add nodev to the mount options for /var/tmp in /etc/fstab, then remount: mount -o remount /var/tmp",
	},
	"1.1.2.5.3": {
		TestNum:     "1.1.2.5.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nosuid option set on /var/tmp partition",
		Remediation: "Add nosuid to the mount options for /var/tmp in /etc/fstab, then remount: mount -o remount /var/tmp",
	},
	"1.1.2.5.4": {
		TestNum:     "1.1.2.5.4",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure noexec option set on /var/tmp partition",
		Remediation: "Add noexec to the mount options for /var/tmp in /etc/fstab, then remount: mount -o remount /var/tmp",
	},
	"1.1.2.6.1": {
		TestNum:     "1.1.2.6.1",
		Category:    "filesystem",
		Profile:     "Level 2",
		Scored:      true,
		Automated:   false,
		Description: "Ensure /var/log is a separate partition",
		Remediation: "Create a separate partition for /var/log during system installation, or resize existing partitions to create space for /var/log.",
	},
	"1.1.2.6.2": {
		TestNum:     "1.1.2.6.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nodev option set on /var/log partition",
		Remediation: "Add nodev to the mount options for /var/log in /etc/fstab, then remount: mount -o remount /var/log",
	},
	"1.1.2.6.3": {
		TestNum:     "1.1.2.6.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nosuid option set on /var/log partition",
		Remediation: "Add nosuid to the mount options for /var/log in /etc/fstab, then remount: mount -o remount /var/log",
	},
	"1.1.2.6.4": {
		TestNum:     "1.1.2.6.4",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure noexec option set on /var/log partition",
		Remediation: "Add noexec to the mount options for /var/log in /etc/fstab, then remount: mount -o remount /var/log",
	},
	"1.1.2.7.1": {
		TestNum:     "1.1.2.7.1",
		Category:    "filesystem",
		Profile:     "Level 2",
		Scored:      true,
		Automated:   false,
		Description: "Ensure /var/log/audit is a separate partition",
		Remediation: "Create a separate partition for /var/log/audit during system installation, or resize existing partitions to create space for /var/log/audit.",
	},
	"1.1.2.7.2": {
		TestNum:     "1.1.2.7.2",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nodev option set on /var/log/audit partition",
		Remediation: "Add nodev to the mount options for /var/log/audit in /etc/fstab, then remount: mount -o remount /var/log/audit",
	},
	"1.1.2.7.3": {
		TestNum:     "1.1.2.7.3",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nosuid option set on /var/log/audit partition",
		Remediation: "Add nosuid to the mount options for /var/log/audit in /etc/fstab, then remount: mount -o remount /var/log/audit",
	},
	"1.1.2.7.4": {
		TestNum:     "1.1.2.7.4",
		Category:    "filesystem",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure noexec option set on /var/log/audit partition",
		Remediation: "Add noexec to the mount options for /var/log/audit in /etc/fstab, then remount: mount -o remount /var/log/audit",
	},
	"1.2.1": {
		TestNum:     "1.2.1",
		Category:    "package_management",
		Profile:     "Level 1",
		Scored:      false,
		Automated:   false,
		Description: "Ensure GPG keys are configured",
		Remediation: "Update the apt GPG keys per site policy so that package signatures can be verified.",
	},
	"1.2.2": {
		TestNum:     "1.2.2",
		Category:    "package_management",
		Profile:     "Level 1",
		Scored:      false,
		Automated:   false,
		Description: "Ensure package repositories are configured",
		Remediation: "Configure the package repositories in /etc/apt/sources.list and /etc/apt/sources.list.d/ per site policy.",
	},
	"1.2.3": {
		TestNum:     "1.2.3",
		Category:    "package_management",
		Profile:     "Level 1",
		Scored:      false,
		Automated:   false,
		Description: "Ensure updates, patches, and additional security software are installed",
		Remediation: "Run: apt update && apt upgrade, then reboot if a kernel update was applied.",
		Explanation: "Pending package updates often contain security fixes; a host that is behind on patches carries known vulnerabilities.",
	},
	"1.3.1": {
		TestNum:     "1.3.1",
		Category:    "apparmor",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure AppArmor is installed",
		Remediation: "Install AppArmor: apt install apparmor apparmor-utils",
		Explanation: "AppArmor restricts what individual programs are allowed to do, limiting the damage a compromised program can cause.",
	},
	"1.3.2": {
		TestNum:     "1.3.2",
		Category:    "apparmor",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure AppArmor is enabled in the bootloader configuration",
		Remediation: "Remove apparmor=0 from GRUB_CMDLINE_LINUX in /etc/default/grub and run update-grub.",
	},
	"1.3.3": {
		TestNum:     "1.3.3",
		Category:    "apparmor",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure all AppArmor profiles are in enforce or complain mode",
		Remediation: "Set profiles to enforce mode: aa-enforce /etc/apparmor.d/*",
	},
	"1.4.1": {
		TestNum:     "1.4.1",
		Category:    "bootloader",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure bootloader password is set",
		Remediation: "Create an encrypted password with grub-mkpasswd-pbkdf2, add set superusers and password_pbkdf2 entries to /etc/grub.d/40_custom, then run update-grub.",
		Explanation: "Without a bootloader password, anyone with console access can boot into single-user mode and bypass all other controls.",
	},
	"1.4.2": {
		TestNum:     "1.4.2",
		Category:    "bootloader",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure access to bootloader config is configured",
		Remediation: "Run: chown root:root /boot/grub/grub.cfg and chmod u-x,go-rwx /boot/grub/grub.cfg",
	},
	"1.5.1": {
		TestNum:     "1.5.1",
		Category:    "process_hardening",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure address space layout randomization is enabled",
		Remediation: "Set kernel.randomize_va_space = 2 in /etc/sysctl.d/60-kernel_sysctl.conf and apply with: sysctl -w kernel.randomize_va_space=2",
		Explanation: "ASLR places programs at random memory addresses, making memory-corruption exploits much harder to land.",
	},
	"1.5.2": {
		TestNum:     "1.5.2",
		Category:    "process_hardening",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure ptrace_scope is restricted",
		Remediation: "Set kernel.yama.ptrace_scope = 1 in /etc/sysctl.d/60-kernel_sysctl.conf and apply with: sysctl -w kernel.yama.ptrace_scope=1",
	},
	"1.5.3": {
		TestNum:     "1.5.3",
		Category:    "process_hardening",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure core dumps are restricted",
		Remediation: "Set fs.suid_dumpable = 0 in /etc/sysctl.d/60-fs_sysctl.conf, add '* hard core 0' to /etc/security/limits.d/, and apply with: sysctl -w fs.suid_dumpable=0",
	},
	"1.5.4": {
		TestNum:     "1.5.4",
		Category:    "process_hardening",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure prelink is not installed",
		Remediation: "Restore binaries and remove the package: prelink -ua && apt purge prelink",
	},
	"1.5.5": {
		TestNum:     "1.5.5",
		Category:    "process_hardening",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure Automatic Error Reporting is not enabled",
		Remediation: "Stop and mask the service: systemctl stop apport.service && systemctl mask apport.service",
	},
	"1.7.1": {
		TestNum:     "1.7.1",
		Category:    "banners",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure message of the day does not contain OS information",
		Remediation: "Remove any \\v, \\r, \\m or \\s escape sequences and OS references from /etc/motd per site policy.",
	},
	"1.7.2": {
		TestNum:     "1.7.2",
		Category:    "banners",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure local login warning banner does not contain OS information",
		Remediation: "Remove any \\v, \\r, \\m or \\s escape sequences and OS references from /etc/issue per site policy.",
	},
	"1.7.3": {
		TestNum:     "1.7.3",
		Category:    "banners",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure remote login warning banner does not contain OS information",
		Remediation: "Remove any \\v, \\r, \\m or \\s escape sequences and OS references from /etc/issue.net per site policy.",
	},
	"1.7.4": {
		TestNum:     "1.7.4",
		Category:    "banners",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure access to /etc/motd is configured",
		Remediation: "Run: chown root:root /etc/motd && chmod u-x,go-wx /etc/motd",
	},
	"1.7.5": {
		TestNum:     "1.7.5",
		Category:    "banners",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure access to /etc/issue is configured",
		Remediation: "Run: chown root:root /etc/issue && chmod u-x,go-wx /etc/issue",
	},
	"1.7.6": {
		TestNum:     "1.7.6",
		Category:    "banners",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure access to /etc/issue.net is configured",
		Remediation: "Run: chown root:root /etc/issue.net && chmod u-x,go-wx /etc/issue.net",
	},
	"2.1.1": {
		TestNum:     "2.1.1",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure xinetd is not installed",
		Remediation: "Remove the package: apt purge xinetd",
	},
	"2.1.2": {
		TestNum:     "2.1.2",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure openbsd-inetd is not installed",
		Remediation: "Remove the package: apt purge openbsd-inetd",
	},
	"2.1.3": {
		TestNum:     "2.1.3",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure avahi-daemon is not installed",
		Remediation: "Remove the package: apt purge avahi-daemon",
	},
	"2.1.4": {
		TestNum:     "2.1.4",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure cups is not installed",
		Remediation: "Remove the package: apt purge cups",
	},
	"2.1.5": {
		TestNum:     "2.1.5",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure isc-dhcp-server is not installed",
		Remediation: "Remove the package: apt purge isc-dhcp-server",
	},
	"2.1.6": {
		TestNum:     "2.1.6",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure slapd is not installed",
		Remediation: "Remove the package: apt purge slapd",
	},
	"2.1.7": {
		TestNum:     "2.1.7",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nfs-kernel-server is not installed",
		Remediation: "Remove the package: apt purge nfs-kernel-server",
	},
	"2.1.8": {
		TestNum:     "2.1.8",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure bind9 is not installed",
		Remediation: "Remove the package: apt purge bind9",
	},
	"2.1.9": {
		TestNum:     "2.1.9",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure vsftpd is not installed",
		Remediation: "Remove the package: apt purge vsftpd",
	},
	"2.1.10": {
		TestNum:     "2.1.10",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure apache2 is not installed",
		Remediation: "Remove the package: apt purge apache2",
	},
	"2.1.11": {
		TestNum:     "2.1.11",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure dovecot is not installed",
		Remediation: "Remove the package: apt purge dovecot",
	},
	"2.1.12": {
		TestNum:     "2.1.12",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure samba is not installed",
		Remediation: "Remove the package: apt purge samba",
	},
	"2.1.13": {
		TestNum:     "2.1.13",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure squid is not installed",
		Remediation: "Remove the package: apt purge squid",
	},
	"2.1.14": {
		TestNum:     "2.1.14",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure snmpd is not installed",
		Remediation: "Remove the package: apt purge snmpd",
	},
	"2.1.15": {
		TestNum:     "2.1.15",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure rsync is not installed",
		Remediation: "Remove the package: apt purge rsync",
	},
	"2.1.16": {
		TestNum:     "2.1.16",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure nis is not installed",
		Remediation: "Remove the package: apt purge nis",
	},
	"2.2.1": {
		TestNum:     "2.2.1",
		Category:    "services",
		Profile:     "Level 1",
		Scored:      true,
		Automated:   false,
		Description: "Ensure time synchronization is configured",
		Remediation: "Install and enable chrony (apt install chrony) or enable systemd-timesyncd: systemctl unmask systemd-timesyncd && systemctl --now enable systemd-timesyncd",
		Explanation: "Accurate system time is required for certificate validation and for audit logs to be trustworthy.",
	},
}
