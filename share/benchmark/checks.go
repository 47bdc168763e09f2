package benchmark

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zarni99/ubuntu-audit/share/probe"
)

// probeFailed reports that the command itself could not run, as
// opposed to running and exiting non-zero. Checks that pass on
// "nothing found" must not pass on a probe that never looked.
func probeFailed(r probe.Result) bool {
	return r.ExitCode == probe.ExitNotRun || r.ExitCode == probe.ExitTimeout
}

// lsmod reports module names with underscores even when the canonical
// name uses a dash (usb-storage vs usb_storage).
func lsmodName(module string) string {
	return strings.ReplaceAll(module, "-", "_")
}

func moduleLoaded(p probe.Prober, module string) (bool, error) {
	r := p.Run("lsmod")
	if !r.Ok() {
		return false, fmt.Errorf("lsmod failed: %s", r.Error())
	}
	name := lsmodName(module)
	for _, line := range strings.Split(r.Stdout, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 && fields[0] == name {
			return true, nil
		}
	}
	return false, nil
}

func moduleState(p probe.Prober, module string) (available, disabled bool, err error) {
	r := p.Run("modprobe", "-n", "-v", module)
	if probeFailed(r) {
		return false, false, fmt.Errorf("modprobe failed: %s", r.Error())
	}
	out := r.Stdout + r.Stderr
	available = !strings.Contains(out, "not found")
	disabled = strings.Contains(r.Stdout, "install /bin/true") || strings.Contains(r.Stdout, "install /bin/false")
	return available, disabled, nil
}

// KernelModuleCheck passes when every named module is not loaded and is
// either unavailable or disabled in the modprobe configuration. The FAT
// entry covers three modules at once; all must pass.
func KernelModuleCheck(modules ...string) CheckFn {
	return func(p probe.Prober) Result {
		var msgs, rems []string
		passed := true
		for _, m := range modules {
			loaded, err := moduleLoaded(p, m)
			if err != nil {
				return Result{Passed: false, Message: fmt.Sprintf("unable to check %s: %s", m, err.Error())}
			}
			if loaded {
				passed = false
				msgs = append(msgs, fmt.Sprintf("%s kernel module is loaded", m))
				rems = append(rems, fmt.Sprintf("rmmod %s", m))
				continue
			}
			available, disabled, err := moduleState(p, m)
			if err != nil {
				return Result{Passed: false, Message: fmt.Sprintf("unable to check %s: %s", m, err.Error())}
			}
			if available && !disabled {
				passed = false
				msgs = append(msgs, fmt.Sprintf("%s kernel module can be loaded", m))
				rems = append(rems, fmt.Sprintf("echo 'install %s /bin/true' > /etc/modprobe.d/%s.conf", m, m))
				continue
			}
			msgs = append(msgs, fmt.Sprintf("%s kernel module is not loaded and is disabled or not available", m))
		}
		return Result{Passed: passed, Message: strings.Join(msgs, "; "), Remediation: strings.Join(rems, " && ")}
	}
}

// SeparatePartitionCheck passes when the path is itself a mount point.
func SeparatePartitionCheck(mount string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("findmnt", "-n", mount)
		if !r.Ok() || r.Output() == "" {
			return Result{Passed: false, Message: fmt.Sprintf("%s is not on a separate partition", mount)}
		}
		return Result{Passed: true, Message: fmt.Sprintf("%s is on a separate partition", mount)}
	}
}

// MountOptionCheck passes when the path is a mount point and the option
// appears in its mount option set. A path that is not a separate mount
// fails; see the registry notes on why this is not "not applicable".
func MountOptionCheck(mount, option string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("findmnt", "-n", mount)
		if !r.Ok() || r.Output() == "" {
			return Result{Passed: false, Message: fmt.Sprintf("mount point %s not found", mount)}
		}
		fields := strings.Fields(r.Output())
		if len(fields) < 4 {
			return Result{Passed: false, Message: fmt.Sprintf("unexpected findmnt output for %s: %q", mount, r.Output())}
		}
		for _, opt := range strings.Split(fields[3], ",") {
			if opt == option {
				return Result{Passed: true, Message: fmt.Sprintf("mount option '%s' is set on %s", option, mount)}
			}
		}
		return Result{Passed: false, Message: fmt.Sprintf("mount option '%s' is not set on %s", option, mount)}
	}
}

const dpkgInstalledMark = "Status: install ok installed"

func packageInstalled(p probe.Prober, pkg string) (bool, error) {
	r := p.Run("dpkg", "-s", pkg)
	if probeFailed(r) {
		return false, fmt.Errorf("unable to query %s: %s", pkg, r.Error())
	}
	return r.Contains(dpkgInstalledMark), nil
}

// PackageAbsentCheck passes when dpkg does not report the package as
// installed.
func PackageAbsentCheck(pkg string) CheckFn {
	return func(p probe.Prober) Result {
		installed, err := packageInstalled(p, pkg)
		if err != nil {
			return Result{Passed: false, Message: err.Error()}
		}
		if installed {
			return Result{Passed: false, Message: fmt.Sprintf("%s is installed", pkg)}
		}
		return Result{Passed: true, Message: fmt.Sprintf("%s is not installed", pkg)}
	}
}

// PackageInstalledCheck is the inverse of PackageAbsentCheck.
func PackageInstalledCheck(pkg string) CheckFn {
	return func(p probe.Prober) Result {
		installed, err := packageInstalled(p, pkg)
		if err != nil {
			return Result{Passed: false, Message: err.Error()}
		}
		if installed {
			return Result{Passed: true, Message: fmt.Sprintf("%s is installed", pkg)}
		}
		return Result{Passed: false, Message: fmt.Sprintf("%s is not installed", pkg)}
	}
}

// PackagesInstalledCheck passes when every named package is installed.
func PackagesInstalledCheck(pkgs ...string) CheckFn {
	return func(p probe.Prober) Result {
		var missing []string
		for _, pkg := range pkgs {
			installed, err := packageInstalled(p, pkg)
			if err != nil {
				return Result{Passed: false, Message: err.Error()}
			}
			if !installed {
				missing = append(missing, pkg)
			}
		}
		if len(missing) > 0 {
			return Result{
				Passed:      false,
				Message:     fmt.Sprintf("not installed: %s", strings.Join(missing, ", ")),
				Remediation: fmt.Sprintf("apt install %s", strings.Join(missing, " ")),
			}
		}
		return Result{Passed: true, Message: fmt.Sprintf("installed: %s", strings.Join(pkgs, ", "))}
	}
}

// unitStates queries systemd. Comparison is exact: "inactive" contains
// the substring "active", so substring matching would lie.
func unitStates(p probe.Prober, unit string) (active, enabled bool) {
	active = p.Run("systemctl", "is-active", unit).Output() == "active"
	enabled = p.Run("systemctl", "is-enabled", unit).Output() == "enabled"
	return active, enabled
}

func fileExists(p probe.Prober, path string) bool {
	return p.Run("stat", "-Lc", "%a", path).Ok()
}

// TimeSyncCheck passes when either chronyd (active, enabled, with its
// config file present) or systemd-timesyncd (active, enabled) serves
// time synchronization.
func TimeSyncCheck() CheckFn {
	return func(p probe.Prober) Result {
		if active, enabled := unitStates(p, "chronyd"); active && enabled && fileExists(p, "/etc/chrony/chrony.conf") {
			return Result{Passed: true, Message: "time synchronization via chronyd: active, enabled, and configured"}
		}
		if active, enabled := unitStates(p, "systemd-timesyncd"); active && enabled {
			return Result{Passed: true, Message: "time synchronization via systemd-timesyncd: active and enabled"}
		}
		return Result{Passed: false, Message: "neither chronyd nor systemd-timesyncd is properly configured"}
	}
}

// ServiceDisabledCheck passes when the unit is not enabled.
func ServiceDisabledCheck(unit string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("systemctl", "is-enabled", unit)
		if probeFailed(r) {
			return Result{Passed: false, Message: fmt.Sprintf("unable to query %s: %s", unit, r.Error())}
		}
		if r.Output() == "enabled" {
			return Result{Passed: false, Message: fmt.Sprintf("%s service is enabled", unit)}
		}
		return Result{Passed: true, Message: fmt.Sprintf("%s service is not enabled", unit)}
	}
}

// SysctlCheck passes when the kernel parameter has exactly the wanted
// value.
func SysctlCheck(key, want string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("sysctl", "-n", key)
		if !r.Ok() {
			return Result{Passed: false, Message: fmt.Sprintf("unable to read %s: %s", key, r.Error())}
		}
		if got := r.Output(); got != want {
			return Result{Passed: false, Message: fmt.Sprintf("%s is %s, expected %s", key, got, want)}
		}
		return Result{Passed: true, Message: fmt.Sprintf("%s is set to %s", key, want)}
	}
}

// SysctlMinCheck passes when the kernel parameter is an integer greater
// than or equal to min.
func SysctlMinCheck(key string, min int) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("sysctl", "-n", key)
		if !r.Ok() {
			return Result{Passed: false, Message: fmt.Sprintf("unable to read %s: %s", key, r.Error())}
		}
		got, err := strconv.Atoi(r.Output())
		if err != nil {
			return Result{Passed: false, Message: fmt.Sprintf("unexpected value for %s: %q", key, r.Output())}
		}
		if got < min {
			return Result{Passed: false, Message: fmt.Sprintf("%s is %d, expected at least %d", key, got, min)}
		}
		return Result{Passed: true, Message: fmt.Sprintf("%s is %d", key, got)}
	}
}

// FilePermCheck passes when the file exists, is owned by owner:group,
// and its access mode grants nothing beyond maxPerm.
func FilePermCheck(path string, maxPerm uint32, owner, group string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("stat", "-Lc", "%a %U %G", path)
		if !r.Ok() {
			return Result{Passed: false, Message: fmt.Sprintf("unable to stat %s: %s", path, r.Error())}
		}
		return filePermResult(r, path, maxPerm, owner, group)
	}
}

// FilePermIfPresentCheck is FilePermCheck for files that may
// legitimately be absent. A missing file passes; a stat that could not
// run does not.
func FilePermIfPresentCheck(path string, maxPerm uint32, owner, group string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("stat", "-Lc", "%a %U %G", path)
		if probeFailed(r) {
			return Result{Passed: false, Message: fmt.Sprintf("unable to stat %s: %s", path, r.Error())}
		}
		if !r.Ok() {
			return Result{Passed: true, Message: fmt.Sprintf("%s is not present", path)}
		}
		return filePermResult(r, path, maxPerm, owner, group)
	}
}

func filePermResult(r probe.Result, path string, maxPerm uint32, owner, group string) Result {
	fields := strings.Fields(r.Output())
	if len(fields) != 3 {
		return Result{Passed: false, Message: fmt.Sprintf("unexpected stat output for %s: %q", path, r.Output())}
	}
	mode, err := strconv.ParseUint(fields[0], 8, 32)
	if err != nil {
		return Result{Passed: false, Message: fmt.Sprintf("unexpected mode for %s: %q", path, fields[0])}
	}
	if uint32(mode)&^maxPerm != 0 {
		return Result{Passed: false, Message: fmt.Sprintf("%s has access %s, expected %o or more restrictive", path, fields[0], maxPerm)}
	}
	if fields[1] != owner || fields[2] != group {
		return Result{Passed: false, Message: fmt.Sprintf("%s is owned by %s:%s, expected %s:%s", path, fields[1], fields[2], owner, group)}
	}
	return Result{Passed: true, Message: fmt.Sprintf("%s has access %s and is owned by %s:%s", path, fields[0], owner, group)}
}

// FileContainsCheck passes when grep finds the extended-regexp pattern
// in the file.
func FileContainsCheck(path, pattern, what string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("grep", "-Eq", pattern, path)
		if r.Ok() {
			return Result{Passed: true, Message: fmt.Sprintf("%s is configured in %s", what, path)}
		}
		return Result{Passed: false, Message: fmt.Sprintf("%s is not configured in %s", what, path)}
	}
}

// FileLacksCheck passes when the pattern does not occur in the file. A
// missing file also passes: nothing there to leak. grep exits 1 on no
// match and 2 on read errors; an unrunnable grep is a failed check,
// not a pass.
func FileLacksCheck(path, pattern, what string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("grep", "-Eq", pattern, path)
		switch r.ExitCode {
		case 0:
			return Result{Passed: false, Message: fmt.Sprintf("%s contains %s", path, what)}
		case 1:
			return Result{Passed: true, Message: fmt.Sprintf("%s does not contain %s", path, what)}
		case probe.ExitNotRun, probe.ExitTimeout:
			return Result{Passed: false, Message: fmt.Sprintf("unable to read %s: %s", path, r.Error())}
		default:
			return Result{Passed: true, Message: fmt.Sprintf("%s is not present", path)}
		}
	}
}

var (
	reProfilesLoaded   = regexp.MustCompile(`(\d+) profiles are loaded`)
	reProfilesEnforce  = regexp.MustCompile(`(\d+) profiles are in enforce mode`)
	reProfilesComplain = regexp.MustCompile(`(\d+) profiles are in complain mode`)
)

func countOf(re *regexp.Regexp, out string) int {
	if m := re.FindStringSubmatch(out); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// ApparmorProfilesCheck passes when AppArmor reports at least one
// loaded profile and every loaded profile is in enforce or complain
// mode.
func ApparmorProfilesCheck() CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("apparmor_status")
		if !r.Ok() {
			return Result{Passed: false, Message: fmt.Sprintf("unable to read AppArmor status: %s", r.Error())}
		}
		loaded := countOf(reProfilesLoaded, r.Stdout)
		enforce := countOf(reProfilesEnforce, r.Stdout)
		complain := countOf(reProfilesComplain, r.Stdout)
		if loaded == 0 {
			return Result{Passed: false, Message: "no AppArmor profiles are loaded"}
		}
		if enforce+complain < loaded {
			return Result{Passed: false, Message: fmt.Sprintf("%d of %d AppArmor profiles are neither in enforce nor complain mode", loaded-enforce-complain, loaded)}
		}
		return Result{Passed: true, Message: fmt.Sprintf("%d AppArmor profiles loaded, %d enforce, %d complain", loaded, enforce, complain)}
	}
}

// NoPendingUpdatesCheck passes when apt reports no upgradable
// packages.
func NoPendingUpdatesCheck() CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run("apt", "list", "--upgradable")
		if !r.Ok() {
			return Result{Passed: false, Message: fmt.Sprintf("unable to list upgradable packages: %s", r.Error())}
		}
		var pending []string
		for _, line := range strings.Split(r.Stdout, "\n") {
			if strings.Contains(line, "[upgradable from") {
				pending = append(pending, strings.SplitN(line, "/", 2)[0])
			}
		}
		if len(pending) > 0 {
			return Result{Passed: false, Message: fmt.Sprintf("%d packages can be upgraded: %s", len(pending), strings.Join(pending, ", "))}
		}
		return Result{Passed: true, Message: "all installed packages are up to date"}
	}
}

// CommandYieldsOutput passes when the command succeeds and prints
// something. Used for the informational package-management items.
func CommandYieldsOutput(what, name string, args ...string) CheckFn {
	return func(p probe.Prober) Result {
		r := p.Run(name, args...)
		if !r.Ok() {
			return Result{Passed: false, Message: fmt.Sprintf("unable to verify %s: %s", what, r.Error())}
		}
		if r.Output() == "" {
			return Result{Passed: false, Message: fmt.Sprintf("no %s configured", what)}
		}
		return Result{Passed: true, Message: fmt.Sprintf("%s are configured", what)}
	}
}
