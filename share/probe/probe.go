package probe

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// ExitTimeout is reported when the probed command did not finish
	// within the deadline and was killed.
	ExitTimeout = -1
	// ExitNotRun is reported when the command could not be started at
	// all, typically because the binary is missing.
	ExitNotRun = 127

	defaultTimeout = 5 * time.Second
)

// Result carries the captured output of one external command. It is
// created fresh per invocation and never mutated afterwards.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Ok reports whether the command ran and exited zero.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// Output returns trimmed stdout.
func (r Result) Output() string {
	return strings.TrimSpace(r.Stdout)
}

// Error returns trimmed stderr.
func (r Result) Error() string {
	return strings.TrimSpace(r.Stderr)
}

// Contains reports whether stdout contains the substring.
func (r Result) Contains(s string) bool {
	return strings.Contains(r.Stdout, s)
}

// Prober runs external commands on behalf of benchmark checks. Checks
// depend on this interface only, so tests can substitute canned output.
type Prober interface {
	Run(name string, args ...string) Result
}

// Local executes commands on the audited host with argv arrays, no
// shell involved, and a hard per-command deadline.
type Local struct {
	timeout time.Duration
}

func NewLocal(timeout time.Duration) *Local {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Local{timeout: timeout}
}

func (l *Local) Run(name string, args ...string) Result {
	var outb, errb bytes.Buffer

	cmd := exec.Command(name, args...)
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	if err := cmd.Start(); err != nil {
		log.WithFields(log.Fields{"command": name, "error": err}).Debug("Probe failed to start")
		return Result{ExitCode: ExitNotRun, Stderr: err.Error()}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		code := 0
		if err != nil {
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				code = ee.ExitCode()
			} else {
				return Result{ExitCode: ExitNotRun, Stdout: outb.String(), Stderr: err.Error()}
			}
		}
		return Result{ExitCode: code, Stdout: outb.String(), Stderr: errb.String()}
	case <-time.After(l.timeout):
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		<-done
		log.WithFields(log.Fields{"command": name, "timeout": l.timeout}).Warn("Probe timed out")
		return Result{ExitCode: ExitTimeout, Stdout: outb.String(), Stderr: "probe timeout after " + l.timeout.String()}
	}
}
