package probe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalRun(t *testing.T) {
	p := NewLocal(5 * time.Second)

	r := p.Run("echo", "hello")
	assert.Equal(t, 0, r.ExitCode)
	assert.Equal(t, "hello", r.Output())
	assert.True(t, r.Ok())

	r = p.Run("false")
	assert.Equal(t, 1, r.ExitCode)
	assert.False(t, r.Ok())
}

func TestLocalRunMissingBinary(t *testing.T) {
	p := NewLocal(5 * time.Second)

	r := p.Run("no-such-binary-for-sure")
	assert.Equal(t, ExitNotRun, r.ExitCode)
	assert.NotEmpty(t, r.Stderr)
}

func TestLocalRunTimeout(t *testing.T) {
	p := NewLocal(100 * time.Millisecond)

	start := time.Now()
	r := p.Run("sleep", "10")
	assert.Equal(t, ExitTimeout, r.ExitCode)
	assert.Contains(t, r.Stderr, "timeout")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestResultHelpers(t *testing.T) {
	r := Result{ExitCode: 0, Stdout: "  rw,nosuid,nodev\n", Stderr: " boom \n"}
	assert.Equal(t, "rw,nosuid,nodev", r.Output())
	assert.Equal(t, "boom", r.Error())
	assert.True(t, r.Contains("nosuid"))
	assert.False(t, r.Contains("noexec"))
}
