package utils

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFormatter(t *testing.T) {
	f := &LogFormatter{Module: "AUD"}
	entry := &log.Entry{
		Logger:  log.StandardLogger(),
		Time:    time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		Level:   log.InfoLevel,
		Message: "Check done",
		Data:    log.Fields{"check": "1.1.1.1", "passed": true},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	line := string(out)

	assert.Contains(t, line, "2024-03-01T10:30:00")
	assert.Contains(t, line, "|INFO|AUD|")
	assert.Contains(t, line, "Check done")
	// fields are sorted
	assert.Contains(t, line, "check=1.1.1.1 passed=true")
	assert.True(t, line[len(line)-1] == '\n')
}

func TestLogFormatterLevels(t *testing.T) {
	f := &LogFormatter{Module: "AUD"}
	for lvl, want := range map[log.Level]string{
		log.DebugLevel: "|DEBU|",
		log.WarnLevel:  "|WARN|",
		log.ErrorLevel: "|ERRO|",
	} {
		out, err := f.Format(&log.Entry{Logger: log.StandardLogger(), Time: time.Now(), Level: lvl})
		require.NoError(t, err)
		assert.Contains(t, string(out), want)
	}
}
