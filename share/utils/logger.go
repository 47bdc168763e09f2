// Package utils carries small helpers shared by the auditor binaries.
package utils

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// LogFormatter renders one line per entry:
// timestamp|LEVL|MODULE|caller: message - k1=v1 k2=v2
type LogFormatter struct {
	Module string
}

func (f *LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%-23s|%s|%s|%s:",
		entry.Time.Format("2006-01-02T15:04:05.999"),
		strings.ToUpper(entry.Level.String())[:4], f.Module, caller())
	if entry.Message != "" {
		b.WriteByte(' ')
		b.WriteString(entry.Message)
	}
	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sep := " - "
		for _, k := range keys {
			fmt.Fprintf(&b, "%s%s=%+v", sep, k, entry.Data[k])
			sep = " "
		}
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// caller returns the first stack frame outside logrus, as "pkg.Func".
func caller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "sirupsen/logrus") {
			if i := strings.LastIndexByte(frame.Function, '/'); i >= 0 {
				return frame.Function[i+1:]
			}
			return frame.Function
		}
		if !more {
			return ""
		}
	}
}
