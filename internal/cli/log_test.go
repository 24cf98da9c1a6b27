package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		emit    func(*log.Logger)
		wantLog bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("hello") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("hello") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("hello") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("hello") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("hello")
	if !strings.Contains(buf.String(), appName) {
		t.Errorf("log line should carry the %s prefix: %q", appName, buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Search finished", "words", 13)

	out := stripANSI(buf.String())
	for _, want := range []string{"Search finished", "words=13", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q: %q", want, out)
		}
	}
}
