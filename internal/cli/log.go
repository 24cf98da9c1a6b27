package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat shows hours to hundredths of a second, e.g. "14:32:01.45".
const logTimeFormat = "15:04:05.00"

// newLogger creates the CLI logger writing to w at level. Lines are prefixed
// with the application name.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
		Prefix:          appName,
	})
}

// progress times one stage of a command.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time, rounded to
// the millisecond, under the "elapsed" key.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}
