package logging

import (
	"io"
	"log"
	"os"

	"ecdhprobe/application/logging"
)

// LogLogger implements the diagnostic sink on the standard log package with
// one leveled logger per severity.
type LogLogger struct {
	debug *log.Logger
	info  *log.Logger
	err   *log.Logger
}

func NewLogLogger(w io.Writer) logging.Logger {
	if w == nil {
		w = os.Stderr
	}
	flags := log.Ldate | log.Ltime
	return &LogLogger{
		debug: log.New(w, "DEBUG ", flags),
		info:  log.New(w, "INFO  ", flags),
		err:   log.New(w, "ERROR ", flags),
	}
}

func (l *LogLogger) Debugf(format string, v ...any) {
	l.debug.Printf(format, v...)
}

func (l *LogLogger) Infof(format string, v ...any) {
	l.info.Printf(format, v...)
}

func (l *LogLogger) Errorf(format string, v ...any) {
	l.err.Printf(format, v...)
}
