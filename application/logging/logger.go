package logging

// Logger is the out-of-band diagnostic sink. It receives the full wrapped
// trace of every run, independent of the on-screen transcript.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}
