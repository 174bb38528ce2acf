package chipmunk

import goLog "log"

// Logger is the diagnostic sink for the package. It is off by default (a
// no-op logger); call sites still evaluate their arguments, such as
// GenerateKeyPair's public-key fingerprint, when logging is off.
type Logger interface {
	Logf(format string, a ...interface{})
}

type dummyLogger struct{}

func (*dummyLogger) Logf(format string, a ...interface{}) {}

type stdlibLogger struct{}

func (*stdlibLogger) Logf(format string, a ...interface{}) { goLog.Printf(format, a...) }

var log Logger = &dummyLogger{}

// EnableLogging routes chipmunk's diagnostic log lines to the standard log
// package. For more flexibility, use SetLogger.
func EnableLogging() {
	SetLogger(&stdlibLogger{})
}

// SetLogger installs logger as the destination for chipmunk's diagnostic log
// lines. Passing nil disables logging.
func SetLogger(logger Logger) {
	if logger == nil {
		log = &dummyLogger{}
		return
	}
	log = logger
}
