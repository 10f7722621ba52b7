package log

import "os"

// nullLogger is a logger that does nothing, other than
// terminate the process on Fatalf.
type nullLogger struct{}

func (n nullLogger) Debugf(format string, args ...interface{}) {
}

func (n nullLogger) Infof(format string, args ...interface{}) {
}

func (n nullLogger) Warnf(format string, args ...interface{}) {
}

func (n nullLogger) Errorf(format string, args ...interface{}) {
}

func (n nullLogger) Fatalf(format string, args ...interface{}) {
	os.Exit(1)
}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return &nullLogger{}
}
