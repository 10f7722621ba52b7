// Package log provides the leveled logger shared by the emulator core and
// its collaborators. A FATAL message terminates the process after it has
// been written.
package log

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// Level is the minimum severity a message needs to be printed.
type Level int

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warning": LevelWarning,
	"warn":    LevelWarning,
	"error":   LevelError,
	"fatal":   LevelFatal,
}

// ParseLevel accepts either a level name (debug, info, warning, error,
// fatal) or its numeric value (-1 through 3).
func ParseLevel(s string) (Level, error) {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(LevelDebug) || n > int(LevelFatal) {
		return LevelInfo, fmt.Errorf("log: invalid level %q", s)
	}
	return Level(n), nil
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarning:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	case LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.InfoLevel
}

// Option configures a Logger created by New.
type Option func(l *logrus.Logger)

// WithLevel sets the minimum level that is printed.
func WithLevel(level Level) Option {
	return func(l *logrus.Logger) {
		l.SetLevel(level.logrus())
	}
}

// WithOutput redirects log output, stderr by default.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithExitFunc replaces the function called after a FATAL message.
func WithExitFunc(fn func(code int)) Option {
	return func(l *logrus.Logger) {
		l.ExitFunc = fn
	}
}

// New returns a logrus backed Logger. Output goes to stderr at info
// level unless changed by opts.
func New(opts ...Option) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
