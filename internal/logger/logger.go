// Package logger provides the component-tagged logger used across the
// module, backed by logrus.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger tags every line with the component emitting it.
type Logger interface {
	Debugf(component string, format string, args ...interface{})
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Noop discards everything.
type Noop struct{}

func (Noop) Debugf(component, format string, args ...interface{}) {}
func (Noop) Infof(component, format string, args ...interface{})  {}
func (Noop) Warnf(component, format string, args ...interface{})  {}
func (Noop) Errorf(component, format string, args ...interface{}) {}

// Options configures New.
type Options struct {
	Output io.Writer
	Level  string
	JSON   bool
}

type logrusLogger struct {
	entry *logrus.Logger
}

// New returns a logrus backed Logger. An empty level means info and a nil
// output means stderr.
func New(opt Options) (Logger, error) {
	level := opt.Level
	if level == "" {
		level = "info"
	}
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetLevel(logLevel)
	if opt.Output != nil {
		l.SetOutput(opt.Output)
	} else {
		l.SetOutput(os.Stderr)
	}
	if opt.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return logrusLogger{entry: l}, nil
}

func (l logrusLogger) with(component string) *logrus.Entry {
	return l.entry.WithField("component", component)
}

func (l logrusLogger) Debugf(component string, format string, args ...interface{}) {
	l.with(component).Debugf(format, args...)
}

func (l logrusLogger) Infof(component string, format string, args ...interface{}) {
	l.with(component).Infof(format, args...)
}

func (l logrusLogger) Warnf(component string, format string, args ...interface{}) {
	l.with(component).Warnf(format, args...)
}

func (l logrusLogger) Errorf(component string, format string, args ...interface{}) {
	l.with(component).Errorf(format, args...)
}
