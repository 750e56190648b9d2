package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log  *Logger
	once sync.Once
)

type Logger struct {
	*logrus.Logger
}

type Entry struct {
	Logger
	entry *logrus.Entry
}

func (l *Logger) Warn(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Warn(args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Warnf(format, args...)
}

func (l *Logger) Error(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Error(args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Errorf(format, args...)
}

func (l *Logger) WithField(key string, value interface{}) *Entry {
	entry := l.Logger.WithField(key, value)
	return &Entry{*l, entry}
}

func (l *Logger) WithFields(fields logrus.Fields) *Entry {
	entry := l.Logger.WithFields(fields)
	return &Entry{*l, entry}
}

func (l *Logger) WithError(err error) *Entry {
	entry := l.Logger.WithError(err)
	return &Entry{*l, entry}
}

func (e *Entry) Warn(args ...interface{}) {
	warnFatal(args...)
	e.entry.Warn(args...)
}

func (e *Entry) Warnf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	e.entry.Warnf(format, args...)
}

func (e *Entry) Error(args ...interface{}) {
	warnFatal(args...)
	e.entry.Error(args...)
}

func (e *Entry) Errorf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	e.entry.Errorf(format, args...)
}

func (e *Entry) Debug(args ...interface{}) {
	e.entry.Debug(args...)
}

func (e *Entry) Debugf(format string, args ...interface{}) {
	e.entry.Debugf(format, args...)
}

func warnFatal(args ...interface{}) {
	if failFast != "" {
		log.Fatal(args...)
	}
}

func warnFatalf(format string, args ...interface{}) {
	if failFast != "" {
		log.Fatalf(format, args...)
	}
}

var failFast string

// InitializeLogger sets up the process-wide logger. Logging is disabled
// unless DEBUG_CROSSHAIRCTL selects a level; WARNFAIL_CROSSHAIRCTL turns
// every warning or error into a fatal exit, which is useful in tests.
func InitializeLogger() {
	once.Do(func() {
		log = &Logger{}
		log.Logger = logrus.New()
		// We do not want to log by default
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		if logLevel := os.Getenv("DEBUG_CROSSHAIRCTL"); logLevel != "" {
			failFast = os.Getenv("WARNFAIL_CROSSHAIRCTL")
			if failFast != "" {
				logLevel = "debug"
			}
			log.SetOutput(os.Stderr)
			switch strings.ToLower(logLevel) {
			case "debug":
				log.SetLevel(logrus.DebugLevel)
			case "warn":
				log.SetLevel(logrus.WarnLevel)
			case "error":
				log.SetLevel(logrus.ErrorLevel)
			default:
				log.SetLevel(logrus.DebugLevel)
			}
			log.WithField("level", log.GetLevel()).Debug("Logging enabled.")
		}
	})
}

// GetLogger returns the initialized process-wide Logger.
func GetLogger() *Logger {
	if log == nil {
		InitializeLogger()
	}
	return log
}

func init() {
	InitializeLogger()
}
