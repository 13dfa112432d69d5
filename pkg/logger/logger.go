package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const timeFormat = "2006/01/02 15:04:05"

// DefaultLogger writes info and above to stderr
var DefaultLogger = NewLogger()

// Logger is a leveled logger. Loggers derived with WithField share the
// output and level of their parent.
type Logger struct {
	entry *logrus.Entry
}

func NewLogger() *Logger {
	return New(os.Stderr)
}

func New(out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timeFormat,
	})
	return &Logger{entry: logrus.NewEntry(l)}
}

// SetLevel sets the minimum level by name: trace, debug, info, warn,
// error, fatal or panic.
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(lvl)
	return nil
}

func (l *Logger) Level() string {
	return l.entry.Logger.GetLevel().String()
}

func (l *Logger) SetColors(ok bool) {
	l.entry.Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timeFormat,
		ForceColors:     ok,
		DisableColors:   !ok,
	})
}

// SetPrintFunc turns on reporting of the calling function and file
func (l *Logger) SetPrintFunc(ok bool) {
	l.entry.Logger.SetReportCaller(ok)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Trace(message string) {
	l.entry.Trace(message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.entry.Tracef(format, args...)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func (l *Logger) Panic(message string) {
	l.entry.Panic(message)
}

func (l *Logger) Panicf(format string, args ...interface{}) {
	l.entry.Panicf(format, args...)
}
