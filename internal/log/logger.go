package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"litedata/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus entry so that call sites never import logrus directly.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

type options struct {
	out      io.Writer
	json     bool
	filePath string
	fileOnly bool
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log lines to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithFile tees log lines to stdout and the file at path.
func WithFile(path string) Option {
	return func(o *options) { o.filePath = path }
}

// WithFileOnly writes log lines to the file at path and nowhere else. Used by
// the interactive front ends, where stdout belongs to the screen.
func WithFileOnly(path string) Option {
	return func(o *options) {
		o.filePath = path
		o.fileOnly = true
	}
}

// NewLogger creates a logger. Without options it writes text lines to stdout.
func NewLogger(opts ...Option) *Logger {
	o := &options{out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	base := logrus.New()
	base.SetLevel(logrus.DebugLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l := &Logger{}
	out := o.out
	if o.filePath != "" {
		f, err := openLogFile(o.filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", o.filePath, err)
		} else {
			l.file = f
			if o.fileOnly {
				out = f
			} else {
				out = io.MultiWriter(o.out, f)
			}
		}
	}
	base.SetOutput(out)
	l.entry = logrus.NewEntry(base)
	return l
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Default returns the package-level logger.
func Default() *Logger {
	return logger
}

// SetDebug toggles debug output for every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	return isDebug.Load()
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithContext attaches ctx to subsequent entries.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{entry: l.entry.WithContext(ctx), file: l.file}
}

// WithError attaches err and whatever typed details it carries.
func (l *Logger) WithError(err error) *Logger {
	return l.With(errorFields(err)...)
}

func (l *Logger) Info(msg string)                          { l.log(logrus.InfoLevel, msg) }
func (l *Logger) Infof(format string, args ...interface{}) { l.log(logrus.InfoLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Warn(msg string)                          { l.log(logrus.WarnLevel, msg) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(logrus.WarnLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Error(msg string)                         { l.log(logrus.ErrorLevel, msg) }
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string) {
	if DebugEnabled() {
		l.log(logrus.DebugLevel, msg)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		l.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// log is always three frames below the user's call site.
func (l *Logger) log(level logrus.Level, msg string) {
	entry := l.entry
	if _, file, line, ok := runtime.Caller(2); ok {
		entry = entry.WithField("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	entry.Log(level, msg)
}

func errorFields(err error) []Field {
	if err == nil {
		return []Field{F("error", "<nil>")}
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", int(errors.KindOf(err))),
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	var reqErr *errors.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Endpoint() != "" {
			fields = append(fields, F("endpoint", reqErr.Endpoint()))
		}
		if reqErr.Status() != 0 {
			fields = append(fields, F("status", reqErr.Status()))
		}
	}
	return fields
}

// Package-level helpers use the configured default logger.

func Info(msg string)                           { logger.log(logrus.InfoLevel, msg) }
func Infof(format string, args ...interface{})  { logger.log(logrus.InfoLevel, fmt.Sprintf(format, args...)) }
func Warn(msg string)                           { logger.log(logrus.WarnLevel, msg) }
func Warnf(format string, args ...interface{})  { logger.log(logrus.WarnLevel, fmt.Sprintf(format, args...)) }
func Error(msg string)                          { logger.log(logrus.ErrorLevel, msg) }
func Errorf(format string, args ...interface{}) { logger.log(logrus.ErrorLevel, fmt.Sprintf(format, args...)) }

func Debug(msg string) {
	if DebugEnabled() {
		logger.log(logrus.DebugLevel, msg)
	}
}

func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		logger.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// LogWithFields returns the default logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the default logger with err's details attached.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	logger.WithError(err).log(logrus.ErrorLevel, msg)
}
