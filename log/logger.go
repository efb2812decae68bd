// Package log provides prefixed, colored, leveled loggers.
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var (
	ErrNilWriter    = errors.New("logger writer is nil")
	ErrEmptyPrefix  = errors.New("logger prefix is empty")
	ErrInvalidLevel = errors.New("invalid log level")
)

// Logger writes lines shaped "<color>[PREFIX]<reset> [LEVEL] message".
type Logger struct {
	base *logrus.Logger
}

// New creates a logger writing to w at info level.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{base: l}, nil
}

// SetLevel changes the minimum level written: debug, info, warning or error.
func (l *Logger) SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	l.base.SetLevel(parsed)
	return nil
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) {
	l.base.Debug(msg)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.base.Info(msg)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(msg string) {
	l.base.Warn(msg)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.base.Error(msg)
}

// Writer returns a writer whose lines are logged at info level. The caller
// must close it.
func (l *Logger) Writer() *io.PipeWriter {
	return l.base.WriterLevel(logrus.InfoLevel)
}

type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}
	fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(e.Level.String()), e.Message)
	return b.Bytes(), nil
}
