// Package logger provides structured logging for the gallery.
//
// The terminal belongs to the TUI, so log output goes to a rotated file
// rather than stdout.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Standard field names shared by every log line.
const (
	FieldService    = "service"
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldGeneration = "generation"
	FieldCount      = "count"
	FieldDurationMs = "duration_ms"
	FieldStatus     = "status"
)

const (
	defaultService   = "doggallery"
	timestampLayout  = "2006-01-02T15:04:05.000Z07:00"
	defaultMaxSizeMB = 10
)

// Fields is an alias for logrus fields.
type Fields = logrus.Fields

// Logger wraps logrus.Entry so callers can attach fields fluently.
type Logger struct {
	*logrus.Entry
	closer io.Closer
}

// Config holds logger configuration.
type Config struct {
	Level      string    // debug, info, warn, error
	Format     string    // json, text
	File       string    // log file path; empty discards output unless Output is set
	Output     io.Writer // explicit destination, wins over File
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New builds a Logger from cfg. A nil cfg yields a discarding logger.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		return Discard(), nil
	}

	log := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampLayout,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampLayout,
			DisableColors:   true,
		})
	}

	var closer io.Closer
	switch {
	case cfg.Output != nil:
		log.SetOutput(cfg.Output)
	case strings.TrimSpace(cfg.File) != "":
		path := strings.TrimSpace(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = defaultMaxSizeMB
		}
		rotator := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		log.SetOutput(rotator)
		closer = rotator
	default:
		log.SetOutput(io.Discard)
	}

	return &Logger{
		Entry:  log.WithField(FieldService, defaultService),
		closer: closer,
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Entry: logrus.NewEntry(log)}
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) *Logger {
	return l.With(Fields{FieldComponent: name})
}

// With returns a child logger carrying fields.
func (l *Logger) With(fields Fields) *Logger {
	if l == nil {
		l = Discard()
	}
	return &Logger{Entry: l.Entry.WithFields(fields), closer: l.closer}
}

type contextKey struct{}

// WithContext stores the logger on ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext extracts the logger from ctx, or a discarding logger.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*Logger); ok && l != nil {
			return l
		}
	}
	return Discard()
}
