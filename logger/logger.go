// Package logger provides the colored, component prefixed logger used across the app.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/beka-birhanu/rumba/config"
	"github.com/beka-birhanu/rumba/service/i"
	"github.com/lmittmann/tint"
)

const timeFormat = "2006-01-02 15:04:05.000Z07:00"

// Logger writes leveled messages tagged with a colored component name.
type Logger struct {
	slog *slog.Logger
}

var _ i.Logger = (*Logger)(nil)

// New creates a logger for the component prefix. level is one of debug, info,
// warn or error.
func New(prefix string, color uint8, w io.Writer, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: timeFormat,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(config.ColorRed, a)
				}
			}
			return a
		},
	})

	return &Logger{
		slog: slog.New(handler).With(tint.Attr(color, slog.String("component", prefix))),
	}, nil
}

func (l *Logger) Debug(msg string) {
	l.slog.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.slog.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.slog.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.slog.Error(msg)
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.slog.Enabled(context.Background(), level)
}
