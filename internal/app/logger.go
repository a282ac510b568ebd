package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

// LogEnvVar names a file that receives every log record, including debug, as JSON lines.
const LogEnvVar = "SRCFMT_LOG_FILE"

// setupLogger configures a logger that writes clean, human-readable logs to the
// console and, when logPath is set, structured logs to that file. The returned
// closer is nil when no file is open. A file that cannot be opened is reported
// in the error while the console logger stays usable.
func setupLogger(stderr io.Writer, logLevel *slog.LevelVar, logPath string, useColour bool) (*slog.Logger, io.Closer, error) {
	console := newConsoleHandler(stderr, logLevel, useColour)
	if logPath == "" {
		return slog.New(console), nil, nil
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(console), nil, err
	}

	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug, // File always gets full debug info
	})

	multi := &multiHandler{
		handlers: []slog.Handler{fileHandler, console},
	}
	return slog.New(multi), f, nil
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

type consoleHandler struct {
	w         io.Writer
	level     *slog.LevelVar
	attrs     []slog.Attr
	errColour *color.Color
	wrnColour *color.Color
}

func newConsoleHandler(w io.Writer, level *slog.LevelVar, useColour bool) *consoleHandler {
	errColour := color.New(color.FgRed, color.Bold)
	wrnColour := color.New(color.FgYellow)
	if !useColour {
		errColour.DisableColor()
		wrnColour.DisableColor()
	}
	return &consoleHandler{
		w:         w,
		level:     level,
		errColour: errColour,
		wrnColour: wrnColour,
	}
}

func (c *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (c *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	switch {
	case record.Level >= slog.LevelError:
		c.errColour.Fprint(c.w, "Error:")
		fmt.Fprintf(c.w, " %s", record.Message)
	case record.Level >= slog.LevelWarn:
		c.wrnColour.Fprint(c.w, "Warning:")
		fmt.Fprintf(c.w, " %s", record.Message)
	default:
		fmt.Fprint(c.w, record.Message)
	}

	for _, a := range c.attrs {
		c.formatAttr(a)
	}

	record.Attrs(func(a slog.Attr) bool {
		c.formatAttr(a)
		return true
	})

	fmt.Fprintln(c.w)
	return nil
}

func (c *consoleHandler) formatAttr(a slog.Attr) {
	if a.Key == "error" || a.Key == "err" {
		fmt.Fprintf(c.w, ": %v", a.Value)
	} else if c.level.Level() <= slog.LevelDebug {
		fmt.Fprintf(c.w, " %s=%v", a.Key, a.Value)
	}
}

func (c *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		w:         c.w,
		level:     c.level,
		attrs:     append(append([]slog.Attr(nil), c.attrs...), attrs...),
		errColour: c.errColour,
		wrnColour: c.wrnColour,
	}
}

func (c *consoleHandler) WithGroup(_ string) slog.Handler {
	return c
}
