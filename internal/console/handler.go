// Package console renders log records and catalog listings for terminals.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownFormat is returned when an unrecognized log format is requested.
var ErrUnknownFormat = errors.New("unknown log format")

// Compile-time interface check.
var _ slog.Handler = (*PrettyHandler)(nil)

// Inline attributes shown by PrettyHandler. Everything else is left to the
// json and text formats.
var _shownAttrs = map[string]bool{
	"file":     true,
	"template": true,
	"error":    true,
}

// PrettyHandler writes one colored line per record. Handler attributes from
// WithAttrs and WithGroup form a prefix; of the inline attributes only file,
// template and error are appended.
type PrettyHandler struct {
	out    io.Writer
	level  slog.Leveler
	mu     *sync.Mutex
	prefix string
}

// NewPrettyHandler returns a PrettyHandler that writes to out at the given level.
func NewPrettyHandler(out io.Writer, level slog.Leveler) *PrettyHandler {
	return &PrettyHandler{out: out, level: level, mu: &sync.Mutex{}}
}

var (
	_warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	_errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	_debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	_attrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record's message styled by level.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.prefix)
	sb.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		if _shownAttrs[a.Key] {
			sb.WriteByte(' ')
			sb.WriteString(_attrStyle.Render(a.Key + "=" + a.Value.String()))
		}
		return true
	})
	msg := sb.String()

	switch {
	case r.Level >= slog.LevelError:
		msg = _errorStyle.Render(msg)
	case r.Level >= slog.LevelWarn:
		msg = _warnStyle.Render(msg)
	case r.Level < slog.LevelInfo:
		msg = _debugStyle.Render(msg)
	default:
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, msg+"\n")
	return err
}

// WithAttrs returns a handler whose prefix includes attrs.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.prefix)
	for _, a := range attrs {
		sb.WriteString(a.Key)
		sb.WriteByte('=')
		sb.WriteString(a.Value.String())
		sb.WriteByte(' ')
	}
	return &PrettyHandler{out: h.out, level: h.level, mu: h.mu, prefix: sb.String()}
}

// WithGroup returns a handler whose prefix includes the group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{out: h.out, level: h.level, mu: h.mu, prefix: h.prefix + name + "."}
}

// Log formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatText   = "text"
)

// NewLogger creates a logger for the given format and level.
func NewLogger(out io.Writer, format string, level slog.Level) (*slog.Logger, error) {
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	case FormatText:
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	case FormatPretty:
		handler = NewPrettyHandler(out, level)
	default:
		return nil, fmt.Errorf("unknown format %q: %w", format, ErrUnknownFormat)
	}
	return slog.New(handler), nil
}
