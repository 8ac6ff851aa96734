package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/florist/internal/ui/output"
	"go.trai.ch/florist/internal/ui/style"
)

// levelStyles colours a record by severity.
type levelStyles struct {
	info  lipgloss.Style
	warn  lipgloss.Style
	error lipgloss.Style
}

func newLevelStyles(r *lipgloss.Renderer) *levelStyles {
	return &levelStyles{
		info:  r.NewStyle().Foreground(style.Stem),
		warn:  r.NewStyle().Foreground(style.Pollen),
		error: r.NewStyle().Foreground(style.Petal).Bold(true),
	}
}

// PrettyHandler is a slog.Handler that writes one coloured line per record.
type PrettyHandler struct {
	out    io.Writer
	styles *levelStyles
	level  slog.Leveler
	attrs  []slog.Attr // keys already qualified
	group  string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil writer means os.Stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:    w,
		styles: newLevelStyles(output.NewRenderer(w)),
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	lineStyle := h.styles.info

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + msg
		lineStyle = h.styles.error
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + msg
		lineStyle = h.styles.warn
	}

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr("", attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})
	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	// Lines are styled one at a time so lipgloss does not pad them to a block.
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		lines[i] = lineStyle.Render(line)
	}

	_, err := io.WriteString(h.out, strings.Join(lines, "\n")+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended. Keys are
// qualified with the current group immediately, so later groups do not apply.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, attr := range attrs {
		if h.group != "" {
			attr.Key = h.group + "." + attr.Key
		}
		merged = append(merged, attr)
	}

	return &PrettyHandler{
		out:    h.out,
		styles: h.styles,
		level:  h.level,
		attrs:  merged,
		group:  h.group,
	}
}

// WithGroup returns a new Handler whose attribute keys are prefixed with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" && name != "" {
		group = h.group + "." + name
	}
	return &PrettyHandler{
		out:    h.out,
		styles: h.styles,
		level:  h.level,
		attrs:  h.attrs,
		group:  group,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
