// Package diag writes leveled diagnostic lines for the prescreen binary.
package diag

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Level orders diagnostic severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the bracketed tag text for a level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger writes `[level] message key=value` lines. A nil *Logger discards
// everything.
type Logger struct {
	mu      sync.Mutex
	writer  io.Writer
	verbose bool
	palette palette
}

// New builds a logger. Debug lines are written only when verbose is set.
func New(writer io.Writer, verbose, noColor bool) *Logger {
	return &Logger{writer: writer, verbose: verbose, palette: paletteFor(writer, noColor)}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, false, true)
}

func (l *Logger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv) }
func (l *Logger) Info(msg string, kv ...any)  { l.log(LevelInfo, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.log(LevelWarn, msg, kv) }
func (l *Logger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l *Logger) log(level Level, msg string, kv []any) {
	if l == nil || l.writer == nil {
		return
	}
	if level == LevelDebug && !l.verbose {
		return
	}
	line := msg
	if fields := formatFields(kv); fields != "" {
		line += " " + fields
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "%s %s\n", l.palette.tag(level), l.palette.body(level, line))
}

// formatFields renders alternating key/value pairs. A trailing key without a
// value is printed as key=<missing>.
func formatFields(kv []any) string {
	if len(kv) == 0 {
		return ""
	}
	parts := make([]string, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		value := "<missing>"
		if i+1 < len(kv) {
			value = formatValue(kv[i+1])
		}
		parts = append(parts, key+"="+value)
	}
	return strings.Join(parts, " ")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case error:
		return quoteIfNeeded(v.Error())
	case map[string]int:
		return formatCounts(v)
	default:
		return quoteIfNeeded(fmt.Sprint(v))
	}
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", key, counts[key]))
	}
	return strings.Join(parts, ",")
}

func quoteIfNeeded(text string) string {
	if text == "" || strings.ContainsAny(text, " \t\n\"=") {
		return fmt.Sprintf("%q", text)
	}
	return text
}

type palette struct {
	enabled bool
	tags    map[Level]lipgloss.Style
	errBody lipgloss.Style
}

func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor || !ShouldStyle(writer) {
		return palette{}
	}
	return palette{
		enabled: true,
		tags: map[Level]lipgloss.Style{
			LevelDebug: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8")),
			LevelInfo:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			LevelWarn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
			LevelError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		},
		errBody: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func (p palette) tag(level Level) string {
	text := "[" + level.String() + "]"
	if !p.enabled {
		return text
	}
	return p.tags[level].Render(text)
}

func (p palette) body(level Level, text string) string {
	if !p.enabled || level != LevelError {
		return text
	}
	return p.errBody.Render(text)
}

// ShouldStyle reports whether writer is a terminal that accepts styling.
func ShouldStyle(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return IsTerminal(writer)
}

// IsTerminal reports whether writer is backed by a TTY.
func IsTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
