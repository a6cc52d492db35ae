package logger

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultConsoleLines is how many recent lines are kept for the on-screen console.
const DefaultConsoleLines = 200

// Options configures New. An empty File disables the rotated log file.
type Options struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      slog.Leveler
	// ConsoleLines caps the in-memory history; 0 means DefaultConsoleLines.
	ConsoleLines int
}

// Logger keeps the most recent log lines in memory for the console and forwards every
// record to a slog text handler writing to a size-rotated file.
type Logger struct {
	mu    sync.Mutex
	lines []string
	max   int
	slog  *slog.Logger
	file  io.WriteCloser
}

// New returns a Logger. Records at or above opts.Level go to the file (if any) and to the
// console history.
func New(opts Options) *Logger {
	l := &Logger{max: opts.ConsoleLines}
	if l.max <= 0 {
		l.max = DefaultConsoleLines
	}
	var out io.Writer = l
	if opts.File != "" {
		_ = os.MkdirAll(filepath.Dir(opts.File), 0755)
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB, // megabytes
			MaxBackups: opts.MaxBackups,
		}
		out = io.MultiWriter(l.file, l)
	}
	l.slog = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: opts.Level}))
	return l
}

// Slog returns the structured logger subsystems log through.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Log records a free-form line, e.g. something typed into the console.
func (l *Logger) Log(line string) {
	l.slog.Info(line)
}

// Write implements io.Writer for the slog handler; each complete line is appended to the history.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		l.lines = append(l.lines, strings.TrimSpace(string(line)))
	}
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	return len(p), nil
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file, if one is open.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
