// Package logging provides the date-named debug log file used by the TUI.
//
// The TUI owns the terminal once raw mode begins, so this is the only
// place startup diagnostics can go once the alternate screen is up.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// L is the global logger instance. It discards output until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	appDirName = "windows_registry_search"
	logSubdir  = "logs"
	logPrefix  = "log."
)

// Options configures Init.
type Options struct {
	// Dir overrides the log directory. Default: <user config dir>/windows_registry_search/logs.
	Dir string
}

// Init opens today's log file and switches L to write to it at DEBUG level
// and above. Call once from main before any other logging call. The file
// is chosen once, here: a process still running after midnight keeps
// writing to the file named for the day Init ran; no new file is opened.
func Init(opts Options) error {
	dir := opts.Dir
	if dir == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(cfgDir, appDirName, logSubdir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	filename := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02"))

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
