package system

import (
    "fmt"
    "io"
    "os"
    "path/filepath"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// It prints to stderr with timestamps until Setup redirects it.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
    ReportTimestamp: true,
})

// Setup sets the log level and, when file is non-empty, sends output to
// that file instead of stderr. The full-screen UI owns the terminal, so
// it always logs to a file. The returned func restores stderr.
func Setup(level, file string) (func() error, error) {
    lvl, err := clog.ParseLevel(level)
    if err != nil {
        return nil, fmt.Errorf("log level: %w", err)
    }
    Logger.SetLevel(lvl)
    if file == "" {
        return func() error { return nil }, nil
    }
    if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
        return nil, err
    }
    f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
    if err != nil {
        return nil, err
    }
    Logger.SetOutput(f)
    return func() error {
        Logger.SetOutput(os.Stderr)
        return f.Close()
    }, nil
}

// Discard silences the logger. Used by headless commands whose stdout is data.
func Discard() { Logger.SetOutput(io.Discard) }
