// Package log builds the [slog.Handler] used by the command line.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandler creates a [slog.Handler] writing to w.
// The text format falls back to logfmt when w is not a terminal.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var formatter charmlog.Formatter
	switch strings.ToLower(logFormat) {
	case TextFormat, "":
		formatter = charmlog.TextFormatter
		if !isTerminal(w) {
			formatter = charmlog.LogfmtFormatter
		}
	case LogfmtFormat:
		formatter = charmlog.LogfmtFormatter
	case JSONFormat:
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, logFormat)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: level <= charmlog.DebugLevel,
	}), nil
}

// GetLevel parses a level name.
func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "info", "":
		return charmlog.InfoLevel, nil
	case "debug":
		return charmlog.DebugLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
