// Package logging builds the command-line logger. Library packages never log;
// only cmd/ hosts do, through the logger returned here.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Levels lists the accepted --log-level values.
var Levels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// ValidateLogLevel reports whether level is one of Levels, ignoring case.
func ValidateLogLevel(level string) error {
	if _, ok := parseLevel(level); !ok {
		return fmt.Errorf("logging: invalid log level %q (want one of %s)", level, strings.Join(Levels, ", "))
	}
	return nil
}

// New returns a logger writing to w at level. Timestamps are only reported
// at debug level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, ok := parseLevel(level)
	if !ok {
		return nil, ValidateLogLevel(level)
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
		TimeFormat:      time.RFC3339,
		Prefix:          "formmask",
	})
	logger.SetStyles(styles())
	return logger, nil
}

func parseLevel(level string) (log.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return log.DebugLevel, true
	case "INFO", "":
		return log.InfoLevel, true
	case "WARN":
		return log.WarnLevel, true
	case "ERROR":
		return log.ErrorLevel, true
	default:
		return log.InfoLevel, false
	}
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))
	return s
}

// HintStyle renders widget hints on the terminal.
var HintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4473"))

// OKStyle renders accepted values on the terminal.
var OKStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60F281"))
