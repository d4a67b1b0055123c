// Package logging builds the structured loggers used across plotdoc.
//
// Components receive a *logrus.Entry rather than reaching for a global, so a
// session, a test, or the CLI can decide where output goes and at what level.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects the log line encoding.
type Format string

const (
	// FormatText writes key=value lines.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum level to output (debug, info, warn, error).
	Level string
	// Format is the output encoding. Defaults to text.
	Format Format
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Fields are attached to every entry.
	Fields logrus.Fields
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatText,
		Output: os.Stderr,
	}
}

// ParseLevel parses a level name. Unknown names fall back to info.
func ParseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// New creates a logger entry from cfg.
func New(cfg Config) *logrus.Entry {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(cfg.Output)
	l.SetLevel(ParseLevel(cfg.Level))

	switch cfg.Format {
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    true,
			TimestampFormat:  "2006-01-02T15:04:05.000",
			DisableSorting:   false,
			QuoteEmptyFields: true,
		})
	}

	entry := logrus.NewEntry(l)
	if len(cfg.Fields) > 0 {
		entry = entry.WithFields(cfg.Fields)
	}
	return entry
}

// Component returns entry with the component field set.
// A nil entry yields a discarding logger.
func Component(entry *logrus.Entry, name string) *logrus.Entry {
	if entry == nil {
		entry = Discard()
	}
	return entry.WithField("component", name)
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
