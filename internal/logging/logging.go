// Package logging builds the application's zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Formats accepted by Options.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// New creates a configured logger. An empty level means info and an empty
// format means JSON.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var output io.Writer
	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		output = writer
	case FormatConsole:
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
