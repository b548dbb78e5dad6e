// Package log builds the logrus loggers used by discovery and the command line.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	FieldType      = "type"
	FieldProperty  = "property"
	FieldAssembly  = "assembly"
	FieldTagHelper = "tag-helper"
)

// New creates a logger writing to out at the named level ("debug", "info", ...).
func New(level string, out io.Writer) (logrus.FieldLogger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})

	return logger, nil
}

// Discard returns a logger that drops every entry.
func Discard() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// OrDiscard returns logger, or a discarding logger when logger is nil.
func OrDiscard(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger == nil {
		return Discard()
	}
	return logger
}
