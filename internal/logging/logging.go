// Package logging owns the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"mrtrack/internal/config"
)

var logger = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)
	return l
}

// Get returns the shared logger.
func Get() *logrus.Logger {
	return logger
}

// Init configures the shared logger from cfg and returns it.
// Unknown levels fall back to info; "json" selects the JSON formatter.
func Init(cfg config.LogConfig) *logrus.Logger {
	Configure(logger, cfg, os.Stdout)
	return logger
}

// Configure applies cfg to l, writing to out.
func Configure(l *logrus.Logger, cfg config.LogConfig, out io.Writer) {
	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetOutput(out)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// LogError records err with the module and operation it came from.
func LogError(l *logrus.Logger, module, op string, fields logrus.Fields, err error) {
	entry := l.WithFields(logrus.Fields{
		"module": module,
		"op":     op,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error(err.Error())
}
