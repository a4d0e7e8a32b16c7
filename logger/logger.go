// SPDX-License-Identifier: MIT
// Package: blossom/logger
//
// logger.go — leveled, module-tagged loggers for the command-line tools.

// Package logger builds op/go-logging loggers with a shared format.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// DefaultLogLevel applies when no level or an unknown level is given.
const DefaultLogLevel = "INFO"

const logFormat = "%{color}%{time:15:04:05.000} %{module} %{level:.1s}%{color:reset} %{message}"

// LogLevelFlag selects the verbosity of every command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   DefaultLogLevel,
	EnvVars: []string{"BLOSSOM_LOG"},
}

// NewLogger returns a logger for module writing to stderr.
func NewLogger(level, module string) *logging.Logger {
	return NewLoggerTo(os.Stderr, level, module)
}

// NewLoggerTo is NewLogger with an explicit sink. An unparsable level
// falls back to DefaultLogLevel. The level is also registered for module on
// the package backend, which is what (*logging.Logger).IsEnabledFor reads.
func NewLoggerTo(w io.Writer, level, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	logging.SetLevel(lvl, module)
	log.SetBackend(leveled)
	return log
}

// ParseTime splits elapsed into whole hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second) / time.Second)
	return total / 3600, total % 3600 / 60, total % 60
}

// FormatElapsed renders elapsed as "1h 2m 3s".
func FormatElapsed(elapsed time.Duration) string {
	h, m, s := ParseTime(elapsed)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
