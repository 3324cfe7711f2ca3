package logger

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/go-home-io/imager/providers"
	"github.com/sirupsen/logrus"
)

// Default console logger.
// Used until configuration is loaded.
type consoleLogger struct {
}

// Debug prints debug level message.
func (p *consoleLogger) Debug(msg string, fields ...string) {
	output(msg, withFields(fields...), color.FgCyan)
}

// Info prints info level message.
func (p *consoleLogger) Info(msg string, fields ...string) {
	output(msg, withFields(fields...), color.FgGreen)
}

// Warn prints warning level message.
func (p *consoleLogger) Warn(msg string, fields ...string) {
	output(msg, withFields(fields...), color.FgYellow)
}

// Error prints error level message.
func (p *consoleLogger) Error(msg string, err error, fields ...string) {
	output(msg, withFields(appendError(fields, err)...), color.FgRed)
}

// Fatal prints fatal level message and exits.
func (p *consoleLogger) Fatal(msg string, err error, fields ...string) {
	output(msg, withFields(appendError(fields, err)...), color.FgRed)
	os.Exit(1)
}

// Flush don't needed for a console logger.
func (p *consoleLogger) Flush() {
}

// NewConsoleLogger constructs a new console logger.
func NewConsoleLogger() providers.ISystemLoggerProvider {
	return &consoleLogger{}
}

// Prepares final string.
func format(msg string, fields logrus.Fields) string {
	newM := fmt.Sprintf("%s   %s", time.Now().Local().Format(time.StampMilli), msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	for _, k := range keys {
		newM = fmt.Sprintf("%s\n          %s: %v", newM, k, fields[k])
	}

	return newM
}

// Outputs final string.
func output(msg string, fields logrus.Fields, c color.Attribute) {
	msgC := color.New(c)
	//noinspection GoUnhandledErrorResult
	msgC.Println(format(msg, fields)) // nolint: gosec
}
