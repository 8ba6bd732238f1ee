// Package logger provides a small centralized logging facade with
// configurable verbosity, backed by logrus.
//
// Verbosity levels (in increasing order):
//
//	Error < Info < Debug < Trace
//
// Example usage:
//
//	logger.SetVerbosity(2) // Debug
//	logger.Infof("sweep started")
//	logger.Debugf("spot=%f vol=%f", spot, vol)
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Level represents a logging verbosity level.
// Higher values mean more verbose logging.
type Level int

const (
	Error Level = iota // critical failures only
	Info               // high-level application progress
	Debug              // detailed diagnostic information
	Trace              // very fine-grained execution details
)

var log = logrus.New()

func init() {
	// Logs go to stderr so they stay separated from report output,
	// which CLI users may pipe elsewhere.
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)
}

// SetVerbosity sets the global logging verbosity. Typically called once
// during application startup, after parsing CLI flags. Values below
// Error clamp to Error and values above Trace clamp to Trace.
func SetVerbosity(v int) {
	switch {
	case Level(v) <= Error:
		log.SetLevel(logrus.ErrorLevel)
	case Level(v) == Info:
		log.SetLevel(logrus.InfoLevel)
	case Level(v) == Debug:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.TraceLevel)
	}
}

// Verbosity reports the currently active level.
func Verbosity() Level {
	switch log.GetLevel() {
	case logrus.ErrorLevel:
		return Error
	case logrus.InfoLevel:
		return Info
	case logrus.DebugLevel:
		return Debug
	default:
		return Trace
	}
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	log.Infof(format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Tracef logs very detailed execution traces. Use sparingly due to
// high volume.
func Tracef(format string, args ...any) {
	log.Tracef(format, args...)
}
