package internal

import (
	"github.com/sirupsen/logrus"
)

// Logger can be replaced by external packages for testing
var Logger = logrus.New()

// SetLogLevel changes global log level. Unknown level name is ignored.
func SetLogLevel(level string) {
	switch level {
	case "TRACE":
		Logger.SetLevel(logrus.TraceLevel)
	case "DEBUG":
		Logger.SetLevel(logrus.DebugLevel)
	case "INFO":
		Logger.SetLevel(logrus.InfoLevel)
	case "WARN":
		Logger.SetLevel(logrus.WarnLevel)
	case "ERROR":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.WithField("level", level).Warn("Unknown log level, keep current level")
	}
}
