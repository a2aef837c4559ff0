package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// InitLogger builds the structured logger. Development uses colored text unless format is "json";
// every other environment logs JSON
func InitLogger(logLevel, format string, isDevelopment bool) *logrus.Logger {
	return newLogger(os.Stdout, logLevel, format, isDevelopment)
}

func newLogger(out io.Writer, logLevel, format string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment || strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return log
}

// WithService creates a logger entry with service context
func WithService(log *logrus.Logger, serviceName string) *logrus.Entry {
	return log.WithField("service", serviceName)
}
