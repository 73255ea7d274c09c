package logger

import (
	"os"
	"sync"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
)

var (
	projectLogger *logrus.Logger
	once          sync.Once
)

// GetProjectLogger returns the logger shared by every package in the project.
func GetProjectLogger() *logrus.Entry {
	once.Do(func() {
		projectLogger = logrus.New()
		projectLogger.SetOutput(os.Stderr)
		projectLogger.SetLevel(logrus.InfoLevel)
		projectLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})

	return logrus.NewEntry(projectLogger).WithField("name", "cadence")
}

// SetLevel changes the level of the project logger, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	GetProjectLogger().Logger.SetLevel(lvl)
	return nil
}
