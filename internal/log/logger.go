// Package log constructs the tool's loggers.
package log

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New builds a field logger. When outputFile is set the log goes there,
// falling back to stderr if the file cannot be opened.
func New(outputFile, application, environment string) logrus.FieldLogger {
	logger := logrus.New()

	if outputFile != "" {
		if file, err := os.OpenFile(filepath.Clean(outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
			logger.SetOutput(file)
		} else {
			logger.Infof("Failed to open output file %s. Will use stderr. %s",
				outputFile, err.Error())
		}
	}

	return logger.WithFields(logrus.Fields{
		"application": application,
		"environment": environment})
}
