package logger

import (
	"io"
	"os"

	"github.com/EricCWWong/GSimulator/pkg/utils/fs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// LogFileName is the name of the log written into the results directory.
	LogFileName = "gsimulator.log"
	// TimestampFormat of every log line, with milliseconds.
	TimestampFormat = "2006-01-02 15:04:05.000"
)

// Initialize configures logrus for a simulation run. With directory set, logs
// go to both stderr and LogFileName inside that directory; the returned file
// should then be closed by the caller and is also closed on logrus exit.
// Without directory nil file is returned.
func Initialize(level logrus.Level, directory, runID string) (*os.File, error) {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: TimestampFormat})
	logrus.SetOutput(os.Stderr)

	var logFile *os.File
	if directory != "" {
		resultsDirectory, err := fs.CreateResultsDir(directory)
		if err != nil {
			return nil, err
		}

		path := fs.GetResultsPath(resultsDirectory, LogFileName)
		logFile, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open log file %q", path)
		}
		logrus.Infof("Results directory %q", resultsDirectory)
		logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
		// Fatal exits skip deferred closes.
		logrus.RegisterExitHandler(func() { logFile.Close() })
	}

	logrus.WithField("run_id", runID).Info("Starting simulation")
	return logFile, nil
}
