package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInitialize(t *testing.T) {
	Convey("When initializing logging", t, func() {
		defer logrus.SetOutput(os.Stderr)
		defer logrus.SetLevel(logrus.ErrorLevel)

		Convey("Without directory nothing is written to disk", func() {
			file, err := Initialize(logrus.WarnLevel, "", "run-1")
			So(err, ShouldBeNil)
			So(file, ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.WarnLevel)
		})

		Convey("With directory run id lands in log file", func() {
			directory := filepath.Join(t.TempDir(), "Results")
			file, err := Initialize(logrus.InfoLevel, directory, "run-2")
			So(err, ShouldBeNil)
			So(file, ShouldNotBeNil)
			So(file.Close(), ShouldBeNil)

			content, err := os.ReadFile(filepath.Join(directory, LogFileName))
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "run_id=run-2")
		})

		Convey("Log file is closed when logrus exits", func() {
			logger := logrus.StandardLogger()
			previousExit := logger.ExitFunc
			exitCode := -1
			logger.ExitFunc = func(code int) { exitCode = code }
			defer func() { logger.ExitFunc = previousExit }()

			file, err := Initialize(logrus.InfoLevel, filepath.Join(t.TempDir(), "Results"), "run-3")
			So(err, ShouldBeNil)

			logger.Exit(1)
			So(exitCode, ShouldEqual, 1)
			_, err = file.WriteString("after exit")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestTimestampFormat(t *testing.T) {
	Convey("Timestamps end with milliseconds", t, func() {
		stamp := time.Date(2026, time.July, 3, 14, 5, 6, 123*int(time.Millisecond), time.UTC)
		So(stamp.Format(TimestampFormat), ShouldEqual, "2026-07-03 14:05:06.123")
	})
}
