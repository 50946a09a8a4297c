package errutil

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCheck(t *testing.T) {
	Convey("While checking errors", t, func() {
		output := &bytes.Buffer{}
		exitCode := 0
		logger := logrus.StandardLogger()
		previousOut, previousExit := logger.Out, logger.ExitFunc
		logger.SetOutput(output)
		logger.ExitFunc = func(code int) { exitCode = code }
		defer func() {
			logger.SetOutput(previousOut)
			logger.ExitFunc = previousExit
		}()

		Convey("Nil error does not exit", func() {
			Check(nil)
			CheckWithContext(nil, "loading setup")
			So(exitCode, ShouldEqual, 0)
			So(output.String(), ShouldBeEmpty)
		})

		Convey("Non-nil error is logged with context and exits", func() {
			CheckWithContext(errors.New("no such file"), "loading setup")
			So(exitCode, ShouldEqual, 1)
			So(output.String(), ShouldContainSubstring, "loading setup: no such file")
		})
	})
}
