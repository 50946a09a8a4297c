package experiment

import (
	"github.com/sirupsen/logrus"
)

// CheckWithExitCode logs err with context and exits with code when err is not nil.
// Exit goes through logrus so that registered exit handlers run.
func CheckWithExitCode(err error, context string, code int) {
	if err != nil {
		logrus.Debugf("%s: %+v", context, err)
		logrus.Errorf("%s: %v", context, err)
		logrus.StandardLogger().Exit(code)
	}
}
