package conf

import (
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
)

const testAppName = "testAppName"

var customFlag = NewStringFlag("custom_arg", "help", "default")

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)
		SetHelp("test help")

		Convey("Name and help should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
			So(app.Help, ShouldEqual, "test help")
		})

		Convey("Log level can be fetched from env", func() {
			err := ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)

			os.Setenv(logLevelFlag.envName(), "debug")

			err = ParseEnv()
			So(err, ShouldBeNil)

			// Should be from environment.
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Unknown log level falls back to default", func() {
			os.Setenv(logLevelFlag.envName(), "chatty")

			err := ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("When some custom argument is defined", func() {
			Convey("When we not defined any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := "customContent"
				os.Setenv(customFlag.envName(), customValue)

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customValue)
			})

			Convey("Command line takes the value over the default", func() {
				err := ParseArgs([]string{"--custom_arg", "fromCLI"})
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, "fromCLI")
				So(GetFlags()["custom_arg"], ShouldEqual, "fromCLI")
			})

			Convey("Unknown flags are rejected", func() {
				err := ParseArgs([]string{"--no_such_flag", "1"})
				So(err, ShouldNotBeNil)
			})
		})

		Convey("Dumped configuration contains prefixed variables", func() {
			err := ParseEnv()
			So(err, ShouldBeNil)

			dump := DumpConfigMap(map[string]string{"custom_arg": "overridden"})
			So(dump, ShouldStartWith, "# Export are values.")
			So(dump, ShouldContainSubstring, "GSIM_LOG=error")
			So(dump, ShouldContainSubstring, "GSIM_CUSTOM_ARG=overridden")
			So(strings.HasSuffix(dump, "set +o allexport"), ShouldBeTrue)
		})
	})
}
