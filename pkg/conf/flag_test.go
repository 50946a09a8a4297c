package conf

import (
	"fmt"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnvFlag(t *testing.T) {
	Convey("While using Flag struct, it should construct proper environment var name", t, func() {
		So(NewStringFlag("test_name", "", "").envName(), ShouldEqual, "GSIM_TEST_NAME")
	})
}

func TestFlags(t *testing.T) {
	Convey("While using Conf flags", t, func() {
		Convey("When some custom String Flag is defined", func() {
			customFlag := NewStringFlag("custom_string_arg", "help", "default")
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, "default")
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), "customContent")

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, "customContent")
			})

			Convey("Redefinition returns the same flag", func() {
				So(NewStringFlag("custom_string_arg", "help", "default"), ShouldEqual, customFlag)
			})

			Convey("Redefinition with other default panics", func() {
				So(func() { NewStringFlag("custom_string_arg", "help", "other") }, ShouldPanic)
			})

			Convey("Redefinition with other type panics", func() {
				So(func() { NewIntFlag("custom_string_arg", "help", 1) }, ShouldPanic)
			})
		})

		Convey("When some custom Int Flag is defined", func() {
			customFlag := NewIntFlag("custom_int_arg", "help", 23424)
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, 23424)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), fmt.Sprintf("%d", 12))

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, 12)
			})
		})

		Convey("When some custom Float Flag is defined", func() {
			customFlag := NewFloatFlag("custom_float_arg", "help", 2.5)
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, 2.5)
			})

			Convey("When we do not define any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, 2.5)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), "0.125")

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, 0.125)
			})

			Convey("Malformed value is reported", func() {
				os.Setenv(customFlag.envName(), "five")

				err := ParseEnv()
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When some custom Bool Flag is defined", func() {
			customFlag := NewBoolFlag("custom_bool_arg", "help", false)
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, false)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), "true")

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldBeTrue)
			})
		})

		Convey("When some custom File Flag is defined", func() {
			customFlag := NewFileFlag("custom_file_arg", "help", "")
			customFlag.clear()
			defer customFlag.clear()

			Convey("Existing file is accepted", func() {
				file, err := os.CreateTemp("", "conf-file-flag")
				So(err, ShouldBeNil)
				defer os.Remove(file.Name())
				file.Close()

				os.Setenv(customFlag.envName(), file.Name())
				err = ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, file.Name())
			})

			Convey("Missing file is rejected", func() {
				os.Setenv(customFlag.envName(), "/nonexistent/gsim/file.csv")
				err := ParseEnv()
				So(err, ShouldNotBeNil)
			})
		})
	})
}
