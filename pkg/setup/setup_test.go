package setup

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReadSetup(t *testing.T) {
	Convey("When reading setup file", t, func() {
		Convey("Every data row becomes configuration in file order", func() {
			batch, err := ReadFile("testdata/setup.csv")
			So(err, ShouldBeNil)
			So(batch, ShouldHaveLength, 2)
			So(batch[0], ShouldResemble, Configuration{HwX: 2, RatioWyWx: 1})
			So(batch[1], ShouldResemble, Configuration{HwX: 2, RatioWyWx: 1, B: 1})
		})

		Convey("Single data row gives batch of one", func() {
			batch, err := ReadFile("testdata/single.csv")
			So(err, ShouldBeNil)
			So(batch, ShouldHaveLength, 1)
			So(batch[0].HwY(), ShouldEqual, 3.0)
			So(batch[0].Vsd, ShouldEqual, 0.1)
		})

		Convey("Malformed rows are reported with line numbers", func() {
			_, err := ReadFile("testdata/malformed.csv")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 2: expected 5 columns, got 4")
			So(err.Error(), ShouldContainSubstring, "line 3: ratio_wy_wx")
		})

		Convey("Non finite values are rejected", func() {
			_, err := ReadFile("testdata/nonfinite.csv")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 2: hw_x")
			So(err.Error(), ShouldContainSubstring, "line 3: B")
			So(err.Error(), ShouldContainSubstring, "line 4: angle")
			So(err.Error(), ShouldNotContainSubstring, "line 5")
		})

		Convey("Header only file gives empty batch", func() {
			batch, err := Read(strings.NewReader("hw_x,wy/wx,V_sd,B,angle\n"))
			So(err, ShouldBeNil)
			So(batch, ShouldBeEmpty)
		})

		Convey("Empty input is an error", func() {
			_, err := Read(strings.NewReader(""))
			So(err, ShouldNotBeNil)
		})

		Convey("Missing file is an error", func() {
			_, err := ReadFile("testdata/nope.csv")
			So(err, ShouldNotBeNil)
		})
	})
}
