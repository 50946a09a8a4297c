package uuid

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Generated run ids", t, func() {
		first, err := New()
		So(err, ShouldBeNil)
		second, err := New()
		So(err, ShouldBeNil)

		Convey("Should be formatted as uuid", func() {
			So(regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`).MatchString(first), ShouldBeTrue)
		})

		Convey("Should differ between calls", func() {
			So(first, ShouldNotEqual, second)
		})
	})
}
