package experiment

import (
	"bytes"
	"testing"

	"github.com/EricCWWong/GSimulator/pkg/setup"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProgress(t *testing.T) {
	Convey("When progress is enabled", t, func() {
		progress := NewProgress(&bytes.Buffer{}, 3, true)
		observer := progress.Observer()

		Convey("Each evaluated configuration advances the bar", func() {
			observer(0, setup.Configuration{})
			observer(1, setup.Configuration{})
			So(progress.Current(), ShouldEqual, 2)
			progress.Finish()
		})
	})

	Convey("When progress is disabled observer is a no-op", t, func() {
		progress := NewProgress(&bytes.Buffer{}, 3, false)
		progress.Observer()(0, setup.Configuration{})
		So(progress.Current(), ShouldEqual, 0)
		progress.Finish()
	})
}
