// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errcollection

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorCollection(t *testing.T) {
	Convey("When collecting row errors", t, func() {
		errs := &ErrorCollection{}

		Convey("Empty collection reports nothing", func() {
			So(errs.Len(), ShouldEqual, 0)
			So(errs.GetErrIfAny(), ShouldBeNil)
		})

		Convey("Nil errors are skipped", func() {
			for i := 0; i < 3; i++ {
				errs.Add(nil)
			}
			So(errs.Len(), ShouldEqual, 0)
			So(errs.GetErrIfAny(), ShouldBeNil)
		})

		Convey("Single error keeps its wrapped message", func() {
			errs.Add(errors.Wrap(errors.New("expected 5 columns, got 4"), "line 2"))
			So(errs.Len(), ShouldEqual, 1)
			So(errs.GetErrIfAny().Error(), ShouldEqual, "line 2: expected 5 columns, got 4")
		})

		Convey("Several errors are joined in insertion order", func() {
			errs.Add(errors.Errorf("line %d: hw_x", 4))
			errs.Add(nil)
			errs.Add(errors.Errorf("line %d: angle", 2))
			errs.Add(nil)
			errs.Add(errors.Errorf("line %d: B", 7))

			So(errs.Len(), ShouldEqual, 3)
			So(errs.GetErrIfAny().Error(), ShouldEqual, "line 4: hw_x; line 2: angle; line 7: B")
		})

		Convey("Combined error is rebuilt after more errors arrive", func() {
			errs.Add(errors.New("line 2: B"))
			first := errs.GetErrIfAny()
			errs.Add(errors.New("line 3: V_sd"))
			So(first.Error(), ShouldEqual, "line 2: B")
			So(errs.GetErrIfAny().Error(), ShouldEqual, "line 2: B; line 3: V_sd")
		})
	})
}
