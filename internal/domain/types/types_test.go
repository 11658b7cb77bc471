package types_test

import (
	"testing"

	"github.com/okian/arena/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStageValid(t *testing.T) {
	Convey("Given the known match stages", t, func() {
		Convey("Then test, practice and ranking should be valid", func() {
			So(types.StageTest.Valid(), ShouldBeTrue)
			So(types.StagePractice.Valid(), ShouldBeTrue)
			So(types.StageRanking.Valid(), ShouldBeTrue)
		})

		Convey("Then an arbitrary string should not be valid", func() {
			So(types.Stage("final").Valid(), ShouldBeFalse)
			So(types.Stage("").Valid(), ShouldBeFalse)
		})
	})
}

func TestStatusValid(t *testing.T) {
	Convey("Given the known lifecycle statuses", t, func() {
		Convey("Then the three lifecycle values should be valid", func() {
			So(types.StatusNotStarted.Valid(), ShouldBeTrue)
			So(types.StatusInProgress.Valid(), ShouldBeTrue)
			So(types.StatusCompleted.Valid(), ShouldBeTrue)
		})

		Convey("Then anything else should not be valid", func() {
			So(types.Status("queued").Valid(), ShouldBeFalse)
		})
	})
}
