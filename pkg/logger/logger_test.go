package logger_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/arena/pkg/logger"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at each level", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			// Must not panic with or without fields.
			l.Info(ctx, "info", logger.String("k", "v"))
			l.Warn(ctx, "warn", logger.Int("n", 1))
			l.Error(ctx, "error", logger.Error(nil))
			l.Debug(ctx, "debug", logger.Any("v", struct{}{}))
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("import")
			So(named, ShouldNotBeNil)
			named.Info(ctx, "named logger works")
		})

		Convey("When setting levels from strings", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
			So(logger.SetLevelString("info"), ShouldBeNil)
		})
	})
}
