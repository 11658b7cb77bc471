package inflight_test

import (
	"context"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/arena/internal/domain/inflight"
)

func TestTracker(t *testing.T) {
	Convey("Given a fresh tracker", t, func() {
		tr := inflight.NewTracker()
		ctx := context.Background()

		Convey("When an import begins for an event", func() {
			So(tr.Begin(ctx, "event-1"), ShouldBeTrue)

			Convey("Then a second import for the same event is rejected", func() {
				So(tr.Begin(ctx, "event-1"), ShouldBeFalse)
				So(tr.Size(), ShouldEqual, 1)
			})

			Convey("Then an import for a different event still runs", func() {
				So(tr.Begin(ctx, "event-2"), ShouldBeTrue)
				So(tr.Size(), ShouldEqual, 2)
			})

			Convey("And after End the event can import again", func() {
				tr.End(ctx, "event-1")
				So(tr.Begin(ctx, "event-1"), ShouldBeTrue)
			})
		})

		Convey("When many goroutines race to begin the same event", func() {
			const goroutines = 32
			var wg sync.WaitGroup
			wins := make(chan bool, goroutines)
			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					wins <- tr.Begin(ctx, "contested")
				}()
			}
			wg.Wait()
			close(wins)

			Convey("Then exactly one wins", func() {
				won := 0
				for ok := range wins {
					if ok {
						won++
					}
				}
				So(won, ShouldEqual, 1)
			})
		})
	})
}
