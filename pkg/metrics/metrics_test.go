package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/arena/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithPrometheusRegistry(registry),
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("import"),
		)
		So(m, ShouldNotBeNil)

		Convey("Then its metrics are gatherable", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			// Counters without observations are still registered.
			So(families, ShouldNotBeNil)
		})
	})

	Convey("Given the global helpers", t, func() {
		Convey("Then recording must not panic", func() {
			metrics.RecordImportStarted()
			metrics.RecordImportCompleted()
			metrics.RecordImportFailed("teams")
			metrics.RecordImportDuration(12.5)
			metrics.RecordEntitiesParsed("team", 3)
			metrics.RecordMatchesDerived(5)
			metrics.RecordSessionsDerived(4)
			metrics.RecordStoreUpdateLatency(0.2)
			metrics.RecordStoreQueryLatency(0.1)
			metrics.RecordHTTPRequest("import", "POST", "200")
			metrics.RecordHTTPRequestDuration("import", "POST", "200", 3.4)
		})

		Convey("Then the custom registry is exposed", func() {
			So(metrics.GetRegistry(), ShouldNotBeNil)
		})
	})
}
