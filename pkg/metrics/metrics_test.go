package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a custom registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("config"),
				WithHistogramBuckets([]float64{0.01, 0.1, 1}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created and registered", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test")
				So(manager.subsystem, ShouldEqual, "config")
				count, err := testutil.GatherAndCount(registry)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 3)
			})
		})

		Convey("When creating a disabled manager", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithMetricsEnabled(false), WithPrometheusRegistry(registry))

			Convey("Then nothing should be registered", func() {
				count, err := testutil.GatherAndCount(registry)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 0)
			})

			Convey("Then recording should be a no-op", func() {
				So(func() {
					manager.ObserveConfigLoad(time.Millisecond)
					manager.RecordConfigLoadFailure("CONFIG_INVALID")
					manager.SetRegistryEntries("copilot_fees", 3)
					manager.RecordViewModelAssembled()
					manager.RecordViewModelError()
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given an enabled manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording config load failures", func() {
			manager.RecordConfigLoadFailure("CONFIG_INVALID")
			manager.RecordConfigLoadFailure("CONFIG_INVALID")
			manager.RecordConfigLoadFailure("")

			Convey("Then failures should be counted per code", func() {
				So(testutil.ToFloat64(manager.configLoadFailures.WithLabelValues("CONFIG_INVALID")), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.configLoadFailures.WithLabelValues("UNKNOWN")), ShouldEqual, 1)
			})
		})

		Convey("When recording registry sizes", func() {
			manager.SetRegistryEntries("software_contest_fees", 4)
			manager.SetRegistryEntries("software_contest_fees", 5)

			Convey("Then the gauge should hold the last value", func() {
				So(testutil.ToFloat64(manager.registryEntries.WithLabelValues("software_contest_fees")), ShouldEqual, 5)
			})
		})

		Convey("When recording view model assembly", func() {
			manager.RecordViewModelAssembled()
			manager.RecordViewModelAssembled()
			manager.RecordViewModelError()

			Convey("Then the counters should advance", func() {
				So(testutil.ToFloat64(manager.viewModelsAssembled), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.viewModelAssembleErrors), ShouldEqual, 1)
			})
		})
	})
}

func TestNilManager(t *testing.T) {
	Convey("Given a nil manager", t, func() {
		var manager *Manager

		Convey("Then every recording method should be safe", func() {
			So(func() {
				manager.ObserveConfigLoad(time.Second)
				manager.RecordConfigLoadFailure("CONFIG_NOT_FOUND")
				manager.SetRegistryEntries("studio_overviews", 1)
				manager.RecordViewModelAssembled()
				manager.RecordViewModelError()
			}, ShouldNotPanic)
		})
	})
}
