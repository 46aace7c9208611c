package metrics_test

import (
	"testing"

	"github.com/prachya/golfparty/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func gatherNames(t *testing.T) map[string]bool {
	t.Helper()
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		t.Fatalf("gathering metrics: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestGlobalManager(t *testing.T) {
	Convey("Given the global metrics facade", t, func() {
		Convey("When every recorder runs once", func() {
			So(func() {
				metrics.RecordRoundStarted()
				metrics.RecordRoundScored(12)
				metrics.RecordSetFinished()
				metrics.RecordEngineError("start_round")
				metrics.RecordScoringDuration(3.2)
				metrics.UpdatePlayerCounts(8, 14)
				metrics.UpdateRoundState(2, 1)
				metrics.RecordHTTPRequest("/rounds", "POST", "201")
				metrics.RecordHTTPRequestDuration("/rounds", "POST", "201", 1.1)
			}, ShouldNotPanic)

			Convey("Then the registry exposes every series", func() {
				names := gatherNames(t)
				for _, want := range []string{
					"golfparty_engine_rounds_started_total",
					"golfparty_engine_rounds_scored_total",
					"golfparty_engine_sets_finished_total",
					"golfparty_engine_results_processed_total",
					"golfparty_engine_engine_errors_total",
					"golfparty_engine_scoring_duration_milliseconds",
					"golfparty_engine_players_in_set",
					"golfparty_engine_players_in_game",
					"golfparty_engine_current_round",
					"golfparty_engine_current_set",
					"golfparty_engine_http_requests_total",
					"golfparty_engine_http_request_duration_milliseconds",
				} {
					So(names[want], ShouldBeTrue)
				}
			})
		})
	})
}

func TestManagerOptions(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When constructed with a custom namespace", func() {
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(reg),
				metrics.WithNamespace("testns"),
				metrics.WithSubsystem("unit"),
			)
			So(m, ShouldNotBeNil)

			Convey("Then its series register under that namespace", func() {
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)
				for _, f := range families {
					So(f.GetName(), ShouldStartWith, "testns_unit_")
				}
			})
		})

		Convey("When metrics are disabled", func() {
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(prometheus.NewRegistry()),
				metrics.WithMetricsEnabled(false),
			)
			So(m, ShouldNotBeNil)
		})
	})
}
