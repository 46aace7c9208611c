package config_test

import (
	"testing"

	"github.com/prachya/golfparty/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a default configuration", t, func() {
		cfg := config.New()

		Convey("Then it serves a sane event out of the box", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.Welcome, ShouldEqual, "Welcome to Code Golf Party #1!")
			So(cfg.AllowedPlayers, ShouldBeEmpty)
			So(cfg.MaxResultsBatch, ShouldEqual, 500)
		})
	})
}
