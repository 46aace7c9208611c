package scoring_test

import (
	"testing"

	"github.com/prachya/golfparty/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseDuration(t *testing.T) {
	Convey("Given elapsed-time strings from the judge export", t, func() {
		cases := []struct {
			in   string
			want int
		}{
			{"00:06:53", 413},
			{"01:00:00", 3600},
			{"12:34", 754},
			{"42", 42},
			{"", 0},
			{"::", 0},
			{"xx:10", 10},
			{"1:xx:05", 3605},
			{"1:2:3:4", 7384}, // only the trailing three components count
		}

		Convey("When parsing each one", func() {
			for _, c := range cases {
				So(scoring.ParseDuration(c.in), ShouldEqual, c.want)
			}
		})
	})
}
