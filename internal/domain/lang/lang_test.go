package lang_test

import (
	"testing"

	"github.com/prachya/golfparty/internal/domain/lang"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Given language labels", t, func() {
		Convey("Then wide names shorten and everything else passes through", func() {
			So(lang.Format(lang.Python3), ShouldEqual, "Python")
			So(lang.Format(lang.JavaScript), ShouldEqual, "JS")
			So(lang.Format(lang.Rust), ShouldEqual, "Rust")
			So(lang.Format(lang.Lang("Brainfuck")), ShouldEqual, "Brainfuck")
		})
	})
}

func TestKnown(t *testing.T) {
	Convey("Given the language enumeration", t, func() {
		Convey("Then every listed language is known", func() {
			for _, l := range lang.All {
				So(lang.Known(l), ShouldBeTrue)
			}
		})
		Convey("And labels outside the enumeration are not", func() {
			So(lang.Known(lang.Lang("Brainfuck")), ShouldBeFalse)
			So(lang.Known(lang.Lang("python 3")), ShouldBeFalse)
		})
	})
}

func TestOccurrences(t *testing.T) {
	Convey("Given a round's worth of language labels", t, func() {
		langs := []lang.Lang{lang.Python3, lang.Python3, lang.CSharp, lang.Python3, lang.Rust}

		Convey("When counting", func() {
			occ := lang.Count(langs)

			Convey("Then each language tallies its submissions", func() {
				So(occ[lang.Python3], ShouldEqual, 3)
				So(occ[lang.CSharp], ShouldEqual, 1)
				So(occ[lang.Rust], ShouldEqual, 1)
				So(occ.Total(), ShouldEqual, 5)
			})
		})
	})
}

func TestUsageStats(t *testing.T) {
	Convey("Given usage stats over several rounds", t, func() {
		stats := lang.NewUsageStats()
		rounds := []lang.Occurrences{
			{lang.Python3: 3, lang.CSharp: 1},
			{lang.Python3: 1, lang.Rust: 2},
			{lang.CSharp: 2},
		}

		Convey("When appending each round", func() {
			for i, occ := range rounds {
				stats.Append(i+1, occ)
			}

			Convey("Then the cumulative total equals the replayed history sums", func() {
				replayed := make(lang.Occurrences)
				for _, entry := range stats.History {
					for l, n := range entry.Langs {
						replayed[l] += n
					}
				}
				So(stats.Total, ShouldResemble, replayed)
				So(stats.Total[lang.Python3], ShouldEqual, 4)
				So(stats.Total[lang.CSharp], ShouldEqual, 3)
				So(stats.Total[lang.Rust], ShouldEqual, 2)
			})

			Convey("And Last returns the most recent round", func() {
				last, ok := stats.Last()
				So(ok, ShouldBeTrue)
				So(last.RoundNumber, ShouldEqual, 3)
				So(last.Langs[lang.CSharp], ShouldEqual, 2)
			})
		})

		Convey("When no round has been recorded", func() {
			fresh := lang.NewUsageStats()

			Convey("Then Last reports absence", func() {
				_, ok := fresh.Last()
				So(ok, ShouldBeFalse)
			})
		})
	})
}
