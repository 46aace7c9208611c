package replay_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prachya/golfparty/internal/replay"
	. "github.com/smartystreets/goconvey/convey"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

const sampleFixture = `
players:
  - u1
sets:
  - rounds:
      - config:
          fast_bonus: 5
          preset: BuffTheOp
        results:
          - nickname: ana
            userId: u1
            score: "100%"
            duration: "00:01:00"
            language: "Python 3"
            criterion: "42"
          - nickname: ben
            score: "80%"
            duration: "00:02:00"
            language: "C"
            criterion: "55"
        show_set_ranking: true
        publish: true
      - config: {}
        results:
          - nickname: ben
            score: "100%"
            duration: "00:03:00"
            language: "C"
            criterion: "50"
`

func TestLoadFixture(t *testing.T) {
	Convey("Given a scripted event on disk", t, func() {
		path := writeFixture(t, sampleFixture)

		Convey("When loading", func() {
			f, err := replay.LoadFixture(path)

			Convey("Then the script parses in order", func() {
				So(err, ShouldBeNil)
				So(f.Players, ShouldResemble, []string{"u1"})
				So(f.Sets, ShouldHaveLength, 1)
				So(f.Sets[0].Rounds, ShouldHaveLength, 2)

				first := f.Sets[0].Rounds[0]
				So(first.Config.FastBonus, ShouldEqual, 5)
				So(first.Config.Preset, ShouldEqual, "BuffTheOp")
				So(first.ShowSetRanking, ShouldBeTrue)
				So(first.Publish, ShouldBeTrue)
				So(first.Results[0].Duration, ShouldEqual, "00:01:00")
			})

			Convey("Then explicit ids are kept and missing ones are generated", func() {
				So(err, ShouldBeNil)
				So(f.Sets[0].Rounds[0].Results[0].UserID, ShouldEqual, "u1")

				benFirst := f.Sets[0].Rounds[0].Results[1].UserID
				benSecond := f.Sets[0].Rounds[1].Results[0].UserID
				So(benFirst, ShouldNotBeEmpty)
				// Same nickname resolves to the same generated id.
				So(benSecond, ShouldEqual, benFirst)
			})
		})
	})

	Convey("Given broken fixtures", t, func() {
		cases := []struct {
			name    string
			content string
		}{
			{"no sets", "players: [u1]\n"},
			{"round without results", "sets:\n  - rounds:\n      - config: {}\n"},
			{"row without nickname", `
sets:
  - rounds:
      - config: {}
        results:
          - score: "100%"
            duration: "00:01:00"
            language: "C"
`},
			{"not yaml at all", "{{{"},
		}

		for _, c := range cases {
			Convey("Then loading fails for "+c.name, func() {
				_, err := replay.LoadFixture(writeFixture(t, c.content))
				So(err, ShouldNotBeNil)
			})
		}
	})

	Convey("Given a missing file", t, func() {
		_, err := replay.LoadFixture(filepath.Join(t.TempDir(), "nope.yaml"))
		So(err, ShouldNotBeNil)
	})
}
