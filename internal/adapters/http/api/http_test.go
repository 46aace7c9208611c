package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prachya/golfparty/internal/adapters/http/api"
	service "github.com/prachya/golfparty/internal/app"
	"github.com/prachya/golfparty/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newMux(opts ...service.Option) *http.ServeMux {
	svc := service.New(opts...)
	srv := api.NewServer(svc, svc, 100)
	mux := http.NewServeMux()
	srv.Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

const resultsBody = `[
	{"nickname": "ana", "userId": "u1", "score": "100%", "duration": "00:01:00", "language": "Python 3", "criterion": "10"},
	{"nickname": "ben", "userId": "u2", "score": "100%", "duration": "00:02:00", "language": "C", "criterion": "12"}
]`

func TestRoundLifecycleOverHTTP(t *testing.T) {
	Convey("Given the API in front of a fresh service", t, func() {
		mux := newMux()

		Convey("When a round is started", func() {
			rec := do(mux, http.MethodPost, "/rounds", `{"fast_bonus": 5}`)

			Convey("Then it acknowledges with 201", func() {
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(decode(t, rec)["status"], ShouldEqual, "round started")
			})

			Convey("And the view endpoint announces the round", func() {
				view := decode(t, do(mux, http.MethodGet, "/view", ""))
				So(view["type"], ShouldEqual, "round-info")
			})

			Convey("And starting again conflicts", func() {
				again := do(mux, http.MethodPost, "/rounds", `{}`)
				So(again.Code, ShouldEqual, http.StatusConflict)
				So(decode(t, again)["code"], ShouldEqual, "invalid_transition")
			})

			Convey("When results come in", func() {
				res := do(mux, http.MethodPost, "/results", resultsBody)

				Convey("Then the round is scored", func() {
					So(res.Code, ShouldEqual, http.StatusOK)
					view := decode(t, do(mux, http.MethodGet, "/view", ""))
					So(view["type"], ShouldEqual, "round-result")
				})

				Convey("And resubmitting the batch conflicts", func() {
					again := do(mux, http.MethodPost, "/results", resultsBody)
					So(again.Code, ShouldEqual, http.StatusConflict)
					So(decode(t, again)["code"], ShouldEqual, "invalid_transition")
				})

				Convey("And the set ranking renders standings", func() {
					rank := do(mux, http.MethodPost, "/rankings/set", "")
					So(rank.Code, ShouldEqual, http.StatusOK)
					So(decode(t, rank)["type"], ShouldEqual, "set-ranking")
				})

				Convey("And finishing the set renders the overall ranking", func() {
					fin := do(mux, http.MethodPost, "/sets/finish", "")
					So(fin.Code, ShouldEqual, http.StatusOK)
					So(decode(t, fin)["type"], ShouldEqual, "overall-ranking")

					again := do(mux, http.MethodPost, "/sets/finish", "")
					So(again.Code, ShouldEqual, http.StatusConflict)
					So(decode(t, again)["code"], ShouldEqual, "already_finished")
				})
			})
		})

		Convey("When results arrive before any round", func() {
			rec := do(mux, http.MethodPost, "/results", resultsBody)

			Convey("Then the engine rejection maps to 409", func() {
				So(rec.Code, ShouldEqual, http.StatusConflict)
				So(decode(t, rec)["code"], ShouldEqual, "round_not_open")
			})
		})

		Convey("When the first round asks for last-round balancing", func() {
			rec := do(mux, http.MethodPost, "/rounds", `{"auto_balance": "lastRound"}`)

			Convey("Then the missing history maps to 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decode(t, rec)["code"], ShouldEqual, "missing_history")
			})
		})
	})
}

func TestRequestValidation(t *testing.T) {
	Convey("Given the API", t, func() {
		mux := newMux()

		Convey("Then malformed round bodies are rejected", func() {
			So(do(mux, http.MethodPost, "/rounds", `{"fast_bonus": `).Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Then unknown auto-balance modes are rejected", func() {
			rec := do(mux, http.MethodPost, "/rounds", `{"auto_balance": "everySecondRound"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(t, rec)["message"], ShouldContainSubstring, "auto_balance")
		})

		Convey("Then unknown presets are rejected", func() {
			rec := do(mux, http.MethodPost, "/rounds", `{"preset": "ScriptKiddie"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(t, rec)["message"], ShouldContainSubstring, "preset")
		})

		Convey("Then empty result batches are rejected before the engine sees them", func() {
			So(do(mux, http.MethodPost, "/rounds", `{}`).Code, ShouldEqual, http.StatusCreated)
			rec := do(mux, http.MethodPost, "/results", `[]`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)

			Convey("And the round is still open for a valid batch", func() {
				So(do(mux, http.MethodPost, "/results", resultsBody).Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("Then rows without a userId are rejected", func() {
			So(do(mux, http.MethodPost, "/rounds", `{}`).Code, ShouldEqual, http.StatusCreated)
			rec := do(mux, http.MethodPost, "/results", `[{"nickname": "ana", "score": "100%"}]`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(t, rec)["message"], ShouldContainSubstring, "userId")
		})

		Convey("Then oversized batches are rejected", func() {
			svc := service.New()
			srv := api.NewServer(svc, svc, 1)
			small := http.NewServeMux()
			srv.Register(context.Background(), small)

			So(do(small, http.MethodPost, "/rounds", `{}`).Code, ShouldEqual, http.StatusCreated)
			rec := do(small, http.MethodPost, "/results", resultsBody)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(t, rec)["message"], ShouldContainSubstring, "limit")
		})

		Convey("Then command routes only answer POST", func() {
			So(do(mux, http.MethodGet, "/rounds", "").Code, ShouldEqual, http.StatusNotFound)
			So(do(mux, http.MethodGet, "/results", "").Code, ShouldEqual, http.StatusNotFound)
			So(do(mux, http.MethodPost, "/view", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestLiveView(t *testing.T) {
	Convey("Given a round in progress", t, func() {
		mux := newMux(service.WithWelcome("Finals night"))
		So(do(mux, http.MethodPost, "/rounds", `{}`).Code, ShouldEqual, http.StatusCreated)

		Convey("Then the live view lags behind the current one", func() {
			live := decode(t, do(mux, http.MethodGet, "/view/live", ""))
			So(live["type"], ShouldEqual, "text")
			So(live["view"].(map[string]any)["text"], ShouldEqual, "Finals night")

			Convey("When the organizer publishes", func() {
				rec := do(mux, http.MethodPost, "/live", "")
				So(rec.Code, ShouldEqual, http.StatusOK)

				Convey("Then both views agree", func() {
					live := decode(t, do(mux, http.MethodGet, "/view/live", ""))
					So(live["type"], ShouldEqual, "round-info")
				})
			})
		})
	})
}

func TestPlayersAndMessages(t *testing.T) {
	Convey("Given the API", t, func() {
		mux := newMux()

		Convey("When the allow-list is posted", func() {
			rec := do(mux, http.MethodPost, "/players", `{"ids": ["u1"]}`)
			So(rec.Code, ShouldEqual, http.StatusOK)

			Convey("Then submissions outside it are dropped", func() {
				So(do(mux, http.MethodPost, "/rounds", `{}`).Code, ShouldEqual, http.StatusCreated)
				So(do(mux, http.MethodPost, "/results", resultsBody).Code, ShouldEqual, http.StatusOK)

				view := decode(t, do(mux, http.MethodGet, "/view", ""))
				rows := view["view"].(map[string]any)["results"].([]any)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].(map[string]any)["nickname"], ShouldEqual, "ana")
			})
		})

		Convey("Then an empty allow-list body is rejected", func() {
			So(do(mux, http.MethodPost, "/players", `{"ids": []}`).Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When a message is posted", func() {
			rec := do(mux, http.MethodPost, "/message", `{"text": "short break"}`)
			So(rec.Code, ShouldEqual, http.StatusOK)

			Convey("Then the view shows it", func() {
				view := decode(t, do(mux, http.MethodGet, "/view", ""))
				So(view["type"], ShouldEqual, "text")
				So(view["view"].(map[string]any)["text"], ShouldEqual, "short break")
			})
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	Convey("Given the API", t, func() {
		mux := newMux()

		Convey("Then the stats endpoint reports engine state", func() {
			rec := do(mux, http.MethodGet, "/stats", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			stats := decode(t, rec)
			So(stats["setNumber"], ShouldEqual, 1)
			So(stats["roundsPlayed"], ShouldEqual, 0)
		})

		Convey("Then the health endpoint serves the metrics exposition", func() {
			rec := do(mux, http.MethodGet, "/healthz", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})
}
