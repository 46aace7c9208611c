package model

// ViewType tags the concrete view model behind a View.
type ViewType string

// View types understood by the scoreboard renderer.
const (
	ViewText           ViewType = "text"
	ViewRoundInfo      ViewType = "round-info"
	ViewRoundResult    ViewType = "round-result"
	ViewSetRanking     ViewType = "set-ranking"
	ViewOverallRanking ViewType = "overall-ranking"
)

// View is what the engine asks the renderer to display. The renderer decides
// how; the engine only decides what.
type View interface {
	Type() ViewType
}

// TextView shows a plain informational message.
type TextView struct {
	Text string `json:"text"`
}

// Type implements View.
func (TextView) Type() ViewType { return ViewText }

// RoundInfoView announces a round before results exist: modifiers only.
type RoundInfoView struct {
	Modifiers   []Modifier `json:"modifiers"`
	RoundNumber int        `json:"roundNumber"`
	SetNumber   int        `json:"setNumber"`
}

// Type implements View.
func (RoundInfoView) Type() ViewType { return ViewRoundInfo }

// RoundResultView shows a finished round's full scoring breakdown.
type RoundResultView struct {
	Results     []ProcessedResult `json:"results"`
	Modifiers   []Modifier        `json:"modifiers"`
	RoundNumber int               `json:"roundNumber"`
	SetNumber   int               `json:"setNumber"`
}

// Type implements View.
func (RoundResultView) Type() ViewType { return ViewRoundResult }

// RankingEntry is one row of a ranking view.
type RankingEntry struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// SetRankingView ranks the current set's players by total score.
type SetRankingView struct {
	RoundNumber int            `json:"roundNumber"`
	SetNumber   int            `json:"setNumber"`
	Entries     []RankingEntry `json:"entries"`
}

// Type implements View.
func (SetRankingView) Type() ViewType { return ViewSetRanking }

// OverallRankingEntry is one row of the whole-game ranking, with the
// per-set breakdown.
type OverallRankingEntry struct {
	RankingEntry
	PointsBySet map[int]float64 `json:"pointsBySet"`
}

// OverallRankingView ranks every player seen so far across all sets.
type OverallRankingView struct {
	SetNumber int                   `json:"setNumber"`
	Sets      []int                 `json:"sets"`
	Entries   []OverallRankingEntry `json:"entries"`
}

// Type implements View.
func (OverallRankingView) Type() ViewType { return ViewOverallRanking }
