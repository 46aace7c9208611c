package lang

// Occurrences counts how many submissions used each language.
type Occurrences map[Lang]int

// Count tallies one occurrence per entry in langs.
func Count(langs []Lang) Occurrences {
	occ := make(Occurrences)
	for _, l := range langs {
		occ[l]++
	}
	return occ
}

// Total returns the number of submissions counted in occ.
func (o Occurrences) Total() int {
	total := 0
	for _, n := range o {
		total += n
	}
	return total
}

// Clone returns an independent copy of occ.
func (o Occurrences) Clone() Occurrences {
	out := make(Occurrences, len(o))
	for l, n := range o {
		out[l] = n
	}
	return out
}

// RoundUsage records the language occurrences of one finished round.
type RoundUsage struct {
	RoundNumber int
	Langs       Occurrences
}

// UsageStats accumulates language usage across rounds. History is append-only
// and Total always equals the sum of every recorded round.
type UsageStats struct {
	History []RoundUsage
	Total   Occurrences
}

// NewUsageStats returns empty usage stats.
func NewUsageStats() *UsageStats {
	return &UsageStats{Total: make(Occurrences)}
}

// Append records a finished round's occurrences and folds them into the
// cumulative totals.
func (s *UsageStats) Append(roundNumber int, occ Occurrences) {
	s.History = append(s.History, RoundUsage{RoundNumber: roundNumber, Langs: occ})
	for l, n := range occ {
		s.Total[l] += n
	}
}

// Last returns the most recent round's usage, or false if no round has been
// recorded yet.
func (s *UsageStats) Last() (RoundUsage, bool) {
	if len(s.History) == 0 {
		return RoundUsage{}, false
	}
	return s.History[len(s.History)-1], true
}
