package modifier

import "errors"

// Sentinel kinds for modifier resolution errors.
var (
	// ErrMissingHistory means a round asked for lastRound auto-balance
	// before any round has been played.
	ErrMissingHistory = errors.New("no round history for lastRound auto-balance")
)
