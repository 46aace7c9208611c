package game

import "errors"

// Sentinel kinds for lifecycle errors.
var (
	// ErrInvalidTransition means an operation arrived while the round
	// state machine was in the wrong state for it.
	ErrInvalidTransition = errors.New("invalid round transition")
	// ErrAlreadyFinished means the set was finished twice.
	ErrAlreadyFinished = errors.New("set is already finished")
	// ErrRoundNotOpen means results or rankings were requested before any
	// round was started.
	ErrRoundNotOpen = errors.New("no open round")
)
