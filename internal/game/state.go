// Package game provides the main game loop and round state management.
package game

// State represents where the current round stands.
type State int

const (
	// StateNotInitialized is the state before the first round is dealt.
	StateNotInitialized State = iota
	// StatePlaying accepts reveals and flags.
	StatePlaying
	// StateWon means every safe cell was revealed.
	StateWon
	// StateLost means a mine was revealed.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotInitialized:
		return "not_initialized"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the round has ended.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}
