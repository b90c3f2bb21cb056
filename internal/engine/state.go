// Package engine implements the falling-block game core as a pure
// state machine: an immutable State, a tagged Action variant, and a
// Reduce function that folds actions into successive states. Nothing
// in this package does I/O, reads clocks, or keeps hidden state; the
// caller supplies seeds, which makes every game replayable.
package engine

// Spawn anchor for every new piece. Y starts above the visible board
// so pieces drop into view.
const (
	spawnX = 3
	spawnY = -2
)

// State is a complete game snapshot. It is a value type with no
// interior pointers (the board is an array), so every reducer step
// hands back an independent copy and callers may hold old states
// without aliasing new ones.
type State struct {
	Ended     bool
	Score     int
	Highscore int
	Level     int
	Current   Piece
	Next      Piece
	Board     Board
}

// Spawn creates a fresh piece at the spawn anchor, choosing its kind
// from the seed.
func Spawn(seed int64) Piece {
	return Piece{
		Kind: Kind(PieceIndex(seed, PieceCount)),
		X:    spawnX,
		Y:    spawnY,
	}
}

// New bootstraps a playing state. The current piece is drawn from
// seed, the next piece from seed+1, so a test harness replaying the
// same seed gets the same opening.
func New(seed int64) State {
	return State{
		Current: Spawn(seed),
		Next:    Spawn(seed + 1),
	}
}
