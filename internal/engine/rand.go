package engine

// Linear congruential constants (the classic glibc parameters). The
// generator is deliberately stateless: callers pass a fresh seed for
// every selection, so replaying a seed sequence replays the game.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// PieceIndex maps a caller-supplied seed to an index in [0, max).
// It is a pure function of the seed; two adjacent seeds (seed, seed+1)
// give independent selections for the current and next piece.
func PieceIndex(seed int64, max int) int {
	h := (lcgMultiplier*seed + lcgIncrement) % lcgModulus
	if h < 0 {
		h += lcgModulus
	}
	return int(int64(max) * h / lcgModulus)
}
