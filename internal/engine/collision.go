package engine

// Collision predicates. Each one inspects a hypothetical placement and
// never touches the board, so the reducer can probe candidate moves
// freely before committing to any of them.

// hitsFloor reports whether any cell sits on or below the bottom edge.
func hitsFloor(cells []Point) bool {
	for _, c := range cells {
		if c.Y >= GridHeight {
			return true
		}
	}
	return false
}

// hitsWall reports whether any cell lies outside the side boundaries.
// The right edge is tested in board columns, not pixels; pixel math is
// a rendering concern.
func hitsWall(cells []Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= GridWidth {
			return true
		}
	}
	return false
}

// hitsStack reports whether any cell overlaps a merged cell. Cells
// above row 0 are exempt: they have not entered the playfield yet.
func hitsStack(b Board, cells []Point) bool {
	for _, c := range cells {
		if c.Y < 0 {
			continue
		}
		if b.Filled(c) {
			return true
		}
	}
	return false
}

// atCeiling reports whether a resting piece still pokes above row 0,
// which ends the game. The reducer calls this with the piece's
// pre-tick cells: the end-of-game test always runs against the
// position the piece actually came to rest in.
func atCeiling(cells []Point) bool {
	for _, c := range cells {
		if c.Y < 0 {
			return true
		}
	}
	return false
}
