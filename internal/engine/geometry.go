package engine

// Point is a board coordinate. X is the column, Y the row; row 0 is
// the top of the playfield and rows grow downward. Y may be negative
// while a piece is still spawning above the visible board.
type Point struct {
	X, Y int
}

// OccupiedCells maps an anchor position and an occupancy matrix to the
// absolute board cells the matrix covers. Callers treat the result as
// a set; ordering carries no meaning.
func OccupiedCells(anchor Point, matrix [][]int) []Point {
	var cells []Point
	for row := range matrix {
		for col := range matrix[row] {
			if matrix[row][col] == 0 {
				continue
			}
			cells = append(cells, Point{X: anchor.X + col, Y: anchor.Y + row})
		}
	}
	return cells
}
