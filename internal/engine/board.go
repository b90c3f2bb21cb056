package engine

const (
	// GridWidth is the number of playable columns.
	GridWidth = 10
	// GridHeight is the number of playable rows.
	GridHeight = 20
)

// Cell is a single board cell: empty, or the color tag of the piece
// permanently merged there.
type Cell string

// Empty is the zero cell value.
const Empty Cell = ""

// Board is the playfield. It is a plain value: copying a Board copies
// every cell, which is what keeps states immutable as they flow
// through the reducer. The dimensions never change.
type Board [GridHeight][GridWidth]Cell

// Filled reports whether the given cell holds a merged piece. Cells
// outside the grid are treated as empty; boundary checks belong to the
// collision predicates, not the board.
func (b Board) Filled(p Point) bool {
	if p.Y < 0 || p.Y >= GridHeight || p.X < 0 || p.X >= GridWidth {
		return false
	}
	return b[p.Y][p.X] != Empty
}

// Merge writes color into every listed cell that lies inside the grid
// and returns the resulting board. Cells above row 0 are dropped: they
// never entered the playfield.
func (b Board) Merge(cells []Point, color Cell) Board {
	for _, c := range cells {
		if c.Y < 0 || c.Y >= GridHeight || c.X < 0 || c.X >= GridWidth {
			continue
		}
		b[c.Y][c.X] = color
	}
	return b
}

// fullRow reports whether every cell in the row is occupied.
func (b Board) fullRow(row int) bool {
	for col := 0; col < GridWidth; col++ {
		if b[row][col] == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the indexes of all completely filled rows, in
// ascending order.
func (b Board) FullRows() []int {
	var rows []int
	for row := 0; row < GridHeight; row++ {
		if b.fullRow(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearFull removes every full row in a single pass, preserving the
// relative order of the surviving rows, and prepends empty rows at the
// top to restore the row count. It returns the compacted board and the
// number of rows removed.
func (b Board) ClearFull() (Board, int) {
	var out Board
	cleared := 0
	dst := GridHeight - 1
	for row := GridHeight - 1; row >= 0; row-- {
		if b.fullRow(row) {
			cleared++
			continue
		}
		out[dst] = b[row]
		dst--
	}
	return out, cleared
}

// CountFilled returns the number of occupied cells on the board.
func (b Board) CountFilled() int {
	n := 0
	for row := 0; row < GridHeight; row++ {
		for col := 0; col < GridWidth; col++ {
			if b[row][col] != Empty {
				n++
			}
		}
	}
	return n
}
