package engine

// Kind identifies one of the seven classical tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// PieceCount is the number of shapes in the catalog.
const PieceCount = 7

func (k Kind) String() string {
	names := [PieceCount]string{"I", "O", "T", "S", "Z", "J", "L"}
	if k < 0 || int(k) >= PieceCount {
		return "?"
	}
	return names[k]
}

// Shape is one catalog entry: an ordered cycle of square occupancy
// matrices plus the color its cells take on the board. All matrices
// for a kind share the same dimensions.
type Shape struct {
	Rotations [][][]int
	Color     Cell
}

// shapes is the static piece catalog, indexed by Kind. It is never
// mutated at runtime; rotation indexes cycle modulo the list length.
var shapes = [PieceCount]Shape{
	KindI: {
		Color: "cyan",
		Rotations: [][][]int{
			{
				{0, 0, 0, 0},
				{1, 1, 1, 1},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			{
				{0, 0, 1, 0},
				{0, 0, 1, 0},
				{0, 0, 1, 0},
				{0, 0, 1, 0},
			},
		},
	},
	KindO: {
		Color: "yellow",
		Rotations: [][][]int{
			{
				{1, 1},
				{1, 1},
			},
		},
	},
	KindT: {
		Color: "purple",
		Rotations: [][][]int{
			{
				{0, 1, 0},
				{1, 1, 1},
				{0, 0, 0},
			},
			{
				{0, 1, 0},
				{0, 1, 1},
				{0, 1, 0},
			},
			{
				{0, 0, 0},
				{1, 1, 1},
				{0, 1, 0},
			},
			{
				{0, 1, 0},
				{1, 1, 0},
				{0, 1, 0},
			},
		},
	},
	KindS: {
		Color: "green",
		Rotations: [][][]int{
			{
				{0, 1, 1},
				{1, 1, 0},
				{0, 0, 0},
			},
			{
				{0, 1, 0},
				{0, 1, 1},
				{0, 0, 1},
			},
		},
	},
	KindZ: {
		Color: "red",
		Rotations: [][][]int{
			{
				{1, 1, 0},
				{0, 1, 1},
				{0, 0, 0},
			},
			{
				{0, 0, 1},
				{0, 1, 1},
				{0, 1, 0},
			},
		},
	},
	KindJ: {
		Color: "blue",
		Rotations: [][][]int{
			{
				{1, 0, 0},
				{1, 1, 1},
				{0, 0, 0},
			},
			{
				{0, 1, 1},
				{0, 1, 0},
				{0, 1, 0},
			},
			{
				{0, 0, 0},
				{1, 1, 1},
				{0, 0, 1},
			},
			{
				{0, 1, 0},
				{0, 1, 0},
				{1, 1, 0},
			},
		},
	},
	KindL: {
		Color: "orange",
		Rotations: [][][]int{
			{
				{0, 0, 1},
				{1, 1, 1},
				{0, 0, 0},
			},
			{
				{0, 1, 0},
				{0, 1, 0},
				{0, 1, 1},
			},
			{
				{0, 0, 0},
				{1, 1, 1},
				{1, 0, 0},
			},
			{
				{1, 1, 0},
				{0, 1, 0},
				{0, 1, 0},
			},
		},
	},
}

// Piece is the falling piece: a catalog kind, its anchor position in
// board coordinates and its rotation index. The occupancy matrix is
// always derived from the catalog, never stored, so it cannot drift
// from the kind.
type Piece struct {
	Kind     Kind
	X, Y     int
	Rotation int
}

// Matrix returns the occupancy matrix for the piece's current rotation.
func (p Piece) Matrix() [][]int {
	rots := shapes[p.Kind].Rotations
	return rots[p.Rotation%len(rots)]
}

// Color returns the board color for the piece's kind.
func (p Piece) Color() Cell {
	return shapes[p.Kind].Color
}

// Cells returns the absolute board cells the piece occupies.
func (p Piece) Cells() []Point {
	return OccupiedCells(Point{X: p.X, Y: p.Y}, p.Matrix())
}

// RotationStates returns the length of the kind's rotation cycle.
func (k Kind) RotationStates() int {
	return len(shapes[k].Rotations)
}
