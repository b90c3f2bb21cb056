package engine_test

import (
	"testing"

	"github.com/isaacjstriker/blockfall/internal/engine"
	"github.com/stretchr/testify/assert"
)

func fillRow(b engine.Board, row int, color engine.Cell) engine.Board {
	for col := 0; col < engine.GridWidth; col++ {
		b[row][col] = color
	}
	return b
}

func TestBoardMerge(t *testing.T) {
	var b engine.Board
	cells := []engine.Point{
		{X: 3, Y: 18},
		{X: 4, Y: 18},
		{X: 3, Y: -1}, // above the playfield, dropped
	}
	merged := b.Merge(cells, "yellow")

	assert.Equal(t, engine.Cell("yellow"), merged[18][3])
	assert.Equal(t, engine.Cell("yellow"), merged[18][4])
	assert.Equal(t, 2, merged.CountFilled())
	// the receiver is untouched
	assert.Equal(t, 0, b.CountFilled())
}

func TestBoardFullRows(t *testing.T) {
	var b engine.Board
	b = fillRow(b, 19, "red")
	b = fillRow(b, 10, "blue")
	b[10][4] = engine.Empty

	assert.Equal(t, []int{19}, b.FullRows())
}

func TestClearFullSingleRow(t *testing.T) {
	var b engine.Board
	b = fillRow(b, 19, "red")
	b[17][2] = "green"
	b[18][7] = "blue"

	before := b.CountFilled()
	cleared, n := b.ClearFull()

	assert.Equal(t, 1, n)
	assert.Equal(t, before-engine.GridWidth, cleared.CountFilled())
	// survivors fall by one and keep their relative order
	assert.Equal(t, engine.Cell("green"), cleared[18][2])
	assert.Equal(t, engine.Cell("blue"), cleared[19][7])
	// the replacement row enters at the top
	for col := 0; col < engine.GridWidth; col++ {
		assert.Equal(t, engine.Empty, cleared[0][col])
	}
}

func TestClearFullSimultaneousRows(t *testing.T) {
	var b engine.Board
	b = fillRow(b, 19, "red")
	b = fillRow(b, 17, "cyan")
	b[18][0] = "orange"
	b[16][9] = "purple"

	cleared, n := b.ClearFull()

	assert.Equal(t, 2, n)
	// both full rows go in one pass; the partial rows between and above
	// them compact downward in order
	assert.Equal(t, engine.Cell("orange"), cleared[19][0])
	assert.Equal(t, engine.Cell("purple"), cleared[18][9])
	assert.Equal(t, 2, cleared.CountFilled())
}

func TestClearFullNoRows(t *testing.T) {
	var b engine.Board
	b[19][0] = "red"

	cleared, n := b.ClearFull()
	assert.Equal(t, 0, n)
	assert.Equal(t, b, cleared)
}

func TestFilledOutsideGrid(t *testing.T) {
	var b engine.Board
	assert.False(t, b.Filled(engine.Point{X: -1, Y: 5}))
	assert.False(t, b.Filled(engine.Point{X: 3, Y: -2}))
	assert.False(t, b.Filled(engine.Point{X: 3, Y: engine.GridHeight}))
}
