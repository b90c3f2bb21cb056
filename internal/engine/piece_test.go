package engine_test

import (
	"testing"

	"github.com/isaacjstriker/blockfall/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestCatalogShapes(t *testing.T) {
	for k := engine.Kind(0); k < engine.PieceCount; k++ {
		states := k.RotationStates()
		assert.Greater(t, states, 0, "kind %s", k)

		p := engine.Piece{Kind: k}
		size := len(p.Matrix())

		// Every rotation state of a kind is square and shares the same
		// dimensions, and a tetromino always occupies four cells.
		for rot := 0; rot < states; rot++ {
			p.Rotation = rot
			m := p.Matrix()
			assert.Len(t, m, size, "kind %s rotation %d", k, rot)
			filled := 0
			for _, row := range m {
				assert.Len(t, row, size, "kind %s rotation %d", k, rot)
				for _, cell := range row {
					if cell != 0 {
						filled++
					}
				}
			}
			assert.Equal(t, 4, filled, "kind %s rotation %d", k, rot)
		}
	}
}

func TestCatalogColors(t *testing.T) {
	want := map[string]engine.Cell{
		"I": "cyan", "O": "yellow", "T": "purple", "S": "green",
		"Z": "red", "J": "blue", "L": "orange",
	}
	for k := engine.Kind(0); k < engine.PieceCount; k++ {
		p := engine.Piece{Kind: k}
		assert.Equal(t, want[k.String()], p.Color())
	}
}

func TestOccupiedCells(t *testing.T) {
	matrix := [][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	}
	cells := engine.OccupiedCells(engine.Point{X: 4, Y: -1}, matrix)
	assert.ElementsMatch(t, []engine.Point{
		{X: 5, Y: -1},
		{X: 4, Y: 0},
		{X: 5, Y: 0},
		{X: 6, Y: 0},
	}, cells)
}

func TestPieceCellsDeriveFromCatalog(t *testing.T) {
	p := engine.Piece{Kind: engine.KindO, X: 3, Y: -2}
	assert.ElementsMatch(t, []engine.Point{
		{X: 3, Y: -2},
		{X: 4, Y: -2},
		{X: 3, Y: -1},
		{X: 4, Y: -1},
	}, p.Cells())
}
