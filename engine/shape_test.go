package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/textris/core"
)

func TestShapeCoordsDistinct(t *testing.T) {
	for _, s := range Shapes() {
		for _, d := range core.Directions() {
			coords := s.Coords(core.C(5, 5), d)
			seen := make(map[core.Coord]bool, 4)
			for _, c := range coords {
				seen[c] = true
			}
			assert.Len(t, seen, 4, "shape %s facing %s", s, d)
		}
	}
}

func TestShapeCoordsIRight(t *testing.T) {
	got := ShapeI.Coords(core.C(0, 0), core.Right)
	assert.ElementsMatch(t, []core.Coord{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, got[:])
}

func TestShapeCoordsTable(t *testing.T) {
	tests := []struct {
		shape  Shape
		facing core.Direction
		want   ShapeCoords
	}{
		{ShapeJ, core.Up, ShapeCoords{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: -1, Y: 2}}},
		{ShapeL, core.Left, ShapeCoords{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}},
		{ShapeT, core.Down, ShapeCoords{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		{ShapeS, core.Right, ShapeCoords{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
		{ShapeZ, core.Left, ShapeCoords{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 2}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.Coords(core.Coord{}, tt.facing), "%s %s", tt.shape, tt.facing)
	}
}

func TestShapeOSymmetric(t *testing.T) {
	up := ShapeO.Coords(core.C(3, 1), core.Up)
	for _, d := range core.Directions() {
		assert.Equal(t, up, ShapeO.Coords(core.C(3, 1), d))
	}
}

func TestShapeOppositeFacingsShared(t *testing.T) {
	for _, s := range []Shape{ShapeI, ShapeS, ShapeZ} {
		assert.Equal(t, s.Coords(core.Coord{}, core.Up), s.Coords(core.Coord{}, core.Down), "%s", s)
		assert.Equal(t, s.Coords(core.Coord{}, core.Right), s.Coords(core.Coord{}, core.Left), "%s", s)
	}
}

func TestShapeDefaultBlock(t *testing.T) {
	for _, s := range Shapes() {
		b := s.DefaultBlock()
		assert.Equal(t, []rune(s.String())[0], b.Glyph)
		assert.NotEqual(t, core.ColorDefault, b.Color)
	}
	assert.Equal(t, core.ColorRed, ShapeI.DefaultBlock().Color)
	assert.Equal(t, core.ColorLightBlue, ShapeT.DefaultBlock().Color)
}
