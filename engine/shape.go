package engine

import "github.com/lixenwraith/textris/core"

// Shape is one of the seven tetromino kinds
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of tetromino kinds
const ShapeCount = 7

// ShapeCoords holds the four cells of a piece
type ShapeCoords [4]core.Coord

// Shapes returns every kind in catalog order
func Shapes() [ShapeCount]Shape {
	return [ShapeCount]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
}

func xy(x, y int) core.Coord { return core.Coord{X: x, Y: y} }

// offsets is indexed by shape then facing (Up, Right, Down, Left)
// I, S and Z repeat their tables for opposite facings; O uses one table for all four
var offsets = [ShapeCount][4]ShapeCoords{
	ShapeI: {
		{xy(0, 0), xy(0, 1), xy(0, 2), xy(0, 3)},
		{xy(-1, 0), xy(0, 0), xy(1, 0), xy(2, 0)},
		{xy(0, 0), xy(0, 1), xy(0, 2), xy(0, 3)},
		{xy(-1, 0), xy(0, 0), xy(1, 0), xy(2, 0)},
	},
	ShapeJ: {
		{xy(0, 0), xy(0, 1), xy(0, 2), xy(-1, 2)},
		{xy(0, 0), xy(0, 1), xy(1, 1), xy(2, 1)},
		{xy(0, 0), xy(0, 1), xy(0, 2), xy(1, 0)},
		{xy(-1, 0), xy(0, 0), xy(1, 0), xy(1, 1)},
	},
	ShapeL: {
		{xy(0, 0), xy(0, 1), xy(0, 2), xy(1, 2)},
		{xy(0, 1), xy(0, 0), xy(1, 0), xy(2, 0)},
		{xy(0, 0), xy(1, 0), xy(1, 1), xy(1, 2)},
		{xy(-1, 1), xy(0, 1), xy(1, 1), xy(1, 0)},
	},
	ShapeO: {
		{xy(0, 0), xy(0, 1), xy(1, 0), xy(1, 1)},
		{xy(0, 0), xy(0, 1), xy(1, 0), xy(1, 1)},
		{xy(0, 0), xy(0, 1), xy(1, 0), xy(1, 1)},
		{xy(0, 0), xy(0, 1), xy(1, 0), xy(1, 1)},
	},
	ShapeS: {
		{xy(0, 0), xy(1, 0), xy(0, 1), xy(-1, 1)},
		{xy(0, 0), xy(0, 1), xy(1, 1), xy(1, 2)},
		{xy(0, 0), xy(1, 0), xy(0, 1), xy(-1, 1)},
		{xy(0, 0), xy(0, 1), xy(1, 1), xy(1, 2)},
	},
	ShapeT: {
		{xy(0, 0), xy(0, 1), xy(-1, 1), xy(1, 1)},
		{xy(0, 0), xy(0, 1), xy(1, 1), xy(0, 2)},
		{xy(0, 0), xy(-1, 0), xy(1, 0), xy(0, 1)},
		{xy(0, 0), xy(0, 1), xy(-1, 1), xy(0, 2)},
	},
	ShapeZ: {
		{xy(0, 0), xy(-1, 0), xy(0, 1), xy(1, 1)},
		{xy(0, 0), xy(0, 1), xy(-1, 1), xy(-1, 2)},
		{xy(0, 0), xy(-1, 0), xy(0, 1), xy(1, 1)},
		{xy(0, 0), xy(0, 1), xy(-1, 1), xy(-1, 2)},
	},
}

// Coords returns the four cells the shape covers at pivot with the given facing
func (s Shape) Coords(pivot core.Coord, facing core.Direction) ShapeCoords {
	moves := offsets[s][facing]
	return ShapeCoords{
		pivot.Add(moves[0]),
		pivot.Add(moves[1]),
		pivot.Add(moves[2]),
		pivot.Add(moves[3]),
	}
}

// DefaultBlock returns the shape's display identity
func (s Shape) DefaultBlock() core.Block {
	switch s {
	case ShapeI:
		return core.NewBlock('I', core.ColorRed)
	case ShapeJ:
		return core.NewBlock('J', core.ColorBlue)
	case ShapeL:
		return core.NewBlock('L', core.ColorLightRed)
	case ShapeO:
		return core.NewBlock('O', core.ColorYellow)
	case ShapeS:
		return core.NewBlock('S', core.ColorMagenta)
	case ShapeT:
		return core.NewBlock('T', core.ColorLightBlue)
	default:
		return core.NewBlock('Z', core.ColorGreen)
	}
}

func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return "?"
	}
	return string("IJLOSTZ"[s])
}
