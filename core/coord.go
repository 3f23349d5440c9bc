package core

import "fmt"

// Coord is a cell address on the field, X grows to the right and Y grows downward
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four grid directions
// Attached to a piece it selects one of four pre-baked orientations
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions returns all directions in clockwise order starting at Up
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}

// Offset returns the unit delta for one step in d
func (d Direction) Offset() Coord {
	switch d {
	case Up:
		return Coord{0, -1}
	case Right:
		return Coord{1, 0}
	case Down:
		return Coord{0, 1}
	default:
		return Coord{-1, 0}
	}
}

// Next returns the clockwise successor
func (d Direction) Next() Direction {
	return (d + 1) % 4
}

// Opposite returns the direction facing away from d
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Rotated returns d turned a quarter in the given rotation
func (d Direction) Rotated(r Rotation) Direction {
	return r.Rotate(d)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Rotation is a quarter turn sense
type Rotation uint8

const (
	Clockwise Rotation = iota
	AntiClockwise
)

// Rotate turns d a quarter in the rotation's sense
func (r Rotation) Rotate(d Direction) Direction {
	next := d.Next()
	if r == AntiClockwise {
		return next.Opposite()
	}
	return next
}

func (r Rotation) String() string {
	if r == AntiClockwise {
		return "AntiClockwise"
	}
	return "Clockwise"
}
