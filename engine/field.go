package engine

import (
	"iter"
	"slices"

	"github.com/lixenwraith/textris/core"
)

// Cell is one grid slot, Block is meaningful only when Filled
type Cell struct {
	Block  core.Block
	Filled bool
}

// Line is a single field row, index is the X coordinate
type Line []Cell

// Complete reports whether every cell of the row is filled
func (l Line) Complete() bool {
	for _, c := range l {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Empty reports whether no cell of the row is filled
func (l Line) Empty() bool {
	for _, c := range l {
		if c.Filled {
			return false
		}
	}
	return true
}

// Field is a fixed-size, row-major grid of cells
// Writes are unchecked; callers gate them through IsMovable
type Field struct {
	cells  []Line
	width  int
	height int
}

func makeLine(width int) Line {
	return make(Line, width)
}

// NewField creates an empty width x height field
func NewField(width, height int) *Field {
	cells := make([]Line, height)
	for y := range cells {
		cells[y] = makeLine(width)
	}
	return &Field{
		cells:  cells,
		width:  width,
		height: height,
	}
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// InRange reports whether c addresses a cell of the field
func (f *Field) InRange(c core.Coord) bool {
	return 0 <= c.X && c.X < f.width && 0 <= c.Y && c.Y < f.height
}

// At returns the block at c; out-of-range reads are empty
func (f *Field) At(c core.Coord) (core.Block, bool) {
	if !f.InRange(c) {
		return core.Block{}, false
	}
	cell := f.cells[c.Y][c.X]
	return cell.Block, cell.Filled
}

// IsMovable reports whether every coordinate is in range and empty
func (f *Field) IsMovable(coords []core.Coord) bool {
	for _, c := range coords {
		if !f.InRange(c) || f.cells[c.Y][c.X].Filled {
			return false
		}
	}
	return true
}

// IsReached reports whether the top row holds any block
func (f *Field) IsReached() bool {
	return !f.cells[0].Empty()
}

// ClearBlocks empties the given cells
func (f *Field) ClearBlocks(coords []core.Coord) {
	for _, c := range coords {
		f.cells[c.Y][c.X] = Cell{}
	}
}

// RenderBlocks fills the given cells with block
func (f *Field) RenderBlocks(block core.Block, coords []core.Coord) {
	for _, c := range coords {
		f.cells[c.Y][c.X] = Cell{Block: block, Filled: true}
	}
}

// Lines yields each row top to bottom; yielded lines are copies
func (f *Field) Lines() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for y, line := range f.cells {
			if !yield(y, slices.Clone(line)) {
				return
			}
		}
	}
}

// CompletedLines returns the indices of full rows in ascending order
func (f *Field) CompletedLines() []int {
	var rows []int
	for y, line := range f.cells {
		if line.Complete() {
			rows = append(rows, y)
		}
	}
	return rows
}

// DeleteLine removes row y and inserts an empty row at the top,
// rows above y shift down by one
func (f *Field) DeleteLine(y int) {
	copy(f.cells[1:y+1], f.cells[:y])
	f.cells[0] = makeLine(f.width)
}

// DeleteLines removes every listed row in one compaction pass and refills
// the top with empty rows; indices refer to the field before the call
// Returns the number of rows removed, unknown or repeated indices are ignored
func (f *Field) DeleteLines(rows []int) int {
	kept := make([]Line, 0, f.height)
	for y, line := range f.cells {
		if !slices.Contains(rows, y) {
			kept = append(kept, line)
		}
	}

	removed := f.height - len(kept)
	cells := make([]Line, 0, f.height)
	for range removed {
		cells = append(cells, makeLine(f.width))
	}
	f.cells = append(cells, kept...)
	return removed
}
