package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/textris/constants"
	"github.com/lixenwraith/textris/core"
)

// Piece is the falling tetromino: kind, facing and pivot cell
type Piece struct {
	Shape  Shape
	Facing core.Direction
	Pivot  core.Coord
}

// Coords returns the cells the piece covers
func (p Piece) Coords() ShapeCoords {
	return p.Shape.Coords(p.Pivot, p.Facing)
}

// markedBlock overwrites completed rows while they wait for removal
var markedBlock = core.NewBlock(constants.MarkedGlyph, core.ColorWhite)

// Play is one game attempt: the field, the falling piece and the counters
// It is owned by a single goroutine and never blocks
type Play struct {
	random *Random
	blocks *intmap.Map[Shape, core.Block]
	field  *Field

	current Piece
	next    Shape

	// settled skips one gravity step right after a piece locks
	settled bool
	// pending holds completed row indices, removed on the next Update
	pending []int
	over    bool

	elapsed core.Elapsed
	score   uint64
}

// NewPlay creates a session on an empty width x height field and spawns the first piece
func NewPlay(width, height int, src Source) *Play {
	p := &Play{
		random: NewRandom(src),
		blocks: defaultBlockMap(),
		field:  NewField(width, height),
	}
	p.next = p.random.Shape()
	if !p.dropNextShape() {
		p.over = true
	}
	return p
}

func defaultBlockMap() *intmap.Map[Shape, core.Block] {
	m := intmap.New[Shape, core.Block](ShapeCount)
	for _, s := range Shapes() {
		m.Put(s, s.DefaultBlock())
	}
	return m
}

func (p *Play) block(s Shape) core.Block {
	if b, ok := p.blocks.Get(s); ok {
		return b
	}
	return s.DefaultBlock()
}

func (p *Play) Field() *Field           { return p.field }
func (p *Play) Elapsed() core.Elapsed   { return p.elapsed }
func (p *Play) Score() uint64           { return p.score }
func (p *Play) Current() Piece          { return p.current }
func (p *Play) Over() bool              { return p.over }
func (p *Play) NextPreview() core.Block { return p.block(p.next) }
func (p *Play) Pending() []int          { return append([]int(nil), p.pending...) }

// Tick advances elapsed time by one second
func (p *Play) Tick() {
	p.elapsed.Add(1)
}

// Update runs one gravity step
// Returns ErrGameOver when the piece settles touching the top row, and on every call after that
func (p *Play) Update() error {
	if p.over {
		return ErrGameOver
	}

	if p.pending != nil {
		p.score += uint64(p.field.DeleteLines(p.pending))
		p.pending = nil
		if !p.dropNextShape() {
			return p.gameOver()
		}
	}

	if p.settled {
		p.settled = false
		return nil
	}

	if p.move(core.Down) {
		return nil
	}

	if p.field.IsReached() {
		return p.gameOver()
	}

	p.settled = true
	if rows := p.field.CompletedLines(); len(rows) > 0 {
		p.markLines(rows)
		p.pending = rows
		return nil
	}

	if !p.dropNextShape() {
		return p.gameOver()
	}
	return nil
}

// Slide moves the piece one cell; Up and blocked moves are ignored
func (p *Play) Slide(dir core.Direction) {
	if dir == core.Up || !p.controllable() {
		return
	}
	p.move(dir)
}

// Rotate turns the piece about its pivot; blocked turns are ignored
func (p *Play) Rotate(rot core.Rotation) {
	if !p.controllable() {
		return
	}
	current := p.current.Coords()
	p.field.ClearBlocks(current[:])

	turned := p.current
	turned.Facing = rot.Rotate(turned.Facing)
	p.commit(current, turned)
}

func (p *Play) controllable() bool {
	return !p.over && p.pending == nil
}

func (p *Play) move(dir core.Direction) bool {
	current := p.current.Coords()
	p.field.ClearBlocks(current[:])

	moved := p.current
	moved.Pivot = moved.Pivot.Add(dir.Offset())
	return p.commit(current, moved)
}

// commit renders candidate if it fits, otherwise restores the previous footprint
// The current footprint must already be cleared
func (p *Play) commit(previous ShapeCoords, candidate Piece) bool {
	block := p.block(p.current.Shape)
	coords := candidate.Coords()

	if p.field.IsMovable(coords[:]) {
		p.field.RenderBlocks(block, coords[:])
		p.current = candidate
		return true
	}
	p.field.RenderBlocks(block, previous[:])
	return false
}

func (p *Play) markLines(rows []int) {
	coords := make([]core.Coord, 0, p.field.Width())
	for _, y := range rows {
		coords = coords[:0]
		for x := range p.field.Width() {
			coords = append(coords, core.C(x, y))
		}
		p.field.RenderBlocks(markedBlock, coords)
	}
}

// dropNextShape promotes the preview to the falling piece
// A blocked spawn column is nudged toward the centre, then away from it, until the piece fits
func (p *Play) dropNextShape() bool {
	shape := p.next
	p.next = p.random.Shape()
	facing := p.random.Facing()
	width := p.field.Width()
	column := p.random.SpawnColumn(width)

	for _, x := range spawnColumns(column, width) {
		candidate := Piece{Shape: shape, Facing: facing, Pivot: core.C(x, 0)}
		coords := candidate.Coords()
		if p.field.IsMovable(coords[:]) {
			p.field.RenderBlocks(p.block(shape), coords[:])
			p.current = candidate
			return true
		}
	}

	p.current = Piece{Shape: shape, Facing: facing, Pivot: core.C(column, 0)}
	return false
}

// spawnColumns orders candidate pivot columns: start, toward the centre up to
// the far edge, then the near side moving away from start
// Pivots outside [0, width) never fit since every table keeps x offsets in [-1, 2]
func spawnColumns(start, width int) []int {
	step := 1
	if start >= width/2 {
		step = -1
	}

	order := make([]int, 0, width)
	for x := start; x >= 0 && x < width; x += step {
		order = append(order, x)
	}
	for x := start - step; x >= 0 && x < width; x -= step {
		order = append(order, x)
	}
	return order
}

func (p *Play) gameOver() error {
	p.over = true
	return ErrGameOver
}
