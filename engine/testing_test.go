package engine

import "github.com/lixenwraith/textris/core"

// seqSource replays a fixed sequence, each value taken modulo n
type seqSource struct {
	vals []int
	i    int
}

func newSeqSource(vals ...int) *seqSource {
	return &seqSource{vals: vals}
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// place swaps the falling piece for pc on a fresh field of the given size
func place(p *Play, width, height int, pc Piece) {
	p.field = NewField(width, height)
	p.settled = false
	p.pending = nil
	p.over = false
	p.current = pc
	coords := pc.Coords()
	p.field.RenderBlocks(p.block(pc.Shape), coords[:])
}

func fill(f *Field, coords ...core.Coord) {
	f.RenderBlocks(core.NewBlock('#', core.ColorBlack), coords)
}

func row(y int, xs ...int) []core.Coord {
	coords := make([]core.Coord, 0, len(xs))
	for _, x := range xs {
		coords = append(coords, core.C(x, y))
	}
	return coords
}
