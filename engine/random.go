package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/textris/core"
)

// Source yields uniform integers in [0, n)
// *rand.Rand from math/rand/v2 satisfies it
type Source interface {
	IntN(n int) int
}

type systemSource struct{}

func (systemSource) IntN(n int) int { return rand.IntN(n) }

// SystemSource returns the entropy-seeded global generator
func SystemSource() Source {
	return systemSource{}
}

// Random draws shapes, facings and spawn columns
type Random struct {
	src    Source
	shapes [ShapeCount]Shape
	dirs   [4]core.Direction
}

// NewRandom wraps src; a nil src falls back to SystemSource
func NewRandom(src Source) *Random {
	if src == nil {
		src = SystemSource()
	}
	return &Random{
		src:    src,
		shapes: Shapes(),
		dirs:   core.Directions(),
	}
}

// Shape picks one of the seven kinds uniformly
func (r *Random) Shape() Shape {
	return r.shapes[r.src.IntN(len(r.shapes))]
}

// Facing picks one of the four directions uniformly
func (r *Random) Facing() core.Direction {
	return r.dirs[r.src.IntN(len(r.dirs))]
}

// SpawnColumn picks a starting pivot column
// Wide fields keep two columns of margin since some facings extend left or right of the pivot
func (r *Random) SpawnColumn(width int) int {
	if width < 5 {
		return r.src.IntN(width)
	}
	return 2 + r.src.IntN(width-4)
}
