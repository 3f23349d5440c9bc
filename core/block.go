package core

// Block is a single placed or falling unit: glyph plus display color
type Block struct {
	Glyph rune
	Color Color
}

// NewBlock creates a block
func NewBlock(glyph rune, color Color) Block {
	return Block{Glyph: glyph, Color: color}
}
