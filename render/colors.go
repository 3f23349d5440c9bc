package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/textris/core"
)

// Terminal colors for block identities
var (
	RgbLightRed  = tcell.NewRGBColor(255, 120, 120) // Soft red for L
	RgbLightBlue = tcell.NewRGBColor(100, 150, 255) // Sky blue for T
	RgbMagenta   = tcell.NewRGBColor(220, 80, 220)

	RgbFieldBackground = tcell.ColorBlack
	RgbFrame           = tcell.NewRGBColor(180, 180, 180) // Borders, floor and modal frame
)

var termColors = [core.ColorCount]tcell.Color{
	core.ColorDefault:   tcell.ColorDefault,
	core.ColorBlack:     tcell.ColorBlack,
	core.ColorWhite:     tcell.ColorWhite,
	core.ColorRed:       tcell.ColorRed,
	core.ColorLightRed:  RgbLightRed,
	core.ColorBlue:      tcell.ColorBlue,
	core.ColorLightBlue: RgbLightBlue,
	core.ColorYellow:    tcell.ColorYellow,
	core.ColorMagenta:   RgbMagenta,
	core.ColorGreen:     tcell.ColorGreen,
}

// TermColor maps a block color to its terminal color
func TermColor(c core.Color) tcell.Color {
	if int(c) >= len(termColors) {
		return tcell.ColorDefault
	}
	return termColors[c]
}

// BlockStyle is the style a block is drawn with on the field
func BlockStyle(b core.Block) tcell.Style {
	return tcell.StyleDefault.Foreground(TermColor(b.Color)).Background(RgbFieldBackground)
}
