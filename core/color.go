package core

// Color is a display color name, decoupled from any terminal library
// The render package owns the mapping to real terminal colors
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorLightRed
	ColorBlue
	ColorLightBlue
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorCount // Sentinel for iteration
)

func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorLightRed:
		return "light-red"
	case ColorBlue:
		return "blue"
	case ColorLightBlue:
		return "light-blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorGreen:
		return "green"
	default:
		return "unknown"
	}
}
