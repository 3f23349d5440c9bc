package constants

// Screen Layout Constants
const (
	// Title is drawn on the first row
	Title = "- T E X T R I S -"

	// FieldX and FieldY are the screen origin of the left field border
	FieldX = 0
	FieldY = 2

	// CellWidth is the number of screen columns a field cell occupies
	CellWidth = 2

	// SidePanelGap separates the right field border from the side panel
	SidePanelGap = 2

	// ModalX and ModalY are the top-left corner of modal dialogs
	ModalX = 2
	ModalY = 4

	// ModalWidth is the outer width of modal dialogs including borders
	ModalWidth = 39
)

// Glyphs
const (
	// MarkedGlyph replaces the cells of completed rows until they are removed
	MarkedGlyph = '='

	// BorderGlyph frames the field on both sides
	BorderGlyph = '|'

	// FloorGlyph draws the bottom edge
	FloorGlyph = '-'
)
