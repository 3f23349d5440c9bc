package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/textris/constants"
	"github.com/lixenwraith/textris/core"
	"github.com/lixenwraith/textris/engine"
)

// View is the read-only state drawn each frame; *engine.Play satisfies it
type View interface {
	Field() *engine.Field
	Elapsed() core.Elapsed
	Score() uint64
	NextPreview() core.Block
}

// Screen draws the game onto a tcell screen
type Screen struct {
	screen     tcell.Screen
	finiOnce   sync.Once
	frameStyle tcell.Style
	textStyle  tcell.Style
}

// Open creates and initializes the terminal screen with the cursor hidden
// Callers must Fini it on every exit path
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreen(s), nil
}

// NewScreen wraps an already initialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	s.HideCursor()
	return &Screen{
		screen:     s,
		frameStyle: tcell.StyleDefault.Foreground(RgbFrame),
		textStyle:  tcell.StyleDefault,
	}
}

// Terminal exposes the underlying screen as an event source
func (s *Screen) Terminal() tcell.Screen { return s.screen }

// Fini restores the terminal, including the cursor; repeated calls are no-ops
func (s *Screen) Fini() {
	s.finiOnce.Do(s.screen.Fini)
}

// Sync redraws everything, used after a resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) putString(x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// RenderTitle clears the screen and shows the first n runes of the title
func (s *Screen) RenderTitle(n int) {
	title := []rune(constants.Title)
	n = min(max(n, 0), len(title))
	s.screen.Clear()
	s.putString(0, 0, string(title[:n]), s.textStyle)
	s.screen.Show()
}

// TitleLength is the number of steps RenderTitle animates through
func TitleLength() int {
	return len([]rune(constants.Title))
}

// RenderHeader clears the screen and draws the static title
func (s *Screen) RenderHeader() {
	s.screen.Clear()
	s.putString(0, 0, constants.Title, s.textStyle)
	s.screen.Show()
}

// Render draws the field, its frame and the side panel
func (s *Screen) Render(v View) {
	field := v.Field()
	left := constants.FieldX
	right := left + 1 + field.Width()*constants.CellWidth
	empty := tcell.StyleDefault.Background(RgbFieldBackground)

	for y, line := range field.Lines() {
		sy := constants.FieldY + y
		s.screen.SetContent(left, sy, constants.BorderGlyph, nil, s.frameStyle)
		for x, cell := range line {
			sx := left + 1 + x*constants.CellWidth
			if cell.Filled {
				s.screen.SetContent(sx, sy, cell.Block.Glyph, nil, BlockStyle(cell.Block))
			} else {
				s.screen.SetContent(sx, sy, ' ', nil, empty)
			}
			s.screen.SetContent(sx+1, sy, ' ', nil, empty)
		}
		s.screen.SetContent(right, sy, constants.BorderGlyph, nil, s.frameStyle)
	}

	floorY := constants.FieldY + field.Height()
	for x := left; x <= right; x++ {
		s.screen.SetContent(x, floorY, constants.FloorGlyph, nil, s.frameStyle)
	}

	s.renderSidePanel(v, right+constants.SidePanelGap)
	s.screen.Show()
}

// PanelX returns the screen column of the side panel for a field width
func PanelX(fieldWidth int) int {
	return constants.FieldX + 1 + fieldWidth*constants.CellWidth + constants.SidePanelGap
}

func (s *Screen) renderSidePanel(v View, x int) {
	y := constants.FieldY
	s.clearLine(x, y+2, 20)
	s.clearLine(x, y+3, 20)

	s.putString(x, y, "?: Help", s.textStyle)
	s.putString(x, y+2, "Time:  "+v.Elapsed().String(), s.textStyle)
	s.putString(x, y+3, fmt.Sprintf("Score: %d", v.Score()), s.textStyle)

	next := v.NextPreview()
	s.putString(x, y+5, "Next:", s.textStyle)
	s.screen.SetContent(x+7, y+5, next.Glyph, nil, tcell.StyleDefault.Foreground(TermColor(next.Color)))
}

func (s *Screen) clearLine(x, y, width int) {
	for i := range width {
		s.screen.SetContent(x+i, y, ' ', nil, s.textStyle)
	}
}
