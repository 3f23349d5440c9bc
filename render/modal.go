package render

import (
	"strings"

	"github.com/lixenwraith/textris/constants"
)

// Modal is a boxed dialog with a row of selectable actions
type Modal struct {
	Title   string
	Content []string
	Actions []string
}

// Height is the number of screen rows the modal occupies
func (m Modal) Height() int {
	return len(m.Content) + 6
}

// ActionRow formats the action labels with the selected one bracketed
func (m Modal) ActionRow(selected int) string {
	var b strings.Builder
	for i, a := range m.Actions {
		if i == selected {
			b.WriteString(" [" + a + "] ")
		} else {
			b.WriteString("  " + a + "  ")
		}
	}
	return b.String()
}

// RenderModal draws m over the field with the given action highlighted
func (s *Screen) RenderModal(m Modal, selected int) {
	w := constants.ModalWidth
	border := strings.Repeat("-", w)
	innerBorder := "|" + strings.Repeat("-", w-2) + "|"
	innerBack := "|" + strings.Repeat(" ", w-2) + "|"
	x, y := constants.ModalX, constants.ModalY

	s.putString(x, y, border, s.frameStyle)
	y++
	s.putString(x, y, innerBack, s.frameStyle)
	s.putString(x+2, y, m.Title, s.textStyle)
	y++
	s.putString(x, y, innerBorder, s.frameStyle)
	y++

	for _, line := range m.Content {
		s.putString(x, y, innerBack, s.frameStyle)
		s.putString(x+2, y, line, s.textStyle)
		y++
	}

	s.putString(x, y, innerBorder, s.frameStyle)
	y++
	s.putString(x, y, innerBack, s.frameStyle)
	s.putString(x+1, y, m.ActionRow(selected), s.textStyle)
	y++
	s.putString(x, y, border, s.frameStyle)

	s.screen.Show()
}

// ClearModal blanks the rows the modal covered
func (s *Screen) ClearModal(m Modal) {
	back := strings.Repeat(" ", constants.ModalWidth)
	for i := range m.Height() {
		s.putString(constants.ModalX, constants.ModalY+i, back, s.textStyle)
	}
	s.screen.Show()
}
