package input

import (
	"fmt"

	"github.com/lixenwraith/textris/core"
)

// Kind discriminates player commands
type Kind uint8

const (
	KindNone Kind = iota
	KindMove
	KindRotate
	KindSelect // Enter, confirms a modal choice
	KindHelp   // Opens the help modal
	KindQuit   // Ends the outer loop
	KindRedraw // Terminal resize
)

// Command is a decoded key press
// Dir is set for KindMove, Rot for KindRotate
type Command struct {
	Kind Kind
	Dir  core.Direction
	Rot  core.Rotation
}

var (
	CmdSelect = Command{Kind: KindSelect}
	CmdHelp   = Command{Kind: KindHelp}
	CmdQuit   = Command{Kind: KindQuit}
	CmdRedraw = Command{Kind: KindRedraw}
)

// Move returns a slide command
func Move(d core.Direction) Command {
	return Command{Kind: KindMove, Dir: d}
}

// Turn returns a rotate command
func Turn(r core.Rotation) Command {
	return Command{Kind: KindRotate, Rot: r}
}

func (c Command) String() string {
	switch c.Kind {
	case KindMove:
		return fmt.Sprintf("Move(%s)", c.Dir)
	case KindRotate:
		return fmt.Sprintf("Rotate(%s)", c.Rot)
	case KindSelect:
		return "Select"
	case KindHelp:
		return "Help"
	case KindQuit:
		return "Quit"
	case KindRedraw:
		return "Redraw"
	default:
		return "None"
	}
}
