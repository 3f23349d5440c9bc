package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/textris/core"
)

// Layout selects one of the built-in key tables
type Layout uint8

const (
	LayoutNormal Layout = iota
	LayoutVim
)

// ParseLayout resolves a layout name, case-insensitive
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return LayoutNormal, nil
	case "vim":
		return LayoutVim, nil
	default:
		return LayoutNormal, fmt.Errorf("unknown key layout %q (want vim or normal)", name)
	}
}

func (l Layout) String() string {
	if l == LayoutVim {
		return "vim"
	}
	return "normal"
}

// KeyEntry binds one key to a command; Rune is used when Key is tcell.KeyRune
type KeyEntry struct {
	Key     tcell.Key
	Rune    rune
	Command Command
}

func special(k tcell.Key, cmd Command) KeyEntry { return KeyEntry{Key: k, Command: cmd} }
func char(r rune, cmd Command) KeyEntry         { return KeyEntry{Key: tcell.KeyRune, Rune: r, Command: cmd} }

// systemKeys are bound in every layout
var systemKeys = []KeyEntry{
	special(tcell.KeyCtrlC, CmdQuit),
	special(tcell.KeyEscape, CmdQuit),
	special(tcell.KeyEnter, CmdSelect),
	char('?', CmdHelp),
}

var layoutKeys = map[Layout][]KeyEntry{
	LayoutNormal: {
		special(tcell.KeyLeft, Move(core.Left)),
		special(tcell.KeyRight, Move(core.Right)),
		special(tcell.KeyDown, Move(core.Down)),
		char('z', Turn(core.AntiClockwise)),
		char('x', Turn(core.Clockwise)),
		special(tcell.KeyUp, Turn(core.Clockwise)),
		char('q', CmdQuit),
	},
	LayoutVim: {
		char('h', Move(core.Left)),
		char('l', Move(core.Right)),
		char('j', Move(core.Down)),
		char('d', Turn(core.AntiClockwise)),
		char('f', Turn(core.Clockwise)),
		char('q', CmdQuit),
		special(tcell.KeyLeft, Move(core.Left)),
		special(tcell.KeyRight, Move(core.Right)),
	},
}

// KeyMap decodes terminal events into commands for one layout
type KeyMap struct {
	layout  Layout
	entries []KeyEntry
	keys    map[tcell.Key]Command
	runes   map[rune]Command
}

// NewKeyMap builds the table for layout; the first binding of a key wins
func NewKeyMap(layout Layout) *KeyMap {
	entries := append(append([]KeyEntry{}, layoutKeys[layout]...), systemKeys...)
	km := &KeyMap{
		layout:  layout,
		entries: entries,
		keys:    make(map[tcell.Key]Command),
		runes:   make(map[rune]Command),
	}
	for _, e := range entries {
		if e.Key == tcell.KeyRune {
			if _, ok := km.runes[e.Rune]; !ok {
				km.runes[e.Rune] = e.Command
			}
			continue
		}
		if _, ok := km.keys[e.Key]; !ok {
			km.keys[e.Key] = e.Command
		}
	}
	return km
}

func (km *KeyMap) Layout() Layout { return km.layout }

// Command decodes ev; false for events with no binding
func (km *KeyMap) Command(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			cmd, ok := km.runes[ev.Rune()]
			return cmd, ok
		}
		cmd, ok := km.keys[ev.Key()]
		return cmd, ok
	case *tcell.EventResize:
		return CmdRedraw, true
	}
	return Command{}, false
}

// BoundKey returns the display name of the first key bound to cmd, empty if none
func (km *KeyMap) BoundKey(cmd Command) string {
	for _, e := range km.entries {
		if e.Command == cmd {
			return keyName(e)
		}
	}
	return ""
}

func keyName(e KeyEntry) string {
	switch e.Key {
	case tcell.KeyRune:
		return string(e.Rune)
	case tcell.KeyLeft:
		return "←"
	case tcell.KeyRight:
		return "→"
	case tcell.KeyDown:
		return "↓"
	case tcell.KeyUp:
		return "↑"
	}
	if name, ok := tcell.KeyNames[e.Key]; ok {
		return name
	}
	return ""
}
