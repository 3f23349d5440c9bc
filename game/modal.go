package game

import (
	"context"
	"fmt"

	"github.com/lixenwraith/textris/constants"
	"github.com/lixenwraith/textris/core"
	"github.com/lixenwraith/textris/engine"
	"github.com/lixenwraith/textris/input"
	"github.com/lixenwraith/textris/render"
)

// modal pairs the drawn dialog with the actions its buttons return
type modal struct {
	view    render.Modal
	actions []Action
}

func newModal(title string, content []string, actions ...Action) modal {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.String()
	}
	return modal{
		view:    render.Modal{Title: title, Content: content, Actions: labels},
		actions: actions,
	}
}

func helpModal(keys *input.KeyMap) modal {
	entries := []struct {
		cmd  input.Command
		desc string
	}{
		{input.Move(core.Left), "Move left"},
		{input.Move(core.Right), "Move right"},
		{input.Move(core.Down), "Speed up"},
		{input.Turn(core.AntiClockwise), "Rotate anticlockwise"},
		{input.Turn(core.Clockwise), "Rotate clockwise"},
		{input.CmdQuit, "Quit"},
	}

	content := make([]string, 0, len(entries))
	for _, e := range entries {
		content = append(content, fmt.Sprintf("%s - %s", keys.BoundKey(e.cmd), e.desc))
	}
	return newModal("HELP", content, ActionOk, ActionReset, ActionQuit)
}

func gameOverModal(p *engine.Play) modal {
	return newModal("GAME OVER", []string{
		"Time:  " + p.Elapsed().String(),
		fmt.Sprintf("Score: %d", p.Score()),
	}, ActionRetry, ActionQuit)
}

func errorModal(err error) modal {
	return newModal("ERROR", []string{
		"Sorry, unexpected error occurred.",
		"details:",
		truncate(err.Error(), constants.ModalWidth-4),
	}, ActionOk)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}

// showModal blocks until an action is chosen
// Left and Right move the selection, Select confirms, Quit picks ActionQuit when offered
func (g *Game) showModal(ctx context.Context, m modal) (Action, error) {
	selected := 0
	g.screen.RenderModal(m.view, selected)
	defer g.screen.ClearModal(m.view)

	for {
		cmd, err := g.inputs.Recv(ctx)
		if err != nil {
			return ActionQuit, err
		}

		switch cmd.Kind {
		case input.KindMove:
			switch cmd.Dir {
			case core.Left:
				selected = max(selected-1, 0)
			case core.Right:
				selected = min(selected+1, len(m.actions)-1)
			}
		case input.KindSelect:
			return m.actions[selected], nil
		case input.KindQuit:
			for _, a := range m.actions {
				if a == ActionQuit {
					return ActionQuit, nil
				}
			}
		case input.KindRedraw:
			g.screen.Sync()
		}
		g.screen.RenderModal(m.view, selected)
	}
}
