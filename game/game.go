package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/textris/config"
	"github.com/lixenwraith/textris/constants"
	"github.com/lixenwraith/textris/engine"
	"github.com/lixenwraith/textris/input"
	"github.com/lixenwraith/textris/render"
)

// Sounds receives gameplay sound cues; *audio.SoundManager satisfies it
type Sounds interface {
	PlayClear(lines int)
	PlayGameOver()
}

type noSounds struct{}

func (noSounds) PlayClear(int) {}
func (noSounds) PlayGameOver() {}

// Game runs the title, the frame loop and the modal dialogs on one goroutine
type Game struct {
	cfg    config.Config
	screen *render.Screen
	inputs *input.Inputs
	sounds Sounds
	help   modal

	source        engine.Source // nil uses the system source
	titleInterval time.Duration
	titleHold     time.Duration
}

// New wires a game; sounds may be nil for silent play
func New(cfg config.Config, screen *render.Screen, inputs *input.Inputs, sounds Sounds) *Game {
	if sounds == nil {
		sounds = noSounds{}
	}
	return &Game{
		cfg:           cfg,
		screen:        screen,
		inputs:        inputs,
		sounds:        sounds,
		help:          helpModal(inputs.Keys()),
		titleInterval: constants.TitleInterval,
		titleHold:     constants.TitleHold,
	}
}

// Start shows the title, then plays until the player quits or ctx ends
func (g *Game) Start(ctx context.Context) error {
	if err := g.title(ctx); err != nil {
		return err
	}

	for {
		action, err := g.play(ctx, engine.NewPlay(g.cfg.Width, g.cfg.Height, g.source))
		if err != nil {
			return err
		}
		if action == ActionQuit {
			return nil
		}
	}
}

// StopByError shows err in a modal and waits for it to be dismissed
func (g *Game) StopByError(err error) {
	log.Printf("Stopping on error: %v", err)
	if _, merr := g.showModal(context.Background(), errorModal(err)); merr != nil {
		log.Printf("Error dialog closed: %v", merr)
	}
}

func (g *Game) title(ctx context.Context) error {
	for n := range render.TitleLength() + 1 {
		g.screen.RenderTitle(n)
		if err := sleep(ctx, g.titleInterval); err != nil {
			return err
		}
	}
	return sleep(ctx, g.titleHold)
}

// cadence converts the frame interval into update and tick periods counted in frames
func cadence(frame time.Duration) (update, tick int) {
	tick = max(int(time.Second/frame), 1)
	return max(tick/2, 1), tick
}

// play runs one attempt; each frame applies at most one command, then update, tick and render
func (g *Game) play(ctx context.Context, p *engine.Play) (Action, error) {
	session := uuid.NewString()
	log.Printf("Session %s started (%dx%d, %s keys)", session, p.Field().Width(), p.Field().Height(), g.inputs.Keys().Layout())

	g.screen.RenderHeader()
	updateFrames, tickFrames := cadence(g.cfg.Frame)

	ticker := time.NewTicker(g.cfg.Frame)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		action, done, err := g.handleInput(ctx, p)
		if err != nil {
			log.Printf("Session %s aborted: %v", session, err)
			return ActionQuit, err
		}
		if done {
			log.Printf("Session %s ended by %s (score %d, time %s)", session, action, p.Score(), p.Elapsed())
			return action, nil
		}

		if frame%updateFrames == 0 {
			before := p.Score()
			if err := p.Update(); err != nil {
				if !errors.Is(err, engine.ErrGameOver) {
					return ActionQuit, fmt.Errorf("update: %w", err)
				}
				return g.gameOver(ctx, session, p)
			}
			if cleared := p.Score() - before; cleared > 0 {
				g.sounds.PlayClear(int(cleared))
			}
		}
		if frame%tickFrames == 0 {
			p.Tick()
		}

		g.screen.Render(p)

		select {
		case <-ctx.Done():
			return ActionQuit, ctx.Err()
		case <-ticker.C:
		}
	}
}

// handleInput applies at most one queued command
// done reports that the play should end with action
func (g *Game) handleInput(ctx context.Context, p *engine.Play) (action Action, done bool, err error) {
	cmd, ok, err := g.inputs.TryRecv()
	if err != nil || !ok {
		return ActionOk, false, err
	}

	switch cmd.Kind {
	case input.KindMove:
		p.Slide(cmd.Dir)
	case input.KindRotate:
		p.Rotate(cmd.Rot)
	case input.KindQuit:
		return ActionQuit, true, nil
	case input.KindHelp:
		chosen, err := g.showModal(ctx, g.help)
		if err != nil {
			return ActionQuit, false, err
		}
		return chosen, chosen != ActionOk, nil
	case input.KindRedraw:
		g.screen.Sync()
	}
	return ActionOk, false, nil
}

func (g *Game) gameOver(ctx context.Context, session string, p *engine.Play) (Action, error) {
	log.Printf("Session %s game over (score %d, time %s)", session, p.Score(), p.Elapsed())
	g.sounds.PlayGameOver()
	g.screen.Render(p)
	return g.showModal(ctx, gameOverModal(p))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
