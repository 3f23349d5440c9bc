package game

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/textris/config"
	"github.com/lixenwraith/textris/constants"
	"github.com/lixenwraith/textris/input"
	"github.com/lixenwraith/textris/render"
)

const waitFor = 5 * time.Second

type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

type countingSounds struct {
	clears   atomic.Int64
	lines    atomic.Int64
	gameOver atomic.Int64
}

func (s *countingSounds) PlayClear(lines int) {
	s.clears.Add(1)
	s.lines.Add(int64(lines))
}

func (s *countingSounds) PlayGameOver() { s.gameOver.Add(1) }

type harness struct {
	game   *Game
	sim    tcell.SimulationScreen
	sounds *countingSounds
}

func newHarness(t *testing.T, cfg config.Config) *harness {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(80, 30)

	inputs := input.NewInputs(sim, input.NewKeyMap(cfg.Layout))
	t.Cleanup(func() {
		inputs.Close()
		sim.Fini()
	})

	sounds := &countingSounds{}
	g := New(cfg, render.NewScreen(sim), inputs, sounds)
	g.titleInterval = 0
	g.titleHold = 0
	return &harness{game: g, sim: sim, sounds: sounds}
}

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height = 4, 4
	cfg.Frame = 5 * time.Millisecond
	return cfg
}

func (h *harness) press(r rune) {
	h.sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
}

func (h *harness) key(k tcell.Key) {
	h.sim.InjectKey(k, 0, tcell.ModNone)
}

func (h *harness) row(y int) string {
	w, _ := h.sim.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := h.sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func (h *harness) screenContains(s string) bool {
	_, ht := h.sim.Size()
	for y := range ht {
		if strings.Contains(h.row(y), s) {
			return true
		}
	}
	return false
}

func (h *harness) start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- h.game.Start(ctx) }()
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(waitFor):
		t.Fatal("game did not stop")
		return nil
	}
}

func TestStartQuitKey(t *testing.T) {
	h := newHarness(t, smallConfig())
	h.press('q')

	require.NoError(t, wait(t, h.start(context.Background())))
	assert.True(t, h.screenContains(constants.Title))
}

func TestStartContextCancelled(t *testing.T) {
	h := newHarness(t, smallConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wait(t, h.start(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

type closedSource struct{}

func (closedSource) PollEvent() tcell.Event { return nil }

func TestStartInputClosed(t *testing.T) {
	h := newHarness(t, smallConfig())
	keys := input.NewKeyMap(input.LayoutNormal)
	h.game = New(smallConfig(), render.NewScreen(h.sim), input.NewInputs(closedSource{}, keys), nil)
	h.game.titleInterval, h.game.titleHold = 0, 0

	err := wait(t, h.start(context.Background()))
	assert.True(t, errors.Is(err, input.ErrInputClosed))
}

func TestHelpModalQuit(t *testing.T) {
	h := newHarness(t, smallConfig())
	// Help, then Right twice selects Quit
	h.press('?')
	h.key(tcell.KeyRight)
	h.key(tcell.KeyRight)
	h.key(tcell.KeyEnter)

	require.NoError(t, wait(t, h.start(context.Background())))
}

func TestShowModalSelection(t *testing.T) {
	tests := []struct {
		name string
		keys []tcell.Key
		want Action
	}{
		{"default ok", []tcell.Key{tcell.KeyEnter}, ActionOk},
		{"right once resets", []tcell.Key{tcell.KeyRight, tcell.KeyEnter}, ActionReset},
		{"clamped right", []tcell.Key{tcell.KeyRight, tcell.KeyRight, tcell.KeyRight, tcell.KeyEnter}, ActionQuit},
		{"clamped left", []tcell.Key{tcell.KeyLeft, tcell.KeyRight, tcell.KeyLeft, tcell.KeyLeft, tcell.KeyEnter}, ActionOk},
		{"escape quits", []tcell.Key{tcell.KeyEscape}, ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, smallConfig())
			for _, k := range tt.keys {
				h.key(k)
			}

			got, err := h.game.showModal(context.Background(), h.game.help)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShowModalQuitIgnoredWithoutQuitAction(t *testing.T) {
	h := newHarness(t, smallConfig())
	h.press('q')
	h.key(tcell.KeyEnter)

	got, err := h.game.showModal(context.Background(), errorModal(errors.New("boom")))
	require.NoError(t, err)
	assert.Equal(t, ActionOk, got)
}

func TestHelpModalContent(t *testing.T) {
	tests := []struct {
		layout input.Layout
		want   []string
	}{
		{input.LayoutNormal, []string{"← - Move left", "→ - Move right", "↓ - Speed up", "z - Rotate anticlockwise", "x - Rotate clockwise", "q - Quit"}},
		{input.LayoutVim, []string{"h - Move left", "l - Move right", "j - Speed up", "d - Rotate anticlockwise", "f - Rotate clockwise", "q - Quit"}},
	}

	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			m := helpModal(input.NewKeyMap(tt.layout))
			assert.Equal(t, "HELP", m.view.Title)
			assert.Equal(t, tt.want, m.view.Content)
			assert.Equal(t, []Action{ActionOk, ActionReset, ActionQuit}, m.actions)
			assert.Equal(t, []string{"Ok", "Reset", "Quit"}, m.view.Actions)
		})
	}
}

func TestGameOverShowsModalAndRetries(t *testing.T) {
	h := newHarness(t, smallConfig())
	// Every draw is an O at the right edge; the stack tops out without input
	h.game.source = constSource(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := h.start(ctx)

	require.Eventually(t, func() bool { return h.screenContains("GAME OVER") }, waitFor, 10*time.Millisecond)
	assert.Equal(t, int64(1), h.sounds.gameOver.Load())
	assert.True(t, h.screenContains("[Retry]"))

	// Retry starts a fresh play which tops out again
	h.key(tcell.KeyEnter)
	require.Eventually(t, func() bool { return h.sounds.gameOver.Load() == 2 }, waitFor, 10*time.Millisecond)

	h.key(tcell.KeyRight)
	h.key(tcell.KeyEnter)
	require.NoError(t, wait(t, done))
}

func TestLineClearPlaysSound(t *testing.T) {
	cfg := smallConfig()
	h := newHarness(t, cfg)
	h.game.source = constSource(3)
	// Park the first O on the left so the second completes two rows
	h.key(tcell.KeyLeft)
	h.key(tcell.KeyLeft)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := h.start(ctx)

	require.Eventually(t, func() bool { return h.sounds.clears.Load() == 1 }, waitFor, 10*time.Millisecond)
	assert.Equal(t, int64(2), h.sounds.lines.Load())
	require.Eventually(t, func() bool { return h.screenContains("Score: 2") }, waitFor, 10*time.Millisecond)

	cancel()
	assert.True(t, errors.Is(wait(t, done), context.Canceled))
}

func TestStopByError(t *testing.T) {
	h := newHarness(t, smallConfig())

	done := make(chan struct{})
	go func() {
		h.game.StopByError(errors.New("disk on fire"))
		close(done)
	}()

	require.Eventually(t, func() bool { return h.screenContains("disk on fire") }, waitFor, 10*time.Millisecond)
	assert.True(t, h.screenContains("ERROR"))
	h.key(tcell.KeyEnter)

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("error modal was not dismissed")
	}
}

func TestCadence(t *testing.T) {
	tests := []struct {
		frame        time.Duration
		update, tick int
	}{
		{constants.FrameInterval, constants.UpdateFrames, constants.TickFrames},
		{10 * time.Millisecond, 50, 100},
		{600 * time.Millisecond, 1, 1},
		{2 * time.Second, 1, 1},
	}

	for _, tt := range tests {
		update, tick := cadence(tt.frame)
		assert.Equal(t, tt.update, update, "update frames for %v", tt.frame)
		assert.Equal(t, tt.tick, tick, "tick frames for %v", tt.frame)
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Ok", ActionOk.String())
	assert.Equal(t, "Reset", ActionReset.String())
	assert.Equal(t, "Retry", ActionRetry.String())
	assert.Equal(t, "Quit", ActionQuit.String())
	assert.Equal(t, "Unknown", Action(9).String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc~", truncate("abcdefg", 4))
}
