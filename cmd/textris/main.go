package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/textris/audio"
	"github.com/lixenwraith/textris/config"
	"github.com/lixenwraith/textris/core"
	"github.com/lixenwraith/textris/game"
	"github.com/lixenwraith/textris/input"
	"github.com/lixenwraith/textris/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "textris: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := render.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	core.SetCrashTerminal(screen)
	defer func() { core.HandleCrash(recover()) }()
	defer screen.Fini()

	var sounds game.Sounds
	if !cfg.Mute {
		sm := audio.NewSoundManager(audio.LoadConfig())
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	inputs := input.NewInputs(screen.Terminal(), input.NewKeyMap(cfg.Layout))
	defer inputs.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(cfg, screen, inputs, sounds)
	if err := g.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Game stopped: %v", err)
		if !errors.Is(err, input.ErrInputClosed) {
			g.StopByError(err)
		}
		return 1
	}
	return 0
}
