package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/textris/constants"
)

// SoundManager plays the game's sound effects through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; a nil cfg uses LoadConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = LoadConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayClear plays the line clear chime scaled to the number of lines
func (sm *SoundManager) PlayClear(lines int) {
	sm.play(func(cfg *Config) beep.Streamer { return CreateClearSound(cfg, lines) })
}

// PlayGameOver plays the game over sweep
func (sm *SoundManager) PlayGameOver() {
	sm.play(CreateGameOverSound)
}

func (sm *SoundManager) play(build func(*Config) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build(sm.cfg)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
