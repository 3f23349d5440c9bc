package constants

import "time"

// Line clear chime, one note per cleared line
const (
	ClearNoteDuration = 90 * time.Millisecond
	ClearNoteAttack   = 5 * time.Millisecond
	ClearNoteRelease  = 60 * time.Millisecond
	ClearBaseFreq     = 659.25 // E5
	ClearMaxNotes     = 4
)

// Game over descending buzz
const (
	GameOverSoundDuration = 700 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond
	GameOverStartFreq     = 220.0
	GameOverStepCount     = 3
	GameOverRumbleFreq    = 55.0
)

// SpeakerBuffer is the speaker latency buffer
const SpeakerBuffer = 100 * time.Millisecond
