package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/textris/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of one wave shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// semitone returns the frequency n semitones above base
func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}

// CreateClearSound builds a rising arpeggio with one note per cleared line
func CreateClearSound(cfg *Config, lines int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	lines = min(max(lines, 1), constants.ClearMaxNotes)

	// Major triad steps, octave on the fourth line
	steps := [constants.ClearMaxNotes]int{0, 4, 7, 12}
	notes := make([]beep.Streamer, 0, lines)
	for i := range lines {
		osc := NewOscillator(semitone(constants.ClearBaseFreq, steps[i]), constants.ClearNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constants.ClearNoteDuration, constants.ClearNoteAttack, constants.ClearNoteRelease, rate))
	}

	return newVolume(beep.Seq(notes...), 0.4*cfg.MasterVolume)
}

// CreateGameOverSound builds a falling saw sweep over a noise bed
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	step := constants.GameOverSoundDuration / constants.GameOverStepCount

	tones := make([]beep.Streamer, 0, constants.GameOverStepCount)
	for i := range constants.GameOverStepCount {
		osc := NewOscillator(semitone(constants.GameOverStartFreq, -3*i), step, WaveSaw, rate)
		tones = append(tones, NewEnvelope(osc, step, constants.GameOverSoundAttack, step/2, rate))
	}

	noise := NewOscillator(0, constants.GameOverSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	layers := []beep.Streamer{
		newVolume(beep.Seq(tones...), 0.8),
		newVolume(noiseShaped, 0.15),
	}
	if rumble, err := generators.SineTone(rate, constants.GameOverRumbleFreq); err == nil {
		layers = append(layers, newVolume(beep.Take(rate.N(constants.GameOverSoundDuration), rumble), 0.3))
	}

	mixed := beep.Mix(layers...)
	return newVolume(mixed, 0.6*cfg.MasterVolume)
}
