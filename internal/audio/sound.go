// Package audio plays the demo's sound effects through the system speaker.
// A SoundManager that was never initialized is silent, so callers never need
// to check whether an audio device exists.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	shotDuration  = 120 * time.Millisecond
	shotStartFreq = 880.0
	shotEndFreq   = 220.0
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Volume in beep's log2 units; 0 is unchanged
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: -1,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
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

// PlayShot plays a short falling chirp
func (sm *SoundManager) PlayShot() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	shot := &effects.Volume{
		Streamer: NewChirp(sampleRate, shotStartFreq, shotEndFreq, shotDuration),
		Base:     2,
		Volume:   sm.volume,
	}

	speaker.Lock()
	sm.mixer.Add(shot)
	speaker.Unlock()
}

// Chirp is a sine sweep from one frequency to another that fades out linearly
type Chirp struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	phase     float64
	position  int
	samples   int
}

// NewChirp creates a chirp generator
func NewChirp(sr beep.SampleRate, startFreq, endFreq float64, duration time.Duration) *Chirp {
	return &Chirp{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		samples:   sr.N(duration),
	}
}

func (c *Chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.samples {
			return i, i > 0
		}

		progress := float64(c.position) / float64(c.samples)
		freq := c.startFreq + (c.endFreq-c.startFreq)*progress
		val := math.Sin(2*math.Pi*c.phase) * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		c.phase += freq / float64(c.sr)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *Chirp) Err() error { return nil }
