// Package audio plays the short cues that accompany a chase starting and a jump.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes one-shot cues onto the speaker. A nil or uninitialized
// Player silently drops every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; call Initialize before playing anything.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayAlert plays the falling two-tone chirp used when a plane starts chasing.
func (p *Player) PlayAlert() {
	p.play(NewAlertGenerator(sampleRate))
}

// PlayJump plays a short rising blip.
func (p *Player) PlayJump() {
	p.play(NewJumpGenerator(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	// The mixer is read from the speaker goroutine.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup drops pending cues and closes the device.
func (p *Player) Cleanup() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
