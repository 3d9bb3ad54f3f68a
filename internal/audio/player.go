package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player plays the game's sound effects.
// All methods are safe to call before Initialize; they become no-ops.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewPlayer creates a new sound player.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles sound playback without tearing down the audio system.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// PlayCatch plays a short high blip for a caught projectile.
func (p *Player) PlayCatch() {
	tone := NewOscillator(880, 120*time.Millisecond, WaveSine, sampleRate)
	p.play(NewEnvelope(tone, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, sampleRate))
}

// PlayHit plays a low buzz for a lethal hit.
func (p *Player) PlayHit() {
	tone := NewOscillator(110, 400*time.Millisecond, WaveSquare, sampleRate)
	p.play(NewEnvelope(tone, 400*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
