package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	// Samples must stay within valid range [-1, 1]
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][1] != samples[i][0] {
			t.Errorf("Sample %d not identical across channels", i)
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Square wave should only have values of -1.0 or 1.0
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorEnds verifies the stream drains after its duration
func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100.0, 10*time.Millisecond, WaveSine, rate)

	// 10ms at 1kHz is 10 samples
	samples := make([][2]float64, 20)
	n, ok := osc.Stream(samples)

	if ok {
		t.Error("Expected stream to finish within one call")
	}
	if n != 10 {
		t.Errorf("Expected 10 samples before end, got %d", n)
	}
}

// TestEnvelopeShapesVolume verifies attack and release scaling
func TestEnvelopeShapesVolume(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // Constant 1.0 signal at 0 Hz
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	// First sample of the attack should be silent, mid-sustain full volume
	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start at 0, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected sustain at full volume, got %f", samples[50][0])
	}
	// Release tail must fade below full volume
	if samples[95][0] >= samples[50][0] {
		t.Errorf("Expected release to fade, got %f", samples[95][0])
	}
}

// TestPlayerUninitializedIsNoop verifies playing before Initialize is safe
func TestPlayerUninitializedIsNoop(t *testing.T) {
	p := NewPlayer()
	p.PlayCatch()
	p.PlayHit()
	p.SetMuted(true)
	p.Cleanup()
}
