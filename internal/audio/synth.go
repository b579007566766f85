// Package audio synthesizes the game's sound effects and music backdrop
// with gopxl/beep. Everything is generated; there are no sample assets.
// The Director implements sim.AudioSink and degrades to silence whenever
// the speaker is unavailable, so the simulation never depends on audio.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Waveform selects the oscillator wave shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone generates a fixed-duration wave at a single frequency.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Waveform
	rate     beep.SampleRate
}

// NewTone creates a finite oscillator streamer.
func NewTone(freq float64, duration time.Duration, wave Waveform, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		val := sampleWave(t.wave, t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// sweep generates a wave whose frequency glides linearly from f0 to f1 over
// the duration. Used for the web-throw "whip".
type sweep struct {
	f0, f1   float64
	phase    float64
	duration int
	position int
	wave     Waveform
	rate     beep.SampleRate
}

// NewSweep creates a finite frequency-glide streamer.
func NewSweep(f0, f1 float64, duration time.Duration, wave Waveform, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		f0:       f0,
		f1:       f1,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.f0 + (s.f1-s.f0)*progress

		val := sampleWave(s.wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// sampleWave evaluates one sample of the given shape at phase in [0, 1).
func sampleWave(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies linear attack/release shaping and a gain to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
	gain           float64
}

// WithEnvelope wraps a streamer in an attack/release envelope with the given
// overall gain.
func WithEnvelope(s beep.Streamer, duration, attack, release time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
		gain:           gain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := e.gain
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol *= float64(e.position) / float64(e.attackSamples)
		} else if remaining := e.totalSamples - e.position; remaining < e.releaseSamples && e.releaseSamples > 0 {
			vol *= float64(remaining) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
