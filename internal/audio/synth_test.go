package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain pulls every sample out of a finite streamer and returns them.
func drain(t *testing.T, s beep.Streamer, max int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < max {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("streamer produced more than %d samples", max)
	return nil
}

func TestToneLengthAndBounds(t *testing.T) {
	dur := 50 * time.Millisecond
	samples := drain(t, NewTone(440, dur, WaveSine, testRate), testRate.N(time.Second))

	if want := testRate.N(dur); len(samples) != want {
		t.Errorf("tone produced %d samples, want %d", len(samples), want)
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono-duplicated: %v", i, s)
		}
	}
}

func TestToneNotSilent(t *testing.T) {
	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewTone(220, 10*time.Millisecond, wave, testRate), testRate.N(time.Second))

		sum := 0.0
		for _, s := range samples {
			if s[0] < 0 {
				sum -= s[0]
			} else {
				sum += s[0]
			}
		}
		if sum == 0 {
			t.Errorf("waveform %d produced pure silence", wave)
		}
	}
}

func TestSweepLength(t *testing.T) {
	dur := 90 * time.Millisecond
	samples := drain(t, NewSweep(600, 1400, dur, WaveSine, testRate), testRate.N(time.Second))

	if want := testRate.N(dur); len(samples) != want {
		t.Errorf("sweep produced %d samples, want %d", len(samples), want)
	}
}

func TestEnvelopeGain(t *testing.T) {
	dur := 20 * time.Millisecond
	gain := 0.5

	s := NewTone(440, dur, WaveSquare, testRate)
	samples := drain(t, WithEnvelope(s, dur, 0, 0, gain, testRate), testRate.N(time.Second))

	// Square wave through a flat envelope: every sample is +-gain
	for i, smp := range samples {
		if smp[0] != gain && smp[0] != -gain {
			t.Fatalf("sample %d = %v, want +-%v", i, smp[0], gain)
		}
	}
}

func TestEnvelopeAttackStartsQuiet(t *testing.T) {
	dur := 40 * time.Millisecond
	s := NewTone(440, dur, WaveSquare, testRate)
	samples := drain(t, WithEnvelope(s, dur, 20*time.Millisecond, 0, 1.0, testRate), testRate.N(time.Second))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at attack start", samples[0][0])
	}

	mid := samples[len(samples)/2]
	if mid[0] == 0 {
		t.Error("post-attack sample still silent")
	}
}
