package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// backdropBaseFreq is the root note of the bass pattern (A2).
const backdropBaseFreq = 110.0

// backdropSteps is a 16-step bass pattern in semitone offsets from the root.
// A negative offset of rest marks a silent step.
const rest = -128

var backdropSteps = [16]int{
	0, rest, 0, rest,
	7, rest, 0, rest,
	3, rest, 3, rest,
	7, 5, 0, rest,
}

// StepDuration returns the length of one pattern step for a tempo. The
// pattern runs in 16th notes, so a step is a quarter of a beat.
func StepDuration(tempo int) time.Duration {
	if tempo <= 0 {
		tempo = 1
	}
	return time.Minute / time.Duration(tempo*4)
}

// backdrop is an endless streamer playing the bass pattern at a fixed tempo.
// Phase changes swap the whole streamer rather than retuning a live one,
// which keeps it free of locks on the audio path.
type backdrop struct {
	rate           beep.SampleRate
	samplesPerStep int
	step           int
	position       int // sample within current step
	phase          float64
}

// NewBackdrop creates the looping music streamer for a tempo in BPM.
func NewBackdrop(tempo int, rate beep.SampleRate) beep.Streamer {
	samplesPerStep := rate.N(StepDuration(tempo))
	if samplesPerStep < 1 {
		samplesPerStep = 1
	}
	return &backdrop{
		rate:           rate,
		samplesPerStep: samplesPerStep,
	}
}

func (b *backdrop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		offset := backdropSteps[b.step]

		var val float64
		if offset != rest {
			freq := backdropBaseFreq * math.Pow(2, float64(offset)/12)

			// Saw bass with a per-step linear decay.
			val = 2.0 * (b.phase - 0.5)
			decay := 1 - float64(b.position)/float64(b.samplesPerStep)
			val *= 0.25 * decay

			b.phase += freq / float64(b.rate)
			b.phase -= math.Floor(b.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		b.position++
		if b.position >= b.samplesPerStep {
			b.position = 0
			b.phase = 0
			b.step = (b.step + 1) % len(backdropSteps)
		}
	}
	return len(samples), true
}

func (b *backdrop) Err() error { return nil }
