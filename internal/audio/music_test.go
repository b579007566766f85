package audio

import (
	"testing"
	"time"
)

func TestStepDuration(t *testing.T) {
	// 16th notes: 150 BPM -> 600 steps per minute -> 100ms
	if got := StepDuration(150); got != 100*time.Millisecond {
		t.Errorf("StepDuration(150) = %v, want 100ms", got)
	}
	if got := StepDuration(0); got <= 0 {
		t.Errorf("StepDuration(0) = %v, want positive", got)
	}
}

func TestBackdropStreamsForever(t *testing.T) {
	b := NewBackdrop(180, testRate)
	buf := make([][2]float64, 1024)

	for i := 0; i < 50; i++ {
		n, ok := b.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("backdrop stopped at block %d: n=%d ok=%v", i, n, ok)
		}
	}
	if b.Err() != nil {
		t.Errorf("Err() = %v, want nil", b.Err())
	}
}

func TestBackdropBounded(t *testing.T) {
	b := NewBackdrop(200, testRate)
	buf := make([][2]float64, 4096)

	heard := false
	for i := 0; i < 20; i++ {
		b.Stream(buf)
		for _, s := range buf {
			if s[0] < -1 || s[0] > 1 {
				t.Fatalf("sample out of range: %v", s[0])
			}
			if s[0] != 0 {
				heard = true
			}
		}
	}
	if !heard {
		t.Error("backdrop produced pure silence")
	}
}

func TestBackdropTempoChangesStepLength(t *testing.T) {
	slow := NewBackdrop(150, testRate).(*backdrop)
	fast := NewBackdrop(210, testRate).(*backdrop)

	if slow.samplesPerStep <= fast.samplesPerStep {
		t.Errorf("slow step %d samples, fast step %d samples; want slow > fast",
			slow.samplesPerStep, fast.samplesPerStep)
	}
}

func TestDirectorSafeWithoutSpeaker(t *testing.T) {
	// Every sink event must be a no-op before Initialize
	d := NewDirector()

	d.OnImpulse()
	d.OnRunStarted()
	d.OnPhaseChanged(180)
	d.OnGameOver()
	d.OnRunEnded()
	d.SetMuted(true)
	d.SetMuted(false)
	d.Close()

	if d.tempo != 180 {
		t.Errorf("tempo = %d, want 180 recorded even while uninitialized", d.tempo)
	}
}
