package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"flipspider/internal/theme"
)

const directorSampleRate = beep.SampleRate(44100)

// Director owns the speaker and turns simulation events into sounds.
// It implements sim.AudioSink. Every method is safe to call before
// Initialize and after a failed Initialize; it then does nothing.
type Director struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	tempo       int
	muted       bool
	initialized bool
}

// NewDirector creates a director with the default tempo. Call Initialize
// before use; until then all events are silently dropped.
func NewDirector() *Director {
	return &Director{
		mixer: &beep.Mixer{},
		tempo: theme.TempoMin,
	}
}

// Initialize opens the speaker and attaches the mixer.
func (d *Director) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}
	if err := speaker.Init(directorSampleRate, directorSampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(d.mixer)
	d.initialized = true
	return nil
}

// Close stops all sound.
func (d *Director) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	d.stopMusicLocked()
	d.mixer.Clear()
	d.initialized = false
}

// SetMuted toggles all output without tearing down the speaker.
func (d *Director) SetMuted(muted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.muted = muted
	if muted {
		d.stopMusicLocked()
	}
}

// OnImpulse plays the short rising web-throw whip.
func (d *Director) OnImpulse() {
	d.play(func() beep.Streamer {
		s := NewSweep(600, 1400, 90*time.Millisecond, WaveSine, directorSampleRate)
		return WithEnvelope(s, 90*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, 0.5, directorSampleRate)
	})
}

// OnRunStarted starts the backdrop loop at the current tempo.
func (d *Director) OnRunStarted() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized || d.muted {
		return
	}
	d.startMusicLocked()
}

// OnRunEnded stops the backdrop.
func (d *Director) OnRunEnded() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopMusicLocked()
}

// OnGameOver plays the hit burst and stops the backdrop.
func (d *Director) OnGameOver() {
	d.mu.Lock()
	if d.initialized {
		d.stopMusicLocked()
	}
	d.mu.Unlock()

	d.play(func() beep.Streamer {
		s := NewTone(55, 350*time.Millisecond, WaveNoise, directorSampleRate)
		return WithEnvelope(s, 350*time.Millisecond, 0, 300*time.Millisecond, 0.6, directorSampleRate)
	})
}

// OnPhaseChanged records the new tempo and, if the backdrop is playing,
// restarts it so the new phase is audible immediately.
func (d *Director) OnPhaseChanged(tempo int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tempo = tempo
	if !d.initialized || d.muted {
		return
	}
	if d.music != nil && !d.music.Paused {
		d.stopMusicLocked()
		d.startMusicLocked()
	}
}

// startMusicLocked attaches a fresh backdrop streamer at the current tempo.
// Caller holds d.mu.
func (d *Director) startMusicLocked() {
	d.stopMusicLocked()
	ctrl := &beep.Ctrl{Streamer: NewBackdrop(d.tempo, directorSampleRate)}
	d.music = ctrl

	speaker.Lock()
	d.mixer.Add(ctrl)
	speaker.Unlock()
}

// stopMusicLocked pauses the current backdrop, if any. Caller holds d.mu.
func (d *Director) stopMusicLocked() {
	if d.music != nil {
		speaker.Lock()
		d.music.Paused = true
		d.music.Streamer = nil
		speaker.Unlock()
		d.music = nil
	}
}

// play adds a one-shot streamer to the mixer if the speaker is available.
func (d *Director) play(build func() beep.Streamer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.muted {
		return
	}
	s := build()
	speaker.Lock()
	d.mixer.Add(s)
	speaker.Unlock()
}
