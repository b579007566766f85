// Package theme generates the procedural visual theme and music tempo for a
// phase. Generation is a pure function of the phase index: the same phase
// always yields a byte-identical theme, so the presentation layer can
// regenerate it at will.
package theme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"flipspider/internal/core"
)

// PaletteSize is the number of obstacle colors per theme. Obstacles carry a
// color index in [0, PaletteSize).
const PaletteSize = 4

// Tempo bounds for the music backdrop, in BPM. Drawn as [TempoMin, TempoMax).
const (
	TempoMin = 150
	TempoMax = 210
)

// Theme holds every color the render layer needs, as "#rrggbb" strings,
// plus the backdrop tempo for the audio layer.
type Theme struct {
	Phase     int
	SkyTop    string
	SkyBottom string
	Floor     string
	Obstacles [PaletteSize]string
	Player    string
	Web       string
	Accent    string
	Tempo     int // BPM in [TempoMin, TempoMax)
}

// Generate derives the theme for a phase index.
// Seeds a xorshift-32 generator with phase*9301 + 49297 and draws a base hue
// plus derived hues from it. No shared state is read or written.
func Generate(phase int) Theme {
	rng := core.NewXorShift32(uint32(phase*9301 + 49297))

	baseHue := rng.Float64() * 360

	t := Theme{Phase: phase}
	t.SkyTop = hexHSV(baseHue, 0.55, 0.30)
	t.SkyBottom = hexHSV(baseHue+20+rng.Float64()*15, 0.50, 0.16)
	t.Floor = hexHSV(baseHue+30, 0.40, 0.38)
	for i := range t.Obstacles {
		t.Obstacles[i] = hexHSV(baseHue+140+float64(i)*22+rng.Float64()*12, 0.65, 0.78)
	}
	t.Player = hexHSV(baseHue+180, 0.20, 0.95)
	t.Web = hexHSV(baseHue, 0.10, 0.90)
	t.Accent = hexHSV(baseHue+90+rng.Float64()*20, 0.80, 0.92)
	t.Tempo = TempoMin + int(rng.Float64()*float64(TempoMax-TempoMin))

	return t
}

// hexHSV converts an HSV triple to a hex color, wrapping hue into [0, 360).
func hexHSV(h, s, v float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, s, v).Hex()
}
