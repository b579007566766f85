package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"flipspider/internal/core"
	"flipspider/internal/sim"
)

// Visual characters for rendering.
const (
	obstacleChar  = '█'
	capTopChar    = '▄'
	capBottomChar = '▀'
	floorChar     = '═'
	playerChar    = 'ʘ'
	playerBody    = '●'
	webChar       = '·'
	skyChar       = '˙'
)

// Draw renders a simulation snapshot into the screen buffer, scaling world
// units down to terminal cells. The HUD row at the top is never overdrawn
// by world geometry.
func Draw(dst *core.Screen, snap sim.Snapshot) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if w <= 0 || h <= 0 || snap.WorldW <= 0 || snap.WorldH <= 0 {
		return
	}

	sx := float64(w) / snap.WorldW
	sy := float64(h) / snap.WorldH
	floorRow := int((snap.WorldH - snap.FloorH) * sy)
	if floorRow >= h {
		floorRow = h - 1
	}

	drawSky(dst, snap, floorRow)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, snap, o, sx, sy, floorRow)
	}
	drawFloor(dst, snap, floorRow)
	drawWeb(dst, snap, sx, sy)
	drawPlayer(dst, snap, sx, sy)
	drawHUD(dst, snap)
}

// drawSky scatters a few dim fixed stars above the floor band. Positions are
// derived from the phase so the backdrop changes with each re-theming.
func drawSky(dst *core.Screen, snap sim.Snapshot, floorRow int) {
	rng := core.NewXorShift32(uint32(snap.Phase)*2654435761 + 1)
	count := dst.Width() * floorRow / 160
	for i := 0; i < count; i++ {
		x := rng.Intn(dst.Width())
		y := rng.Intn(floorRow)
		dst.SetCell(x, y, skyChar, snap.Theme.SkyBottom)
	}
}

func drawObstacle(dst *core.Screen, snap sim.Snapshot, o sim.ObstacleView, sx, sy float64, floorRow int) {
	x0 := int(o.X * sx)
	x1 := int((o.X + o.Width) * sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	gapTop := int(o.GapY * sy)
	gapBottom := int((o.GapY + o.GapH) * sy)
	color := snap.Theme.Obstacles[o.ColorIdx%len(snap.Theme.Obstacles)]

	for x := x0; x < x1; x++ {
		for y := 0; y < gapTop-1; y++ {
			dst.SetCell(x, y, obstacleChar, color)
		}
		if gapTop > 0 {
			dst.SetCell(x, gapTop-1, capTopChar, color)
		}
		if gapBottom < floorRow {
			dst.SetCell(x, gapBottom, capBottomChar, color)
		}
		for y := gapBottom + 1; y < floorRow; y++ {
			dst.SetCell(x, y, obstacleChar, color)
		}
	}
}

func drawFloor(dst *core.Screen, snap sim.Snapshot, floorRow int) {
	for y := floorRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), floorChar, snap.Theme.Floor)
	}
}

// drawWeb draws the transient strand as a sampled line between its
// endpoints. Purely cosmetic; it fades by simply disappearing on expiry.
func drawWeb(dst *core.Screen, snap sim.Snapshot, sx, sy float64) {
	if snap.Web == nil {
		return
	}
	w := snap.Web
	steps := 12
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int((w.FromX + (w.ToX-w.FromX)*t) * sx)
		y := int((w.FromY + (w.ToY-w.FromY)*t) * sy)
		dst.SetCell(x, y, webChar, snap.Theme.Web)
	}
}

func drawPlayer(dst *core.Screen, snap sim.Snapshot, sx, sy float64) {
	cx := int(snap.PlayerX * sx)
	cy := int(snap.PlayerY * sy)
	rx := int(snap.PlayerRadius * sx)
	ry := int(snap.PlayerRadius * sy)
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}

	// Small filled ellipse; at typical terminal sizes this is 1-3 cells.
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			ch := playerBody
			if dx == 0 && dy == 0 {
				ch = playerChar
			}
			dst.SetCell(cx+dx, cy+dy, ch, snap.Theme.Player)
		}
	}
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Best: %d  Phase: %d ", snap.Score, snap.Best, snap.Phase)
	dst.DrawTextColored(2, 0, hud, snap.Theme.Accent)
}

// DrawGameOver overlays the game-over box onto an already drawn frame.
func DrawGameOver(dst *core.Screen, snap sim.Snapshot) {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best)
	hint := "R restart · ESC menu · X export · Q quit"
	drawCenteredBox(dst, snap.Theme.Accent, title, subtitle, hint)
}

// drawCenteredBox draws a bordered message box in the center of the screen.
func drawCenteredBox(dst *core.Screen, accent string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', "")
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		fg := ""
		if i == 0 {
			fg = accent
		}
		dst.DrawTextColored(boxX+(boxW-len(l))/2, boxY+1+i*2, l, fg)
	}
}

// colorCache avoids rebuilding lipgloss styles per cell; themes only use a
// handful of colors per phase. The SSH server renders every session on its
// own goroutine, so access is guarded.
var (
	colorCacheMu sync.RWMutex
	colorCache   = map[string]lipgloss.Style{}
)

func styleFor(fg string) lipgloss.Style {
	colorCacheMu.RLock()
	s, ok := colorCache[fg]
	colorCacheMu.RUnlock()
	if ok {
		return s
	}

	s = lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}

	colorCacheMu.Lock()
	colorCache[fg] = s
	colorCacheMu.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.FG).Render(run.String()))
		}
	}
	return sb.String()
}
