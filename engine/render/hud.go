package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/input"
)

const hudHeight = 40

// HUD draws the score bar, clock, phase banner and charge gauges
type HUD struct {
	face *text.GoXFace
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// ClockText formats seconds as m:ss, rounding up so 0:00 means time is out
func ClockText(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	s := int(sec)
	if float64(s) < sec {
		s++
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Banner is the centre message for phases other than open play
func Banner(s *core.Snapshot) string {
	switch s.Phase {
	case core.PhaseGoalPause:
		return "GOAL!"
	case core.PhaseFullTime:
		return fmt.Sprintf("FULL TIME  %d - %d", s.Teams[core.Left].Score, s.Teams[core.Right].Score)
	}
	if s.Restart != nil {
		return fmt.Sprintf("%s %s", s.Teams[s.Restart.Team].Name, s.Restart.Kind)
	}
	return ""
}

func (h *HUD) Draw(screen *ebiten.Image, s *core.Snapshot, gauges [2]input.Gauge, debug bool) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, hudHeight, color.RGBA{12, 16, 20, 230}, false)

	l, r := s.Teams[core.Left], s.Teams[core.Right]
	score := fmt.Sprintf("%s  %d  -  %d  %s", l.Name, l.Score, r.Score, r.Name)
	h.centered(screen, score, float64(w)/2, 8, color.White)
	h.centered(screen, ClockText(s.Remaining), float64(w)/2, 24, color.RGBA{200, 210, 220, 255})

	h.gauge(screen, gauges[0], 12, KitColors[core.Left])
	h.gauge(screen, gauges[1], float64(w)-12-gaugeWidth, KitColors[core.Right])

	if b := Banner(s); b != "" {
		h.centered(screen, b, float64(w)/2, float64(screen.Bounds().Dy())/2, takerColor)
	}
	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  %s  fps %.0f", s.Tick, s.Phase, ebiten.ActualFPS()), 8, hudHeight+4)
	}
}

const gaugeWidth = 120

func (h *HUD) gauge(screen *ebiten.Image, g input.Gauge, x float64, clr color.RGBA) {
	fx, fy := float32(x), float32(22)
	vector.StrokeRect(screen, fx, fy, gaugeWidth, 8, 1, color.RGBA{180, 180, 180, 255}, false)
	vector.DrawFilledRect(screen, fx, fy, float32(gaugeWidth*g.Level), 8, clr, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, 6)
	op.ColorScale.ScaleWithColor(color.RGBA{200, 210, 220, 255})
	text.Draw(screen, fmt.Sprintf("%s %d%%", g.Mode, int(g.Level*100)), h.face, op)
}

func (h *HUD) centered(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	tw, _ := text.Measure(s, h.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-tw/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}
