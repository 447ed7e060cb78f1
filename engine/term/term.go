// Package term draws match snapshots on a character terminal.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/kickoff/engine/core"
)

// Pitch is the geometry a view needs; spectators get it from the feed hello
type Pitch struct {
	Width, Height float64
	Pad           float64
	GoalWidth     float64
}

var (
	styleGrass  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	styleLine   = styleGrass.Foreground(tcell.ColorLightGray)
	styleBall   = styleGrass.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTeams  = [2]tcell.Style{
		styleGrass.Foreground(tcell.ColorDodgerBlue),
		styleGrass.Foreground(tcell.ColorRed),
	}
)

// View renders a top-down pitch into a tcell screen. Row 0 is the status line.
type View struct {
	Screen tcell.Screen
	Pitch  Pitch
}

func NewView(s tcell.Screen, p Pitch) *View {
	return &View{Screen: s, Pitch: p}
}

// Cell maps a pitch position to a screen cell
func (v *View) Cell(x, y float64) (int, int) {
	w, h := v.Screen.Size()
	cx := int(math.Round(x / v.Pitch.Width * float64(w-1)))
	cy := 1 + int(math.Round(y/v.Pitch.Height*float64(h-2)))
	return cx, cy
}

func (v *View) put(x, y int, r rune, st tcell.Style) {
	v.Screen.SetContent(x, y, r, nil, st)
}

func (v *View) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		v.put(x+i, y, r, st)
	}
}

// Status is the one-line summary shown above the pitch
func Status(s *core.Snapshot) string {
	l, r := s.Teams[core.Left], s.Teams[core.Right]
	rem := int(math.Ceil(math.Max(s.Remaining, 0)))
	phase := s.Phase.String()
	if s.Restart != nil {
		phase = fmt.Sprintf("%s (%s)", phase, s.Teams[s.Restart.Team].Name)
	}
	return fmt.Sprintf(" %s %d - %d %s   %d:%02d   %s", l.Name, l.Score, r.Score, r.Name, rem/60, rem%60, phase)
}

// Draw clears the screen and paints s; call Show afterwards
func (v *View) Draw(s *core.Snapshot) {
	scr := v.Screen
	scr.Clear()
	w, h := scr.Size()
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			v.put(x, y, ' ', styleGrass)
		}
	}
	v.drawLines()

	for _, p := range s.Players {
		x, y := v.Cell(p.Pos.X, p.Pos.Y)
		r := rune('0' + p.Number%10)
		if p.Role.IsKeeper() {
			r = 'G'
		}
		st := styleTeams[p.Team]
		if p.Controller != core.ControlNone {
			st = st.Reverse(true)
		}
		v.put(x, y, r, st)
	}
	bx, by := v.Cell(s.Ball.Pos.X, s.Ball.Pos.Y)
	v.put(bx, by, 'o', styleBall)

	v.text(0, 0, Status(s), styleStatus)
}

func (v *View) drawLines() {
	p := v.Pitch
	x0, y0 := v.Cell(p.Pad, p.Pad)
	x1, y1 := v.Cell(p.Width-p.Pad, p.Height-p.Pad)
	for x := x0; x <= x1; x++ {
		v.put(x, y0, '-', styleLine)
		v.put(x, y1, '-', styleLine)
	}
	for y := y0; y <= y1; y++ {
		v.put(x0, y, '|', styleLine)
		v.put(x1, y, '|', styleLine)
	}
	mx, _ := v.Cell(p.Width/2, 0)
	for y := y0 + 1; y < y1; y++ {
		v.put(mx, y, ':', styleLine)
	}

	_, gt := v.Cell(0, p.Height/2-p.GoalWidth/2)
	_, gb := v.Cell(0, p.Height/2+p.GoalWidth/2)
	for y := gt; y <= gb; y++ {
		v.put(x0, y, '[', styleLine)
		v.put(x1, y, ']', styleLine)
	}
}

// Quit reports whether ev asks to leave the view
func Quit(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return k.Key() == tcell.KeyEscape || k.Key() == tcell.KeyCtrlC || k.Rune() == 'q'
}
