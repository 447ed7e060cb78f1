package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
	"github.com/1siamBot/kickoff/engine/input"
)

var (
	grassDark  = color.RGBA{30, 110, 48, 255}
	grassLight = color.RGBA{36, 124, 56, 255}
	lineColor  = color.RGBA{235, 245, 235, 200}
	goalColor  = color.RGBA{255, 255, 255, 255}
	takerColor = color.RGBA{255, 227, 138, 255}
)

// PitchRenderer draws a Snapshot: pitch, players, ball and the HUD
type PitchRenderer struct {
	Camera  *Camera
	Sprites *SpriteManager
	HUD     *HUD
	Tune    core.Tuning

	pitch *ebiten.Image // cached background at the current camera
	Debug bool
}

// NewPitchRenderer creates a renderer for a screenW x screenH window
func NewPitchRenderer(screenW, screenH int, t core.Tuning) *PitchRenderer {
	cam := NewCamera(screenW, screenH, hudHeight, t.Field.Width, t.Field.Height)
	return &PitchRenderer{
		Camera:  cam,
		Sprites: NewSpriteManager(cam.Len(t.Player.Radius), cam.Len(t.Ball.Radius)),
		HUD:     NewHUD(),
		Tune:    t,
	}
}

// Resize refits the camera; cached images are rebuilt lazily
func (r *PitchRenderer) Resize(screenW, screenH int) {
	if r.Camera.ScreenW == screenW && r.Camera.ScreenH == screenH {
		return
	}
	r.Camera.Resize(screenW, screenH)
	r.Sprites = NewSpriteManager(r.Camera.Len(r.Tune.Player.Radius), r.Camera.Len(r.Tune.Ball.Radius))
	if r.pitch != nil {
		r.pitch.Deallocate()
		r.pitch = nil
	}
}

// Draw renders s. alpha in [0,1] interpolates the ball between its last two
// positions; pass 1 to draw the stepped state.
func (r *PitchRenderer) Draw(screen *ebiten.Image, s *core.Snapshot, alpha float64, gauges [2]input.Gauge) {
	screen.Fill(color.RGBA{18, 40, 24, 255})
	if r.pitch == nil {
		r.pitch = r.drawPitch()
	}
	screen.DrawImage(r.pitch, nil)

	cam := r.Camera
	for i, p := range s.Players {
		sx, sy := cam.WorldToScreen(p.Pos)
		r.Sprites.DrawPlayer(screen, p, sx, sy)

		pr := cam.Len(p.Radius)
		tip := p.Pos.Add(p.Facing.NormOr(geom.V(p.Team.Dir(), 0)).Scale(p.Radius + 4))
		tx, ty := cam.WorldToScreen(tip)
		vector.StrokeLine(screen, sx, sy, tx, ty, 2, color.RGBA{0, 0, 0, 160}, true)

		if p.Controller != core.ControlNone {
			vector.StrokeCircle(screen, sx, sy, pr+cam.Len(4), 2, HumanColors[p.Controller], true)
		}
		if s.Restart != nil && s.Restart.Taker == i {
			vector.StrokeCircle(screen, sx, sy, pr+cam.Len(10), 2, takerColor, true)
		}
	}

	bp := s.Ball.Prev.Lerp(s.Ball.Pos, geom.Clamp(alpha, 0, 1))
	bx, by := cam.WorldToScreen(bp)
	r.Sprites.DrawBall(screen, bx, by)

	r.HUD.Draw(screen, s, gauges, r.Debug)
}

func (r *PitchRenderer) drawPitch() *ebiten.Image {
	cam := r.Camera
	img := ebiten.NewImage(cam.ScreenW, cam.ScreenH)
	t := &r.Tune
	f := t.Bounds()

	// mown stripes across the whole canvas
	const stripes = 10
	w := t.Field.Width / stripes
	for i := 0; i < stripes; i++ {
		clr := grassDark
		if i%2 == 1 {
			clr = grassLight
		}
		x, y := cam.WorldToScreen(geom.V(float64(i)*w, 0))
		vector.DrawFilledRect(img, x, y, cam.Len(w)+1, cam.Len(t.Field.Height), clr, false)
	}

	rect := func(a, b geom.Vec2) {
		x, y := cam.WorldToScreen(a)
		vector.StrokeRect(img, x, y, cam.Len(b.X-a.X), cam.Len(b.Y-a.Y), 2, lineColor, true)
	}
	rect(f.Min, f.Max)

	c := t.Center()
	tx, ty := cam.WorldToScreen(geom.V(c.X, f.Min.Y))
	bx, by := cam.WorldToScreen(geom.V(c.X, f.Max.Y))
	vector.StrokeLine(img, tx, ty, bx, by, 2, lineColor, true)
	cx, cy := cam.WorldToScreen(c)
	vector.StrokeCircle(img, cx, cy, cam.Len(70), 2, lineColor, true)
	vector.DrawFilledCircle(img, cx, cy, 3, lineColor, true)

	// keeper boxes and goal mouths
	for _, side := range [...]core.Side{core.Left, core.Right} {
		box := t.KeeperBox(side)
		rect(box.Min, box.Max)

		gx := t.GoalLineX(side)
		depth := 14 * -side.Dir()
		a := geom.V(gx, t.GoalTop())
		b := geom.V(gx+depth, t.GoalBottom())
		if depth < 0 {
			a.X, b.X = b.X, a.X
		}
		x, y := cam.WorldToScreen(a)
		vector.StrokeRect(img, x, y, cam.Len(b.X-a.X), cam.Len(b.Y-a.Y), 3, goalColor, true)
	}
	return img
}
