package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/kickoff/engine/core"
)

// Team kit colours, indexed by side
var (
	KitColors = [2]color.RGBA{
		{74, 163, 255, 255}, // left: blue
		{255, 92, 92, 255},  // right: red
	}
	KeeperColors = [2]color.RGBA{
		{250, 214, 80, 255},
		{120, 232, 140, 255},
	}
	HumanColors = [core.ControlHuman2 + 1]color.RGBA{
		{},
		{255, 255, 255, 255},
		{255, 227, 138, 255},
	}
)

// SpriteManager holds pre-drawn discs so a frame is 23 DrawImage calls
type SpriteManager struct {
	Players [2][2]*ebiten.Image // [side][keeper]
	Ball    *ebiten.Image
}

// NewSpriteManager draws player discs of radius r screen pixels
func NewSpriteManager(playerR, ballR float32) *SpriteManager {
	sm := &SpriteManager{}
	for side := 0; side < 2; side++ {
		sm.Players[side][0] = disc(playerR, KitColors[side])
		sm.Players[side][1] = disc(playerR, KeeperColors[side])
	}
	sm.Ball = disc(ballR, color.RGBA{250, 250, 250, 255})
	return sm
}

func disc(r float32, clr color.RGBA) *ebiten.Image {
	size := int(2*r) + 4
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, r, clr, true)
	vector.StrokeCircle(img, c, c, r, 1.5, color.RGBA{10, 20, 10, 200}, true)
	return img
}

// DrawPlayer draws p's disc centred on (sx, sy). Frozen players are dimmed.
func (sm *SpriteManager) DrawPlayer(screen *ebiten.Image, p core.PlayerState, sx, sy float32) {
	keeper := 0
	if p.Role.IsKeeper() {
		keeper = 1
	}
	img := sm.Players[p.Team][keeper]
	half := float64(img.Bounds().Dx()) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sx)-half, float64(sy)-half)
	if p.Frozen {
		op.ColorScale.Scale(0.6, 0.6, 0.6, 1)
	}
	screen.DrawImage(img, op)
}

// DrawBall draws the ball disc centred on (sx, sy)
func (sm *SpriteManager) DrawBall(screen *ebiten.Image, sx, sy float32) {
	half := float64(sm.Ball.Bounds().Dx()) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sx)-half, float64(sy)-half)
	screen.DrawImage(sm.Ball, op)
}
