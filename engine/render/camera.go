package render

import (
	"math"

	"github.com/1siamBot/kickoff/engine/geom"
)

// Camera maps pitch pixels onto the window, letterboxed to keep the aspect
type Camera struct {
	Scale      float64
	OffX, OffY float64
	ScreenW    int // viewport width in pixels
	ScreenH    int // viewport height in pixels
	HUDHeight  int // reserved band above the pitch

	// Pitch size in world pixels
	WorldW float64
	WorldH float64
}

// NewCamera fits a worldW x worldH pitch into the screen below the HUD band
func NewCamera(screenW, screenH, hud int, worldW, worldH float64) *Camera {
	c := &Camera{HUDHeight: hud, WorldW: worldW, WorldH: worldH}
	c.Resize(screenW, screenH)
	return c
}

// Resize refits the pitch after a window size change
func (c *Camera) Resize(screenW, screenH int) {
	c.ScreenW, c.ScreenH = screenW, screenH
	availH := float64(screenH - c.HUDHeight)
	c.Scale = math.Min(float64(screenW)/c.WorldW, availH/c.WorldH)
	if c.Scale <= 0 {
		c.Scale = 1
	}
	c.OffX = (float64(screenW) - c.WorldW*c.Scale) / 2
	c.OffY = float64(c.HUDHeight) + (availH-c.WorldH*c.Scale)/2
}

// WorldToScreen converts a pitch position to screen pixels
func (c *Camera) WorldToScreen(p geom.Vec2) (float32, float32) {
	return float32(p.X*c.Scale + c.OffX), float32(p.Y*c.Scale + c.OffY)
}

// ScreenToWorld converts screen pixels to a pitch position
func (c *Camera) ScreenToWorld(sx, sy int) geom.Vec2 {
	return geom.V((float64(sx)-c.OffX)/c.Scale, (float64(sy)-c.OffY)/c.Scale)
}

// Len scales a world distance to screen pixels
func (c *Camera) Len(d float64) float32 { return float32(d * c.Scale) }
