package geom

import "math"

// Vec2 is a 2D vector in pitch pixels
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Dist(b Vec2) float64  { return math.Hypot(a.X-b.X, a.Y-b.Y) }
func (a Vec2) IsZero() bool         { return a.X == 0 && a.Y == 0 }
func (a Vec2) Perp() Vec2           { return Vec2{-a.Y, a.X} }
func (a Vec2) Mid(b Vec2) Vec2      { return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// Norm returns the unit vector, or the zero vector when a has no length.
// Callers never see NaN.
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// NormOr returns the unit vector of a, or fallback when a is degenerate
func (a Vec2) NormOr(fallback Vec2) Vec2 {
	n := a.Norm()
	if n.IsZero() {
		return fallback
	}
	return n
}

// ClampLen scales a down so its length does not exceed max
func (a Vec2) ClampLen(max float64) Vec2 {
	l := a.Len()
	if l <= max || l == 0 {
		return a
	}
	return a.Scale(max / l)
}

// Rect is an axis-aligned rectangle, Min inclusive, Max inclusive
type Rect struct {
	Min, Max Vec2
}

// Contains reports whether p lies inside r (edges included)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ClampPoint returns p moved inside r
func (r Rect) ClampPoint(p Vec2) Vec2 {
	return Vec2{Clamp(p.X, r.Min.X, r.Max.X), Clamp(p.Y, r.Min.Y, r.Max.Y)}
}

// Inset shrinks r by m on every side
func (r Rect) Inset(m float64) Rect {
	return Rect{Min: Vec2{r.Min.X + m, r.Min.Y + m}, Max: Vec2{r.Max.X - m, r.Max.Y - m}}
}

// SegmentCrossesX reports whether the segment a->b touches the vertical line x=lineX
// at a Y inside [top, bot].
func SegmentCrossesX(a, b Vec2, lineX, top, bot float64) bool {
	if (a.X < lineX && b.X < lineX) || (a.X > lineX && b.X > lineX) {
		return false
	}
	if a.X == b.X {
		return a.X == lineX && math.Min(a.Y, b.Y) <= bot && math.Max(a.Y, b.Y) >= top
	}
	t := (lineX - a.X) / (b.X - a.X)
	if t < 0 || t > 1 {
		return false
	}
	y := a.Y + (b.Y-a.Y)*t
	return y >= top && y <= bot
}
