package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormDegenerate(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Norm())
	assert.Equal(t, V(1, 0), Vec2{}.NormOr(V(1, 0)))
	assert.Equal(t, Vec2{}, V(math.NaN(), 1).Norm())

	n := V(3, 4).Norm()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
}

func TestClampLen(t *testing.T) {
	v := V(30, 40).ClampLen(5)
	assert.InDelta(t, 5.0, v.Len(), 1e-12)
	assert.Equal(t, V(1, 1), V(1, 1).ClampLen(5))
}

func TestSegmentCrossesX(t *testing.T) {
	cases := []struct {
		name string
		a, b Vec2
		want bool
	}{
		{"through mouth", V(25, 340), V(15, 340), true},
		{"above mouth", V(25, 200), V(15, 200), false},
		{"stops short", V(30, 340), V(21, 340), false},
		{"lands on line", V(25, 300), V(20, 300), true},
		{"vertical on line", V(20, 250), V(20, 290), true},
		{"diagonal entering range", V(40, 260), V(0, 300), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SegmentCrossesX(c.a, c.b, 20, 280, 400))
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{Min: V(20, 20), Max: V(1080, 660)}
	assert.True(t, r.Contains(V(20, 660)))
	assert.False(t, r.Contains(V(19.9, 100)))
	assert.Equal(t, V(48, 632), r.Inset(28).ClampPoint(V(0, 700)))
}

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestScalars(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 7.5, Lerp(5, 10, 0.5))
	assert.Equal(t, 0.0, Approach(0.01, 1.0/60))
	assert.InDelta(t, 0.8, RandRange(fixed(0.5), 0.5, 1.1), 1e-12)
}
