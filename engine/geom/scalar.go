package geom

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates from a to b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves v toward zero by step without crossing it
func Approach(v, step float64) float64 {
	return math.Max(0, v-step)
}

// Source is the random source used by the simulation. *rand.Rand satisfies it;
// tests inject fixed sequences.
type Source interface {
	Float64() float64
}

// RandRange returns a uniform value in [a, b)
func RandRange(r Source, a, b float64) float64 {
	return a + r.Float64()*(b-a)
}
