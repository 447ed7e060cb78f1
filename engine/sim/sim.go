// Package sim wires a match with the full step pipeline.
package sim

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/1siamBot/kickoff/engine/ai"
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
	"github.com/1siamBot/kickoff/engine/systems"
)

type options struct {
	tune     core.Tuning
	rnd      geom.Source
	logger   *log.Logger
	upgrades *core.UpgradeTable
	humans   int
}

// Option configures New
type Option func(*options)

// WithTuning replaces the default constants
func WithTuning(t core.Tuning) Option {
	return func(o *options) { o.tune = t }
}

// WithSeed makes the match reproducible
func WithSeed(seed int64) Option {
	return func(o *options) { o.rnd = rand.New(rand.NewSource(seed)) }
}

// WithSource injects a random source, mostly for tests
func WithSource(src geom.Source) Option {
	return func(o *options) { o.rnd = src }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithUpgrades applies stored upgrade tiers
func WithUpgrades(u core.UpgradeTable) Option {
	return func(o *options) { o.upgrades = &u }
}

// WithHumans sets how many teams are human driven (0, 1 or 2)
func WithHumans(n int) Option {
	return func(o *options) { o.humans = n }
}

// New builds a match ready to kick off, with AI and every system installed
func New(opts ...Option) *core.Match {
	o := options{tune: core.DefaultTuning(), humans: 1}
	for _, fn := range opts {
		fn(&o)
	}

	m := core.NewMatch(o.tune, o.rnd)
	if o.logger != nil {
		m.Log = o.logger.With("match", m.ID.String()[:8])
	}
	if o.upgrades != nil {
		m.ApplyUpgrades(*o.upgrades)
	}
	m.Humans = int(geom.Clamp(float64(o.humans), 0, 2))
	m.AssignControllers()

	m.AddSystem(&ai.AISystem{})
	systems.Install(m)
	m.Log.Info("match ready", "humans", m.Humans, "length", o.tune.Match.Length)
	return m
}

// Run advances m by whole steps until seconds of match time have elapsed or
// the match reaches full time. It returns the number of steps taken.
func Run(m *core.Match, seconds float64) int {
	dt := m.Tune.Match.Step
	n := 0
	for t := 0.0; t < seconds && m.Phase != core.PhaseFullTime; t += dt {
		m.AdvanceStep(dt)
		n++
	}
	return n
}
