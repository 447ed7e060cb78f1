package core

import "fmt"

// Upgrade is a triple of integer tiers supplied by an external store
type Upgrade struct {
	Speed  int `toml:"speed"`
	Shot   int `toml:"shot"`
	Tackle int `toml:"tackle"`
}

// Multipliers turns tiers into profile multipliers, clamping each tier to [0, MaxTier]
func (u Upgrade) Multipliers(t UpgradeTuning) Profile {
	m := func(tier int) float64 {
		if tier < 0 {
			tier = 0
		}
		if tier > t.MaxTier {
			tier = t.MaxTier
		}
		return 1 + t.Step*float64(tier)
	}
	return Profile{Speed: m(u.Speed), Shot: m(u.Shot), Tackle: m(u.Tackle), Reach: 1}
}

// UpgradeTable is the store's view: team aggregates keyed by team name and
// individual tiers keyed by PlayerKey.
type UpgradeTable struct {
	Teams   map[string]Upgrade `toml:"teams"`
	Players map[string]Upgrade `toml:"players"`
}

// PlayerKey identifies a player in the upgrade store, e.g. "A-ST"
func PlayerKey(team string, r Role) string {
	return fmt.Sprintf("%s-%s", team, r)
}

func (p Profile) mul(o Profile) Profile {
	return Profile{
		Speed:  p.Speed * o.Speed,
		Shot:   p.Shot * o.Shot,
		Tackle: p.Tackle * o.Tackle,
		Reach:  p.Reach * o.Reach,
	}
}
