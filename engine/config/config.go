// Package config loads tuning overrides and stored upgrade tiers from TOML.
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/1siamBot/kickoff/engine/core"
)

// LoadTuning overlays the file at path on the default constants. An empty
// path returns the defaults.
func LoadTuning(path string) (core.Tuning, error) {
	t := core.DefaultTuning()
	if path == "" {
		return t, nil
	}
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return t, errors.Wrapf(err, "load tuning %s", path)
	}
	if err := undecoded(md); err != nil {
		return t, errors.Wrapf(err, "load tuning %s", path)
	}
	if err := Validate(&t); err != nil {
		return t, errors.Wrapf(err, "load tuning %s", path)
	}
	return t, nil
}

// ParseTuning is LoadTuning for an in-memory document
func ParseTuning(doc string) (core.Tuning, error) {
	t := core.DefaultTuning()
	md, err := toml.Decode(doc, &t)
	if err != nil {
		return t, errors.Wrap(err, "parse tuning")
	}
	if err := undecoded(md); err != nil {
		return t, errors.Wrap(err, "parse tuning")
	}
	return t, errors.Wrap(Validate(&t), "parse tuning")
}

// Validate rejects constants the simulation cannot run with
func Validate(t *core.Tuning) error {
	switch {
	case t.Match.Step <= 0:
		return errors.Errorf("match.step must be positive, got %v", t.Match.Step)
	case t.Match.MaxStepsPerFrame < 1:
		return errors.Errorf("match.max_steps_per_frame must be at least 1, got %d", t.Match.MaxStepsPerFrame)
	case t.Match.Length < 0:
		return errors.Errorf("match.length must not be negative, got %v", t.Match.Length)
	case t.Field.Width <= 2*t.Field.Pad || t.Field.Height <= 2*t.Field.Pad:
		return errors.Errorf("field %vx%v is smaller than its padding", t.Field.Width, t.Field.Height)
	case t.Field.GoalWidth <= 0 || t.Field.GoalWidth >= t.Field.Height-2*t.Field.Pad:
		return errors.Errorf("field.goal_width %v does not fit the end line", t.Field.GoalWidth)
	case t.Restart.DelayMax < t.Restart.DelayMin:
		return errors.New("restart.delay_max is below restart.delay_min")
	case t.Keeper.MissChance < 0 || t.Keeper.MissChance > 1:
		return errors.Errorf("keeper.miss_chance %v is not a probability", t.Keeper.MissChance)
	}
	return nil
}

// LoadUpgrades reads the upgrade store. A missing path yields an empty table.
func LoadUpgrades(path string) (core.UpgradeTable, error) {
	var u core.UpgradeTable
	if path == "" {
		return u, nil
	}
	md, err := toml.DecodeFile(path, &u)
	if err != nil {
		return u, errors.Wrapf(err, "load upgrades %s", path)
	}
	if err := undecoded(md); err != nil {
		return u, errors.Wrapf(err, "load upgrades %s", path)
	}
	for k := range u.Players {
		if !validPlayerKey(k) {
			return u, errors.Errorf("load upgrades %s: bad player key %q", path, k)
		}
	}
	return u, nil
}

// validPlayerKey accepts "<team>-<role>"
func validPlayerKey(k string) bool {
	i := strings.LastIndexByte(k, '-')
	if i <= 0 {
		return false
	}
	_, ok := core.ParseRole(k[i+1:])
	return ok
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	sort.Strings(names)
	return errors.Errorf("unknown keys: %s", strings.Join(names, ", "))
}
