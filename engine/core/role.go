package core

import "fmt"

// Side is the half a team defends; it fixes attack direction and goal assignment
type Side uint8

const (
	Left Side = iota
	Right
)

// Dir is +1 when attacking toward increasing X
func (s Side) Dir() float64 {
	if s == Left {
		return 1
	}
	return -1
}

func (s Side) Opp() Side { return 1 - s }

func (s Side) String() string {
	if s == Left {
		return "L"
	}
	return "R"
}

// Role is a player's formation slot, fixed at spawn
type Role uint8

const (
	GK Role = iota
	LB
	LCB
	RCB
	RB
	CDM
	CM
	CAM
	LW
	ST
	RW
	RoleCount
)

var roleNames = [RoleCount]string{"GK", "LB", "LCB", "RCB", "RB", "CDM", "CM", "CAM", "LW", "ST", "RW"}

func (r Role) String() string {
	if r < RoleCount {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// ParseRole maps a role name back to its Role
func ParseRole(s string) (Role, bool) {
	for i, n := range roleNames {
		if n == s {
			return Role(i), true
		}
	}
	return 0, false
}

func (r Role) IsKeeper() bool     { return r == GK }
func (r Role) IsWinger() bool     { return r == LW || r == RW }
func (r Role) IsCentreBack() bool { return r == LCB || r == RCB }

// IsDeep reports roles that recycle possession with a short pass
func (r Role) IsDeep() bool {
	switch r {
	case CDM, CM, LCB, RCB, LB, RB:
		return true
	}
	return false
}

// Profile scales a player's movement, shooting and tackling
type Profile struct {
	Speed  float64
	Shot   float64
	Tackle float64
	Reach  float64 // tackle range in pixels
}

// RoleProfiles is the base profile per role
var RoleProfiles = [RoleCount]Profile{
	GK:  {Speed: 0.95, Shot: 0.50, Tackle: 0.95, Reach: 24},
	LB:  {Speed: 1.16, Shot: 0.70, Tackle: 1.10, Reach: 27},
	LCB: {Speed: 1.10, Shot: 0.60, Tackle: 1.28, Reach: 26},
	RCB: {Speed: 1.10, Shot: 0.60, Tackle: 1.28, Reach: 26},
	RB:  {Speed: 1.16, Shot: 0.70, Tackle: 1.10, Reach: 27},
	CDM: {Speed: 1.00, Shot: 1.00, Tackle: 1.15, Reach: 27},
	CM:  {Speed: 1.05, Shot: 1.02, Tackle: 1.05, Reach: 27},
	CAM: {Speed: 1.08, Shot: 1.12, Tackle: 0.95, Reach: 24},
	LW:  {Speed: 1.30, Shot: 1.12, Tackle: 0.80, Reach: 24},
	ST:  {Speed: 1.18, Shot: 1.22, Tackle: 0.75, Reach: 24},
	RW:  {Speed: 1.30, Shot: 1.12, Tackle: 0.80, Reach: 24},
}

// Slot is one formation anchor for the left team, as fractions of the canvas
// height and absolute X from the own end of the canvas.
type Slot struct {
	Role Role
	X    float64
	YFr  float64
}

// Formation is the 4-3-3 used by both teams, listed in jersey order
var Formation = []Slot{
	{GK, 60, 0.50},
	{LB, 180, 0.76}, {LCB, 220, 0.60}, {RCB, 220, 0.40}, {RB, 180, 0.24},
	{CDM, 300, 0.50}, {CM, 340, 0.35}, {CAM, 360, 0.65},
	{LW, 520, 0.22}, {ST, 560, 0.50}, {RW, 520, 0.78},
}
