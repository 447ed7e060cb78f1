package core

import "github.com/1siamBot/kickoff/engine/geom"

// Tuning holds every numeric constant of the simulation. Units: pixels,
// pixels per step for velocities, seconds for timers.
type Tuning struct {
	Field   FieldTuning   `toml:"field"`
	Ball    BallTuning    `toml:"ball"`
	Player  PlayerTuning  `toml:"player"`
	Pass    PassTuning    `toml:"pass"`
	Shot    ShotTuning    `toml:"shot"`
	Tackle  TackleTuning  `toml:"tackle"`
	Keeper  KeeperTuning  `toml:"keeper"`
	Restart RestartTuning `toml:"restart"`
	Match   MatchTuning   `toml:"match"`
	Input   InputTuning   `toml:"input"`
	Upgrade UpgradeTuning `toml:"upgrade"`
}

type FieldTuning struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Pad         float64 `toml:"pad"`
	Safe        float64 `toml:"safe"`
	GoalWidth   float64 `toml:"goal_width"`
	GoalKeepOut float64 `toml:"goal_keep_out"`
}

type BallTuning struct {
	Radius        float64 `toml:"radius"`
	Friction      float64 `toml:"friction"`
	CurveDecay    float64 `toml:"curve_decay"`
	KickCooldown  float64 `toml:"kick_cooldown"`
	KnockCooldown float64 `toml:"knock_cooldown"`
	DribbleLead   float64 `toml:"dribble_lead"`
	KickoffOffset float64 `toml:"kickoff_offset"`
}

type PlayerTuning struct {
	Radius             float64 `toml:"radius"`
	GrabDist           float64 `toml:"grab_dist"`
	AccelBase          float64 `toml:"accel_base"`
	IntentDamping      float64 `toml:"intent_damping"`
	CarryDamping       float64 `toml:"carry_damping"`
	MaxSpeedBase       float64 `toml:"max_speed_base"`
	MaxSpeedScale      float64 `toml:"max_speed_scale"`
	DribbleSpeedFactor float64 `toml:"dribble_speed_factor"`
	DribbleAccelFactor float64 `toml:"dribble_accel_factor"`
	MaxEffort          float64 `toml:"max_effort"`
	SeparationRadius   float64 `toml:"separation_radius"`
	SeparationGain     float64 `toml:"separation_gain"`
	SeparationSlop     float64 `toml:"separation_slop"`
}

type PassTuning struct {
	MinDist         float64 `toml:"min_dist"`
	RangeNormal     float64 `toml:"range_normal"`
	RangeThrough    float64 `toml:"range_through"`
	ConeDeg         float64 `toml:"cone_deg"`
	ScoreForward    float64 `toml:"score_forward"`
	ScoreStriker    float64 `toml:"score_striker"`
	SpeedNormal     float64 `toml:"speed_normal"`
	SpeedThrough    float64 `toml:"speed_through"`
	FrictionNormal  float64 `toml:"friction_normal"`
	FrictionThrough float64 `toml:"friction_through"`
	AssistNormal    float64 `toml:"assist_normal"`
	AssistThrough   float64 `toml:"assist_through"`

	// lead = clamp(d*LeadK, LeadMin, LeadMax) along the receiver's facing
	LeadNormalK    float64 `toml:"lead_normal_k"`
	LeadNormalMin  float64 `toml:"lead_normal_min"`
	LeadNormalMax  float64 `toml:"lead_normal_max"`
	LeadThroughK   float64 `toml:"lead_through_k"`
	LeadThroughMin float64 `toml:"lead_through_min"`
	LeadThroughMax float64 `toml:"lead_through_max"`
	SpeedDistDiv   float64 `toml:"speed_dist_div"`
	SpeedMin       float64 `toml:"speed_min"`
	SpeedMax       float64 `toml:"speed_max"`
}

type ShotTuning struct {
	SpeedScale float64 `toml:"speed_scale"`
	Range      float64 `toml:"range"`
	CloseRange float64 `toml:"close_range"`
	AimBeyond  float64 `toml:"aim_beyond"`
	PostInset  float64 `toml:"post_inset"`
	ChargeMin  float64 `toml:"ai_charge_min"`
	ChargeMax  float64 `toml:"ai_charge_max"`

	// speed = (PowerMin + (PowerMax-PowerMin)*charge) * shot * SpeedScale
	PowerMin      float64 `toml:"power_min"`
	PowerMax      float64 `toml:"power_max"`
	PowerCap      float64 `toml:"power_cap"`
	MidBoost      float64 `toml:"mid_boost"`
	FrictionClose float64 `toml:"friction_close"`
	FrictionMid   float64 `toml:"friction_mid"`
	FrictionLong  float64 `toml:"friction_long"`
	CurveBase     float64 `toml:"curve_base"`
	CurveCharge   float64 `toml:"curve_charge"`
	Dip           float64 `toml:"dip"`
	AimDeadZone   float64 `toml:"aim_dead_zone"`
	AimLerp       float64 `toml:"aim_lerp"`
}

type TackleTuning struct {
	Speed    float64 `toml:"speed"`
	Cooldown float64 `toml:"cooldown"`
}

type KeeperTuning struct {
	LineOffset float64 `toml:"line_offset"`
	GrabBonus  float64 `toml:"grab_bonus"`
	PunchZone  float64 `toml:"punch_zone"`
	PunchDist  float64 `toml:"punch_dist"`
	PunchSpeed float64 `toml:"punch_speed"`
	PunchMin   float64 `toml:"punch_min"`
	PunchMax   float64 `toml:"punch_max"`
	HoldTime   float64 `toml:"hold_time"`
	BoxDepth   float64 `toml:"box_depth"`
	BoxHeight  float64 `toml:"box_height"`
	MissChance float64 `toml:"miss_chance"`
}

type RestartTuning struct {
	DelayMin       float64 `toml:"delay_min"`
	DelayMax       float64 `toml:"delay_max"`
	OutCooldown    float64 `toml:"out_cooldown"`
	ThrowInProtect float64 `toml:"throw_in_protect"`
	GoalPause      float64 `toml:"goal_pause"`
	Standoff       float64 `toml:"standoff"`
	AllyEffort     float64 `toml:"ally_effort"`
	OpponentEffort float64 `toml:"opponent_effort"`
}

type MatchTuning struct {
	Step             float64 `toml:"step"`
	MaxStepsPerFrame int     `toml:"max_steps_per_frame"`
	MaxFrameTime     float64 `toml:"max_frame_time"`
	Length           float64 `toml:"length"`
}

type InputTuning struct {
	ThroughHold    float64 `toml:"through_hold"`
	ShotChargeTime float64 `toml:"shot_charge_time"`
}

type UpgradeTuning struct {
	Step    float64 `toml:"step"`
	MaxTier int     `toml:"max_tier"`
}

// DefaultTuning returns the reference constants
func DefaultTuning() Tuning {
	return Tuning{
		Field: FieldTuning{
			Width: 1100, Height: 680, Pad: 20, Safe: 28,
			GoalWidth: 120, GoalKeepOut: 14,
		},
		Ball: BallTuning{
			Radius: 6, Friction: 0.982, CurveDecay: 0.982,
			KickCooldown: 0.25, KnockCooldown: 0.2,
			DribbleLead: 10, KickoffOffset: 40,
		},
		Player: PlayerTuning{
			Radius: 12, GrabDist: 16,
			AccelBase: 0.22, IntentDamping: 0.84, CarryDamping: 0.92,
			MaxSpeedBase: 0.8, MaxSpeedScale: 1.30,
			DribbleSpeedFactor: 0.9, DribbleAccelFactor: 1.2,
			MaxEffort: 6,
			SeparationRadius: 28, SeparationGain: 0.35, SeparationSlop: 0.5,
		},
		Pass: PassTuning{
			MinDist: 26, RangeNormal: 300, RangeThrough: 360, ConeDeg: 35,
			ScoreForward: 12, ScoreStriker: 14,
			SpeedNormal: 0.39, SpeedThrough: 0.62,
			FrictionNormal: 0.987, FrictionThrough: 0.992,
			AssistNormal: 0.8, AssistThrough: 1.2,
			LeadNormalK: 0.11, LeadNormalMin: 8, LeadNormalMax: 18,
			LeadThroughK: 0.22, LeadThroughMin: 20, LeadThroughMax: 44,
			SpeedDistDiv: 0.6, SpeedMin: 4.2, SpeedMax: 9.2,
		},
		Shot: ShotTuning{
			SpeedScale: 1.30, Range: 260, CloseRange: 120,
			AimBeyond: 4, PostInset: 8,
			ChargeMin: 0.5, ChargeMax: 0.9,
			PowerMin: 3.2, PowerMax: 6.1, PowerCap: 1.02, MidBoost: 1.06,
			FrictionClose: 0.986, FrictionMid: 0.987, FrictionLong: 0.988,
			CurveBase: 0.36, CurveCharge: 0.22, Dip: 0.01,
			AimDeadZone: 0.2, AimLerp: 0.85,
		},
		Tackle: TackleTuning{Speed: 7.0, Cooldown: 0.5},
		Keeper: KeeperTuning{
			LineOffset: 16, GrabBonus: 4,
			PunchZone: 60, PunchDist: 30, PunchSpeed: 3.4, PunchMin: 3.8, PunchMax: 5.2,
			HoldTime: 0.28, BoxDepth: 70, BoxHeight: 340, MissChance: 0.5,
		},
		Restart: RestartTuning{
			DelayMin: 0.5, DelayMax: 1.1, OutCooldown: 0.25,
			ThrowInProtect: 0.8, GoalPause: 0.9, Standoff: 40,
			AllyEffort: 0.12 / 0.18, OpponentEffort: 0.11 / 0.18,
		},
		Match: MatchTuning{
			Step: 1.0 / 60, MaxStepsPerFrame: 8, MaxFrameTime: 0.25,
			Length: 180,
		},
		Input:   InputTuning{ThroughHold: 0.35, ShotChargeTime: 0.9},
		Upgrade: UpgradeTuning{Step: 0.04, MaxTier: 5},
	}
}

// Bounds is the field of play
func (t *Tuning) Bounds() geom.Rect {
	p := t.Field.Pad
	return geom.Rect{Min: geom.V(p, p), Max: geom.V(t.Field.Width-p, t.Field.Height-p)}
}

func (t *Tuning) Center() geom.Vec2 {
	return geom.V(t.Field.Width/2, t.Field.Height/2)
}

// GoalTop and GoalBottom bound the goal mouth
func (t *Tuning) GoalTop() float64    { return t.Field.Height/2 - t.Field.GoalWidth/2 }
func (t *Tuning) GoalBottom() float64 { return t.Field.Height/2 + t.Field.GoalWidth/2 }

// GoalLineX is the end line of the goal defended by side
func (t *Tuning) GoalLineX(defender Side) float64 {
	b := t.Bounds()
	if defender == Left {
		return b.Min.X
	}
	return b.Max.X
}

// KeeperBox is the area in which side's keeper always claims the ball
func (t *Tuning) KeeperBox(defender Side) geom.Rect {
	b := t.Bounds()
	top := t.Field.Height/2 - t.Keeper.BoxHeight/2
	bot := t.Field.Height/2 + t.Keeper.BoxHeight/2
	if defender == Left {
		return geom.Rect{Min: geom.V(b.Min.X, top), Max: geom.V(b.Min.X+t.Keeper.BoxDepth, bot)}
	}
	return geom.Rect{Min: geom.V(b.Max.X-t.Keeper.BoxDepth, top), Max: geom.V(b.Max.X, bot)}
}

// PlayArea is where a player's centre may be
func (t *Tuning) PlayArea() geom.Rect {
	return t.Bounds().Inset(t.Player.Radius)
}

// AimArea is where pass aim points are clamped to
func (t *Tuning) AimArea() geom.Rect {
	return t.Bounds().Inset(t.Field.Safe)
}
