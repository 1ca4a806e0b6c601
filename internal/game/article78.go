package game

import "math"

// Article78 is the slowdown law: every contact compounds a slowdown on the
// player and on the pursuer's base speed.
type Article78 struct {
	SlowdownFactor float64 `json:"slowdown_factor"`
}

func (a *Article78) Variant() Variant { return VariantArticle78 }
func (a *Article78) Title() string    { return ">> ARTICLE 78 <<" }
func (a *Article78) Label() string    { return "ARTICLE 78" }
func (a *Article78) Subtitle() string { return "[ SLOWDOWN LAW // AVOID CONTACT ]" }

func (a *Article78) Setup(st *State) {
	a.SlowdownFactor = 1.0
	// Spawns further away than the other laws.
	st.Pursuer.Position = Vec(80, st.Field.Height-100)
}

func (a *Article78) OnFrame(st *State, dt float64) {
	st.Pursuer.Ramp(st.Pursuer.BaseSpeed, dt)
}

func (a *Article78) OnCollision(st *State) Verdict {
	a.SlowdownFactor *= SlowdownDecay
	st.Player.Speed = math.Max(SlowdownMinSpeed, PlayerSpeed*a.SlowdownFactor)

	Knockback(st.Pursuer, st.Player.Position, SlowdownKnockback)
	st.Pursuer.BaseSpeed *= SlowdownDecay
	st.Pursuer.Restart(st.Pursuer.BaseSpeed)
	return VerdictNone
}

// Lost fires once the player is effectively frozen at the speed floor.
func (a *Article78) Lost(st *State) bool {
	return st.Player.Speed <= SlowdownFrozenAt
}

func (a *Article78) Score(*State) float64 {
	return a.SlowdownFactor * 100
}
