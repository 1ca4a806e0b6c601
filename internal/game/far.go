package game

import "math"

// FAR is the shrink law: every contact shrinks the building, and the tenth
// contact ends the round whatever the remaining scale.
type FAR struct {
	BuildingScale  float64 `json:"building_scale"`
	CollisionCount int     `json:"collision_count"`
}

func (f *FAR) Variant() Variant { return VariantFAR }
func (f *FAR) Title() string    { return "F.A.R. LIMIT" }
func (f *FAR) Label() string    { return "F.A.R." }
func (f *FAR) Subtitle() string { return "SHRINK LAW - DON'T DISAPPEAR" }

func (f *FAR) Setup(st *State) {
	f.BuildingScale = PlayerScale
	f.CollisionCount = 0
	st.Player.Scale = f.BuildingScale
}

// OnFrame ramps the pursuer relative to the player's speed, not its own base.
func (f *FAR) OnFrame(st *State, dt float64) {
	st.Pursuer.Ramp(st.Player.Speed, dt)
}

func (f *FAR) OnCollision(st *State) Verdict {
	f.CollisionCount++
	f.BuildingScale = math.Max(ShrinkMinScale, f.BuildingScale*ShrinkDecay)
	st.Player.Scale = f.BuildingScale

	Knockback(st.Pursuer, st.Player.Position, ShrinkKnockback)
	st.Pursuer.Restart(st.Player.Speed)
	return VerdictNone
}

func (f *FAR) Lost(*State) bool {
	return f.CollisionCount >= ShrinkMaxContact
}

func (f *FAR) Score(*State) float64 {
	return f.BuildingScale / PlayerScale * 100
}
