package game

// MemberDeference is the instant-death law. The first contact freezes the
// player and opens the recovery branch; later contacts do nothing.
type MemberDeference struct {
	HasCollided bool `json:"has_collided"`
	Recovered   bool `json:"recovered"`
}

func (m *MemberDeference) Variant() Variant { return VariantMemberDeference }
func (m *MemberDeference) Title() string    { return ">> MEMBER DEFERENCE <<" }
func (m *MemberDeference) Label() string    { return "MEMBER DEFERENCE" }
func (m *MemberDeference) Subtitle() string { return "!!! ONE HIT = DEATH !!!" }

func (m *MemberDeference) Setup(st *State) {
	m.HasCollided = false
	m.Recovered = false
	st.Pursuer.BaseSpeed = DeferenceSpeed
	st.Pursuer.CurrentSpeed = DeferenceSpeed
}

// OnFrame keeps the pursuer at its fixed speed; it never ramps.
func (m *MemberDeference) OnFrame(st *State, dt float64) {
	st.Pursuer.HuntTimer += dt
	st.Pursuer.CurrentSpeed = DeferenceSpeed
}

func (m *MemberDeference) OnCollision(st *State) Verdict {
	if m.HasCollided {
		return VerdictNone
	}
	m.HasCollided = true
	st.Player.Freeze()
	st.Player.Alive = false
	return VerdictRecovery
}

func (m *MemberDeference) Lost(*State) bool {
	return false
}

func (m *MemberDeference) Score(*State) float64 {
	if m.Recovered {
		return RecoveryScore
	}
	return DeferenceBaseScore
}

// Recover removes the pursuer and restores the building.
func (m *MemberDeference) Recover(st *State) bool {
	if !m.HasCollided || m.Recovered {
		return false
	}
	m.Recovered = true
	st.Pursuer.Remove()
	st.Player.Alive = true
	return true
}

// Warning flags the pursuer closing in before the first contact.
func (m *MemberDeference) Warning(st *State) bool {
	return !m.HasCollided && st.Pursuer.Active && InWarningRange(st.Player.Position, st.Pursuer.Position)
}
