package game

// Player is the "building" the user steers.
type Player struct {
	Position Vector2 `json:"position"`
	Speed    float64 `json:"speed"`
	Scale    float64 `json:"scale"`
	Alive    bool    `json:"alive"`
}

// NewPlayer returns a player at the playfield spawn point.
func NewPlayer(field Playfield) *Player {
	p := &Player{}
	p.Reset(field)
	return p
}

func (p *Player) Reset(field Playfield) {
	p.Position = field.PlayerSpawn()
	p.Speed = PlayerSpeed
	p.Scale = PlayerScale
	p.Alive = true
}

func (p *Player) Freeze() {
	p.Speed = 0
}

// Pursuer is the "law" that chases the player.
type Pursuer struct {
	Position     Vector2 `json:"position"`
	BaseSpeed    float64 `json:"base_speed"`
	CurrentSpeed float64 `json:"current_speed"`
	HuntTimer    float64 `json:"hunt_timer"` // seconds since the last contact
	Active       bool    `json:"active"`
}

// NewPursuer returns a pursuer at the default spawn point.
func NewPursuer(field Playfield) *Pursuer {
	u := &Pursuer{}
	u.Reset(field)
	return u
}

func (u *Pursuer) Reset(field Playfield) {
	u.Position = field.PursuerSpawn()
	u.BaseSpeed = PursuerSpeed
	u.CurrentSpeed = PursuerSpeed
	u.HuntTimer = 0
	u.Active = true
}

// Ramp advances the hunt timer and sets CurrentSpeed along the 90%..110% ramp of ref.
func (u *Pursuer) Ramp(ref, dt float64) {
	u.HuntTimer += dt
	progress := u.HuntTimer / HuntRampTime
	if progress > 1 {
		progress = 1
	}
	u.CurrentSpeed = ref * (HuntRampStart + HuntRampSpan*progress)
}

// Restart resets the hunt after a contact.
func (u *Pursuer) Restart(ref float64) {
	u.HuntTimer = 0
	u.CurrentSpeed = HuntRampStart * ref
}

func (u *Pursuer) Remove() {
	u.Active = false
	u.CurrentSpeed = 0
}
