package game

import "math"

// MovePlayer integrates the player along dir and clamps the result to the playfield.
func MovePlayer(p *Player, dir Vector2, dt float64, field Playfield) {
	if !dir.Finite() {
		dir = Vector2{}
	}
	p.Position = field.Clamp(p.Position.Add(dir.Scale(p.Speed * dt)))
}

// SteerPursuer moves the pursuer straight at the target's current position.
// There is no lead: the path curves as the target moves. A zero-length or
// non-finite bearing leaves the pursuer where it is.
func SteerPursuer(u *Pursuer, target Vector2, dt float64) {
	if !u.Active {
		return
	}
	d := target.Sub(u.Position)
	if d.X == 0 && d.Y == 0 {
		return
	}
	angle := math.Atan2(d.Y, d.X)
	if !finite(angle) {
		return
	}
	next := u.Position.Add(Vec(math.Cos(angle), math.Sin(angle)).Scale(u.CurrentSpeed * dt))
	if next.Finite() {
		u.Position = next
	}
}

// Knockback puts the pursuer dist units from the player, on the player->pursuer
// line past the pursuer. Coincident anchors use bearing 0.
func Knockback(u *Pursuer, from Vector2, dist float64) {
	d := u.Position.Sub(from)
	angle := 0.0
	if d.X != 0 || d.Y != 0 {
		angle = math.Atan2(d.Y, d.X)
	}
	u.Position = from.Add(Vec(math.Cos(angle), math.Sin(angle)).Scale(dist))
}
