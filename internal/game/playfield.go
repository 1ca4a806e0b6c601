package game

// Playfield is the rectangle the player is confined to. Top is layout-defined
// (the HUD sits above it).
type Playfield struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Top    float64 `json:"top"`
}

// DefaultPlayfield returns the 800x600 layout with the HUD band on top.
func DefaultPlayfield() Playfield {
	return Playfield{Width: DefaultWidth, Height: DefaultHeight, Top: DefaultTop}
}

func (f Playfield) MinX() float64 { return PlayfieldMargin }
func (f Playfield) MaxX() float64 { return f.Width - PlayfieldMargin }
func (f Playfield) MinY() float64 { return f.Top }
func (f Playfield) MaxY() float64 { return f.Height - PlayfieldBottomMargin }

// Clamp clamps a position into the playfield. A NaN component lands on the lower bound.
func (f Playfield) Clamp(p Vector2) Vector2 {
	return Vector2{
		X: clamp(p.X, f.MinX(), f.MaxX()),
		Y: clamp(p.Y, f.MinY(), f.MaxY()),
	}
}

// ClampScreen clamps a raw pointer position to the visible canvas.
func (f Playfield) ClampScreen(p Vector2) Vector2 {
	return Vector2{
		X: clamp(p.X, 0, f.Width),
		Y: clamp(p.Y, 0, f.Height),
	}
}

// PlayerSpawn is the centre of the canvas.
func (f Playfield) PlayerSpawn() Vector2 {
	return f.Clamp(Vec(f.Width/2, f.Height/2))
}

// PursuerSpawn is the default top-left pursuer spawn.
func (f Playfield) PursuerSpawn() Vector2 {
	return Vec(100, 200)
}

// JoystickAnchor sits in the bottom-left corner of the canvas.
func (f Playfield) JoystickAnchor() Vector2 {
	return Vec(JoystickInset, f.Height-JoystickInset)
}

func clamp(v, lo, hi float64) float64 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
