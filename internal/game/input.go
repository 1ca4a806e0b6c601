package game

import "math"

// KeyState holds the four direction flags.
type KeyState struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Axis returns -1, 0 or +1 per axis. Left beats right and up beats down.
func (k KeyState) Axis() (int, int) {
	x, y := 0, 0
	if k.Left {
		x = -1
	} else if k.Right {
		x = 1
	}
	if k.Up {
		y = -1
	} else if k.Down {
		y = 1
	}
	return x, y
}

// Direction applies the fixed diagonal rule: both axes set divides each by sqrt(2).
func (k KeyState) Direction() Vector2 {
	x, y := k.Axis()
	dir := Vec(float64(x), float64(y))
	if x != 0 && y != 0 {
		dir = dir.Scale(1 / math.Sqrt2)
	}
	return dir
}

// Joystick is the on-screen stick driven by pointer drags.
type Joystick struct {
	Anchor      Vector2
	BaseRadius  float64
	ThumbRadius float64
	Pointer     Vector2
	Dragging    bool
}

// NewJoystick places a stick of the default size at anchor.
func NewJoystick(anchor Vector2) Joystick {
	return Joystick{
		Anchor:      anchor,
		BaseRadius:  JoystickBaseRadius,
		ThumbRadius: JoystickThumbRadius,
		Pointer:     anchor,
	}
}

// Press starts a drag if p lands on the stick. Returns whether the pointer was captured.
func (j *Joystick) Press(p Vector2) bool {
	if j.Anchor.DistanceTo(p) > j.BaseRadius*JoystickCapture {
		return false
	}
	j.Dragging = true
	j.Pointer = p
	return true
}

// Drag updates the pointer while a drag is in progress.
func (j *Joystick) Drag(p Vector2) {
	if j.Dragging {
		j.Pointer = p
	}
}

func (j *Joystick) Release() {
	j.Dragging = false
	j.Pointer = j.Anchor
}

// Reach is the maximum thumb travel from the anchor.
func (j *Joystick) Reach() float64 {
	return math.Max(0, j.BaseRadius-j.ThumbRadius)
}

// Vector returns the drag vector: the pointer distance is clamped to the reach
// and anything at or under the activation threshold is zero.
func (j *Joystick) Vector() Vector2 {
	if !j.Dragging {
		return Vector2{}
	}
	d := j.Pointer.Sub(j.Anchor)
	dist := math.Min(d.Len(), j.Reach())
	if dist <= JoystickActivation {
		return Vector2{}
	}
	angle := math.Atan2(d.Y, d.X)
	return Vec(math.Cos(angle), math.Sin(angle)).Scale(dist)
}

// Input merges keyboard flags and the virtual joystick.
type Input struct {
	Keys     KeyState
	Joystick Joystick
}

// NewInput returns an idle input bound to the playfield's joystick anchor.
func NewInput(field Playfield) *Input {
	return &Input{Joystick: NewJoystick(field.JoystickAnchor())}
}

// Reset clears every flag and releases the stick.
func (in *Input) Reset(field Playfield) {
	in.Keys = KeyState{}
	in.Joystick = NewJoystick(field.JoystickAnchor())
}

// Direction returns this frame's movement direction, magnitude <= 1.
// An active joystick overrides the keyboard.
func (in *Input) Direction() Vector2 {
	v := in.Joystick.Vector()
	if l := v.Len(); l > 0 {
		return v.Scale(1 / l)
	}
	return in.Keys.Direction()
}
