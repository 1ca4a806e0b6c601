package game

import "math"

// Vector2 is a point or direction on the playfield.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vector2) Finite() bool {
	return finite(v.X) && finite(v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
