package game

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// Collides reports whether two anchor points are closer than CollisionDistance.
// Visual scale never enters the check.
func Collides(a, b Vector2) bool {
	return a.DistanceTo(b) < CollisionDistance
}

// InWarningRange reports whether b is close to a without touching it.
func InWarningRange(a, b Vector2) bool {
	d := a.DistanceTo(b)
	return d >= CollisionDistance && d < WarningDistance
}
