// Package geom holds the 2D vector math used by the simulation.
package geom

import "math"

// Vec2 is a 2D float vector. It is a plain value type.
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// FromAngle returns the vector of the given length pointing along theta (radians).
func FromAngle(theta, length float64) Vec2 {
	return Vec2{X: math.Cos(theta) * length, Y: math.Sin(theta) * length}
}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2   { return Vec2{X: v.X * k, Y: v.Y * k} }
func (v Vec2) Div(k float64) Vec2     { return Vec2{X: v.X / k, Y: v.Y / k} }
func (v Vec2) Eq(o Vec2) bool         { return v.X == o.X && v.Y == o.Y }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64    { return math.Hypot(v.X-o.X, v.Y-o.Y) }
func (v Vec2) Angle() float64         { return math.Atan2(v.Y, v.X) }
func (v Vec2) AngleTo(o Vec2) float64 { return math.Atan2(o.Y-v.Y, o.X-v.X) }

// CirclesOverlap reports whether two circles touch or overlap. Touching counts.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Dist(b) <= ra+rb
}
