package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// SegmentEnd returns origin + normalize(direction) * length.
// A zero direction collapses the segment onto its origin.
func SegmentEnd(origin, direction dmath.Vec2, length float64) dmath.Vec2 {
	d := Normalize(direction)
	if d.X == 0 && d.Y == 0 {
		return origin
	}
	return Add(origin, Scale(d, length))
}

// ClosestOnSegment projects p onto the segment [a, b] and returns the nearest
// point on the segment together with the scalar projection t along a→b.
func ClosestOnSegment(a, b, p dmath.Vec2) (closest dmath.Vec2, t float64) {
	seg := Sub(b, a)
	length := Length(seg)
	d := Normalize(seg)
	t = Dot(Sub(p, a), d)

	switch {
	case t < 0:
		return a, t
	case t > length:
		return b, t
	default:
		return Add(a, Scale(d, t)), t
	}
}

// DistanceToSegment is the minimum distance from p to the segment [a, b].
func DistanceToSegment(a, b, p dmath.Vec2) float64 {
	closest, _ := ClosestOnSegment(a, b, p)
	return Distance(closest, p)
}

// SegmentIntersectsCircle reports whether the segment [a, b] touches the circle.
// Both segment ends are inclusive, and a zero-length segment is tested as a point.
func SegmentIntersectsCircle(a, b, center dmath.Vec2, radius float64) bool {
	seg := Sub(b, a)
	length := Length(seg)
	d := Normalize(seg)
	t := Dot(Sub(center, a), d)

	// projection too far outside the segment to reach the circle
	if t < -radius || t > length+radius {
		return false
	}

	var closest dmath.Vec2
	switch {
	case t < 0:
		closest = a
	case t > length:
		closest = b
	default:
		closest = Add(a, Scale(d, t))
	}
	return Distance(closest, center) <= radius
}
