package sensor

import (
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// Reading is one frame of gaze and gesture output. Nil positions are unknown.
type Reading struct {
	FaceDetected  bool
	LeftEye       *dmath.Vec2
	RightEye      *dmath.Vec2
	Gaze          *dmath.Vec2
	TriggerActive bool
}

// Source produces a reading for the frame at now
type Source interface {
	Read(now time.Duration) Reading
}

// SourceFunc adapts a function to Source
type SourceFunc func(now time.Duration) Reading

func (f SourceFunc) Read(now time.Duration) Reading {
	return f(now)
}

// Static always returns the same reading
type Static Reading

func (s Static) Read(time.Duration) Reading {
	return Reading(s)
}

// Clone returns a deep copy so the reading can be handed across goroutines.
func (r Reading) Clone() Reading {
	r.LeftEye = cloneVec(r.LeftEye)
	r.RightEye = cloneVec(r.RightEye)
	r.Gaze = cloneVec(r.Gaze)
	return r
}

func cloneVec(v *dmath.Vec2) *dmath.Vec2 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
