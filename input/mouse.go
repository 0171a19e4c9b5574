package input

import (
	"time"

	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/sensor"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// MouseSensor stands in for a camera: the cursor is the gaze point, the eyes
// sit at fixed positions near the center and the fire action is the trigger.
type MouseSensor struct {
	state *State
}

// NewMouseSensor reads the trigger from state, which the caller polls each frame
func NewMouseSensor(state *State) *MouseSensor {
	return &MouseSensor{state: state}
}

func (m *MouseSensor) Read(time.Duration) sensor.Reading {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	cx, cy := ebiten.CursorPosition()

	return sensor.Reading{
		FaceDetected:  true,
		LeftEye:       &dmath.Vec2{X: w * cfg.Sensor.LeftEyeX, Y: h * cfg.Sensor.EyeY},
		RightEye:      &dmath.Vec2{X: w * cfg.Sensor.RightEyeX, Y: h * cfg.Sensor.EyeY},
		Gaze:          &dmath.Vec2{X: float64(cx), Y: float64(cy)},
		TriggerActive: m.state.JustPressed(ActionFire),
	}
}
