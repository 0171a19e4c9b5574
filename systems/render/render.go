package render

import (
	"image/color"
	"math"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/systems"
	"github.com/automoto/gazelaser/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	white      = color.RGBA{255, 255, 255, 255}
	fuseYellow = color.RGBA{255, 255, 0, 255}
	aimGlow    = color.RGBA{255, 255, 255, 100}
)

// DrawTargets renders targets as filled circles with a white rim; bombs get a fuse.
func DrawTargets(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := systems.ScreenShakeOffset(e.World)

	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		t := components.Target.Get(entry)
		x, y, r := float32(t.Position.X+ox), float32(t.Position.Y+oy), float32(t.Radius)

		vector.FillCircle(screen, x, y, r, t.Color, true)
		vector.StrokeCircle(screen, x, y, r, 2, white, true)

		if t.IsBomb() {
			vector.StrokeLine(screen, x, y-r, x, y-r*1.3, 3, fuseYellow, true)
			vector.FillCircle(screen, x, y-r*1.3, 3, fuseYellow, true)
		}
	})
}

// DrawBeams renders aim beams with a soft glow and fired beams with a bright core.
func DrawBeams(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := systems.ScreenShakeOffset(e.World)

	tags.Beam.Each(e.World, func(entry *donburi.Entry) {
		b := components.Beam.Get(entry)
		x0, y0 := float32(b.Origin.X+ox), float32(b.Origin.Y+oy)
		x1, y1 := float32(b.End.X+ox), float32(b.End.Y+oy)
		width := float32(b.Width)

		if b.IsAim {
			vector.StrokeLine(screen, x0, y0, x1, y1, width*3, aimGlow, true)
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, width, b.Color, true)
		vector.FillCircle(screen, x0, y0, 5, b.Color, true)

		if !b.IsAim {
			vector.StrokeLine(screen, x0, y0, x1, y1, max(1, width/3), white, true)
		}
	})
}

// DrawExplosions renders each explosion as a disc with eight rays.
func DrawExplosions(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := systems.ScreenShakeOffset(e.World)

	tags.Explosion.Each(e.World, func(entry *donburi.Entry) {
		x := components.Explosion.Get(entry)
		if x.Size <= 0 {
			return
		}
		cx, cy, size := x.Position.X+ox, x.Position.Y+oy, x.Size

		vector.FillCircle(screen, float32(cx), float32(cy), float32(size), x.Color, true)

		rayWidth := float32(math.Max(1, size/10))
		for i := 0; i < 8; i++ {
			angle := float64(i) * math.Pi / 4
			ex := cx + math.Cos(angle)*size*1.5
			ey := cy + math.Sin(angle)*size*1.5
			vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), rayWidth, x.Color, true)
		}
	})
}

// DrawGazeDebug marks the tracked eyes and gaze point and outlines target
// bounding boxes when the debug overlay is on.
func DrawGazeDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled(e.World) {
		return
	}

	gaze := systems.GetGaze(e.World)
	for _, eye := range gaze.KnownEyes() {
		vector.StrokeCircle(screen, float32(eye.X), float32(eye.Y), float32(cfg.Target.EyeRadius), 2, cfg.HUD.EyeColor, true)
	}
	if gaze.Gaze != nil {
		gx, gy := float32(gaze.Gaze.X), float32(gaze.Gaze.Y)
		vector.StrokeLine(screen, gx-8, gy, gx+8, gy, 1, cfg.HUD.GazeColor, false)
		vector.StrokeLine(screen, gx, gy-8, gx, gy+8, 1, cfg.HUD.GazeColor, false)
	}

	c := color.RGBA{0, 255, 0, 255}
	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	})
}

func debugEnabled(w donburi.World) bool {
	if e, ok := components.Settings.First(w); ok {
		return components.Settings.Get(e).ShowDebug
	}
	return cfg.Debug.ShowGaze
}
