package config

import (
	"image/color"
	"time"
)

// TargetConfig contains target spawning, movement and scoring values
type TargetConfig struct {
	// Size (pixels)
	MinRadius int
	MaxRadius int

	// Lifetime is drawn uniformly from [MinLifetime, MaxLifetime]
	MinLifetime time.Duration
	MaxLifetime time.Duration

	// Movement (pixels per tick)
	MinSpeed          float64
	MaxSpeed          float64
	NormalSpeedFactor float64
	BombSpeedFactor   float64

	// EyeRadius is added to a bomb's radius for the eye contact test
	EyeRadius float64

	// Normal target points = round(ScoreNumerator / radius)
	ScoreNumerator float64

	// Normal targets get a random color with channels in [MinColorChannel, MaxColorChannel]
	MinColorChannel int
	MaxColorChannel int
	BombColor       color.RGBA
}

// BeamConfig contains laser beam values
type BeamConfig struct {
	Length        float64       // segment length in pixels
	FiredDuration time.Duration // lifetime of a fired beam
	FiredWidth    float64
	AimWidth      float64
	FiredColor    color.RGBA
	AimColor      color.RGBA
}

// ExplosionConfig contains explosion effect values
type ExplosionConfig struct {
	StartSize      float64
	NormalMaxSize  float64
	BombMaxSize    float64
	NormalDuration time.Duration
	BombDuration   time.Duration
	NormalColor    color.RGBA
	BombColor      color.RGBA
}

// PacingConfig contains the difficulty curve.
// Each spawn multiplies the interval by SpawnIntervalDecay and the bomb
// probability by BombProbabilityGrowth, clamped to the floor/ceiling.
type PacingConfig struct {
	InitialSpawnInterval   time.Duration
	SpawnIntervalDecay     float64
	MinSpawnInterval       time.Duration
	InitialBombProbability float64
	BombProbabilityGrowth  float64
	MaxBombProbability     float64
}

// FireConfig contains trigger values
type FireConfig struct {
	Cooldown time.Duration // minimum time between two accepted triggers
}

// PlayerConfig contains session rules
type PlayerConfig struct {
	StartingLives  int
	PointsPerLevel int

	// LifeLossGrace ignores further bomb contacts for this long after a life is lost.
	// Zero keeps the per-tick behaviour: every tick a bomb touches an eye costs a life.
	LifeLossGrace time.Duration
}

// SensorConfig contains values for the built-in gaze sources
type SensorConfig struct {
	// Fixed eye positions used by the mouse sensor, as fractions of the screen
	LeftEyeX  float64
	RightEyeX float64
	EyeY      float64

	// Autopilot
	AutopilotReaction      time.Duration // delay between picking a target and firing
	AutopilotAimTolerance  float64       // pixels of gaze error accepted before firing
	AutopilotPollInterval  time.Duration
	AutopilotBombThreshold float64 // bombs closer than this to an eye are shot first
}

// HUDConfig contains HUD and overlay values
type HUDConfig struct {
	Margin       float64
	LineHeight   float64
	FPSSamples   int
	TextColor    color.RGBA
	OverlayColor color.RGBA
	EyeColor     color.RGBA
	GazeColor    color.RGBA
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	LifeLostIntensity float64 // pixels
	LifeLostDuration  int     // frames
	BombHitIntensity  float64
	BombHitDuration   int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowGaze bool // draw eye and gaze markers
	LogLevel string
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int   // ticks per second for the headless loop
	Seed     int64 // 0 = seed from the clock
	CellSize int   // resolv cell size used for visibility culling
}

// Global configuration instances
var C *Config
var Target TargetConfig
var Beam BeamConfig
var Explosion ExplosionConfig
var Pacing PacingConfig
var Fire FireConfig
var Player PlayerConfig
var Sensor SensorConfig
var HUD HUDConfig
var ScreenShake ScreenShakeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Purple       = color.RGBA{R: 180, G: 0, B: 255, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	setDefaults()
}

// setDefaults (re)populates every configuration instance.
func setDefaults() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 60,
		Seed:     0,
		CellSize: 32,
	}

	Target = TargetConfig{
		MinRadius:         20,
		MaxRadius:         50,
		MinLifetime:       5 * time.Second,
		MaxLifetime:       10 * time.Second,
		MinSpeed:          1.0,
		MaxSpeed:          2.0,
		NormalSpeedFactor: 1.0,
		BombSpeedFactor:   1.0, // single tuning knob, bombs move like normal targets for now
		EyeRadius:         10,
		ScoreNumerator:    1000,
		MinColorChannel:   50,
		MaxColorChannel:   255,
		BombColor:         Red,
	}

	Beam = BeamConfig{
		Length:        2000,
		FiredDuration: 300 * time.Millisecond,
		FiredWidth:    6,
		AimWidth:      2,
		FiredColor:    Red,
		AimColor:      Purple,
	}

	Explosion = ExplosionConfig{
		StartSize:      1,
		NormalMaxSize:  50,
		BombMaxSize:    100,
		NormalDuration: 500 * time.Millisecond,
		BombDuration:   time.Second,
		NormalColor:    Orange,
		BombColor:      Red,
	}

	Pacing = PacingConfig{
		InitialSpawnInterval:   time.Second,
		SpawnIntervalDecay:     0.99,
		MinSpawnInterval:       500 * time.Millisecond,
		InitialBombProbability: 0.2,
		BombProbabilityGrowth:  1.01,
		MaxBombProbability:     0.4,
	}

	Fire = FireConfig{
		Cooldown: 300 * time.Millisecond,
	}

	Player = PlayerConfig{
		StartingLives:  3,
		PointsPerLevel: 1000,
		LifeLossGrace:  0,
	}

	Sensor = SensorConfig{
		LeftEyeX:               0.47,
		RightEyeX:              0.53,
		EyeY:                   0.5,
		AutopilotReaction:      120 * time.Millisecond,
		AutopilotAimTolerance:  4,
		AutopilotPollInterval:  time.Second / 60,
		AutopilotBombThreshold: 250,
	}

	HUD = HUDConfig{
		Margin:       10,
		LineHeight:   26,
		FPSSamples:   30,
		TextColor:    White,
		OverlayColor: BlackOverlay,
		EyeColor:     Green,
		GazeColor:    Cyan,
	}

	ScreenShake = ScreenShakeConfig{
		LifeLostIntensity: 8,
		LifeLostDuration:  20,
		BombHitIntensity:  4,
		BombHitDuration:   10,
	}

	Debug = DebugConfig{
		ShowGaze: true,
		LogLevel: "info",
	}

	setAudioDefaults()
}
