package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file looked up by Load (gazelaser.json).
const FileName = "gazelaser"

// EnvPrefix prefixes environment overrides, e.g. GAZELASER_PACING_MINSPAWNINTERVAL=400ms.
const EnvPrefix = "GAZELASER"

type binding struct {
	key string
	ptr any
}

// bindings maps config keys to the fields they override.
// Colors are not overridable.
func bindings() []binding {
	return []binding{
		{"screen.width", &C.Width},
		{"screen.height", &C.Height},
		{"screen.cellSize", &C.CellSize},
		{"tickRate", &C.TickRate},
		{"seed", &C.Seed},

		{"target.minRadius", &Target.MinRadius},
		{"target.maxRadius", &Target.MaxRadius},
		{"target.minLifetime", &Target.MinLifetime},
		{"target.maxLifetime", &Target.MaxLifetime},
		{"target.minSpeed", &Target.MinSpeed},
		{"target.maxSpeed", &Target.MaxSpeed},
		{"target.normalSpeedFactor", &Target.NormalSpeedFactor},
		{"target.bombSpeedFactor", &Target.BombSpeedFactor},
		{"target.eyeRadius", &Target.EyeRadius},
		{"target.scoreNumerator", &Target.ScoreNumerator},

		{"beam.length", &Beam.Length},
		{"beam.firedDuration", &Beam.FiredDuration},
		{"beam.firedWidth", &Beam.FiredWidth},
		{"beam.aimWidth", &Beam.AimWidth},

		{"explosion.normalMaxSize", &Explosion.NormalMaxSize},
		{"explosion.bombMaxSize", &Explosion.BombMaxSize},
		{"explosion.normalDuration", &Explosion.NormalDuration},
		{"explosion.bombDuration", &Explosion.BombDuration},

		{"pacing.initialSpawnInterval", &Pacing.InitialSpawnInterval},
		{"pacing.spawnIntervalDecay", &Pacing.SpawnIntervalDecay},
		{"pacing.minSpawnInterval", &Pacing.MinSpawnInterval},
		{"pacing.initialBombProbability", &Pacing.InitialBombProbability},
		{"pacing.bombProbabilityGrowth", &Pacing.BombProbabilityGrowth},
		{"pacing.maxBombProbability", &Pacing.MaxBombProbability},

		{"fire.cooldown", &Fire.Cooldown},

		{"player.startingLives", &Player.StartingLives},
		{"player.pointsPerLevel", &Player.PointsPerLevel},
		{"player.lifeLossGrace", &Player.LifeLossGrace},

		{"sensor.leftEyeX", &Sensor.LeftEyeX},
		{"sensor.rightEyeX", &Sensor.RightEyeX},
		{"sensor.eyeY", &Sensor.EyeY},
		{"sensor.autopilotReaction", &Sensor.AutopilotReaction},
		{"sensor.autopilotAimTolerance", &Sensor.AutopilotAimTolerance},
		{"sensor.autopilotPollInterval", &Sensor.AutopilotPollInterval},
		{"sensor.autopilotBombThreshold", &Sensor.AutopilotBombThreshold},

		{"hud.fpsSamples", &HUD.FPSSamples},

		{"audio.sampleRate", &Audio.SampleRate},
		{"audio.sfxVolume", &Audio.SFXVolume},
		{"audio.muted", &Audio.Muted},

		{"debug.showGaze", &Debug.ShowGaze},
		{"debug.logLevel", &Debug.LogLevel},
	}
}

// Load overrides the current configuration from gazelaser.json in configDir
// and from GAZELASER_* environment variables. A missing file is not an error.
func Load(configDir string) error {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bs := bindings()
	for _, b := range bs {
		v.SetDefault(b.key, current(b.ptr))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	for _, b := range bs {
		if err := apply(v, b); err != nil {
			return err
		}
	}
	return validate()
}

// Reset restores the built-in defaults.
func Reset() {
	setDefaults()
}

func current(ptr any) any {
	switch p := ptr.(type) {
	case *int:
		return *p
	case *int64:
		return *p
	case *float64:
		return *p
	case *bool:
		return *p
	case *string:
		return *p
	case *time.Duration:
		return *p
	}
	if Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid audio sample rate %d", Audio.SampleRate)
	}
	if Audio.SFXVolume < 0 || Audio.SFXVolume > 1 {
		return fmt.Errorf("invalid sfx volume %g", Audio.SFXVolume)
	}
	return nil
}

func apply(v *viper.Viper, b binding) error {
	switch p := b.ptr.(type) {
	case *int:
		*p = v.GetInt(b.key)
	case *int64:
		*p = v.GetInt64(b.key)
	case *float64:
		*p = v.GetFloat64(b.key)
	case *bool:
		*p = v.GetBool(b.key)
	case *string:
		*p = v.GetString(b.key)
	case *time.Duration:
		*p = v.GetDuration(b.key)
	default:
		return fmt.Errorf("unsupported config type for %s", b.key)
	}
	if Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid audio sample rate %d", Audio.SampleRate)
	}
	if Audio.SFXVolume < 0 || Audio.SFXVolume > 1 {
		return fmt.Errorf("invalid sfx volume %g", Audio.SFXVolume)
	}
	return nil
}

func validate() error {
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", C.Width, C.Height)
	}
	if C.CellSize <= 0 {
		return fmt.Errorf("invalid cell size %d", C.CellSize)
	}
	if Target.MinRadius <= 0 || Target.MaxRadius < Target.MinRadius {
		return fmt.Errorf("invalid target radius range [%d, %d]", Target.MinRadius, Target.MaxRadius)
	}
	if Target.MaxLifetime < Target.MinLifetime {
		return fmt.Errorf("invalid target lifetime range [%s, %s]", Target.MinLifetime, Target.MaxLifetime)
	}
	if Target.MaxSpeed < Target.MinSpeed {
		return fmt.Errorf("invalid target speed range [%g, %g]", Target.MinSpeed, Target.MaxSpeed)
	}
	if Pacing.MinSpawnInterval <= 0 || Pacing.InitialSpawnInterval < Pacing.MinSpawnInterval {
		return fmt.Errorf("invalid spawn interval %s (floor %s)", Pacing.InitialSpawnInterval, Pacing.MinSpawnInterval)
	}
	if Pacing.MaxBombProbability > 1 || Pacing.InitialBombProbability < 0 {
		return fmt.Errorf("invalid bomb probability %g (ceiling %g)", Pacing.InitialBombProbability, Pacing.MaxBombProbability)
	}
	if Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid audio sample rate %d", Audio.SampleRate)
	}
	if Audio.SFXVolume < 0 || Audio.SFXVolume > 1 {
		return fmt.Errorf("invalid sfx volume %g", Audio.SFXVolume)
	}
	return nil
}
