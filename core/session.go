package core

import (
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/logging"
	"github.com/automoto/gazelaser/sensor"
	"github.com/automoto/gazelaser/systems"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ScoredHit is a target destroyed by a beam during a step
type ScoredHit struct {
	Target   donburi.Entity
	Position dmath.Vec2
	Points   int
	Bomb     bool
}

// StepResult reports what happened during one Session.Step
type StepResult struct {
	Skipped  bool // paused or game over, nothing advanced
	Fired    bool
	LifeLost bool
	GameOver bool // the last life was lost this step
	LevelUp  bool
	Hits     []ScoredHit
}

// Session runs the game rules on top of a Simulation: score, level, lives,
// pause and restart.
type Session struct {
	sim    *Simulation
	fps    *FPSCounter
	logger zerolog.Logger
}

func NewSession(sim *Simulation) *Session {
	s := &Session{
		sim:    sim,
		fps:    NewFPSCounter(cfg.HUD.FPSSamples),
		logger: logging.Component("session"),
	}
	systems.GetOrCreateSession(sim.World())
	return s
}

// Simulation returns the simulation driven by this session
func (s *Session) Simulation() *Simulation {
	return s.sim
}

func (s *Session) state() *components.SessionData {
	return systems.GetOrCreateSession(s.sim.World())
}

// State returns a copy of the current score, level and lives
func (s *Session) State() components.SessionData {
	return *s.state()
}

// Restart starts a new game: empty playfield, score 0, level 1, full lives.
func (s *Session) Restart() {
	st := s.state()
	fps := st.FPS
	*st = factory.NewSession()
	st.FPS = fps
	s.sim.Reset()
	s.logger.Info().Msg("Game restarted")
}

// TogglePause pauses or resumes; after game over it restarts instead.
func (s *Session) TogglePause() {
	st := s.state()
	if st.GameOver {
		s.Restart()
		return
	}
	st.Paused = !st.Paused
	s.logger.Debug().Bool("paused", st.Paused).Msg("Pause toggled")
}

// Step runs one frame at now with the given sensor reading.
func (s *Session) Step(now time.Duration, reading sensor.Reading) StepResult {
	st := s.state()
	s.fps.Frame(now)
	st.FPS = s.fps.FPS()

	if st.Paused || st.GameOver {
		return StepResult{Skipped: true}
	}

	var res StepResult

	if reading.FaceDetected {
		s.sim.UpdateTrackedGaze(reading.LeftEye, reading.RightEye, reading.Gaze)
	}
	if reading.TriggerActive {
		res.Fired = s.sim.TryFire(now)
	}

	if s.sim.Tick(now) && s.canLoseLife(st, now) {
		s.loseLife(st, now, &res)
	}

	s.resolveHits(st, &res)
	return res
}

func (s *Session) canLoseLife(st *components.SessionData, now time.Duration) bool {
	grace := cfg.Player.LifeLossGrace
	if grace <= 0 || !st.HasLostLife {
		return true
	}
	return now-st.LastLifeLost > grace
}

func (s *Session) loseLife(st *components.SessionData, now time.Duration, res *StepResult) {
	st.Lives--
	st.LastLifeLost = now
	st.HasLostLife = true
	res.LifeLost = true

	if st.Lives <= 0 {
		st.Lives = 0
		st.GameOver = true
		res.GameOver = true
		s.logger.Info().Int("score", st.Score).Int("level", st.Level).Msg("Game over")
		return
	}
	s.logger.Debug().Int("lives", st.Lives).Msg("Life lost")
}

// resolveHits removes every hit target once and scores the normal ones.
func (s *Session) resolveHits(st *components.SessionData, res *StepResult) {
	hits := s.sim.DetectCollisions()
	if len(hits) == 0 {
		return
	}

	w := s.sim.World()
	seen := make(map[donburi.Entity]struct{}, len(hits))
	for _, hit := range hits {
		if _, dup := seen[hit.Target]; dup {
			continue
		}
		seen[hit.Target] = struct{}{}

		if !w.Valid(hit.Target) {
			continue
		}
		t := *components.Target.Get(w.Entry(hit.Target))
		if !s.sim.RemoveTarget(hit.Target) {
			continue
		}

		scored := ScoredHit{Target: hit.Target, Position: t.Position, Bomb: t.IsBomb()}
		if !scored.Bomb {
			scored.Points = t.Points
			st.Score += t.Points
		}
		res.Hits = append(res.Hits, scored)
	}

	if level := LevelForScore(st.Score); level > st.Level {
		st.Level = level
		res.LevelUp = true
		s.logger.Debug().Int("level", level).Int("score", st.Score).Msg("Level up")
	}
}

// LevelForScore returns the level reached with score points
func LevelForScore(score int) int {
	per := cfg.Player.PointsPerLevel
	if per <= 0 {
		return 1
	}
	return score/per + 1
}

// Snapshot copies the playfield together with the session state
func (s *Session) Snapshot() Snapshot {
	snap := s.sim.Snapshot()
	st := s.state()
	snap.Score = st.Score
	snap.Level = st.Level
	snap.Lives = st.Lives
	snap.FPS = st.FPS
	snap.Paused = st.Paused
	snap.GameOver = st.GameOver
	return snap
}
