// Package engine owns the round lifecycle and drives the game systems once per tick
package engine

import (
	"io"
	"log"
	"time"

	"github.com/lixenwraith/orbit-merge/component"
	"github.com/lixenwraith/orbit-merge/event"
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/system"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// mergeSeedSalt decorrelates the merge impulse stream from the queue stream
const mergeSeedSalt = 0x9E3779B97F4A7C15

// Session is one game: world, systems, score and phase
// Not safe for concurrent use; the caller serializes Tick, OnInput and Reset
type Session struct {
	cfg    Config
	world  physics.World
	balls  *component.BallStore
	logger *log.Logger

	queue      *system.LaunchQueue
	orbit      *system.OrbitController
	gravity    *system.GravitySystem
	stabilizer *system.StabilizerSystem
	boundary   *system.BoundaryMonitor
	merge      *system.MergeSystem

	sched  *Scheduler
	events *event.EventQueue
	router *event.Router[*Session]

	phase        Phase
	score        int
	tier         int
	warning      bool
	preview      *system.Preview
	lastLaunched physics.BodyID
	refill       *Task
	tick         uint64
}

// Option configures a Session at construction
type Option func(*Session)

// WithLogger routes session diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession builds a session over world and puts it in NotStarted with a preview ready
func NewSession(cfg Config, world physics.World, opts ...Option) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	center := cfg.Arena.Center()
	balls := component.NewBallStore()

	s := &Session{
		cfg:        cfg,
		world:      world,
		balls:      balls,
		logger:     log.New(io.Discard, "", 0),
		queue:      system.NewLaunchQueue(cfg.Queue, vmath.NewFastRand(seed)),
		orbit:      system.NewOrbitController(center, cfg.Arena.OrbitRadius, OrbitSpeed(0, cfg.Difficulty)),
		gravity:    system.NewGravitySystem(cfg.Gravity, center),
		stabilizer: system.NewStabilizerSystem(cfg.Stabilizer),
		boundary:   system.NewBoundaryMonitor(cfg.Boundary, center),
		merge:      system.NewMergeSystem(cfg.Merge, world, balls, vmath.NewFastRand(seed^mergeSeedSalt)),
		sched:      NewScheduler(),
		events:     event.NewEventQueue(parameter.EventQueueInitialCap),
	}
	s.router = event.NewRouter[*Session](s.events)
	for _, opt := range opts {
		opt(s)
	}

	s.world.Clear()
	s.spawnPreview()
	// The first preview is part of construction, not a notification
	s.events.Consume()
	return s
}

// Subscribe registers a handler for the event types it declares
func (s *Session) Subscribe(h event.Handler[*Session]) {
	s.router.Register(h)
}

// OnInput is the single player action: start the round if needed, then launch
func (s *Session) OnInput() {
	defer s.dispatch()

	switch s.phase {
	case PhaseOver:
		return
	case PhaseNotStarted:
		if !s.transition(TriggerInput) {
			return
		}
		s.emit(event.EventGameStart, nil)
	}
	s.launch()
}

// launch promotes the preview to a world body aimed at the center
func (s *Session) launch() {
	if s.preview == nil || s.phase != PhasePlaying {
		return
	}
	p := *s.preview
	s.preview = nil

	id, _ := system.SpawnBall(s.world, s.balls, p.Rank, p.Pos, s.cfg.Launch.Material)
	dir, _ := vmath.V2Toward(p.Pos, s.cfg.Arena.Center())
	s.world.SetVelocity(id, vmath.V2Scale(dir, s.cfg.Launch.Speed))
	s.lastLaunched = id

	// Debounce: a relaunch before the refill fires restarts the delay
	s.refill.Cancel()
	s.refill = s.sched.After(s.cfg.Launch.RefillDelay, s.spawnPreview)

	s.emit(event.EventLaunch, &event.LaunchPayload{Body: id, Rank: p.Rank, Pos: p.Pos})
}

// spawnPreview draws the next rank and parks it on the orbit
func (s *Session) spawnPreview() {
	s.refill = nil
	rank := s.queue.Advance()
	s.preview = &system.Preview{
		Rank:   rank,
		Radius: parameter.RankRadius(rank),
		Pos:    s.orbit.Current(),
	}
	s.emit(event.EventPreviewReady, &event.PreviewPayload{Rank: rank, Next: s.queue.PeekNext()})
}

// Tick advances the simulation by one fixed step; frozen while Over
func (s *Session) Tick() {
	defer s.dispatch()

	if s.phase == PhaseOver {
		return
	}
	s.tick++
	s.sched.Advance(s.cfg.TickInterval)

	bodies := s.world.FreeBodies()
	s.gravity.Update(s.world, bodies)
	s.stabilizer.Update(s.world, bodies)
	s.merge.Settle()

	if s.preview != nil {
		s.orbit.Advance()
		s.preview.Pos = s.orbit.Current()
	}

	contacts := s.world.Step(s.cfg.stepDelta())
	for _, r := range s.merge.React(contacts) {
		s.applyMerge(r)
	}

	s.applyVerdict(s.boundary.Scan(s.world.FreeBodies(), s.lastLaunched))
}

func (s *Session) applyMerge(r system.MergeResult) {
	s.score += r.ScoreDelta
	s.emit(event.EventRankUp, &event.RankUpPayload{
		Body:       r.Body,
		Rank:       r.Rank,
		Pos:        r.Pos,
		ScoreDelta: r.ScoreDelta,
		Score:      s.score,
	})

	tier := DifficultyTier(s.score, s.cfg.Difficulty)
	if tier <= s.tier {
		return
	}
	s.tier = tier
	speed := OrbitSpeed(tier, s.cfg.Difficulty)
	s.orbit.SetSpeed(speed)
	s.logger.Printf("session: tier %d at score %d, orbit speed %.3f", tier, s.score, speed)
	s.emit(event.EventDifficultyTierUp, &event.TierUpPayload{Tier: tier, OrbitSpeed: speed})
}

func (s *Session) applyVerdict(v system.Verdict) {
	if v.Warning != s.warning {
		s.warning = v.Warning
		s.emit(event.EventWarningChanged, &event.WarningPayload{Active: v.Warning})
	}
	if v.GameOver {
		s.endGame(v.Offender)
	}
}

// endGame closes the round once; later calls are no-ops
func (s *Session) endGame(offender physics.BodyID) {
	if !s.transition(TriggerBoundary) {
		return
	}
	s.logger.Printf("session: game over, score %d, body %d", s.score, offender)
	s.emit(event.EventGameOver, &event.GameOverPayload{FinalScore: s.score, Offender: offender})
}

// Reset clears the round and returns to NotStarted with a fresh preview
func (s *Session) Reset() {
	defer s.dispatch()

	s.refill.Cancel()
	s.refill = nil
	s.sched.CancelAll()

	s.world.Clear()
	s.balls.Clear()
	s.score = 0
	s.tier = 0
	s.warning = false
	s.lastLaunched = 0
	s.preview = nil
	s.orbit.Reset()
	s.orbit.SetSpeed(OrbitSpeed(0, s.cfg.Difficulty))
	s.queue.Reset()

	s.transition(TriggerReset)
	s.emit(event.EventSessionReset, nil)
	s.spawnPreview()
}

func (s *Session) transition(on Trigger) bool {
	to, ok := NextPhase(s.phase, on)
	if !ok {
		return false
	}
	if to != s.phase {
		s.logger.Printf("session: phase %s -> %s (%s)", s.phase, to, on)
	}
	s.phase = to
	return true
}

func (s *Session) emit(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: s.tick})
}

func (s *Session) dispatch() {
	s.router.DispatchAll(s)
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Score() int { return s.score }
func (s *Session) Tier() int { return s.tier }
func (s *Session) Warning() bool { return s.warning }
func (s *Session) OrbitSpeed() float64 { return s.orbit.Speed() }
func (s *Session) LastLaunched() physics.BodyID { return s.lastLaunched }
func (s *Session) TickCount() uint64 { return s.tick }
func (s *Session) NextRank() int { return s.queue.PeekNext() }
func (s *Session) Config() Config { return s.cfg }

func (s *Session) Ball(id physics.BodyID) (component.Ball, bool) {
	b, ok := s.balls.Get(id)
	if !ok {
		return component.Ball{}, false
	}
	return *b, true
}

// Preview returns a copy of the pending preview
func (s *Session) Preview() (system.Preview, bool) {
	if s.preview == nil {
		return system.Preview{}, false
	}
	return *s.preview, true
}
