// internal/app/game.go
package app

import (
	"time"

	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
	"jet-fighter/internal/defs"
	"jet-fighter/internal/entity"
	"jet-fighter/internal/event"
	"jet-fighter/internal/interfaces"
	"jet-fighter/internal/system"
	"jet-fighter/internal/utils"

	"go.uber.org/zap"
)

// Options tune a World at construction.
type Options struct {
	Step        time.Duration    // logical duration of one tick; zero means config.FPS
	SpawnChance int              // zero means config.EnemySpawnChance
	Seed        int64            // zero seeds from the wall clock
	Registry    *system.Registry // nil means system.DefaultRegistry
}

// World owns every pool, the round state and the backdrop, and advances
// them one fixed tick at a time. It is not safe for concurrent use.
type World struct {
	Store           *entity.Store
	Round           component.Round
	Background      system.Background
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	EnemySystem      *system.EnemySystem
	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	ParticleSystem   *system.ParticleSystem
	SpawnSystem      *system.SpawnSystem
	ScoreSystem      *system.ScoreSystem
	RenderSystem     *system.RenderSystem

	ctx  system.Context
	step time.Duration
	log  *zap.Logger
}

// NewWorld builds a world on the title screen. Call Setup before the first
// tick so entities get their textures.
func NewWorld(library *defs.Library, opts Options, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Step <= 0 {
		opts.Step = time.Second / config.FPS
	}
	if opts.SpawnChance <= 0 {
		opts.SpawnChance = config.EnemySpawnChance
	}
	if opts.Registry == nil {
		opts.Registry = system.DefaultRegistry()
	}

	store := entity.NewStore()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	w := &World{
		Store:            store,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		EnemySystem:      system.NewEnemySystem(opts.Registry),
		PlayerSystem:     system.NewPlayerSystem(),
		ProjectileSystem: system.NewProjectileSystem(),
		ParticleSystem:   system.NewParticleSystem(),
		step:             opts.Step,
		log:              log,
	}
	w.ctx = system.Context{
		Store:   store,
		Library: library,
		Rand:    rng,
		Events:  eventDispatcher,
		Log:     log,
	}
	w.SpawnSystem = system.NewSpawnSystem(w.EnemySystem, opts.SpawnChance, eventDispatcher)
	w.ScoreSystem = system.NewScoreSystem(&w.Round, eventDispatcher)
	w.RenderSystem = system.NewRenderSystem(store, &w.Background, &w.ctx.Sprites)

	eventDispatcher.Subscribe(event.PlayerDied, &WorldEventListener{world: w})

	log.Debug("world created", zap.Int64("seed", rng.Seed()), zap.Duration("step", opts.Step))
	return w
}

// Setup resolves textures once. Missing textures are logged and the
// entities using them draw nothing.
func (w *World) Setup(assets interfaces.AssetStore) {
	w.ctx.Sprites = system.ResolveSprites(assets, w.log)
	w.Reset()
}

// Reset clears every pool, restores the player, zeroes the score and
// returns to the title screen. The high score is kept.
func (w *World) Reset() {
	if skipped := w.SpawnSystem.Skipped(); len(skipped) > 0 {
		w.log.Debug("spawns dropped on full pools", zap.Any("pools", skipped))
	}
	w.Store.Clear()
	w.PlayerSystem.Reset(&w.ctx)
	w.Round.Phase = component.PhaseTitle
	w.Round.Score = 0
	w.Round.ResetPending = false
	w.Round.ResetAt = 0
	w.EventDispatcher.Dispatch(event.Event{Type: event.RoundReset})
}

// StartPlay begins a round. It does nothing if a round is already running.
func (w *World) StartPlay() {
	if w.Playing() {
		return
	}
	w.Reset()
	w.Round.Phase = component.PhasePlaying
	w.log.Debug("round started", zap.Int("high_score", w.Round.HighScore))
	w.EventDispatcher.Dispatch(event.Event{Type: event.RoundStarted})
}

func (w *World) Playing() bool { return w.Round.Phase == component.PhasePlaying }

// Now is the logical time: the number of ticks run times the step.
func (w *World) Now() time.Duration { return w.ctx.Now }

func (w *World) Step() time.Duration { return w.step }

func (w *World) Library() *defs.Library { return w.ctx.Library }

// SetLibrary swaps the definitions. Live entities keep what they were
// spawned with.
func (w *World) SetLibrary(library *defs.Library) {
	w.ctx.Library = library
}

// SetSpawnChance changes the odds of an enemy appearing each tick.
func (w *World) SetSpawnChance(chance int) {
	w.SpawnSystem.SetChance(chance)
}

// Tick advances the world by one step.
//
// A pending reset fires first. The backdrop always scrolls; everything else
// only runs while playing, pool by pool: spawn, player, enemies, particles,
// friendly shots, hostile shots. Effects on a later pool are seen in the
// same tick, effects on an earlier one wait for the next.
func (w *World) Tick(in interfaces.Intents) {
	w.ctx.Now += w.step

	if w.Round.ResetPending && w.ctx.Now >= w.Round.ResetAt {
		w.log.Info("round over", zap.Int("score", w.Round.Score), zap.Int("high_score", w.Round.HighScore))
		w.Reset()
	}

	w.Background.Update(&w.ctx)
	if !w.Playing() {
		return
	}

	w.SpawnSystem.Update(&w.ctx)
	w.PlayerSystem.Update(&w.ctx, in)
	w.EnemySystem.Update(&w.ctx, w.step)
	w.ParticleSystem.Update(&w.ctx)
	w.ProjectileSystem.UpdateFriendly(&w.ctx)
	w.ProjectileSystem.UpdateHostile(&w.ctx)

	w.Store.Verify()
}

// Draw renders the world. It must not be called during Tick.
func (w *World) Draw(r interfaces.Renderer) {
	w.RenderSystem.Draw(r)
}

// Context exposes the tick context for spawning entities directly.
func (w *World) Context() *system.Context { return &w.ctx }

// WorldEventListener reacts to events that change the round.
type WorldEventListener struct {
	world *World
}

func (l *WorldEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		w := l.world
		if w.Round.ResetPending {
			return
		}
		w.Round.ResetPending = true
		w.Round.ResetAt = w.ctx.Now + config.ResetDelay
		w.log.Debug("player died", zap.Duration("reset_at", w.Round.ResetAt))
	}
}
