// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"jet-fighter/internal/app"
	"jet-fighter/internal/assets"
	"jet-fighter/internal/config"
	"jet-fighter/internal/defs"
	"jet-fighter/internal/input"
	"jet-fighter/internal/state"
	"jet-fighter/internal/ui"
	"jet-fighter/pkg/render"
	"jet-fighter/pkg/timestep"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// AppGame adapts the state machine to ebiten.Game and applies reloaded
// definitions between frames.
type AppGame struct {
	stateMachine *state.StateMachine
	world        *app.World
	reloads      <-chan *defs.Library
	log          *zap.Logger
}

func (a *AppGame) Update() error {
	select {
	case lib := <-a.reloads:
		a.world.SetLibrary(lib)
		a.log.Info("definitions reloaded", zap.Int("enemies", len(lib.Enemies)))
	default:
	}
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "config.toml", "path to the settings file")
	debug := flag.Bool("debug", false, "log at debug level")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debug {
		settings.Logging.Level = "debug"
	}
	if *seed != 0 {
		settings.Simulation.Seed = *seed
	}

	log, err := newLogger(settings.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(settings, log); err != nil {
		log.Fatal("game stopped", zap.Error(err))
	}
	log.Info("bye")
}

func run(settings *config.Settings, log *zap.Logger) error {
	library, err := defs.Load(settings.Defs.Dir)
	if err != nil {
		return fmt.Errorf("load definitions: %w", err)
	}

	var reloads <-chan *defs.Library
	if settings.Defs.Watch && settings.Defs.Dir != "" {
		watcher, err := defs.NewWatcher(settings.Defs.Dir, log)
		if err != nil {
			log.Warn("definition hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Close()
			reloads = watcher.Updates
		}
	}

	textures := assets.NewTextureManager(log)
	textures.LoadAll(settings.Assets.ImageDir, []string{config.PrimaryTexture, config.BackgroundTexture}, settings.Assets.Placeholders)
	defer textures.Cleanup()

	world := app.NewWorld(library, app.Options{
		Step:        timestep.StepForRate(settings.Simulation.TickRate),
		SpawnChance: settings.Spawn.Chance,
		Seed:        settings.Simulation.Seed,
	}, log)
	world.Setup(textures)

	in := input.NewSource()
	session := &state.Session{
		World:    world,
		Runner:   app.NewRunner(world, timestep.NewSystemClock(), in, settings.Simulation.MaxTicksPerFrame),
		Input:    in,
		Renderer: render.NewSpriteRenderer(),
		HUD:      ui.NewHUD(),
		Log:      log,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session))

	game := &AppGame{
		stateMachine: sm,
		world:        world,
		reloads:      reloads,
		log:          log,
	}

	ebiten.SetWindowSize(int(config.ScreenWidth*settings.Window.Scale), int(config.ScreenHeight*settings.Window.Scale))
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetFullscreen(settings.Window.Fullscreen)
	// The runner does its own fixed-step accounting, so one Update per frame.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Info("starting",
		zap.Int("tick_rate", settings.Simulation.TickRate),
		zap.Int64("seed", world.Rng.Seed()),
		zap.String("defs", settings.Defs.Dir),
	)
	return ebiten.RunGame(game)
}
