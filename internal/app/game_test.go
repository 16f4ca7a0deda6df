package app

import (
	"testing"

	"jet-fighter/internal/config"
	"jet-fighter/internal/defs"
	"jet-fighter/internal/interfaces"
	"jet-fighter/pkg/geom"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeTexture struct {
	name string
	w, h int
}

func (f fakeTexture) Name() string     { return f.name }
func (f fakeTexture) Size() (int, int) { return f.w, f.h }

type fakeAssets map[string]interfaces.Texture

func (a fakeAssets) FindTexture(name string) (interfaces.Texture, bool) {
	t, ok := a[name]
	return t, ok
}

func testAssets() fakeAssets {
	return fakeAssets{
		config.PrimaryTexture:    fakeTexture{name: config.PrimaryTexture, w: 256, h: 320},
		config.BackgroundTexture: fakeTexture{name: config.BackgroundTexture, w: 64, h: 64},
	}
}

// newQuietWorld builds a world that never spawns enemies on its own.
func newQuietWorld(t *testing.T) *World {
	t.Helper()
	lib, err := defs.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	lib.SpawnTable = nil
	w := NewWorld(lib, Options{Seed: 1}, zap.NewNop())
	w.Setup(testAssets())
	return w
}

func TestEnemyLeavingScreenIsRemovedWithoutScore(t *testing.T) {
	w := newQuietWorld(t)
	w.StartPlay()

	if !w.EnemySystem.SpawnAt(w.Context(), defs.EnemySimple, geom.Vec(100, 400)) {
		t.Fatal("SpawnAt failed")
	}
	before := w.Store.Enemies.Len()

	for i := 0; i < 200 && w.Store.Enemies.Len() == before; i++ {
		w.Tick(interfaces.Intents{})
	}

	if got := w.Store.Enemies.Len(); got != before-1 {
		t.Fatalf("Enemies.Len() = %d, want %d", got, before-1)
	}
	if w.Round.Score != 0 {
		t.Errorf("Score = %d, want 0", w.Round.Score)
	}
}

func TestKilledEnemyScoresExactlyOnce(t *testing.T) {
	w := newQuietWorld(t)
	w.StartPlay()
	ctx := w.Context()

	w.EnemySystem.SpawnAt(ctx, defs.EnemySimple, geom.Vec(100, 100))
	hp := w.Store.Enemies.At(0).HP
	ctx.SpawnProjectile(true, geom.Vec(100, 100), geom.Vector2{}, hp, config.PlayerShotRow)

	for i := 0; i < 60; i++ {
		w.Tick(interfaces.Intents{})
	}

	if want := w.Library().Enemies[defs.EnemySimple].ScoreValue; w.Round.Score != want {
		t.Errorf("Score = %d, want %d", w.Round.Score, want)
	}
	if w.Round.HighScore != w.Round.Score {
		t.Errorf("HighScore = %d, want %d", w.Round.HighScore, w.Round.Score)
	}
	if w.Store.Enemies.Len() != 0 || w.Store.Friendly.Len() != 0 {
		t.Errorf("enemies %d, shots %d left", w.Store.Enemies.Len(), w.Store.Friendly.Len())
	}
}

func TestTitleScreenOnlyScrollsBackground(t *testing.T) {
	w := newQuietWorld(t)

	for i := 0; i < 10; i++ {
		w.Tick(interfaces.Intents{Shoot: true, Left: true})
	}

	if w.Playing() {
		t.Fatal("playing without StartPlay")
	}
	if want := 10 * config.BackgroundScrollSpeed % 64; w.Background.Offset != want {
		t.Errorf("Background.Offset = %d, want %d", w.Background.Offset, want)
	}
	if w.Store.Friendly.Len() != 0 {
		t.Errorf("player fired on the title screen")
	}
	if w.Store.Player.Position != geom.Vec(config.ScreenWidth/2, config.ScreenHeight/2) {
		t.Errorf("player moved on the title screen")
	}
	if w.Now() != 10*w.Step() {
		t.Errorf("Now() = %v, want %v", w.Now(), 10*w.Step())
	}
}

func TestStartPlayWhilePlayingKeepsRound(t *testing.T) {
	w := newQuietWorld(t)
	w.StartPlay()
	w.EnemySystem.SpawnAt(w.Context(), defs.EnemySimple, geom.Vec(100, 100))
	w.Round.Score = 30

	w.StartPlay()

	if w.Store.Enemies.Len() != 1 || w.Round.Score != 30 {
		t.Errorf("second StartPlay reset the round")
	}
}

func TestPlayerDeathResetsAfterDelay(t *testing.T) {
	w := newQuietWorld(t)
	w.StartPlay()
	w.Round.Score = 40
	w.Round.HighScore = 90
	w.Store.Player.HP = 0

	w.Tick(interfaces.Intents{})
	died := w.Now()
	if w.Store.Player.Alive {
		t.Fatal("player survived with no health")
	}
	if !w.Round.ResetPending || w.Round.ResetAt != died+config.ResetDelay {
		t.Fatalf("ResetPending = %v, ResetAt = %v, want reset at %v", w.Round.ResetPending, w.Round.ResetAt, died+config.ResetDelay)
	}

	for w.Playing() && w.Now() < died+2*config.ResetDelay {
		w.Tick(interfaces.Intents{})
	}

	if w.Playing() {
		t.Fatal("round never reset")
	}
	if w.Now() < died+config.ResetDelay || w.Now() >= died+config.ResetDelay+w.Step() {
		t.Errorf("reset at %v, want first tick at or after %v", w.Now(), died+config.ResetDelay)
	}
	if w.Round.Score != 0 || w.Round.HighScore != 90 {
		t.Errorf("after reset score %d high %d, want 0 and 90", w.Round.Score, w.Round.HighScore)
	}
	if !w.Store.Player.Alive || w.Store.Player.HP != config.PlayerHealth {
		t.Errorf("player not restored")
	}
	if w.Store.Particles.Len() != 0 {
		t.Errorf("pools not cleared")
	}
}

func TestPoolsStayConsistentUnderLoad(t *testing.T) {
	lib, err := defs.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	w := NewWorld(lib, Options{Seed: 7, SpawnChance: 1}, zap.NewNop())
	w.Setup(testAssets())
	w.StartPlay()

	script := []interfaces.Intents{
		{Shoot: true, Left: true},
		{Shoot: true},
		{Shoot: true, Right: true, Up: true},
		{Down: true},
	}
	for i := 0; i < 3000; i++ {
		if !w.Playing() {
			w.StartPlay()
		}
		w.Tick(script[(i/30)%len(script)])
		if err := w.Store.Check(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func TestSetupWarnsAboutMissingTextures(t *testing.T) {
	lib, err := defs.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	core, logs := observer.New(zapcore.WarnLevel)
	w := NewWorld(lib, Options{Seed: 1}, zap.New(core))

	w.Setup(fakeAssets{})

	if logs.Len() != 2 {
		t.Fatalf("got %d warnings, want 2", logs.Len())
	}
	for _, entry := range logs.All() {
		if _, ok := entry.ContextMap()["texture"]; !ok {
			t.Errorf("warning %q lacks the texture field", entry.Message)
		}
	}

	w.StartPlay()
	for i := 0; i < 10; i++ {
		w.Tick(interfaces.Intents{Shoot: true})
	}
	if w.Store.Player.Sprite != nil {
		t.Errorf("player has a sprite from an empty store")
	}
}

func TestSetLibraryAffectsLaterSpawnsOnly(t *testing.T) {
	w := newQuietWorld(t)
	w.StartPlay()
	w.EnemySystem.SpawnAt(w.Context(), defs.EnemySimple, geom.Vec(100, 100))

	lib, err := defs.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	tougher := lib.Enemies[defs.EnemySimple]
	tougher.Health = 50
	lib.Enemies[defs.EnemySimple] = tougher
	w.SetLibrary(lib)

	w.EnemySystem.SpawnAt(w.Context(), defs.EnemySimple, geom.Vec(200, 100))

	if hp := w.Store.Enemies.At(0).HP; hp != 1 {
		t.Errorf("existing enemy HP = %d, want 1", hp)
	}
	if hp := w.Store.Enemies.At(1).HP; hp != 50 {
		t.Errorf("new enemy HP = %d, want 50", hp)
	}
}

func TestTickEffectsReachLaterPoolsSameTick(t *testing.T) {
	w := newQuietWorld(t)
	w.StartPlay()
	ctx := w.Context()

	// In the path of the shot the player fires this tick.
	w.EnemySystem.SpawnAt(ctx, defs.EnemySimple, geom.Vec(316, 190))
	target := w.Store.Enemies.At(0)
	target.Velocity = geom.Vec(0, 3)

	w.EnemySystem.SpawnAt(ctx, defs.EnemyStraightShoot, geom.Vec(500, 50))
	shooter := w.Store.Enemies.At(1)
	shooter.Velocity = geom.Vec(0, 3)
	sp, ok := shooter.Shooter()
	if !ok {
		t.Fatal("straight shooter has no shooter payload")
	}
	sp.NextShot = 0

	w.Tick(interfaces.Intents{Shoot: true})

	if want := w.Library().Enemies[defs.EnemySimple].ScoreValue; w.Round.Score != want {
		t.Fatalf("Score = %d, want %d from a shot fired this tick", w.Round.Score, want)
	}
	if w.Store.Friendly.Len() != 0 {
		t.Errorf("Friendly.Len() = %d, want the spent shot gone", w.Store.Friendly.Len())
	}

	if w.Store.Particles.Len() != 1 {
		t.Fatalf("Particles.Len() = %d, want 1 explosion", w.Store.Particles.Len())
	}
	anim := w.Store.Particles.At(0).Animation
	if anim.Index != anim.Speed {
		t.Errorf("explosion Index = %v, want one advance (%v)", anim.Index, anim.Speed)
	}

	if w.Store.Enemies.Len() != 1 {
		t.Fatalf("Enemies.Len() = %d, want the shooter only", w.Store.Enemies.Len())
	}
	shooter = w.Store.Enemies.At(0)
	if w.Store.Hostile.Len() != 1 {
		t.Fatalf("Hostile.Len() = %d, want 1", w.Store.Hostile.Len())
	}
	shot := w.Store.Hostile.At(0)
	if want := shooter.Position.Add(shot.Velocity); shot.Position != want {
		t.Errorf("hostile shot at %v, want %v after its first move", shot.Position, want)
	}
}

func TestTickEffectsWaitForNextTickOnEarlierPools(t *testing.T) {
	w := newQuietWorld(t)
	w.StartPlay()
	ctx := w.Context()

	w.EnemySystem.SpawnAt(ctx, defs.EnemySimple, geom.Vec(200, 100))
	w.Store.Enemies.At(0).Velocity = geom.Vec(0, 3)
	// Clear of the enemy now, overlapping it once the shot has moved.
	ctx.SpawnProjectile(true, geom.Vec(204, 135), geom.Vec(0, -config.PlayerShotSpeed), config.PlayerShotDamage, config.PlayerShotRow)

	w.Tick(interfaces.Intents{})

	if w.Store.Enemies.Len() != 1 || w.Round.Score != 0 {
		t.Fatalf("enemies %d score %d, want the hit to wait a tick", w.Store.Enemies.Len(), w.Round.Score)
	}
	if w.Store.Friendly.Len() != 1 {
		t.Fatalf("Friendly.Len() = %d, want 1", w.Store.Friendly.Len())
	}

	w.Tick(interfaces.Intents{})

	if w.Store.Enemies.Len() != 0 {
		t.Errorf("Enemies.Len() = %d, want 0", w.Store.Enemies.Len())
	}
	if want := w.Library().Enemies[defs.EnemySimple].ScoreValue; w.Round.Score != want {
		t.Errorf("Score = %d, want %d", w.Round.Score, want)
	}
}
