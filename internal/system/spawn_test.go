package system

import (
	"testing"

	"jet-fighter/internal/defs"
)

func TestSpawnSystemCertainChanceFillsPool(t *testing.T) {
	ctx := newTestContext(t)
	s := NewSpawnSystem(NewEnemySystem(DefaultRegistry()), 1, ctx.Events)

	for i := 0; i < ctx.Store.Enemies.Cap(); i++ {
		if !s.Update(ctx) {
			t.Fatalf("trial %d did not spawn", i)
		}
	}
	if s.Update(ctx) {
		t.Fatal("spawned into a full pool")
	}
	if skipped := s.Skipped(); len(skipped) != 0 {
		t.Errorf("Skipped() = %v, want a full pool to skip the trial silently", skipped)
	}
}

func TestSpawnSystemZeroChanceNeverSpawns(t *testing.T) {
	ctx := newTestContext(t)
	s := NewSpawnSystem(NewEnemySystem(DefaultRegistry()), 0, ctx.Events)
	for i := 0; i < 1000; i++ {
		s.Update(ctx)
	}
	if ctx.Store.Enemies.Len() != 0 {
		t.Errorf("spawned %d enemies with zero chance", ctx.Store.Enemies.Len())
	}
}

func TestSpawnSystemUsesSpawnTable(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Library.SpawnTable = []defs.SpawnEntry{{Kind: defs.EnemyStrafeShoot, Weight: 1}}
	s := NewSpawnSystem(NewEnemySystem(DefaultRegistry()), 1, ctx.Events)

	s.Update(ctx)
	if ctx.Store.Enemies.Len() != 1 || ctx.Store.Enemies.At(0).Kind != defs.EnemyStrafeShoot {
		t.Fatalf("spawned %d enemies, want one strafer", ctx.Store.Enemies.Len())
	}
}

func TestSpawnSystemRate(t *testing.T) {
	ctx := newTestContext(t)
	s := NewSpawnSystem(NewEnemySystem(DefaultRegistry()), 60, ctx.Events)

	spawned := 0
	for i := 0; i < 66000; i++ {
		if s.Update(ctx) {
			spawned++
		}
		ctx.Store.Enemies.Reset()
	}
	// Expect about one in 66.
	if spawned < 800 || spawned > 1200 {
		t.Errorf("spawned %d in 66000 trials, want about 1000", spawned)
	}
}
