// internal/system/spawn.go
package system

import (
	"jet-fighter/internal/event"
)

// SpawnSystem rolls for a new enemy every tick and keeps count of spawns
// that were dropped because a pool was full.
type SpawnSystem struct {
	enemies *EnemySystem
	chance  int
	skipped map[string]int
}

func NewSpawnSystem(enemies *EnemySystem, chance int, eventDispatcher *event.Dispatcher) *SpawnSystem {
	s := &SpawnSystem{
		enemies: enemies,
		chance:  chance,
		skipped: make(map[string]int),
	}
	eventDispatcher.Subscribe(event.SpawnSkipped, s)
	return s
}

// SetChance changes the spawn odds. An enemy appears on a tick with
// probability 1/(chance + chance/10).
func (s *SpawnSystem) SetChance(chance int) {
	s.chance = chance
}

// Update makes one spawn trial and reports whether an enemy appeared.
func (s *SpawnSystem) Update(ctx *Context) bool {
	if ctx.Store.Enemies.Full() {
		return false
	}
	n := s.chance + s.chance/10
	if n <= 0 || ctx.Rand.Intn(n) != 0 {
		return false
	}
	kind := ctx.Rand.ChooseWeighted(ctx.Library.SpawnTable)
	if kind == "" {
		return false
	}
	return s.enemies.Spawn(ctx, kind)
}

// Skipped returns the dropped spawn counts per pool and clears them.
func (s *SpawnSystem) Skipped() map[string]int {
	out := s.skipped
	s.skipped = make(map[string]int)
	return out
}

func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type != event.SpawnSkipped {
		return
	}
	if data, ok := e.Data.(event.SpawnSkippedData); ok {
		s.skipped[data.Pool]++
	}
}
