package app

import (
	"testing"
	"time"

	"jet-fighter/internal/defs"
	"jet-fighter/internal/interfaces"

	"go.uber.org/zap"
)

type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration { return c.now }

// scriptedInput replays intents and then repeats the last one.
type scriptedInput struct {
	script []interfaces.Intents
	polls  int
}

func (s *scriptedInput) Poll() interfaces.Intents {
	s.polls++
	if len(s.script) == 0 {
		return interfaces.Intents{}
	}
	i := min(s.polls-1, len(s.script)-1)
	return s.script[i]
}

func newRunnerWorld(t *testing.T) *World {
	t.Helper()
	lib, err := defs.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	lib.SpawnTable = nil
	w := NewWorld(lib, Options{Seed: 1, Step: 16 * time.Millisecond}, zap.NewNop())
	w.Setup(testAssets())
	return w
}

func TestRunnerRunsAccumulatedTicks(t *testing.T) {
	w := newRunnerWorld(t)
	clock := &manualClock{}
	input := &scriptedInput{}
	r := NewRunner(w, clock, input, 0)

	tests := []struct {
		advance time.Duration
		want    int
	}{
		{5 * time.Millisecond, 0},
		{5 * time.Millisecond, 0},
		{5 * time.Millisecond, 0},
		{5 * time.Millisecond, 1},
		{50 * time.Millisecond, 3},
	}
	total := 0
	for i, tt := range tests {
		clock.now += tt.advance
		if got := r.Frame(); got != tt.want {
			t.Fatalf("frame %d: Frame() = %d, want %d", i, got, tt.want)
		}
		total += tt.want
	}
	if input.polls != total {
		t.Errorf("input polled %d times for %d ticks", input.polls, total)
	}
	if w.Now() != time.Duration(total)*16*time.Millisecond {
		t.Errorf("world Now() = %v after %d ticks", w.Now(), total)
	}
}

func TestRunnerResumeSkipsPausedTime(t *testing.T) {
	w := newRunnerWorld(t)
	clock := &manualClock{}
	r := NewRunner(w, clock, &scriptedInput{}, 0)

	clock.now += 10 * time.Second
	r.Resume()
	if got := r.Frame(); got != 0 {
		t.Errorf("Frame() after Resume = %d, want 0", got)
	}
}

func TestRunnerTickCap(t *testing.T) {
	w := newRunnerWorld(t)
	clock := &manualClock{}
	r := NewRunner(w, clock, &scriptedInput{}, 2)

	clock.now += time.Second
	if got := r.Frame(); got != 2 {
		t.Errorf("Frame() = %d, want capped at 2", got)
	}
}

func TestRunnerFeedsInputToPlayer(t *testing.T) {
	w := newRunnerWorld(t)
	w.StartPlay()
	clock := &manualClock{}
	r := NewRunner(w, clock, &scriptedInput{script: []interfaces.Intents{{Shoot: true}}}, 0)

	clock.now += 16 * time.Millisecond
	r.Frame()
	if w.Store.Friendly.Len() != 1 {
		t.Errorf("Friendly.Len() = %d, want 1", w.Store.Friendly.Len())
	}
}
