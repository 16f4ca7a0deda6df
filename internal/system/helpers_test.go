package system

import (
	"image"
	"image/color"
	"testing"

	"jet-fighter/internal/defs"
	"jet-fighter/internal/entity"
	"jet-fighter/internal/event"
	"jet-fighter/internal/interfaces"
	"jet-fighter/internal/utils"
	"jet-fighter/pkg/geom"

	"go.uber.org/zap"
)

type fakeTexture struct {
	name string
	w, h int
}

func (f fakeTexture) Name() string     { return f.name }
func (f fakeTexture) Size() (int, int) { return f.w, f.h }

type fakeStore map[string]interfaces.Texture

func (s fakeStore) FindTexture(name string) (interfaces.Texture, bool) {
	t, ok := s[name]
	return t, ok
}

type drawCall struct {
	tex  string
	src  image.Rectangle
	x, y int
}

// recordingRenderer remembers every call in order.
type recordingRenderer struct {
	cleared []color.Color
	draws   []drawCall
	fills   []image.Rectangle
}

func (r *recordingRenderer) Clear(c color.Color) { r.cleared = append(r.cleared, c) }
func (r *recordingRenderer) DrawSprite(tex interfaces.Texture, src image.Rectangle, x, y int) {
	r.draws = append(r.draws, drawCall{tex: tex.Name(), src: src, x: x, y: y})
}
func (r *recordingRenderer) FillRect(rect image.Rectangle, _ color.Color) {
	r.fills = append(r.fills, rect)
}
func (r *recordingRenderer) Present() {}

// eventLog collects dispatched events of the given types.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	lib, err := defs.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	return &Context{
		Store:   entity.NewStore(),
		Library: lib,
		Sprites: Sprites{
			Primary:    fakeTexture{name: "Primary", w: 256, h: 320},
			Background: fakeTexture{name: "Background", w: 64, h: 64},
		},
		Rand:   utils.NewPRNGService(1),
		Events: event.NewDispatcher(),
		Log:    zap.NewNop(),
	}
}

// spawnStill spawns an enemy of kind at pos and stops it in place.
func spawnStill(t *testing.T, ctx *Context, enemies *EnemySystem, kind string, pos geom.Vector2) {
	t.Helper()
	if !enemies.SpawnAt(ctx, kind, pos) {
		t.Fatalf("SpawnAt(%q) failed", kind)
	}
	e := ctx.Store.Enemies.At(ctx.Store.Enemies.Len() - 1)
	e.Velocity = geom.Vector2{}
}
