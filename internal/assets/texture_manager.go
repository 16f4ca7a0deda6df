// internal/assets/texture_manager.go
package assets

import (
	"fmt"
	"path/filepath"
	"strings"

	"jet-fighter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// Texture is an ebiten image registered under a name.
type Texture struct {
	name string
	img  *ebiten.Image
}

func (t *Texture) Name() string { return t.name }

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *Texture) Image() *ebiten.Image { return t.img }

// TextureManager loads, caches and releases textures by name.
type TextureManager struct {
	textures map[string]*Texture
	log      *zap.Logger
}

func NewTextureManager(log *zap.Logger) *TextureManager {
	return &TextureManager{
		textures: make(map[string]*Texture),
		log:      log,
	}
}

// Load reads a PNG from path and registers it as name, replacing any
// texture already registered under that name.
func (m *TextureManager) Load(name, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load texture %s: %w", name, err)
	}
	m.Add(name, img)
	m.log.Debug("texture loaded", zap.String("texture", name), zap.String("path", path))
	return nil
}

// Add registers an already built image.
func (m *TextureManager) Add(name string, img *ebiten.Image) {
	if old, ok := m.textures[name]; ok && old.img != img {
		old.img.Deallocate()
	}
	m.textures[name] = &Texture{name: name, img: img}
}

// LoadAll loads <dir>/<name>.png for every name. A file that fails to load
// is logged; with placeholders set a generated sheet takes its place.
func (m *TextureManager) LoadAll(dir string, names []string, placeholders bool) {
	for _, name := range names {
		path := filepath.Join(dir, strings.ToLower(name)+".png")
		err := m.Load(name, path)
		if err == nil {
			continue
		}
		if !placeholders {
			m.log.Warn("texture unavailable", zap.String("texture", name), zap.Error(err))
			continue
		}
		img, ok := Placeholder(name)
		if !ok {
			m.log.Warn("texture unavailable, no placeholder", zap.String("texture", name), zap.Error(err))
			continue
		}
		m.Add(name, img)
		m.log.Info("using generated texture", zap.String("texture", name), zap.String("missing", path))
	}
}

// FindTexture implements interfaces.AssetStore.
func (m *TextureManager) FindTexture(name string) (interfaces.Texture, bool) {
	t, ok := m.textures[name]
	if !ok {
		return nil, false
	}
	return t, true
}

// Cleanup releases every texture.
func (m *TextureManager) Cleanup() {
	for name, t := range m.textures {
		t.img.Deallocate()
		delete(m.textures, name)
	}
	m.log.Debug("all textures released")
}
