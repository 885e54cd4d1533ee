package render

import (
	"fmt"
	"log"
	"path/filepath"

	"openglhelper"

	"github.com/leterax/catwalk/pkg/scene"
)

// textureSet owns every texture the scene references; a scene.TextureID is an
// index into it.
type textureSet struct {
	textures []*openglhelper.Texture
	fallback *openglhelper.Texture
}

func newTextureSet() (*textureSet, error) {
	fallback, err := openglhelper.NewSolidTexture(255, 255, 255, 255)
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback texture: %w", err)
	}
	return &textureSet{fallback: fallback}, nil
}

// load reads path and registers it. A texture that cannot be read is logged
// and replaced by the white fallback so the scene still starts.
func (ts *textureSet) load(root, path string, opts openglhelper.TextureOptions) scene.TextureID {
	full := filepath.Join(root, path)
	tex, err := openglhelper.LoadTexture(full, opts)
	if err != nil {
		log.Printf("texture %s unavailable, using blank: %v", full, err)
		tex = ts.fallback
	} else {
		log.Printf("loaded texture %s (%dx%d)", full, tex.Width, tex.Height)
	}

	ts.textures = append(ts.textures, tex)
	return scene.TextureID(len(ts.textures) - 1)
}

func (ts *textureSet) get(id scene.TextureID) *openglhelper.Texture {
	if id < 0 || int(id) >= len(ts.textures) {
		return ts.fallback
	}
	return ts.textures[id]
}

func (ts *textureSet) Delete() {
	for _, tex := range ts.textures {
		if tex != ts.fallback {
			tex.Delete()
		}
	}
	ts.fallback.Delete()
	ts.textures = nil
}
