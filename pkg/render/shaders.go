package render

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"openglhelper"
)

//go:embed shaders/vert.glsl
var vertexShaderSource string

//go:embed shaders/frag.glsl
var fragmentShaderSource string

// loadShader compiles the embedded scene shader, or the pair in dir when set.
func loadShader(dir string) (*openglhelper.Shader, error) {
	if dir != "" {
		shader, err := openglhelper.LoadShaderFromFiles(
			filepath.Join(dir, "vert.glsl"),
			filepath.Join(dir, "frag.glsl"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load shader from %s: %w", dir, err)
		}
		return shader, nil
	}
	return openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
}
