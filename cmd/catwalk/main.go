package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/leterax/catwalk/pkg/render"
	"github.com/leterax/catwalk/pkg/scene"
	"github.com/leterax/catwalk/pkg/sim"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting catwalk...")

	width := flag.Int("width", 1280, "Initial window width")
	height := flag.Int("height", 720, "Initial window height")
	vsync := flag.Bool("vsync", true, "Sync frames to the display refresh")
	assets := flag.String("assets", "assets", "Asset root directory")
	shaderDir := flag.String("shader-dir", "", "Directory with vert.glsl/frag.glsl overriding the built-in shaders")
	seed := flag.Int64("seed", 0, "Seed for the cat texture draw (0 for random)")
	enableAudio := flag.Bool("audio", true, "Play sound cues")
	flag.Parse()

	renderer, err := render.NewRenderer(render.Options{
		Width:     *width,
		Height:    *height,
		Title:     "catwalk",
		VSync:     *vsync,
		AssetDir:  *assets,
		ShaderDir: *shaderDir,
		Seed:      *seed,
		Audio:     *enableAudio,
		Sim:       sim.DefaultConfig(),
		Layout:    scene.DefaultLayout(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	log.Println("Click the window to walk, Esc to release the pointer")
	renderer.Run()
}
