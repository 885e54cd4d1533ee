// Package render owns the window, the GL resources and the main loop that
// drives the corridor simulation.
package render

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"openglhelper"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/catwalk/pkg/audio"
	"github.com/leterax/catwalk/pkg/camera"
	"github.com/leterax/catwalk/pkg/geometry"
	"github.com/leterax/catwalk/pkg/input"
	"github.com/leterax/catwalk/pkg/scene"
	"github.com/leterax/catwalk/pkg/sim"
)

// Options configures NewRenderer.
type Options struct {
	Width, Height int
	Title         string
	VSync         bool
	AssetDir      string
	ShaderDir     string // empty uses the embedded shaders
	Seed          int64  // 0 seeds from the clock
	Audio         bool
	Sim           sim.Config
	Layout        scene.Layout
}

// Renderer handles rendering logic and game loop
type Renderer struct {
	window *openglhelper.Window
	camera *camera.Camera
	shader *openglhelper.Shader

	meshes   map[scene.Shape]*openglhelper.Mesh
	textures *textureSet

	scene *scene.Scene
	state *sim.State
	input input.State
	audio *audio.Player

	// Timing
	lastFrameTime float64
	deltaTime     float32

	// Title stats
	title         string
	lastTitleTime float64
	frames        int
}

// NewRenderer creates the window, uploads the scene and wires input callbacks
func NewRenderer(opts Options) (*Renderer, error) {
	window, err := openglhelper.NewWindow(opts.Width, opts.Height, opts.Title, opts.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	r := &Renderer{
		window: window,
		title:  opts.Title,
		meshes: make(map[scene.Shape]*openglhelper.Mesh),
		state:  sim.NewState(opts.Sim),
	}

	shader, err := loadShader(opts.ShaderDir)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	cube, plane := geometry.Cube(), geometry.Plane()
	r.meshes[scene.ShapeBox] = openglhelper.NewMesh(cube.Vertices, cube.Indices)
	r.meshes[scene.ShapePlane] = openglhelper.NewMesh(plane.Vertices, plane.Indices)
	log.Printf("uploaded cube (%d vertices) and plane (%d vertices)", cube.VertexCount(), plane.VertexCount())

	r.textures, err = newTextureSet()
	if err != nil {
		r.Cleanup()
		return nil, err
	}
	catIDs := make([]scene.TextureID, 0, len(scene.CatTextures))
	for _, path := range scene.CatTextures {
		catIDs = append(catIDs, r.textures.load(opts.AssetDir, path, openglhelper.TextureOptions{Mipmaps: true}))
	}
	grass := r.textures.load(opts.AssetDir, scene.FloorTexture, openglhelper.TextureOptions{Repeat: true, Mipmaps: true})
	floor := &scene.Material{Color: scene.ColorWhite, Texture: grass, Repeat: mgl32.Vec2{FloorRepeat, FloorRepeat}}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.scene = scene.New(opts.Layout, rand.New(rand.NewSource(seed)), catIDs, floor)
	log.Printf("populated %d monoliths", len(r.scene.Pairs))

	r.camera = camera.New(mgl32.Vec3{0, opts.Sim.EyeHeight, 15})
	width, height := window.Size()
	r.camera.UpdateProjectionMatrix(width, height)

	if opts.Audio {
		r.audio = audio.NewPlayer()
		if err := r.audio.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			r.audio = nil
		}
	}

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetMouseButtonCallback(r.mouseButtonCallback)
	glfwWindow.SetScrollCallback(r.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)
	glfwWindow.SetFocusCallback(r.focusCallback)

	return r, nil
}

// Run starts the main rendering loop
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		if r.window.IsMouseCaptured() {
			r.update()
		}

		r.render()
		r.updateTitle(currentTime)

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// update advances the simulation one frame and reacts to what happened
func (r *Renderer) update() {
	ev := sim.Update(r.state, r.deltaTime, &r.input, r.camera, r.scene.Pairs)

	if ev.PhaseChanged {
		log.Printf("phase %s at frame %d", ev.Phase, r.state.Counter)
	}
	for _, idx := range ev.Latched {
		p := r.scene.Pairs[idx]
		log.Printf("monolith %d (%s) is chasing", idx, p.Side)
		r.audio.PlayAlert()
	}
	if ev.Jumped {
		r.audio.PlayJump()
	}
	if ev.Landed {
		log.Printf("landed at %v", r.camera.Position())
	}
}

// render draws every scene object with the current camera
func (r *Renderer) render() {
	r.window.Clear(scene.ColorBackground)

	r.shader.Use()
	r.shader.SetMat4("view", r.camera.ViewMatrix())
	r.shader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.shader.SetVec3("fogColor", scene.ColorFog)
	r.shader.SetFloat("fogNear", FogNear)
	r.shader.SetFloat("fogFar", FogFar)
	r.shader.SetInt("diffuse", 0)

	// Planes are visible from both sides.
	gl.Disable(gl.CULL_FACE)

	for _, obj := range r.scene.Objects() {
		r.drawObject(obj)
	}
}

func (r *Renderer) drawObject(obj *scene.Object) {
	mesh, ok := r.meshes[obj.Shape]
	if !ok {
		return
	}

	mat := obj.Material
	r.shader.SetMat4("model", obj.Model())
	r.shader.SetVec3("tint", mat.Color)
	r.shader.SetVec2("uvRepeat", mat.UVRepeat())
	r.shader.SetBool("useTexture", mat.Textured())
	if mat.Textured() {
		r.textures.get(mat.Texture).Bind(0)
	}

	mesh.Draw()
}

func (r *Renderer) updateTitle(now float64) {
	r.frames++
	elapsed := now - r.lastTitleTime
	if elapsed < TitleInterval {
		return
	}

	status := "click to play"
	if r.window.IsMouseCaptured() {
		status = r.state.Phase.String()
	}
	fps := float64(r.frames) / elapsed
	r.window.SetTitle(fmt.Sprintf("%s | %s | %d chasing | %.0f fps", r.title, status, r.scene.Chasing(), fps))

	r.frames = 0
	r.lastTitleTime = now
}

// setCaptured engages or releases pointer capture; releasing drops held keys
func (r *Renderer) setCaptured(captured bool) {
	if captured == r.window.IsMouseCaptured() {
		return
	}
	r.window.SetMouseCaptured(captured)
	r.camera.ResetMouseState()
	if !captured {
		r.input.Reset()
	}
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.audio.Cleanup()

	for shape, mesh := range r.meshes {
		mesh.Delete()
		delete(r.meshes, shape)
	}
	if r.textures != nil {
		r.textures.Delete()
		r.textures = nil
	}
	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}

	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == KeyEscape && action == Press {
		if r.window.IsMouseCaptured() {
			r.setCaptured(false)
		} else {
			r.window.SetShouldClose(true)
		}
		return
	}

	r.input.HandleKey(translateKey(key, action))
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.window.IsMouseCaptured() {
		r.camera.HandleMouseMovement(xpos, ypos)
	}
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button == glfw.MouseButtonLeft && action == Press {
		r.setCaptured(true)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}

func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		r.setCaptured(false)
	}
}
