package openglhelper

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents a linked OpenGL shader program
type Shader struct {
	ID uint32
}

// infoLog reads a compile or link log through the matching GL getters
func infoLog(object uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var length int32
	getiv(object, gl.INFO_LOG_LENGTH, &length)

	buf := strings.Repeat("\x00", int(length+1))
	getLog(object, length, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

// compileShader compiles one stage; the shader object is freed on failure
func compileShader(source string, stage uint32) (uint32, error) {
	shader := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %s", msg)
	}

	return shader, nil
}

// NewShader compiles and links a program from vertex and fragment source
func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	// Stages are no longer needed once the program is linked, or once linking fails.
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragment)

	program, err := linkProgram(vertex, fragment)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program}, nil
}

// linkProgram links the given stages; the program is freed on failure
func linkProgram(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", msg)
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, nil
}

// LoadShaderFromFiles reads both stages from disk and builds the program
func LoadShaderFromFiles(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vertex shader file: %w", err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment shader file: %w", err)
	}
	return NewShader(string(vertexSource), string(fragmentSource))
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// SetBool sets a boolean uniform
func (s *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVec2 sets a vec2 uniform
func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2fv(s.location(name), 1, &v[0])
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &v[0])
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}
