package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// FloatsPerVertex is the interleaved layout every Mesh expects:
// position (3), normal (3), texture coordinates (2).
const FloatsPerVertex = 8

// Mesh represents a 3D mesh with vertices and indices
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh creates a new mesh from interleaved vertices and triangle indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(FloatsPerVertex * 4)
	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, stride, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whatever shader is currently in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
