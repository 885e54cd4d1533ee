// Package geometry holds the unit meshes every scene object is scaled from.
package geometry

// FloatsPerVertex matches the interleaved layout: position (3), normal (3), uv (2).
const FloatsPerVertex = 8

// Data is interleaved vertex data plus triangle indices.
type Data struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in d.
func (d Data) VertexCount() int {
	return len(d.Vertices) / FloatsPerVertex
}

// Cube returns a unit cube centred on the origin with outward normals.
func Cube() Data {
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0, // Bottom-left
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0, // Bottom-right
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0, // Top-right
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0, // Top-left

		// Back face
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0, // Bottom-left
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0, // Top-left
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0, // Top-right
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0, // Bottom-right

		// Top face
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0, // Back-left
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0, // Front-left
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0, // Front-right
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0, // Back-right

		// Bottom face
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 0.0, // Back-left
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 0.0, // Back-right
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 1.0, // Front-right
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 1.0, // Front-left

		// Right face
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-back
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0, // Top-back
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0, // Top-front
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0, // Bottom-front

		// Left face
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0, // Bottom-back
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-front
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 1.0, // Top-front
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0, // Top-back
	}

	return Data{Vertices: vertices, Indices: quadIndices(6)}
}

// Plane returns a unit quad in the XY plane facing +Z.
func Plane() Data {
	vertices := []float32{
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 1.0, 0.0,
		0.5, 0.5, 0.0, 0.0, 0.0, 1.0, 1.0, 1.0,
		-0.5, 0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 1.0,
	}
	return Data{Vertices: vertices, Indices: quadIndices(1)}
}

// quadIndices emits two CCW triangles (0,1,2)(2,3,0) per four-vertex quad.
func quadIndices(quads int) []uint32 {
	indices := make([]uint32, 0, quads*6)
	for q := 0; q < quads; q++ {
		base := uint32(q * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return indices
}
