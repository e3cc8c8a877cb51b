package sponge

// Vertex is a mesh corner in voxel coordinates.
type Vertex struct {
	Position [3]float32
}

// Mesh is an axis-aligned quad surface mesh. Vertices are appended four per
// quad; Indices triangulates the quads and EdgeIndices outlines them as line
// segment pairs over the same vertex buffer.
type Mesh struct {
	Vertices    []Vertex
	Indices     []uint32
	EdgeIndices []uint32
}
