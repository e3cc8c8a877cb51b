package sponge

type dirSpec struct {
	normal [3]float32
	u, v   int
	du, dv [3]int
}

var directions = []dirSpec{
	{[3]float32{1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{-1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, -1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 0, 1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
	{[3]float32{0, 0, -1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
}

func addQuad(mesh *Mesh, dir dirSpec, start [3]int, w, h int, perp int) {
	base := [3]float32{}
	base[perp] = float32(start[0])
	if dir.normal[perp] > 0 {
		base[perp] += 1
	}
	base[dir.u] = float32(start[1])
	base[dir.v] = float32(start[2])

	verts := [4]Vertex{
		{Position: base},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h), base[1] + float32(dir.du[1]*h), base[2] + float32(dir.du[2]*h)}},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h) + float32(dir.dv[0]*w), base[1] + float32(dir.du[1]*h) + float32(dir.dv[1]*w), base[2] + float32(dir.du[2]*h) + float32(dir.dv[2]*w)}},
		{Position: [3]float32{base[0] + float32(dir.dv[0]*w), base[1] + float32(dir.dv[1]*w), base[2] + float32(dir.dv[2]*w)}},
	}

	swap := (dir.normal[perp] < 0) != (perp == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}

	baseIdx := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, verts[:]...)
	mesh.Indices = append(mesh.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
	mesh.EdgeIndices = append(mesh.EdgeIndices,
		baseIdx, baseIdx+1,
		baseIdx+1, baseIdx+2,
		baseIdx+2, baseIdx+3,
		baseIdx+3, baseIdx)
}

// GenerateMesh builds the exposed surface of the grid as a greedy quad mesh:
// per axis direction, every slice is swept with a boolean mask and maximal
// runs of exposed faces are merged into single quads.
func GenerateMesh(g *Grid) *Mesh {
	mesh := &Mesh{}
	side := g.Side

	for _, dir := range directions {
		perp := 3 - dir.u - dir.v

		for p := 0; p < side; p++ {
			mask := make([][]bool, side)
			visited := make([][]bool, side)
			for i := range mask {
				mask[i] = make([]bool, side)
				visited[i] = make([]bool, side)
			}

			for u := 0; u < side; u++ {
				for v := 0; v < side; v++ {
					pos := [3]int{}
					pos[dir.u] = u
					pos[dir.v] = v
					pos[perp] = p

					if !g.At(pos[0], pos[1], pos[2]) {
						continue
					}

					adj := pos
					if dir.normal[perp] < 0 {
						adj[perp] = p - 1
					} else {
						adj[perp] = p + 1
					}

					if !g.At(adj[0], adj[1], adj[2]) {
						mask[u][v] = true
					}
				}
			}

			for u := 0; u < side; u++ {
				for v := 0; v < side; {
					if !mask[u][v] || visited[u][v] {
						v++
						continue
					}
					width := 1
					for w := v + 1; w < side && mask[u][w] && !visited[u][w]; w++ {
						width++
					}
					height := 1
					stop := false
					for h := u + 1; h < side && !stop; h++ {
						for w := v; w < v+width; w++ {
							if !mask[h][w] || visited[h][w] {
								stop = true
								break
							}
						}
						if !stop {
							height++
						}
					}
					for hu := u; hu < u+height; hu++ {
						for hv := v; hv < v+width; hv++ {
							visited[hu][hv] = true
						}
					}
					addQuad(mesh, dir, [3]int{p, u, v}, width, height, perp)
					v += width
				}
			}
		}
	}
	return mesh
}
