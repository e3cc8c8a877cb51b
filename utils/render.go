package utils

import (
	"bytes"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxelsplace/menger/go/sponge"
)

// RenderOptions selects how an occupancy grid is presented.
type RenderOptions struct {
	FaceColor string // "#rrggbb" or "#rrggbbaa"
	EdgeColor string
	Title     string
}

// RunRenderGLB renders the grid as a binary glTF file: a greedy-meshed surface
// with a solid face material plus voxel edge outlines as a line primitive.
// Output paths ending in ".zst" are written zstd-compressed.
func RunRenderGLB(grid *sponge.Grid, opts RenderOptions, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if strings.HasSuffix(outPath, ".zst") {
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return err
		}
		if err := renderTo(zw, grid, opts); err != nil {
			zw.Close()
			f.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	} else if err := renderTo(f, grid, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RenderGLBBytes returns the rendered .glb as bytes instead of writing to disk.
func RenderGLBBytes(grid *sponge.Grid, opts RenderOptions) ([]byte, error) {
	var out bytes.Buffer
	if err := renderTo(&out, grid, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderTo(w io.Writer, grid *sponge.Grid, opts RenderOptions) error {
	doc, err := BuildRenderDocument(grid, opts)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(doc)
}

// BuildRenderDocument assembles the glTF document for a grid: one mesh with a
// triangles primitive (face material) and a lines primitive (edge material),
// the scene and node named after the title.
func BuildRenderDocument(grid *sponge.Grid, opts RenderOptions) (*gltf.Document, error) {
	faceRGBA, err := ParseHexColor(opts.FaceColor)
	if err != nil {
		return nil, err
	}
	edgeRGBA, err := ParseHexColor(opts.EdgeColor)
	if err != nil {
		return nil, err
	}

	mesh := sponge.GenerateMesh(grid)

	positions := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
	}
	indices := make([]uint32, len(mesh.Indices))
	copy(indices, mesh.Indices)
	edges := make([]uint32, len(mesh.EdgeIndices))
	copy(edges, mesh.EdgeIndices)

	// flat normals per face
	normals := make([][3]float32, len(positions))
	for i := 0; i < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[v0], positions[v1], positions[v2]
		vec1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		vec2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		cross := [3]float32{
			vec1[1]*vec2[2] - vec1[2]*vec2[1],
			vec1[2]*vec2[0] - vec1[0]*vec2[2],
			vec1[0]*vec2[1] - vec1[1]*vec2[0],
		}
		length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
		if length > 0 {
			cross[0] /= length
			cross[1] /= length
			cross[2] /= length
		}
		normals[v0] = cross
		normals[v1] = cross
		normals[v2] = cross
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "spongetool -> GLB"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indicesAccessor := modeler.WriteIndices(doc, indices)
	edgesAccessor := modeler.WriteIndices(doc, edges)

	faceMaterial := &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &faceRGBA,
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}
	if faceRGBA[3] < 1.0 {
		faceMaterial.AlphaMode = gltf.AlphaBlend
	} else {
		faceMaterial.AlphaMode = gltf.AlphaOpaque
	}
	edgeMaterial := &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &edgeRGBA,
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		AlphaMode: gltf.AlphaOpaque,
	}
	doc.Materials = []*gltf.Material{faceMaterial, edgeMaterial}

	facePrim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
		},
		Indices:  gltf.Index(uint32(indicesAccessor)),
		Material: gltf.Index(0),
	}
	edgePrim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
		},
		Indices:  gltf.Index(uint32(edgesAccessor)),
		Material: gltf.Index(1),
		Mode:     gltf.PrimitiveLines,
	}

	meshGltf := &gltf.Mesh{Name: "SpongeMesh", Primitives: []*gltf.Primitive{facePrim, edgePrim}}
	doc.Meshes = []*gltf.Mesh{meshGltf}
	node := &gltf.Node{Mesh: gltf.Index(0), Name: opts.Title}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Name = opts.Title
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	return doc, nil
}
