package api

import (
	"bytes"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxoid0/vox-file/vox"
)

// ModelSummary describes one model of a loaded file.
type ModelSummary struct {
	Size vox.Vec3i `json:"size"`
	// Voxels counts the sparse voxels kept, Filled the non-empty dense cells.
	Voxels int `json:"voxels"`
	Filled int `json:"filled"`
	// Quads is the size of the greedy mesh.
	Quads       int    `json:"quads"`
	Fingerprint string `json:"fingerprint"`
}

// Summary describes a loaded .vox file.
type Summary struct {
	Version       int32          `json:"version"`
	Models        []ModelSummary `json:"models"`
	CustomPalette bool           `json:"custom_palette"`
	Chunks        int            `json:"chunks"`
	Skipped       map[string]int `json:"skipped,omitempty"`
}

// GLBOptions controls the GLB export layout.
type GLBOptions struct {
	Generator string
	// Gap is the empty space between neighboring models, in voxels.
	Gap float32
}

// DefaultGLBOptions returns the options used by the CLI when none are given.
func DefaultGLBOptions() GLBOptions {
	return GLBOptions{Generator: "VOX -> GLB", Gap: 1}
}

// withDense makes sure dense models are kept; meshing and packing need them.
func withDense(opts vox.Options) vox.Options {
	opts.LoadDense = true
	return opts
}

// Summarize loads voxBytes and reports per-model statistics.
func Summarize(voxBytes []byte, opts vox.Options) (Summary, error) {
	opts = withDense(opts)
	opts.LoadSparse = true
	f, err := vox.NewLoader(opts).LoadBytes(voxBytes)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Version:       f.Version,
		CustomPalette: f.Palette != vox.DefaultPalette,
		Chunks:        len(f.Chunks),
		Skipped:       f.Skipped,
	}
	for i, d := range f.Dense {
		s.Models = append(s.Models, ModelSummary{
			Size:        d.Size(),
			Voxels:      len(f.Sparse[i].Voxels),
			Filled:      d.Count(),
			Quads:       vox.GenerateMesh(d).Quads(),
			Fingerprint: fmt.Sprintf("%016x", d.Fingerprint()),
		})
	}
	return s, nil
}

// VoxToGLB takes .vox file bytes and returns .glb bytes with one mesh node
// per model, laid out on a grid.
func VoxToGLB(voxBytes []byte, opts vox.Options, glb GLBOptions) ([]byte, error) {
	f, err := vox.NewLoader(withDense(opts)).LoadBytes(voxBytes)
	if err != nil {
		return nil, err
	}
	return ModelsToGLB(f.Dense, nil, glb)
}

// VoxToPack loads voxBytes and encodes its dense models as a .voxpack.
func VoxToPack(voxBytes []byte, opts vox.Options, comp vox.PackCompression) ([]byte, error) {
	f, err := vox.NewLoader(withDense(opts)).LoadBytes(voxBytes)
	if err != nil {
		return nil, err
	}
	return vox.PackFromFile(f).Marshal(comp)
}

// PackToGLB converts .voxpack bytes to .glb bytes.
func PackToGLB(packBytes []byte, glb GLBOptions) ([]byte, error) {
	pack, _, err := vox.UnmarshalPack(packBytes)
	if err != nil {
		return nil, err
	}
	models, err := pack.DenseModels()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(pack.Models))
	for i, m := range pack.Models {
		names[i] = m.Name
	}
	return ModelsToGLB(models, names, glb)
}

// ModelsToGLB meshes each model and writes them into a single binary glTF
// scene. Models without visible faces get no node. Missing names default to
// model_<i>.
func ModelsToGLB(models []*vox.DenseModel, names []string, glb GLBOptions) ([]byte, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("no models to export")
	}
	doc := gltf.NewDocument()
	doc.Asset.Generator = glb.Generator

	// Use a single default material; colors come from per-vertex COLOR_0 attribute.
	pbr := &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float32{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	material := &gltf.Material{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}
	doc.Materials = []*gltf.Material{material}

	// Arrange models in a grid so they don't overlap
	var stepX, stepZ float32
	for _, m := range models {
		stepX = max(stepX, float32(m.Size().X))
		stepZ = max(stepZ, float32(m.Size().Z))
	}
	stepX += glb.Gap
	stepZ += glb.Gap
	cols := int(math.Ceil(math.Sqrt(float64(len(models)))))

	hasAlpha := false
	for i, m := range models {
		mesh := vox.GenerateMesh(m)
		if mesh.Quads() == 0 {
			continue
		}

		positions := make([][3]float32, len(mesh.Vertices))
		colors := make([][4]float32, len(mesh.Vertices))
		for vi, v := range mesh.Vertices {
			positions[vi] = v.Position
			c := m.Palette[v.Color]
			colors[vi] = c.Float4()
			if c.A < 255 {
				hasAlpha = true
			}
		}
		indices := make([]uint32, len(mesh.Indices))
		copy(indices, mesh.Indices)

		// flat normals per face
		normals := make([][3]float32, len(positions))
		for t := 0; t < len(indices); t += 3 {
			v0, v1, v2 := indices[t], indices[t+1], indices[t+2]
			n := vox.FaceNormal(mesh.Vertices[v0].Position, mesh.Vertices[v1].Position, mesh.Vertices[v2].Position)
			normals[v0] = n
			normals[v1] = n
			normals[v2] = n
		}

		posAccessor := modeler.WritePosition(doc, positions)
		normalAccessor := modeler.WriteNormal(doc, normals)
		colorAccessor := modeler.WriteColor(doc, colors)
		indicesAccessor := modeler.WriteIndices(doc, indices)

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(posAccessor),
				gltf.NORMAL:   uint32(normalAccessor),
				gltf.COLOR_0:  uint32(colorAccessor),
			},
			Indices:  gltf.Index(uint32(indicesAccessor)),
			Material: gltf.Index(0),
		}

		name := fmt.Sprintf("model_%d", i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		gm := &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}}
		doc.Meshes = append(doc.Meshes, gm)

		r := i / cols
		c := i % cols
		node := &gltf.Node{Name: name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))}
		node.Translation = [3]float32{float32(c) * stepX, 0, float32(r) * stepZ}
		doc.Nodes = append(doc.Nodes, node)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	if hasAlpha {
		material.AlphaMode = gltf.AlphaBlend
	}

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
