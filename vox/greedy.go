package vox

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a mesh corner carrying the palette index of its face.
type Vertex struct {
	Position mgl32.Vec3
	Color    uint8
}

// Mesh is an indexed triangle list, two triangles per quad.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Quads returns the number of quads in the mesh.
func (m *Mesh) Quads() int { return len(m.Indices) / 6 }

type dirSpec struct {
	normal mgl32.Vec3
	u, v   int
	du, dv mgl32.Vec3
}

var directions = []dirSpec{
	{mgl32.Vec3{1, 0, 0}, 1, 2, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{-1, 0, 0}, 1, 2, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 1, 0}, 0, 2, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, -1, 0}, 0, 2, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, 0, 1, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, 0, 1, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

func (m *DenseModel) at(x, y, z int) uint8 {
	c, err := m.Voxel(x, y, z)
	if err != nil {
		return 0
	}
	return c
}

func addQuad(mesh *Mesh, dir dirSpec, start [3]int, w, h int, color uint8, perp int) {
	var base mgl32.Vec3
	base[perp] = float32(start[0])
	if dir.normal[perp] > 0 {
		base[perp] += 1
	}
	base[dir.u] = float32(start[1])
	base[dir.v] = float32(start[2])

	du := dir.du.Mul(float32(h))
	dv := dir.dv.Mul(float32(w))
	verts := [4]Vertex{
		{Position: base, Color: color},
		{Position: base.Add(du), Color: color},
		{Position: base.Add(du).Add(dv), Color: color},
		{Position: base.Add(dv), Color: color},
	}

	swap := (dir.normal[perp] < 0) != (perp == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}

	baseIdx := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, verts[:]...)
	mesh.Indices = append(mesh.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
}

// GenerateMesh builds a greedy mesh of m: faces between a filled cell and an
// empty or outside cell, merged into maximal same-color rectangles per slice.
func GenerateMesh(m *DenseModel) *Mesh {
	mesh := &Mesh{}
	size := m.Size()
	dims := [3]int{int(size.X), int(size.Y), int(size.Z)}
	if dims[0] == 0 || dims[1] == 0 || dims[2] == 0 {
		return mesh
	}

	for _, dir := range directions {
		perp := 3 - dir.u - dir.v
		nu, nv := dims[dir.u], dims[dir.v]
		mask := make([]uint8, nu*nv)
		visited := make([]bool, nu*nv)

		for p := 0; p < dims[perp]; p++ {
			clear(mask)
			clear(visited)

			for u := 0; u < nu; u++ {
				for v := 0; v < nv; v++ {
					var pos [3]int
					pos[dir.u] = u
					pos[dir.v] = v
					pos[perp] = p

					voxel := m.at(pos[0], pos[1], pos[2])
					if voxel == 0 {
						continue
					}

					adj := pos
					if dir.normal[perp] < 0 {
						adj[perp] = p - 1
					} else {
						adj[perp] = p + 1
					}
					if m.at(adj[0], adj[1], adj[2]) == 0 {
						mask[u*nv+v] = voxel
					}
				}
			}

			for u := 0; u < nu; u++ {
				for v := 0; v < nv; {
					if mask[u*nv+v] == 0 || visited[u*nv+v] {
						v++
						continue
					}
					color := mask[u*nv+v]
					width := 1
					for w := v + 1; w < nv && mask[u*nv+w] == color && !visited[u*nv+w]; w++ {
						width++
					}
					height := 1
					stop := false
					for h := u + 1; h < nu && !stop; h++ {
						for w := v; w < v+width; w++ {
							if mask[h*nv+w] != color || visited[h*nv+w] {
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
							visited[hu*nv+hv] = true
						}
					}
					addQuad(mesh, dir, [3]int{p, u, v}, width, height, color, perp)
					v += width
				}
			}
		}
	}
	return mesh
}

// FaceNormal returns the unit normal of the triangle (a, b, c), or the zero
// vector for a degenerate triangle.
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
