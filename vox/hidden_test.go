package vox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denseFrom(t *testing.T, size Vec3i, voxels []Voxel) *DenseModel {
	t.Helper()
	m := NewDenseModel(size)
	for _, v := range voxels {
		require.NoError(t, m.SetVoxel(int(v.X), int(v.Y), int(v.Z), v.Color))
	}
	return m
}

func TestRemoveHiddenVoxels_SolidCube(t *testing.T) {
	voxels := solidCube(3, 1)
	m := denseFrom(t, Vec3i{X: 3, Y: 3, Z: 3}, voxels)

	kept, removed := RemoveHiddenVoxels(m, voxels)
	assert.Equal(t, 1, removed)
	require.Len(t, kept, 26)
	// order preserved: everything except index 13, the center
	assert.Equal(t, append(append([]Voxel{}, voxels[:13]...), voxels[14:]...), kept)
	c, err := m.Voxel(1, 1, 1)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestRemoveHiddenVoxels_MissingNeighbor(t *testing.T) {
	full := solidCube(3, 1)
	for _, missing := range [][3]uint8{{0, 1, 1}, {2, 1, 1}, {1, 0, 1}, {1, 2, 1}, {1, 1, 0}, {1, 1, 2}} {
		var voxels []Voxel
		for _, v := range full {
			if v.X == missing[0] && v.Y == missing[1] && v.Z == missing[2] {
				continue
			}
			voxels = append(voxels, v)
		}
		m := denseFrom(t, Vec3i{X: 3, Y: 3, Z: 3}, voxels)
		kept, removed := RemoveHiddenVoxels(m, voxels)
		assert.Zero(t, removed, "missing %v", missing)
		assert.Len(t, kept, 26, "missing %v", missing)
	}
}

func TestRemoveHiddenVoxels_BoundaryExempt(t *testing.T) {
	// A slab one cell thick: every voxel touches a face of the extent.
	var voxels []Voxel
	for y := uint8(0); y < 5; y++ {
		for x := uint8(0); x < 5; x++ {
			voxels = append(voxels, Voxel{X: x, Y: y, Z: 0, Color: 2})
		}
	}
	m := denseFrom(t, Vec3i{X: 5, Y: 5, Z: 1}, voxels)
	kept, removed := RemoveHiddenVoxels(m, voxels)
	assert.Zero(t, removed)
	assert.Equal(t, voxels, kept)

	// Cells on a max face have no neighbor beyond it and are kept.
	voxels = solidCube(3, 1)
	m = denseFrom(t, Vec3i{X: 3, Y: 3, Z: 3}, voxels)
	kept, _ = RemoveHiddenVoxels(m, voxels)
	assert.Contains(t, kept, Voxel{X: 2, Y: 1, Z: 1, Color: 1})
}

func TestRemoveHiddenVoxels_IgnoresPalette(t *testing.T) {
	voxels := solidCube(3, 200)
	m := denseFrom(t, Vec3i{X: 3, Y: 3, Z: 3}, voxels)
	m.Palette = Palette{}
	_, removed := RemoveHiddenVoxels(m, voxels)
	assert.Equal(t, 1, removed)
}
