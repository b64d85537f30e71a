package vox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorton3D64_Roundtrip(t *testing.T) {
	for _, p := range [][3]uint32{{0, 0, 0}, {1, 2, 3}, {255, 0, 17}, {1<<21 - 1, 5, 1<<21 - 1}} {
		x, y, z := MortonDecode3D64(Morton3D64(p[0], p[1], p[2]))
		assert.Equal(t, p, [3]uint32{x, y, z})
	}
	assert.Equal(t, uint64(0b111), Morton3D64(1, 1, 1))
	assert.Equal(t, uint64(0b100), Morton3D64(0, 0, 1))
}

func TestMortonOrder_IsPermutation(t *testing.T) {
	size := Vec3i{X: 3, Y: 5, Z: 2}
	order := MortonOrder(size)
	require.Len(t, order, 30)
	seen := make(map[int]bool)
	for _, i := range order {
		seen[i] = true
	}
	assert.Len(t, seen, 30)
	assert.Equal(t, 0, order[0])

	cells := make([]uint8, 30)
	for i := range cells {
		cells[i] = uint8(i)
	}
	assert.Equal(t, cells, mortonRestore(size, mortonFlatten(size, cells)))
}

func TestMortonOrder_Cube(t *testing.T) {
	// 2x2x2: Morton order equals linear order
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, MortonOrder(Vec3i{X: 2, Y: 2, Z: 2}))
	assert.Nil(t, MortonOrder(Vec3i{}))
}

func TestMorton3DMaxBits(t *testing.T) {
	assert.Equal(t, 12, Morton3DMaxBits(Vec3i{X: 16, Y: 16, Z: 16}))
	assert.Equal(t, 24, Morton3DMaxBits(Vec3i{X: 256, Y: 1, Z: 1}))
	assert.Equal(t, 0, Morton3DMaxBits(Vec3i{X: 1, Y: 1, Z: 1}))
}
