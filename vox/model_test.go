package vox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseModel_Addressing(t *testing.T) {
	m := NewDenseModel(Vec3i{X: 3, Y: 4, Z: 5})
	require.Len(t, m.Data(), 60)

	i, err := m.Index(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2+3*3+4*3*4, i)

	require.NoError(t, m.SetVoxel(1, 2, 3, 42))
	assert.Equal(t, uint8(42), m.Data()[1+2*3+3*12])
	c, err := m.Voxel(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(42), c)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, DefaultPalette, m.Palette)
}

func TestDenseModel_OutOfBounds(t *testing.T) {
	m := NewDenseModel(Vec3i{X: 2, Y: 2, Z: 2})
	for _, p := range [][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}} {
		_, err := m.Voxel(p[0], p[1], p[2])
		assert.ErrorIs(t, err, ErrOutOfBounds, "%v", p)
		assert.ErrorIs(t, m.SetVoxel(p[0], p[1], p[2], 1), ErrOutOfBounds, "%v", p)
	}
	assert.Zero(t, m.Count())
}

func TestNewDenseModelFromData(t *testing.T) {
	_, err := NewDenseModelFromData(Vec3i{X: 2, Y: 2, Z: 2}, make([]uint8, 7), DefaultPalette)
	assert.ErrorIs(t, err, ErrMalformedArgument)

	m, err := NewDenseModelFromData(Vec3i{X: 2, Y: 1, Z: 1}, []uint8{0, 4}, DefaultPalette)
	require.NoError(t, err)
	c, err := m.Voxel(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), c)
}

func TestDenseModel_Fingerprint(t *testing.T) {
	a := NewDenseModel(Vec3i{X: 2, Y: 2, Z: 2})
	b := NewDenseModel(Vec3i{X: 2, Y: 2, Z: 2})
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Palette[1] = Color{R: 1}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "palette is not hashed")

	require.NoError(t, b.SetVoxel(1, 1, 1, 3))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	// same cell count, different extent
	c := NewDenseModel(Vec3i{X: 8, Y: 1, Z: 1})
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestVec3i_Cells(t *testing.T) {
	assert.Equal(t, uint64(0), Vec3i{X: 0, Y: 5, Z: 5}.Cells())
	assert.Equal(t, uint64(1)<<63, Vec3i{X: 1 << 31, Y: 1 << 31, Z: 2}.Cells())
}
