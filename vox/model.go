package vox

import (
	"github.com/pkg/errors"
)

// Vec3i is a model extent: width, depth and height along x, y and z.
type Vec3i struct {
	X, Y, Z uint32
}

// Cells returns x*y*z without overflow.
func (v Vec3i) Cells() uint64 {
	return uint64(v.X) * uint64(v.Y) * uint64(v.Z)
}

// Voxel is one occupied cell of a sparse model. Color indexes the palette;
// 0 means empty.
type Voxel struct {
	X, Y, Z, Color uint8
}

// DenseModel stores one palette index per cell, 0 meaning empty.
// Cell (x,y,z) lives at x + y*Size.X + z*Size.X*Size.Y.
type DenseModel struct {
	size    Vec3i
	voxels  []uint8
	Palette Palette
}

// NewDenseModel returns an empty model of the given extent using the default
// palette.
func NewDenseModel(size Vec3i) *DenseModel {
	return &DenseModel{
		size:    size,
		voxels:  make([]uint8, size.Cells()),
		Palette: DefaultPalette,
	}
}

// NewDenseModelFromData wraps an existing cell buffer, which must hold
// exactly size.Cells() bytes.
func NewDenseModelFromData(size Vec3i, voxels []uint8, palette Palette) (*DenseModel, error) {
	if uint64(len(voxels)) != size.Cells() {
		return nil, errors.Wrapf(ErrMalformedArgument, "buffer of %d bytes for extent %dx%dx%d", len(voxels), size.X, size.Y, size.Z)
	}
	return &DenseModel{size: size, voxels: voxels, Palette: palette}, nil
}

// Size returns the model extent.
func (m *DenseModel) Size() Vec3i { return m.size }

// Data returns the flat cell buffer. Writes through it are visible to the
// model.
func (m *DenseModel) Data() []uint8 { return m.voxels }

// Index returns the buffer offset of (x,y,z).
func (m *DenseModel) Index(x, y, z int) (int, error) {
	if x < 0 || y < 0 || z < 0 || uint64(x) >= uint64(m.size.X) || uint64(y) >= uint64(m.size.Y) || uint64(z) >= uint64(m.size.Z) {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d,%d,%d) outside extent %dx%dx%d", x, y, z, m.size.X, m.size.Y, m.size.Z)
	}
	sx, sy := int(m.size.X), int(m.size.Y)
	return x + y*sx + z*sx*sy, nil
}

// Voxel returns the palette index stored at (x,y,z).
func (m *DenseModel) Voxel(x, y, z int) (uint8, error) {
	i, err := m.Index(x, y, z)
	if err != nil {
		return 0, err
	}
	return m.voxels[i], nil
}

// SetVoxel stores color at (x,y,z).
func (m *DenseModel) SetVoxel(x, y, z int, color uint8) error {
	i, err := m.Index(x, y, z)
	if err != nil {
		return err
	}
	m.voxels[i] = color
	return nil
}

// occupied reports whether (x,y,z) is inside the extent and non-empty.
func (m *DenseModel) occupied(x, y, z int) bool {
	c, err := m.Voxel(x, y, z)
	return err == nil && c != 0
}

// Count returns the number of non-empty cells.
func (m *DenseModel) Count() int {
	n := 0
	for _, c := range m.voxels {
		if c != 0 {
			n++
		}
	}
	return n
}

// SparseModel lists occupied cells in file order. Duplicate coordinates are
// kept as they appear in the stream.
type SparseModel struct {
	size    Vec3i
	Voxels  []Voxel
	Palette Palette
}

// NewSparseModel returns an empty sparse model using the default palette.
func NewSparseModel(size Vec3i) *SparseModel {
	return &SparseModel{size: size, Palette: DefaultPalette}
}

// Size returns the model extent.
func (m *SparseModel) Size() Vec3i { return m.size }
