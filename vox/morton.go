package vox

import (
	"math/bits"
	"sort"
)

// MortonOrder returns the buffer offsets of a dense model of the given
// extent sorted by 3D Morton code, so order[i] is the cell visited i-th.
func MortonOrder(size Vec3i) []int {
	n := int(size.Cells())
	if n == 0 {
		return nil
	}
	sx, sy := int(size.X), int(size.Y)
	keys := make([]uint64, n)
	order := make([]int, n)
	for i := range order {
		x := i % sx
		y := (i / sx) % sy
		z := i / (sx * sy)
		keys[i] = Morton3D64(uint32(x), uint32(y), uint32(z))
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })
	return order
}

// mortonFlatten returns the cells of data in Morton order.
func mortonFlatten(size Vec3i, data []uint8) []uint8 {
	order := MortonOrder(size)
	out := make([]uint8, len(order))
	for i, src := range order {
		out[i] = data[src]
	}
	return out
}

// mortonRestore inverts mortonFlatten.
func mortonRestore(size Vec3i, stream []uint8) []uint8 {
	order := MortonOrder(size)
	out := make([]uint8, len(order))
	for i, dst := range order {
		out[dst] = stream[i]
	}
	return out
}

// Morton3D64 interleaves the low 21 bits of x, y and z.
func Morton3D64(x, y, z uint32) uint64 {
	return part1By2(uint64(x)) |
		(part1By2(uint64(y)) << 1) |
		(part1By2(uint64(z)) << 2)
}

// MortonDecode3D64 inverts Morton3D64.
func MortonDecode3D64(index uint64) (x, y, z uint32) {
	x = uint32(compact1By2(index))
	y = uint32(compact1By2(index >> 1))
	z = uint32(compact1By2(index >> 2))
	return
}

func part1By2(x uint64) uint64 {
	x &= 0x1fffff
	x = (x | (x << 32)) & 0x1f00000000ffff
	x = (x | (x << 16)) & 0x1f0000ff0000ff
	x = (x | (x << 8)) & 0x100f00f00f00f00f
	x = (x | (x << 4)) & 0x10c30c30c30c30c3
	x = (x | (x << 2)) & 0x1249249249249249
	return x
}

func compact1By2(x uint64) uint64 {
	x &= 0x1249249249249249
	x = (x ^ (x >> 2)) & 0x10c30c30c30c30c3
	x = (x ^ (x >> 4)) & 0x100f00f00f00f00f
	x = (x ^ (x >> 8)) & 0x1f0000ff0000ff
	x = (x ^ (x >> 16)) & 0x1f00000000ffff
	x = (x ^ (x >> 32)) & 0x1fffff
	return x
}

// Morton3DMaxBits returns the number of Morton code bits needed to address
// every cell of the extent.
func Morton3DMaxBits(size Vec3i) int {
	max := size.X
	if size.Y > max {
		max = size.Y
	}
	if size.Z > max {
		max = size.Z
	}
	if max == 0 {
		return 0
	}
	return bits.Len32(max-1) * 3
}
