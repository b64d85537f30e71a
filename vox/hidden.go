package vox

// RemoveHiddenVoxels splits voxels into those visible from outside and those
// fully enclosed. A voxel is hidden when it lies strictly inside the extent on
// every axis and all six axis neighbors are non-empty in dense. Hidden voxels
// are cleared in dense; the rest are returned in input order.
//
// dense must already hold every voxel of the model, so the result does not
// depend on voxel order.
func RemoveHiddenVoxels(dense *DenseModel, voxels []Voxel) (kept []Voxel, removed int) {
	size := dense.Size()
	sx, sy, sz := int64(size.X), int64(size.Y), int64(size.Z)

	hidden := make([]bool, len(voxels))
	for i, v := range voxels {
		x, y, z := int(v.X), int(v.Y), int(v.Z)
		interior := x > 0 && int64(x) < sx-1 &&
			y > 0 && int64(y) < sy-1 &&
			z > 0 && int64(z) < sz-1
		if !interior {
			continue
		}
		hidden[i] = dense.occupied(x-1, y, z) && dense.occupied(x+1, y, z) &&
			dense.occupied(x, y-1, z) && dense.occupied(x, y+1, z) &&
			dense.occupied(x, y, z-1) && dense.occupied(x, y, z+1)
	}

	kept = make([]Voxel, 0, len(voxels))
	for i, v := range voxels {
		if !hidden[i] {
			kept = append(kept, v)
			continue
		}
		// in bounds: interior
		_ = dense.SetVoxel(int(v.X), int(v.Y), int(v.Z), 0)
		removed++
	}
	return kept, removed
}
